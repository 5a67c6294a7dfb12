package student

import "studentdash/internal/domain/student"

type listOutput struct {
	Body []student.Student
}

type output struct {
	Body student.Student
}

type idInput struct {
	ID string `path:"id" example:"1" doc:"ID студента"`
}

// тело принимаем как есть и нормализуем по таблице алиасов
type createInput struct {
	Body map[string]any
}

type updateInput struct {
	ID   string `path:"id" example:"1" doc:"ID студента"`
	Body map[string]any
}
