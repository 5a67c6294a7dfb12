package student

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "students-list",
		Method:      http.MethodGet,
		Path:        "/students",
		Summary:     "Список студентов",
		Tags:        []string{"students"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "students-create",
		Method:        http.MethodPost,
		Path:          "/students",
		Summary:       "Создать студента",
		Description:   "Принимает запись с любым вариантом имен полей, id назначает сервер.",
		Tags:          []string{"students"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "students-find",
		Method:      http.MethodGet,
		Path:        "/students/{id}",
		Summary:     "Получить студента",
		Tags:        []string{"students"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "students-update",
		Method:      http.MethodPut,
		Path:        "/students/{id}",
		Summary:     "Заменить запись студента",
		Tags:        []string{"students"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "students-delete",
		Method:        http.MethodDelete,
		Path:          "/students/{id}",
		Summary:       "Удалить студента",
		Tags:          []string{"students"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
