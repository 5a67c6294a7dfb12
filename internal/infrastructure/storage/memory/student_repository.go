package memory

import (
	"context"
	"strconv"
	"sync"

	"studentdash/internal/domain/student"
)

// StudentRepository - коллекция студентов в памяти процесса, порядок вставки сохраняется
type StudentRepository struct {
	mu     sync.RWMutex
	nextID int64
	order  []string
	byID   map[string]student.Student
}

func NewStudentRepository(seed ...student.Student) *StudentRepository {
	r := &StudentRepository{byID: make(map[string]student.Student)}
	for _, s := range seed {
		s := s
		_, _ = r.Create(context.Background(), &s)
	}
	return r
}

func (r *StudentRepository) List(_ context.Context) ([]student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]student.Student, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.byID[id])
	}
	return list, nil
}

func (r *StudentRepository) Get(_ context.Context, id string) (*student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, student.ErrNotFound
	}
	return &s, nil
}

func (r *StudentRepository) Create(_ context.Context, s *student.Student) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := strconv.FormatInt(r.nextID, 10)

	rec := *s
	rec.ID = id
	r.byID[id] = rec
	r.order = append(r.order, id)
	return id, nil
}

func (r *StudentRepository) Update(_ context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; !ok {
		return student.ErrNotFound
	}
	r.byID[s.ID] = *s
	return nil
}

func (r *StudentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return student.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
