package student

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// Servicer - бизнес-логика коллекции студентов
type Servicer interface {
	List(ctx context.Context) ([]Student, error)
	Create(ctx context.Context, s Student) (*Student, error)
	Find(ctx context.Context, id string) (*Student, error)
	Update(ctx context.Context, id string, s Student) (*Student, error)
	Delete(ctx context.Context, id string) error
}

// Service implements Servicer on top of a Repository
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new student service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "student_service"),
		now:  time.Now,
	}
}

// List returns the whole collection
func (s *Service) List(ctx context.Context) ([]Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list students", "error", err)
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Create stores a new student; the repository assigns the id
func (s *Service) Create(ctx context.Context, st Student) (*Student, error) {
	st.ID = ""
	if st.Date == "" {
		st.Date = NowDate(s.now())
	}

	id, err := s.repo.Create(ctx, &st)
	if err != nil {
		s.log.Error("failed to create student", "mail", st.Mail, "error", err)
		return nil, fmt.Errorf("create student: %w", err)
	}
	st.ID = id

	s.log.Info("student created", "id", id, "mail", st.Mail)
	return &st, nil
}

// Find returns one student by id
func (s *Service) Find(ctx context.Context, id string) (*Student, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find student", "id", id, "error", err)
		return nil, fmt.Errorf("find student: %w", err)
	}
	return st, nil
}

// Update replaces the whole record
func (s *Service) Update(ctx context.Context, id string, st Student) (*Student, error) {
	if _, err := s.Find(ctx, id); err != nil {
		return nil, err
	}

	st.ID = id
	if err := s.repo.Update(ctx, &st); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update student", "id", id, "error", err)
		return nil, fmt.Errorf("update student: %w", err)
	}

	s.log.Info("student updated", "id", id)
	return &st, nil
}

// Delete removes a student; ErrNotFound is returned as is
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete student", "id", id, "error", err)
		return fmt.Errorf("delete student: %w", err)
	}

	s.log.Info("student deleted", "id", id)
	return nil
}
