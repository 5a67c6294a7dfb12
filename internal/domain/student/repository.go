package student

import (
	"context"
)

// Repository - хранилище коллекции студентов на стороне сервера
type Repository interface {
	List(ctx context.Context) ([]Student, error)
	Get(ctx context.Context, id string) (*Student, error)
	Create(ctx context.Context, s *Student) (string, error)
	Update(ctx context.Context, s *Student) error
	Delete(ctx context.Context, id string) error
}
