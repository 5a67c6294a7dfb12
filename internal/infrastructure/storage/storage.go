package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"studentdash/internal/app/server/config"
	"studentdash/internal/domain/student"
	"studentdash/internal/infrastructure/storage/memory"
	"studentdash/internal/infrastructure/storage/postgres"
)

// Storage - хранилище коллекции студентов, выбранное конфигурацией
type Storage struct {
	Students student.Repository

	ping  func(ctx context.Context) error
	close func() error
}

// New открывает хранилище по cfg.Storage
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		pg, err := postgres.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("Используется хранилище postgres")
		return &Storage{
			Students: postgres.NewStudentRepository(pg, log),
			ping:     pg.Ping,
			close:    pg.Close,
		}, nil
	case config.StorageMemory:
		log.Info("Используется хранилище в памяти")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("неизвестное хранилище: %s", cfg.Storage)
	}
}

// NewMemory - хранилище в памяти для локального запуска и тестов
func NewMemory(seed ...student.Student) *Storage {
	return &Storage{Students: memory.NewStudentRepository(seed...)}
}

// Ping проверяет доступность хранилища
func (s *Storage) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
