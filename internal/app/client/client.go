package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"studentdash/internal/app/client/config"
	"studentdash/internal/domain/user"
)

// ErrNotLoggedIn возвращается командам, которым нужна открытая сессия
var ErrNotLoggedIn = errors.New("требуется вход. Выполните: studentdash auth login")

type App struct {
	config  *config.Config
	log     *slog.Logger
	slot    Slot
	store   *Store
	session *Session
	menu    *Menu
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	slot := openSlot(cfg, log)

	cache := NewKVCache(slot, cfg.CacheKey, log)
	remote := NewHTTPClient(cfg, log)

	users := user.NewService(
		NewFileAccounts(cfg.AccountsPath),
		user.NewFormValidator(),
		user.Credentials{Username: cfg.CorrectUsername, Password: cfg.CorrectPassword},
		log.With("component", "users"),
	)

	return &App{
		config:  cfg,
		log:     log,
		slot:    slot,
		store:   NewStore(remote, cache, log, cfg.ListTimeout),
		session: NewSession(cfg.SessionPath, users, log),
		menu:    LoadMenu(cfg.MenuPath, log),
	}, nil
}

// openSlot выбирает хранилище локального кеша. При ошибке используем память.
func openSlot(cfg *config.Config, log *slog.Logger) Slot {
	switch cfg.CacheBackend {
	case config.CacheRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		slot, err := NewRedisSlot(ctx, cfg.RedisAddr)
		if err != nil {
			log.Warn("Не удалось подключиться к Redis, используем память", "error", err)
			return NewMemorySlot()
		}
		return slot
	case config.CacheMemory:
		return NewMemorySlot()
	default:
		slot, err := NewSQLiteSlot(cfg.CachePath)
		if err != nil {
			log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
			return NewMemorySlot()
		}
		return slot
	}
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Store() *Store {
	return a.store
}

func (a *App) Session() *Session {
	return a.session
}

func (a *App) Menu() *Menu {
	return a.menu
}

// RequireLogin проверяет, что пользователь вошел в систему
func (a *App) RequireLogin() error {
	if !a.session.IsLoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}

func (a *App) Shutdown() error {
	a.log.Debug("Завершение работы клиента...")
	if err := a.slot.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия кеша: %w", err)
	}
	return nil
}
