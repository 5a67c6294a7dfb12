package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	gosync "sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"

	"studentdash/internal/domain/user"
)

// SessionState - флаги сессии, по которым CLI решает, пускать ли к данным
type SessionState struct {
	IsLoggedIn bool      `json:"isLoggedIn"`
	UserEmail  string    `json:"userEmail"`
	UserName   string    `json:"userName"`
	LastLogin  time.Time `json:"lastLogin"`
}

// Session хранит флаги входа в файле и проверяет учетные данные
type Session struct {
	path  string
	users user.Servicer
	log   *slog.Logger
	now   func() time.Time

	mu    gosync.RWMutex
	state SessionState
}

func NewSession(path string, users user.Servicer, log *slog.Logger) *Session {
	s := &Session{
		path:  path,
		users: users,
		log:   log.With("component", "session"),
		now:   time.Now,
	}
	s.restore()
	return s
}

// restore читает сохраненную сессию. Сессия с некорректным email сбрасывается.
func (s *Session) restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("Не удалось прочитать сессию", "error", err)
		}
		return
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn("Сессия повреждена, выполняем выход", "error", err)
		s.clear()
		return
	}

	if state.IsLoggedIn {
		if err := validator.New().Var(state.UserEmail, "required,email"); err != nil {
			s.log.Warn("Некорректный email в сессии, выполняем выход", "email", state.UserEmail)
			s.clear()
			return
		}
	}

	s.state = state
}

// Current возвращает копию флагов сессии
func (s *Session) Current() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsLoggedIn проверяет, выполнен ли вход
func (s *Session) IsLoggedIn() bool {
	return s.Current().IsLoggedIn
}

// Login проверяет учетные данные и открывает сессию
func (s *Session) Login(ctx context.Context, req user.LoginRequest) (SessionState, error) {
	account, err := s.users.Authenticate(ctx, req)
	if err != nil {
		return SessionState{}, err
	}
	return s.open(account)
}

// Signup регистрирует учетную запись и сразу открывает сессию
func (s *Session) Signup(ctx context.Context, req user.SignupRequest) (SessionState, error) {
	account, err := s.users.Signup(ctx, req)
	if err != nil {
		return SessionState{}, err
	}
	return s.open(account)
}

// Logout удаляет флаги сессии
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = SessionState{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}
	return nil
}

func (s *Session) open(account user.Account) (SessionState, error) {
	state := SessionState{
		IsLoggedIn: true,
		UserEmail:  account.Email,
		UserName:   user.DisplayName(account),
		LastLogin:  s.now().UTC(),
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return SessionState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return SessionState{}, fmt.Errorf("ошибка сохранения сессии: %w", err)
	}
	s.state = state

	s.log.Info("Вход выполнен успешно", "email", state.UserEmail)
	return state, nil
}

func (s *Session) clear() {
	s.state = SessionState{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("Не удалось удалить сессию", "error", err)
	}
}
