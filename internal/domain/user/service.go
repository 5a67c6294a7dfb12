package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Signup(ctx context.Context, req SignupRequest) (Account, error)
	Authenticate(ctx context.Context, req LoginRequest) (Account, error)
}

type Service struct {
	repo      Repository
	validator Validator
	creds     Credentials
	log       *slog.Logger
	now       func() time.Time
}

func NewService(repo Repository, validator Validator, creds Credentials, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		creds:     creds,
		log:       log,
		now:       time.Now,
	}
}

// Signup регистрирует локальную учетную запись
func (s *Service) Signup(ctx context.Context, req SignupRequest) (Account, error) {
	if err := s.validator.ValidateSignup(req); err != nil {
		s.log.Debug("validation failed", "email", req.Email, "error", err)
		return Account{}, err
	}

	email := strings.TrimSpace(req.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return Account{}, ErrExists
	} else if !errors.Is(err, ErrNotFound) {
		return Account{}, fmt.Errorf("find account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("Хэш пароля: %w", err)
	}

	account := Account{
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// Authenticate сверяет форму входа с настроенными учетными данными
// или с зарегистрированной учетной записью
func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (Account, error) {
	if err := s.validator.ValidateLogin(req); err != nil {
		return Account{}, err
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	if s.creds.Username != "" && username == s.creds.Username {
		if password == s.creds.Password {
			return Account{Email: username}, nil
		}
		return Account{}, FieldErrors{"password": "Invalid password"}
	}

	account, err := s.repo.FindByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errs := FieldErrors{"username": "Invalid email address"}
			if password != s.creds.Password {
				errs["password"] = "Invalid password"
			}
			return Account{}, errs
		}
		return Account{}, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return Account{}, FieldErrors{"password": "Invalid password"}
	}

	return account, nil
}

// DisplayName возвращает имя для сессии: имя и фамилию, если они известны,
// иначе часть email до @
func DisplayName(account Account) string {
	full := strings.TrimSpace(account.FirstName + " " + account.LastName)
	if full != "" {
		return full
	}
	if local, _, ok := strings.Cut(account.Email, "@"); ok && local != "" {
		return local
	}
	return account.Email
}
