package user

import "time"

// Account - локально зарегистрированный пользователь
type Account struct {
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SignupRequest - данные формы регистрации
type SignupRequest struct {
	FirstName       string `validate:"required,min=2"`
	LastName        string `validate:"required,min=1"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}

// LoginRequest - данные формы входа
type LoginRequest struct {
	Username string
	Password string
}

// Credentials - учетные данные, которые принимаются без регистрации
type Credentials struct {
	Username string
	Password string
}
