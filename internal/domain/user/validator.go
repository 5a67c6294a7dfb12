package user

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	MinFirstNameLen = 2
	MinLastNameLen  = 1
	MinPasswordLen  = 6
)

// specialChars - символы, которые засчитываются как специальные
const specialChars = `!@#$%^&*(),.?":{}|<>`

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateSignup(req SignupRequest) error
	ValidateLogin(req LoginRequest) error
	ValidatePassword(password string) error
}

type FormValidator struct {
	validate           *validator.Validate
	requireSpecialChar bool
	requireDigit       bool
	requireUpper       bool
	requireLower       bool
}

// NewFormValidator создает новый валидатор
func NewFormValidator() *FormValidator {
	return &FormValidator{
		validate:           validator.New(validator.WithRequiredStructEnabled()),
		requireSpecialChar: true,
		requireDigit:       true,
		requireUpper:       true,
		requireLower:       true,
	}
}

// ValidateSignup валидирует форму регистрации и возвращает FieldErrors
func (v *FormValidator) ValidateSignup(req SignupRequest) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)

	errs := FieldErrors{}

	var verrs validator.ValidationErrors
	if err := v.validate.Struct(req); errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs[signupField(fe.Field())] = signupMessage(fe)
		}
	}

	if _, failed := errs["password"]; !failed {
		if err := v.ValidatePassword(req.Password); err != nil {
			errs["password"] = err.Error()
		}
	}
	if _, failed := errs["confirmPassword"]; !failed && req.ConfirmPassword != req.Password {
		errs["confirmPassword"] = "Passwords do not match"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateLogin проверяет, что поля формы входа заполнены
func (v *FormValidator) ValidateLogin(req LoginRequest) error {
	errs := FieldErrors{}
	if strings.TrimSpace(req.Username) == "" {
		errs["username"] = "Email is required"
	}
	if strings.TrimSpace(req.Password) == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidatePassword валидирует пароль
func (v *FormValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return errors.New("Password must be at least 6 characters")
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	if v.requireUpper && !hasUpper {
		return errors.New("Must include an uppercase letter")
	}

	if v.requireLower && !hasLower {
		return errors.New("Must include a lowercase letter")
	}

	if v.requireDigit && !hasDigit {
		return errors.New("Must include a number")
	}

	if v.requireSpecialChar && !hasSpecial {
		return errors.New("Must include a special character")
	}

	return nil
}

func signupField(field string) string {
	switch field {
	case "FirstName":
		return "firstName"
	case "LastName":
		return "lastName"
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "ConfirmPassword":
		return "confirmPassword"
	default:
		return strings.ToLower(field)
	}
}

func signupMessage(fe validator.FieldError) string {
	switch fe.Field() + "." + fe.Tag() {
	case "FirstName.required":
		return "First name is required"
	case "FirstName.min":
		return "Minimum 2 characters"
	case "LastName.required":
		return "Last name is required"
	case "LastName.min":
		return "Minimum 1 character"
	case "Email.required":
		return "Email is required"
	case "Email.email":
		return "Please enter a valid email address"
	case "Password.required":
		return "Password is required"
	case "ConfirmPassword.required":
		return "Please confirm your password"
	default:
		return fe.Error()
	}
}
