package student

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9\s\-()]{7,15}$`)

// Validator проверяет поля формы студента
type Validator struct {
	validate *validator.Validate
}

// NewValidator создает валидатор с правилами age и phone
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "age", func(fl validator.FieldLevel) bool {
		n, ok := Age(fl.Field().String()).Int()
		return ok && n >= 1
	})
	return &Validator{validate: v}
}

// mustRegister паникует, как regexp.MustCompile: теги статические, ошибка здесь - ошибка программиста
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Validate возвращает ошибку ErrInvalidData с перечнем нарушенных полей
func (v *Validator) Validate(s Student) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	if name == "mail" {
		name = "email"
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return "invalid email format"
	case "phone":
		return "phone must be 7-15 digits"
	case "age":
		return "age must be greater than 0"
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}
