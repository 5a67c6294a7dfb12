package student

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStudent() Student {
	return Student{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Age:       "36",
		Phone:     "123-456-7890",
		Mail:      "ada@x.com",
		Role:      "student",
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name        string
		mutate      func(s *Student)
		wantErr     bool
		expectedErr string
	}{
		{
			name:    "valid student",
			mutate:  func(s *Student) {},
			wantErr: false,
		},
		{
			name:        "missing firstname",
			mutate:      func(s *Student) { s.FirstName = "" },
			wantErr:     true,
			expectedErr: "firstname is required",
		},
		{
			name:        "invalid email",
			mutate:      func(s *Student) { s.Mail = "not-an-email" },
			wantErr:     true,
			expectedErr: "invalid email format",
		},
		{
			name:        "short phone",
			mutate:      func(s *Student) { s.Phone = "12345" },
			wantErr:     true,
			expectedErr: "phone must be 7-15 digits",
		},
		{
			name:        "letters in phone",
			mutate:      func(s *Student) { s.Phone = "call-me-maybe" },
			wantErr:     true,
			expectedErr: "phone must be 7-15 digits",
		},
		{
			name:        "zero age",
			mutate:      func(s *Student) { s.Age = "0" },
			wantErr:     true,
			expectedErr: "age must be greater than 0",
		},
		{
			name:        "non numeric age",
			mutate:      func(s *Student) { s.Age = "old" },
			wantErr:     true,
			expectedErr: "age must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStudent()
			tt.mutate(&s)

			err := v.Validate(s)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidData)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestValidator_CollectsAllFields(t *testing.T) {
	err := NewValidator().Validate(Student{})
	require.Error(t, err)

	for _, msg := range []string{"firstname", "lastname", "age", "phone", "email", "role"} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestMustRegister(t *testing.T) {
	fn := func(validator.FieldLevel) bool { return true }

	assert.NotPanics(t, func() { mustRegister(validator.New(), "always", fn) })
	assert.Panics(t, func() { mustRegister(validator.New(), "", fn) })
}
