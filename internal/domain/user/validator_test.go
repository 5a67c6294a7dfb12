package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() SignupRequest {
	return SignupRequest{
		FirstName:       "Ada",
		LastName:        "L",
		Email:           "ada@example.com",
		Password:        "Abc12!",
		ConfirmPassword: "Abc12!",
	}
}

func TestFormValidator_ValidatePassword(t *testing.T) {
	validator := NewFormValidator()

	tests := []struct {
		name        string
		password    string
		wantErr     bool
		expectedErr string
	}{
		{
			name:     "valid password",
			password: "Abc12!",
			wantErr:  false,
		},
		{
			name:        "too short",
			password:    "Ab1!",
			wantErr:     true,
			expectedErr: "Password must be at least 6 characters",
		},
		{
			name:        "no uppercase",
			password:    "abc123!@",
			wantErr:     true,
			expectedErr: "Must include an uppercase letter",
		},
		{
			name:        "no lowercase",
			password:    "ABC123!@",
			wantErr:     true,
			expectedErr: "Must include a lowercase letter",
		},
		{
			name:        "no digit",
			password:    "Abcdef!@",
			wantErr:     true,
			expectedErr: "Must include a number",
		},
		{
			name:        "no special char",
			password:    "Abcdef12",
			wantErr:     true,
			expectedErr: "Must include a special character",
		},
		{
			name:        "underscore is not special",
			password:    "Abcdef12_",
			wantErr:     true,
			expectedErr: "Must include a special character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFormValidator_ValidateSignup(t *testing.T) {
	validator := NewFormValidator()

	tests := []struct {
		name     string
		mutate   func(r *SignupRequest)
		expected FieldErrors
	}{
		{
			name:   "valid signup",
			mutate: func(r *SignupRequest) {},
		},
		{
			name:     "short first name",
			mutate:   func(r *SignupRequest) { r.FirstName = "A" },
			expected: FieldErrors{"firstName": "Minimum 2 characters"},
		},
		{
			name:     "blank first name",
			mutate:   func(r *SignupRequest) { r.FirstName = "   " },
			expected: FieldErrors{"firstName": "First name is required"},
		},
		{
			name:     "bad email",
			mutate:   func(r *SignupRequest) { r.Email = "nope" },
			expected: FieldErrors{"email": "Please enter a valid email address"},
		},
		{
			name: "passwords differ",
			mutate: func(r *SignupRequest) {
				r.ConfirmPassword = "Abc12?"
			},
			expected: FieldErrors{"confirmPassword": "Passwords do not match"},
		},
		{
			name: "weak password",
			mutate: func(r *SignupRequest) {
				r.Password = "abcdef"
				r.ConfirmPassword = "abcdef"
			},
			expected: FieldErrors{"password": "Must include an uppercase letter"},
		},
		{
			name: "missing confirmation",
			mutate: func(r *SignupRequest) {
				r.ConfirmPassword = ""
			},
			expected: FieldErrors{"confirmPassword": "Please confirm your password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			err := validator.ValidateSignup(req)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}

			var fe FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.expected, fe)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestFormValidator_ValidateLogin(t *testing.T) {
	validator := NewFormValidator()

	assert.NoError(t, validator.ValidateLogin(LoginRequest{Username: "a@b.c", Password: "x"}))

	err := validator.ValidateLogin(LoginRequest{Username: "  ", Password: ""})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Len(t, fe, 2)
}

func TestFieldErrors_Error(t *testing.T) {
	err := FieldErrors{"password": "Invalid password", "username": "Invalid email address"}
	assert.Equal(t, "password: Invalid password; username: Invalid email address", err.Error())
}

func TestNewFormValidator(t *testing.T) {
	v := NewFormValidator()
	assert.True(t, v.requireSpecialChar)
	assert.True(t, v.requireDigit)
	assert.True(t, v.requireUpper)
	assert.True(t, v.requireLower)
}
