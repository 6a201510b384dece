package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridemate/internal/identity/domain"
)

const testDomain = "mitwpu.edu.in"

func validForm() RegistrationForm {
	return RegistrationForm{
		Name:            "Asha Kulkarni",
		Email:           "1032230010@mitwpu.edu.in",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Department:      "Computer Science",
		Year:            2,
	}
}

func TestValidateRegistration_Success(t *testing.T) {
	rollNo, err := ValidateRegistration(validForm(), testDomain)

	require.NoError(t, err)
	assert.Equal(t, "1032230010", rollNo)
}

func TestValidateRegistration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegistrationForm)
		wantMsg string
	}{
		{
			name:    "password mismatch",
			mutate:  func(f *RegistrationForm) { f.ConfirmPassword = "other" },
			wantMsg: "passwords do not match",
		},
		{
			name: "short password",
			mutate: func(f *RegistrationForm) {
				f.Password = "abc"
				f.ConfirmPassword = "abc"
			},
			wantMsg: "at least 6 characters",
		},
		{
			name:    "non-PRN email",
			mutate:  func(f *RegistrationForm) { f.Email = "asha@mitwpu.edu.in" },
			wantMsg: "PRN-based email",
		},
		{
			name:    "PRN too short",
			mutate:  func(f *RegistrationForm) { f.Email = "12345@mitwpu.edu.in" },
			wantMsg: "PRN-based email",
		},
		{
			name:    "wrong domain",
			mutate:  func(f *RegistrationForm) { f.Email = "1032230010@gmail.com" },
			wantMsg: "PRN-based email",
		},
		{
			name:    "missing name",
			mutate:  func(f *RegistrationForm) { f.Name = "" },
			wantMsg: "fill out all fields",
		},
		{
			name:    "missing year",
			mutate:  func(f *RegistrationForm) { f.Year = 0 },
			wantMsg: "fill out all fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := ValidateRegistration(form, testDomain)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateLoginEmail(t *testing.T) {
	require.NoError(t, ValidateLoginEmail("1032230010@mitwpu.edu.in", testDomain))
	require.NoError(t, ValidateLoginEmail("1032230010@MITWPU.EDU.IN", testDomain))

	err := ValidateLoginEmail("someone@gmail.com", testDomain)
	require.ErrorIs(t, err, domain.ErrValidation)
}
