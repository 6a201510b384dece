package transport

import (
	"fmt"
	"regexp"
	"strings"

	"ridemate/internal/identity/domain"
)

// Валидация форм — precondition на стороне вызывающего:
// Identity Store получает уже проверенные данные. Ошибки формулируются
// для показа пользователю рядом с формой.

// RegistrationForm — данные формы регистрации
type RegistrationForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Department      string `json:"department"`
	Year            int    `json:"year"`
}

// prnEmailRegex строится по домену кампуса: ровно 10 цифр PRN + домен
func prnEmailRegex(emailDomain string) *regexp.Regexp {
	return regexp.MustCompile(`^\d{10}@` + regexp.QuoteMeta(emailDomain) + `$`)
}

// ValidateRegistration проверяет форму регистрации.
// Возвращает RollNo, извлеченный из локальной части email.
func ValidateRegistration(form RegistrationForm, emailDomain string) (rollNo string, err error) {
	if form.Password != form.ConfirmPassword {
		return "", fmt.Errorf("%w: passwords do not match", domain.ErrValidation)
	}
	if len(form.Password) < 6 {
		return "", fmt.Errorf("%w: password must be at least 6 characters long", domain.ErrValidation)
	}
	if !prnEmailRegex(emailDomain).MatchString(form.Email) {
		return "", fmt.Errorf("%w: please use a valid PRN-based email (e.g., 1234567890@%s)", domain.ErrValidation, emailDomain)
	}
	if form.Name == "" || form.Department == "" || form.Year == 0 {
		return "", fmt.Errorf("%w: please fill out all fields", domain.ErrValidation)
	}
	return strings.SplitN(form.Email, "@", 2)[0], nil
}

// ValidateLoginEmail проверяет, что email принадлежит институтскому домену
func ValidateLoginEmail(email, emailDomain string) error {
	if !strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(emailDomain)) {
		return fmt.Errorf("%w: please use your @%s email address", domain.ErrValidation, emailDomain)
	}
	return nil
}
