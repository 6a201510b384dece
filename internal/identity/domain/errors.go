package domain

import "errors"

var (
	// ErrDuplicateEmail аккаунт с таким email уже существует
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrInvalidCredentials неверный email или пароль.
	// Не раскрываем, какое именно поле не совпало.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountNotFound аккаунт не найден
	ErrAccountNotFound = errors.New("account not found")

	// ErrValidation некорректные данные формы; оборачивается с пояснением
	ErrValidation = errors.New("validation failed")
)
