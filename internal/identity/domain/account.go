package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Account представляет зарегистрированный аккаунт студента.
// PasswordHash никогда не сериализуется и не покидает Identity Store.
type Account struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	AvatarURL     string  `json:"avatar_url"`
	Rating        float64 `json:"rating"` // 0.0–5.0
	Department    string  `json:"department"`
	Year          int     `json:"year"`
	RollNo        string  `json:"roll_no"`
	IsVerified    bool    `json:"is_verified"`
	ContactNumber string  `json:"contact_number,omitempty"` // раскрывается только попутчикам

	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewAvatarURL генерирует ссылку на аватар-заглушку по имени
func NewAvatarURL(name string) string {
	return fmt.Sprintf("https://api.dicebear.com/8.x/initials/svg?seed=%s", url.QueryEscape(name))
}
