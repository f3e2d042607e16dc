package models

import "time"

// User представляет запись пользователя в каталоге
// JSON-теги соответствуют формату хранения в blob store
type User struct {
	Username     string    `json:"username"`     // отображаемое имя, уникально без учета регистра
	PasswordHash string    `json:"passwordHash"` // SHA-256 hex пароля (64 символа)
	CreatedAt    time.Time `json:"createdAt"`    // время регистрации
}
