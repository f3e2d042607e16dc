package models

// SessionRef ссылается на текущего авторизованного пользователя
// Хранится только username, без дублирования password hash
type SessionRef struct {
	Username string `json:"username"`
}
