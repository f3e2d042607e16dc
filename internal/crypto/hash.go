package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword хеширует пароль через SHA-256
// Возвращает lowercase hex-строку (64 символа)
// Алгоритм зафиксирован: хеши должны совпадать побитово с теми,
// что записаны предыдущими версиями хранилища
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword проверяет, соответствует ли пароль сохраненному хешу
// Просто сравнивает два детерминированных SHA-256 хеша
func VerifyPassword(password, passwordHash string) bool {
	return HashPassword(password) == passwordHash
}
