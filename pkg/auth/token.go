package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// NewSessionToken генерирует непрозрачный bearer-токен сессии.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
