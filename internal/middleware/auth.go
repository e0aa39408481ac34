package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thereayou/forum-lite/internal/services"
)

const (
	UserKey    = "user"
	SessionKey = "session"

	SessionCookie = "session"
	SessionTTL    = 24 * time.Hour
)

// User пропускает запрос только с валидной сессионной кукой.
// Каждая успешная проверка продлевает сессию ещё на сутки и переустанавливает куку.
func User(store services.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			abortUnauthenticated(c)
			return
		}

		session, err := store.FindSessionByToken(token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthenticated(c)
			} else {
				abortServerError(c)
			}
			return
		}

		// Просроченные сессии удаляются лениво, при первом обращении
		if time.Now().After(session.ExpiresAt) {
			store.DeleteSession(token)
			abortUnauthenticated(c)
			return
		}

		user, err := store.GetUser(session.UserID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Сессия не должна переживать своего пользователя.
				// Сбой стора — не повод её удалять.
				store.DeleteSession(token)
				abortUnauthenticated(c)
			} else {
				abortServerError(c)
			}
			return
		}

		renewed, err := store.RenewSession(token, time.Now().Add(SessionTTL))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthenticated(c)
			} else {
				abortServerError(c)
			}
			return
		}

		SetSessionCookie(c, renewed.Token, renewed.ExpiresAt)

		c.Set(UserKey, user)
		c.Set(SessionKey, renewed)
		c.Next()
	}
}

// Optional делает тот же обход, что и User, но при отсутствии или невалидности
// сессии не обрывает запрос, а вызывает хендлер без идентичности.
// Сбой самого стора и здесь отдаёт 500.
func Optional(store services.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		session, err := store.FindSessionByToken(token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Next()
			} else {
				abortServerError(c)
			}
			return
		}

		if time.Now().After(session.ExpiresAt) {
			store.DeleteSession(token)
			c.Next()
			return
		}

		user, err := store.GetUser(session.UserID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				store.DeleteSession(token)
				c.Next()
			} else {
				abortServerError(c)
			}
			return
		}

		renewed, err := store.RenewSession(token, time.Now().Add(SessionTTL))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Next()
			} else {
				abortServerError(c)
			}
			return
		}

		SetSessionCookie(c, renewed.Token, renewed.ExpiresAt)

		c.Set(UserKey, user)
		c.Set(SessionKey, renewed)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "You must be logged in to perform this action.",
	})
}

func abortServerError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "A server error has occurred.",
	})
}

// SetSessionCookie выставляет сессионную куку, срок совпадает с ExpiresAt сессии.
func SetSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
