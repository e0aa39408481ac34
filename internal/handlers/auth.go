package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thereayou/forum-lite/internal/handlers/dto"
	"github.com/thereayou/forum-lite/internal/middleware"
	"github.com/thereayou/forum-lite/internal/models"
	"github.com/thereayou/forum-lite/internal/services"
	"github.com/thereayou/forum-lite/pkg/auth"
)

var (
	validUsernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	validNameRegex     = regexp.MustCompile(`^[a-zA-Z 0-9]+$`)
)

type AuthHandler struct {
	store services.Store
}

func NewAuthHandler(store services.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// Register создаёт нового пользователя
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgNoBody)
		return
	}

	if req.Username == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	// Имя и фамилия — только вместе
	if (req.FirstName != "") != (req.LastName != "") {
		fail(c, http.StatusBadRequest, "You must provide both a first and a last name.")
		return
	}

	if len(req.Username) > 16 {
		fail(c, http.StatusBadRequest, "Usernames cannot exceed 16 characters in length.")
		return
	}

	if len(req.Username) < 3 {
		fail(c, http.StatusBadRequest, "Username must be at least 3 characters in length.")
		return
	}

	if !validUsernameRegex.MatchString(req.Username) {
		fail(c, http.StatusBadRequest, "Usernames must be alphanumeric.")
		return
	}

	if req.FirstName != "" {
		if len(req.FirstName) > 50 {
			fail(c, http.StatusBadRequest, "First names cannot exceed 50 characters in length.")
			return
		}
		if !validNameRegex.MatchString(req.FirstName) {
			fail(c, http.StatusBadRequest, "First names must be alphanumeric.")
			return
		}
	}

	if req.LastName != "" {
		if len(req.LastName) > 50 {
			fail(c, http.StatusBadRequest, "Last names cannot exceed 50 characters in length.")
			return
		}
		if !validNameRegex.MatchString(req.LastName) {
			fail(c, http.StatusBadRequest, "Last names must be alphanumeric.")
			return
		}
	}

	if len(req.Password) < 8 {
		fail(c, http.StatusBadRequest, "Password must be at least 8 characters in length.")
		return
	}

	if len(req.Password) > 250 {
		fail(c, http.StatusBadRequest, "Password cannot exceed 250 characters in length.")
		return
	}

	_, err := h.store.FindUserByUsername(req.Username)
	if err == nil {
		fail(c, http.StatusBadRequest, "A user with that username already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	user := &models.User{
		Username:  req.Username,
		Password:  hash,
		FirstName: optional(req.FirstName),
		LastName:  optional(req.LastName),
	}

	if err := h.store.CreateUser(user); err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	ok(c, "Successfully registered.")
}

// Login проверяет пароль и выдаёт сессионную куку на сутки
func (h *AuthHandler) Login(c *gin.Context) {
	// Optional-гард уже отработал: повторный логин под сессией запрещён
	if _, authed := c.Get(middleware.UserKey); authed {
		fail(c, http.StatusBadRequest, "You are already logged in.")
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgNoBody)
		return
	}

	if req.Username == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	user, err := h.store.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusBadRequest, "Invalid username or password.")
			return
		}
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	matches, err := auth.VerifyPassword(user.Password, req.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}
	if !matches {
		fail(c, http.StatusBadRequest, "Invalid username or password.")
		return
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	session := &models.Session{
		UserID:    user.UUID,
		Token:     token,
		ExpiresAt: time.Now().Add(middleware.SessionTTL),
	}

	if err := h.store.CreateSession(session); err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	middleware.SetSessionCookie(c, session.Token, session.ExpiresAt)

	ok(c, "Successfully logged in.")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
