package services

import (
	"time"

	"github.com/thereayou/forum-lite/internal/models"
)

// Store описывает слой персистентности, который используют хендлеры и middleware.
// Реализуется *database.Database, в тестах подменяется моками.
type Store interface {
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error
	GetUser(id string) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)

	CreateSession(session *models.Session) error
	FindSessionByToken(token string) (*models.Session, error)
	RenewSession(token string, expiresAt time.Time) (*models.Session, error)
	DeleteSession(token string) error

	CreatePost(post *models.Post) error
	GetPost(id string) (*models.Post, error)
	GetPostWithReplies(id string) (*models.Post, error)
	GetPosts() ([]models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id string) error

	CreateReply(reply *models.PostReply) error
}
