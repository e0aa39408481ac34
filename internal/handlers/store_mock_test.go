package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thereayou/forum-lite/internal/handlers"
	"github.com/thereayou/forum-lite/internal/middleware"
	"github.com/thereayou/forum-lite/internal/models"
	"github.com/thereayou/forum-lite/internal/server"
	"github.com/thereayou/forum-lite/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockStore struct {
	createUserFn         func(user *models.User) error
	updateUserFn         func(user *models.User) error
	getUserFn            func(id string) (*models.User, error)
	findUserByUsernameFn func(username string) (*models.User, error)

	createSessionFn      func(session *models.Session) error
	findSessionByTokenFn func(token string) (*models.Session, error)
	renewSessionFn       func(token string, expiresAt time.Time) (*models.Session, error)
	deleteSessionFn      func(token string) error

	createPostFn         func(post *models.Post) error
	getPostFn            func(id string) (*models.Post, error)
	getPostWithRepliesFn func(id string) (*models.Post, error)
	getPostsFn           func() ([]models.Post, error)
	updatePostFn         func(post *models.Post) error
	deletePostFn         func(id string) error

	createReplyFn func(reply *models.PostReply) error
}

func (m *mockStore) CreateUser(user *models.User) error {
	if m.createUserFn != nil {
		return m.createUserFn(user)
	}
	return nil
}

func (m *mockStore) UpdateUser(user *models.User) error {
	if m.updateUserFn != nil {
		return m.updateUserFn(user)
	}
	return nil
}

func (m *mockStore) GetUser(id string) (*models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) FindUserByUsername(username string) (*models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) CreateSession(session *models.Session) error {
	if m.createSessionFn != nil {
		return m.createSessionFn(session)
	}
	return nil
}

func (m *mockStore) FindSessionByToken(token string) (*models.Session, error) {
	if m.findSessionByTokenFn != nil {
		return m.findSessionByTokenFn(token)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) RenewSession(token string, expiresAt time.Time) (*models.Session, error) {
	if m.renewSessionFn != nil {
		return m.renewSessionFn(token, expiresAt)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) DeleteSession(token string) error {
	if m.deleteSessionFn != nil {
		return m.deleteSessionFn(token)
	}
	return nil
}

func (m *mockStore) CreatePost(post *models.Post) error {
	if m.createPostFn != nil {
		return m.createPostFn(post)
	}
	return nil
}

func (m *mockStore) GetPost(id string) (*models.Post, error) {
	if m.getPostFn != nil {
		return m.getPostFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) GetPostWithReplies(id string) (*models.Post, error) {
	if m.getPostWithRepliesFn != nil {
		return m.getPostWithRepliesFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) GetPosts() ([]models.Post, error) {
	if m.getPostsFn != nil {
		return m.getPostsFn()
	}
	return []models.Post{}, nil
}

func (m *mockStore) UpdatePost(post *models.Post) error {
	if m.updatePostFn != nil {
		return m.updatePostFn(post)
	}
	return nil
}

func (m *mockStore) DeletePost(id string) error {
	if m.deletePostFn != nil {
		return m.deletePostFn(id)
	}
	return nil
}

func (m *mockStore) CreateReply(reply *models.PostReply) error {
	if m.createReplyFn != nil {
		return m.createReplyFn(reply)
	}
	return nil
}

// newTestRouter собирает полный роутер поверх мокового стора, без Redis.
func newTestRouter(store services.Store) *gin.Engine {
	r := gin.New()
	server.APIEndpoints(r, store, nil, handlers.NewAuthHandler(store), handlers.NewPostHandler(store))
	return r
}

// withSession дополняет стор валидной сессией пользователя.
func withSession(store *mockStore, user *models.User, token string) *mockStore {
	store.findSessionByTokenFn = func(t string) (*models.Session, error) {
		if t != token {
			return nil, gorm.ErrRecordNotFound
		}
		return &models.Session{ID: 1, UserID: user.UUID, Token: token, ExpiresAt: time.Now().Add(time.Hour)}, nil
	}
	store.getUserFn = func(id string) (*models.User, error) {
		if id != user.UUID.String() {
			return nil, gorm.ErrRecordNotFound
		}
		return user, nil
	}
	store.renewSessionFn = func(t string, expiresAt time.Time) (*models.Session, error) {
		return &models.Session{ID: 1, UserID: user.UUID, Token: t, ExpiresAt: expiresAt}, nil
	}
	return store
}

func testUser(canPost bool) *models.User {
	return &models.User{
		UUID:     uuid.New(),
		Username: "alice",
		CanPost:  canPost,
	}
}

type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

type listEnvelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    []map[string]any `json:"data"`
}

func request(r *gin.Engine, method, path, body, cookie string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
