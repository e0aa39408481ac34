package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thereayou/forum-lite/internal/handlers/dto"
	"github.com/thereayou/forum-lite/internal/middleware"
	"github.com/thereayou/forum-lite/internal/models"
	"github.com/thereayou/forum-lite/internal/services"
)

type PostHandler struct {
	store services.Store
}

func NewPostHandler(store services.Store) *PostHandler {
	return &PostHandler{store: store}
}

// ListPosts возвращает список постов с краткой информацией об авторах
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.store.GetPosts()
	if err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	result := make([]gin.H, len(posts))
	for i, post := range posts {
		result[i] = gin.H{
			"uuid":  post.UUID,
			"title": post.Title,
			"poster": gin.H{
				"uuid":      post.Poster.UUID,
				"firstName": post.Poster.FirstName,
				"lastName":  post.Poster.LastName,
				"username":  post.Poster.Username,
				"avatar":    post.Poster.Avatar,
			},
		}
	}

	okData(c, "Successfully retrieved posts.", result)
}

// CreatePost создаёт пост, доступно только пользователям с canPost
func (h *PostHandler) CreatePost(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	if !user.CanPost {
		fail(c, http.StatusForbidden, "You do not have permission to create posts.")
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgNoBody)
		return
	}

	if req.Title == "" || req.Content == "" {
		fail(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		Thumbnail: optional(req.Thumbnail),
		PosterID:  user.UUID,
	}

	if err := h.store.CreatePost(post); err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	okData(c, "Successfully created post.", post)
}

// GetPost возвращает пост вместе с автором и ответами
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.store.GetPostWithReplies(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusBadRequest, msgPostNotFound)
			return
		}
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	replies := make([]gin.H, len(post.Replies))
	for i, reply := range post.Replies {
		replies[i] = gin.H{
			"poster":  formatPoster(&reply.Poster),
			"content": reply.Content,
		}
	}

	okData(c, "Successfully retrieved post.", gin.H{
		"uuid":    post.UUID,
		"title":   post.Title,
		"content": post.Content,
		"poster":  formatPoster(&post.Poster),
		"replies": replies,
	})
}

// CreateReply добавляет ответ к существующему посту
func (h *PostHandler) CreateReply(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgNoBody)
		return
	}

	if req.Content == "" {
		fail(c, http.StatusBadRequest, "One or more required fields from the request body were missing.")
		return
	}

	post, err := h.store.GetPost(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusBadRequest, msgPostNotFound)
			return
		}
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	reply := &models.PostReply{
		Content:  req.Content,
		PosterID: user.UUID,
		PostID:   post.UUID,
	}

	if err := h.store.CreateReply(reply); err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	ok(c, "Successfully posted reply.")
}

// UpdatePost частично обновляет пост, непереданные поля остаются прежними
func (h *PostHandler) UpdatePost(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	if !user.CanPost {
		fail(c, http.StatusUnauthorized, "You do not have permission to edit posts.")
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgNoBody)
		return
	}

	post, err := h.store.GetPost(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusBadRequest, msgPostNotFound)
			return
		}
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	if post.PosterID != user.UUID {
		fail(c, http.StatusForbidden, "You do not have permission to edit this post.")
		return
	}

	if req.Title == nil && req.Content == nil && req.Thumbnail == nil {
		fail(c, http.StatusBadRequest, "No fields to update were provided.")
		return
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Thumbnail != nil {
		post.Thumbnail = req.Thumbnail
	}

	if err := h.store.UpdatePost(post); err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	okData(c, "Successfully updated post.", post)
}

// DeletePost удаляет пост, доступно только автору
func (h *PostHandler) DeletePost(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	post, err := h.store.GetPost(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusBadRequest, msgPostNotFound)
			return
		}
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	if post.PosterID != user.UUID {
		fail(c, http.StatusForbidden, "You do not have permission to delete other users' posts.")
		return
	}

	if err := h.store.DeletePost(post.UUID.String()); err != nil {
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	ok(c, "Successfully deleted post.")
}

func formatPoster(user *models.User) gin.H {
	return gin.H{
		"avatar":    user.Avatar,
		"username":  user.Username,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
	}
}
