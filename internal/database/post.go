package database

import (
	"github.com/thereayou/forum-lite/internal/models"
)

func (d *Database) CreatePost(post *models.Post) error {
	return d.db.Create(post).Error
}

func (d *Database) GetPost(id string) (*models.Post, error) {
	post := models.Post{}
	if err := d.db.First(&post, "uuid = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostWithReplies загружает пост вместе с автором и ответами для страницы поста.
func (d *Database) GetPostWithReplies(id string) (*models.Post, error) {
	post := models.Post{}
	err := d.db.
		Preload("Poster").
		Preload("Replies.Poster").
		First(&post, "uuid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (d *Database) GetPosts() ([]models.Post, error) {
	var posts []models.Post

	err := d.db.
		Order("created_at DESC").
		Preload("Poster").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (d *Database) UpdatePost(post *models.Post) error {
	return d.db.Save(post).Error
}

func (d *Database) DeletePost(id string) error {
	return d.db.Delete(&models.Post{}, "uuid = ?", id).Error
}

func (d *Database) CreateReply(reply *models.PostReply) error {
	return d.db.Create(reply).Error
}
