package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	UUID      uuid.UUID `gorm:"type:uuid;primaryKey;column:uuid" json:"uuid"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	Thumbnail *string   `json:"thumbnail"`
	PosterID  uuid.UUID `gorm:"type:uuid;not null;index" json:"posterId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Связи
	Poster  User        `gorm:"foreignKey:PosterID;references:UUID" json:"-"`
	Replies []PostReply `gorm:"foreignKey:PostID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	return nil
}
