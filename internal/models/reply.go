package models

import (
	"time"

	"github.com/google/uuid"
)

// PostReply не редактируется после создания, отдельных ручек для этого нет.
type PostReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	PosterID  uuid.UUID `gorm:"type:uuid;not null;index" json:"posterId"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`

	Poster User `gorm:"foreignKey:PosterID;references:UUID" json:"-"`
	Post   Post `gorm:"foreignKey:PostID;references:UUID" json:"-"`
}
