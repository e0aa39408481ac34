package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	UUID      uuid.UUID `gorm:"type:uuid;primaryKey;column:uuid" json:"uuid"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    *string   `json:"avatar"`
	CanPost   bool      `gorm:"not null;default:false" json:"canPost"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Связи
	Posts    []Post      `gorm:"foreignKey:PosterID;references:UUID" json:"-"`
	Replies  []PostReply `gorm:"foreignKey:PosterID;references:UUID" json:"-"`
	Sessions []Session   `gorm:"foreignKey:UserID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == uuid.Nil {
		u.UUID = uuid.New()
	}
	return nil
}
