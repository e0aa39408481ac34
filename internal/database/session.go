package database

import (
	"time"

	"github.com/thereayou/forum-lite/internal/models"
)

func (d *Database) CreateSession(session *models.Session) error {
	return d.db.Create(session).Error
}

func (d *Database) FindSessionByToken(token string) (*models.Session, error) {
	session := models.Session{}
	if err := d.db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// RenewSession сдвигает срок жизни сессии и возвращает обновлённую запись.
func (d *Database) RenewSession(token string, expiresAt time.Time) (*models.Session, error) {
	session := models.Session{}
	if err := d.db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}

	session.ExpiresAt = expiresAt
	if err := d.db.Save(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

func (d *Database) DeleteSession(token string) error {
	return d.db.Delete(&models.Session{}, "token = ?", token).Error
}
