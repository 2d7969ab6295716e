package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'User' is the stable (id, name) identity the session layer stamps into
 * room documents. Guests get a random uuid; Telegram logins reuse the
 * Telegram numeric id as an external reference.
 */
type User struct {
	Id         string `gorm:"primaryKey;size:64;not null"`
	Name       string `gorm:"size:100;not null"`
	TelegramId int64  `gorm:"index:idx_users_telegram"`
	CreatedAt  time.Time
}

// Guests arrive without an id; mint one before the insert
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	return nil
}
