package entities

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:20" json:"phone,omitempty"`
	PasswordHash string `gorm:"size:200;not null" json:"-"`

	CreatedAt time.Time `json:"-"`
}
