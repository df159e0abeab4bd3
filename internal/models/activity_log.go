package models

import "time"

// ActivityLog — журнал действий пользователей (регистрация, вход, отзывы).
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Entity  string `gorm:"size:50;not null" json:"entity"` // "user", "review"
	Action  string `gorm:"size:50;not null" json:"action"` // "register", "login", "logout", "create"
	Details string `gorm:"type:text" json:"details"`
}
