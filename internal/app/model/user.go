package model

import (
	"time"
)

// User is an admin-panel account. Plain authenticated users without the
// staff flag get no admin access.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `json:"name"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	IsSuperuser  bool      `gorm:"default:false" json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// CanAccessAdmin reports whether the account may enter the admin panel.
func (u *User) CanAccessAdmin() bool {
	return u.IsStaff || u.IsSuperuser
}
