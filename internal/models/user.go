// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	FullName     string     `json:"full_name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Phone        string     `json:"phone" gorm:"size:20"`
	UserType     UserType   `json:"user_type" gorm:"type:varchar(20);not null;default:'customer'"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	AvatarURL    string     `json:"avatar_url" gorm:"size:512"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	// Relationships
	Vehicles  []Vehicle  `json:"vehicles,omitempty" gorm:"foreignKey:OwnerID"`
	Addresses []Address  `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
	CartItems []CartItem `json:"cart_items,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
