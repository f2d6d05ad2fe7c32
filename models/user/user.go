package user

import (
	"time"

	"logistics-requests/constants"
)

// User is an employee or manager account.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string `gorm:"type:varchar(36);not null;unique" json:"uuid"`
	Username     string `gorm:"type:varchar(255);not null;unique" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:employee" json:"role"`
	FirstName    string `gorm:"type:varchar(255)" json:"first_name"`
	LastName     string `gorm:"type:varchar(255)" json:"last_name"`
	Position     string `gorm:"type:varchar(255)" json:"position"`
	Age          *int   `gorm:"type:int" json:"age,omitempty"`
	Phone        string `gorm:"type:varchar(20);index" json:"phone"`
	IsActive     bool   `gorm:"type:bool;not null;default:true" json:"is_active"`

	// IsSystem marks the placeholder owner of unmatched public requests; it cannot log in.
	IsSystem bool `gorm:"type:bool;not null;default:false" json:"is_system"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsManager() bool {
	return u.Role == constants.RoleManager
}

// CanLogin is false for deactivated and system accounts.
func (u *User) CanLogin() bool {
	return u.IsActive && !u.IsSystem
}

func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
