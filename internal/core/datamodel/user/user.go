package user

import "time"

type User struct {
	ID           string     `gorm:"primaryKey;size:36"`
	Username     string     `gorm:"column:username;uniqueIndex;size:50;not null"`
	Email        string     `gorm:"column:email;uniqueIndex;size:100;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         string     `gorm:"column:role;size:20;not null;default:user"`
	Department   string     `gorm:"column:department;size:100"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}
