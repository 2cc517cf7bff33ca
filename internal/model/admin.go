package model

// AdminUser represents an admin account. A default account is seeded at
// first initialization.
type AdminUser struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
}

func (AdminUser) TableName() string { return "admin_users" }
