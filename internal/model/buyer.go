package model

import "time"

// Buyer represents a registered buyer account
type Buyer struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Username         string     `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	Email            string     `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Mobile           string     `json:"mobile" gorm:"type:varchar(20);not null"`
	Password         string     `json:"-" gorm:"type:varchar(255);not null"`
	Address          string     `json:"address" gorm:"type:text"`
	Pincode          string     `json:"pincode" gorm:"type:varchar(10)"`
	ResetToken       *string    `json:"-" gorm:"type:text"`
	ResetTokenExpiry *time.Time `json:"-"`
}

func (Buyer) TableName() string { return "buyers" }
