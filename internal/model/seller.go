package model

import "time"

// Seller represents a registered seller account. The Jaivik certificate is
// unique per seller and must reference a pre-approved certificate.
type Seller struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Username   string `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	Password   string `json:"-" gorm:"type:varchar(255);not null"`
	JaivikCert string `json:"jaivik_cert" gorm:"type:varchar(100);uniqueIndex;not null"`

	// Reset columns exist in the schema but no seller reset flow writes
	// them; sellers have no email address to deliver a token to.
	ResetToken       *string    `json:"-" gorm:"type:text"`
	ResetTokenExpiry *time.Time `json:"-"`

	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`

	Certificate ApprovedCertificate `json:"-" gorm:"foreignKey:JaivikCert;references:CertNumber"`
}

func (Seller) TableName() string { return "sellers" }
