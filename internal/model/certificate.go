package model

// ApprovedCertificate is a Jaivik Bharat certificate number pre-approved by
// an admin. Sellers can only register against a certificate listed here.
type ApprovedCertificate struct {
	CertNumber string `json:"cert_number" gorm:"primaryKey;type:varchar(100)"`
	Used       int    `json:"used" gorm:"default:0"`
}

func (ApprovedCertificate) TableName() string { return "approved_jaivik" }
