package model

import "time"

// Product is a seller-owned listing. JaivikID is a snapshot of the seller's
// certificate taken at creation time; it is not updated if the seller's
// certificate changes later. Status gates buyer visibility and is reset to
// Pending on every edit.
type Product struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	SellerID        uint      `json:"seller_id" gorm:"index;not null"`
	Name            string    `json:"name" gorm:"type:varchar(255);not null"`
	Category        string    `json:"category" gorm:"type:varchar(50)"`
	Price           float64   `json:"price" gorm:"check:price >= 0"`
	Quantity        float64   `json:"quantity" gorm:"check:quantity >= 0"`
	Unit            string    `json:"unit" gorm:"type:varchar(20);default:'pcs'"`
	Available       bool      `json:"available" gorm:"default:true"`
	JaivikID        string    `json:"jaivik_id" gorm:"type:varchar(100)"`
	Status          string    `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	Discount        float64   `json:"discount" gorm:"default:0"`
	ManufactureDate time.Time `json:"manufacture_date" gorm:"type:date"`
	ExpiryDate      time.Time `json:"expiry_date" gorm:"type:date"`
	LongLife        bool      `json:"long_life" gorm:"default:false"`

	Seller Seller `json:"-" gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string { return "products" }
