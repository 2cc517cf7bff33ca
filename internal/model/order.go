package model

import "time"

// Order belongs to one buyer and one product. Address and pincode are
// snapshots taken at purchase time. Products with orders cannot be deleted
// (RESTRICT), so order history keeps its referential integrity.
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BuyerID   uint      `json:"buyer_id" gorm:"index;not null"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Quantity  float64   `json:"quantity" gorm:"not null"`
	Address   string    `json:"address" gorm:"type:text;not null"`
	Pincode   string    `json:"pincode" gorm:"type:varchar(10);not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	OrderDate time.Time `json:"order_date" gorm:"autoCreateTime"`

	Buyer   Buyer   `json:"-" gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	Product Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

func (Order) TableName() string { return "orders" }
