package model

import "time"

// Feedback is a buyer review of a purchased product. The purchase
// restriction is enforced by the buyer workflow, not by the schema.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BuyerID   uint      `json:"buyer_id" gorm:"index;not null"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Rating    int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment" gorm:"type:text"`
	Date      time.Time `json:"date" gorm:"autoCreateTime"`

	Buyer   Buyer   `json:"-" gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	Product Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

func (Feedback) TableName() string { return "feedback" }
