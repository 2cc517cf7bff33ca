package model

import "time"

// WishlistEntry is a unique (buyer, product) pair. Purchasing from the
// wishlist does not remove the entry.
type WishlistEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BuyerID   uint      `json:"buyer_id" gorm:"not null;uniqueIndex:idx_wishlist_buyer_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_wishlist_buyer_product"`
	DateAdded time.Time `json:"date_added" gorm:"autoCreateTime"`

	Buyer   Buyer   `json:"-" gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	Product Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (WishlistEntry) TableName() string { return "wishlist" }
