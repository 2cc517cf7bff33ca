package service

import (
	"errors"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sreeharigs/organicproduct/internal/lifecycle"
	"github.com/sreeharigs/organicproduct/internal/model"
)

// BuyerService covers the buyer workflows: browsing, purchasing, orders,
// feedback and the wishlist. Buyers only ever see products that are both
// available and Approved.
type BuyerService struct {
	db *gorm.DB
}

func NewBuyerService(db *gorm.DB) *BuyerService {
	return &BuyerService{db: db}
}

const listingSelect = `products.id, products.name, products.price, products.category,
	sellers.username AS seller, products.jaivik_id, products.quantity AS stock, products.unit`

func (s *BuyerService) visibleProducts() *gorm.DB {
	return s.db.Model(&model.Product{}).
		Select(listingSelect).
		Joins("JOIN sellers ON products.seller_id = sellers.id").
		Where("products.available = ? AND products.status = ?", true, lifecycle.StatusApproved)
}

// BrowseProducts lists all approved, available products.
func (s *BuyerService) BrowseProducts() ([]ProductListing, error) {
	var listings []ProductListing
	if err := s.visibleProducts().Order("products.id").Scan(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// BrowseByCategory lists visible products in one category.
func (s *BuyerService) BrowseByCategory(category string) ([]ProductListing, error) {
	var listings []ProductListing
	if err := s.visibleProducts().
		Where("products.category = ?", category).
		Order("products.name").
		Scan(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// SearchProducts matches the keyword against product name and category,
// case-insensitively.
func (s *BuyerService) SearchProducts(keyword string) ([]ProductListing, error) {
	pattern := "%" + keyword + "%"
	var listings []ProductListing
	if err := s.visibleProducts().
		Where("products.name ILIKE ? OR products.category ILIKE ?", pattern, pattern).
		Order("products.name").
		Scan(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// Quote returns the purchasable state of a product, or
// ErrProductUnavailable when it is missing, disabled or not approved.
func (s *BuyerService) Quote(productID uint) (*PurchaseQuote, error) {
	var product model.Product
	err := s.db.
		Where("id = ? AND available = ? AND status = ?", productID, true, lifecycle.StatusApproved).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductUnavailable
		}
		return nil, err
	}
	return &PurchaseQuote{
		ProductID: product.ID,
		Name:      product.Name,
		Unit:      product.Unit,
		Price:     product.Price,
		Stock:     product.Quantity,
	}, nil
}

// Purchase places an order: it re-checks visibility and stock, optionally
// persists the delivery address back to the buyer, inserts the order and
// decrements stock with a guarded update, all in one transaction. Any
// failure rolls the whole sequence back.
func (s *BuyerService) Purchase(buyerID, productID uint, qty float64, address, pincode string, saveAddress bool) (*PurchaseReceipt, error) {
	if qty <= 0 {
		return nil, ErrInsufficientStock
	}

	var receipt *PurchaseReceipt
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		err := tx.
			Where("id = ? AND available = ? AND status = ?", productID, true, lifecycle.StatusApproved).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductUnavailable
			}
			return err
		}
		if product.Quantity < qty {
			return ErrInsufficientStock
		}

		if saveAddress {
			if err := tx.Model(&model.Buyer{}).Where("id = ?", buyerID).
				Updates(map[string]interface{}{"address": address, "pincode": pincode}).Error; err != nil {
				return err
			}
		}

		order := model.Order{
			BuyerID:   buyerID,
			ProductID: productID,
			Quantity:  qty,
			Address:   address,
			Pincode:   pincode,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Guarded decrement: refuses to go below zero even if stock moved
		// since the read above.
		res := tx.Model(&model.Product{}).
			Where("id = ? AND quantity >= ?", productID, qty).
			Update("quantity", gorm.Expr("quantity - ?", qty))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		receipt = &PurchaseReceipt{
			OrderID:  order.ID,
			Name:     product.Name,
			Quantity: qty,
			Unit:     product.Unit,
			Total:    OrderTotal(qty, product.Price),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("Order placed",
		zap.Uint("order_id", receipt.OrderID),
		zap.Uint("buyer_id", buyerID),
		zap.Uint("product_id", productID),
		zap.Float64("quantity", qty))
	return receipt, nil
}

// OrderTotal computes quantity × price rounded to two decimal places.
func OrderTotal(qty, price float64) float64 {
	return math.Round(qty*price*100) / 100
}

// Orders lists the buyer's order history, newest first.
func (s *BuyerService) Orders(buyerID uint) ([]BuyerOrder, error) {
	var orders []BuyerOrder
	err := s.db.Model(&model.Order{}).
		Select(`orders.id, products.name AS product, orders.quantity, products.unit,
			orders.address, sellers.username AS seller, orders.status, orders.order_date,
			(orders.quantity * products.price) AS total`).
		Joins("JOIN products ON orders.product_id = products.id").
		Joins("JOIN sellers ON products.seller_id = sellers.id").
		Where("orders.buyer_id = ?", buyerID).
		Order("orders.order_date DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// PurchasedProducts lists the distinct products the buyer has ordered.
func (s *BuyerService) PurchasedProducts(buyerID uint) ([]PurchasedProduct, error) {
	var purchased []PurchasedProduct
	err := s.db.Model(&model.Order{}).
		Select("DISTINCT products.id, products.name").
		Joins("JOIN products ON orders.product_id = products.id").
		Where("orders.buyer_id = ?", buyerID).
		Order("products.name").
		Scan(&purchased).Error
	if err != nil {
		return nil, err
	}
	return purchased, nil
}

// AddFeedback records a review. Only buyers with at least one order for
// the product may review it; multiple reviews per pair are allowed.
func (s *BuyerService) AddFeedback(buyerID, productID uint, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	var count int64
	if err := s.db.Model(&model.Order{}).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotPurchased
	}

	feedback := model.Feedback{
		BuyerID:   buyerID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return err
	}

	zap.L().Info("Feedback submitted",
		zap.Uint("buyer_id", buyerID),
		zap.Uint("product_id", productID),
		zap.Int("rating", rating))
	return nil
}

// Wishlist lists the buyer's wishlist, most recently added first.
func (s *BuyerService) Wishlist(buyerID uint) ([]WishlistItem, error) {
	var items []WishlistItem
	err := s.db.Model(&model.WishlistEntry{}).
		Select(`products.id AS product_id, products.name, products.price, products.category,
			sellers.username AS seller, products.quantity AS stock, products.unit`).
		Joins("JOIN products ON wishlist.product_id = products.id").
		Joins("JOIN sellers ON products.seller_id = sellers.id").
		Where("wishlist.buyer_id = ?", buyerID).
		Order("wishlist.date_added DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWishlist saves a visible product into the wishlist. Duplicate pairs
// are rejected with no side effect. Returns the product name for display.
func (s *BuyerService) AddToWishlist(buyerID, productID uint) (string, error) {
	var product model.Product
	err := s.db.
		Where("id = ? AND available = ? AND status = ?", productID, true, lifecycle.StatusApproved).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrProductUnavailable
		}
		return "", err
	}

	var count int64
	if err := s.db.Model(&model.WishlistEntry{}).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrAlreadyWishlisted
	}

	entry := model.WishlistEntry{BuyerID: buyerID, ProductID: productID}
	if err := s.db.Create(&entry).Error; err != nil {
		return "", err
	}
	return product.Name, nil
}

// InWishlist reports whether the pair exists; the buy-from-wishlist path
// requires it.
func (s *BuyerService) InWishlist(buyerID, productID uint) (bool, error) {
	var count int64
	err := s.db.Model(&model.WishlistEntry{}).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Count(&count).Error
	return count > 0, err
}

// RemoveFromWishlist deletes the pair; an absent pair reports
// ErrNotWishlisted.
func (s *BuyerService) RemoveFromWishlist(buyerID, productID uint) error {
	res := s.db.
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Delete(&model.WishlistEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotWishlisted
	}
	return nil
}
