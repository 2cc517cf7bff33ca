package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sreeharigs/organicproduct/internal/lifecycle"
	"github.com/sreeharigs/organicproduct/internal/model"
)

// SellerService covers the seller workflows: product CRUD through the
// lifecycle engine, order fulfillment, reviews and analytics. Every query
// is scoped to the authenticated seller's rows.
type SellerService struct {
	db *gorm.DB
}

func NewSellerService(db *gorm.DB) *SellerService {
	return &SellerService{db: db}
}

// NewProduct is the creation input for AddProduct. The manufacture date is
// always "now"; it is not part of the input.
type NewProduct struct {
	Name       string
	Category   lifecycle.Category
	Price      float64
	Unit       string
	Quantity   float64
	Discount   float64
	LongLife   bool
	ExpiryDate time.Time
}

// AddProduct validates the lifecycle creation contract and inserts the
// product with status Pending. The seller's certificate is snapshotted
// into the product row.
func (s *SellerService) AddProduct(sellerID uint, jaivikCert string, input NewProduct) (*model.Product, error) {
	manufacture := today()

	longLife := input.LongLife && input.Category == lifecycle.CategoryFood
	if err := lifecycle.ValidateExpiry(manufacture, input.ExpiryDate, input.Category, longLife); err != nil {
		return nil, err
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := model.Product{
		SellerID:        sellerID,
		Name:            input.Name,
		Category:        string(input.Category),
		Price:           input.Price,
		Quantity:        input.Quantity,
		Unit:            unit,
		Available:       true,
		JaivikID:        jaivikCert,
		Status:          lifecycle.StatusPending,
		Discount:        input.Discount,
		ManufactureDate: manufacture,
		ExpiryDate:      input.ExpiryDate,
		LongLife:        longLife,
	}
	if err := s.db.Create(&product).Error; err != nil {
		zap.L().Error("Failed to add product",
			zap.Uint("seller_id", sellerID),
			zap.String("name", input.Name),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("Product added",
		zap.Uint("product_id", product.ID),
		zap.Uint("seller_id", sellerID),
		zap.String("category", product.Category))
	return &product, nil
}

// GetProduct loads one of the seller's products by ID.
func (s *SellerService) GetProduct(sellerID, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.db.Where("id = ? AND seller_id = ?", productID, sellerID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// EditProduct applies a partial edit through the lifecycle engine and
// saves the result. Any successful edit leaves the product Pending.
func (s *SellerService) EditProduct(sellerID, productID uint, edit lifecycle.ProductEdit) (*model.Product, error) {
	product, err := s.GetProduct(sellerID, productID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.ApplyEdit(product, edit); err != nil {
		return nil, err
	}

	if err := s.db.Save(product).Error; err != nil {
		zap.L().Error("Failed to update product",
			zap.Uint("product_id", productID),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("Product updated, status reset to Pending",
		zap.Uint("product_id", productID),
		zap.Uint("seller_id", sellerID))
	return product, nil
}

// DeleteProduct removes one of the seller's products. The RESTRICT
// constraint on orders vetoes deletion of products with order history.
func (s *SellerService) DeleteProduct(sellerID, productID uint) error {
	res := s.db.Where("id = ? AND seller_id = ?", productID, sellerID).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	zap.L().Info("Product deleted", zap.Uint("product_id", productID), zap.Uint("seller_id", sellerID))
	return nil
}

// ToggleAvailability flips the availability flag and returns the new
// value. Availability is orthogonal to moderation status.
func (s *SellerService) ToggleAvailability(sellerID, productID uint) (bool, error) {
	product, err := s.GetProduct(sellerID, productID)
	if err != nil {
		return false, err
	}
	next := !product.Available
	if err := s.db.Model(product).Update("available", next).Error; err != nil {
		return false, err
	}
	return next, nil
}

// MyProducts lists everything the seller has added, regardless of status.
func (s *SellerService) MyProducts(sellerID uint) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.Where("seller_id = ?", sellerID).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Orders lists orders against the seller's products, newest first.
func (s *SellerService) Orders(sellerID uint) ([]SellerOrder, error) {
	var orders []SellerOrder
	err := s.db.Model(&model.Order{}).
		Select(`orders.id, buyers.username AS buyer, products.name AS product,
			orders.quantity, products.unit, orders.address, orders.status, orders.order_date`).
		Joins("JOIN products ON orders.product_id = products.id").
		Joins("JOIN buyers ON orders.buyer_id = buyers.id").
		Where("products.seller_id = ?", sellerID).
		Order("orders.order_date DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkDelivered transitions one of the seller's orders to Delivered.
func (s *SellerService) MarkDelivered(sellerID, orderID uint) error {
	var count int64
	err := s.db.Model(&model.Order{}).
		Joins("JOIN products ON orders.product_id = products.id").
		Where("orders.id = ? AND products.seller_id = ?", orderID, sellerID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}

	if err := s.db.Model(&model.Order{}).Where("id = ?", orderID).
		Update("status", "Delivered").Error; err != nil {
		return err
	}
	zap.L().Info("Order marked delivered", zap.Uint("order_id", orderID), zap.Uint("seller_id", sellerID))
	return nil
}

// ReviewSummaries aggregates feedback per product for the seller.
func (s *SellerService) ReviewSummaries(sellerID uint) ([]ReviewSummary, error) {
	var summaries []ReviewSummary
	err := s.db.Model(&model.Product{}).
		Select(`products.id AS product_id, products.name,
			COALESCE(AVG(feedback.rating), 0) AS avg_rating,
			COUNT(feedback.id) AS review_count`).
		Joins("LEFT JOIN feedback ON products.id = feedback.product_id").
		Where("products.seller_id = ?", sellerID).
		Group("products.id, products.name").
		Order("products.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Reviews lists the feedback rows for one of the seller's products,
// newest first.
func (s *SellerService) Reviews(sellerID, productID uint) ([]Review, error) {
	var reviews []Review
	err := s.db.Model(&model.Feedback{}).
		Select("feedback.rating, feedback.comment, feedback.date, buyers.username AS buyer").
		Joins("JOIN products ON feedback.product_id = products.id").
		Joins("JOIN buyers ON feedback.buyer_id = buyers.id").
		Where("products.id = ? AND products.seller_id = ?", productID, sellerID).
		Order("feedback.date DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// TopProducts ranks the seller's products by delivered units, top ten.
func (s *SellerService) TopProducts(sellerID uint) ([]TopProduct, error) {
	var top []TopProduct
	err := s.db.Model(&model.Order{}).
		Select(`products.id AS product_id, products.name, products.unit,
			SUM(orders.quantity) AS units_sold,
			COALESCE(SUM(orders.quantity * products.price), 0) AS revenue`).
		Joins("JOIN products ON orders.product_id = products.id").
		Where("products.seller_id = ? AND orders.status = ?", sellerID, "Delivered").
		Group("products.id, products.name, products.unit").
		Order("units_sold DESC").
		Limit(10).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}
	return top, nil
}

// MonthlySales groups the seller's delivered orders by calendar month,
// newest first.
func (s *SellerService) MonthlySales(sellerID uint) ([]MonthlySales, error) {
	var monthly []MonthlySales
	err := s.db.Raw(`
		SELECT to_char(o.order_date, 'YYYY-MM') AS month,
		       COUNT(*) AS orders,
		       COALESCE(SUM(o.quantity * p.price), 0) AS revenue
		FROM orders o
		JOIN products p ON o.product_id = p.id
		WHERE p.seller_id = ? AND o.status = 'Delivered'
		GROUP BY 1
		ORDER BY 1 DESC`, sellerID).
		Scan(&monthly).Error
	if err != nil {
		return nil, err
	}
	return monthly, nil
}

// today truncates the current time to a calendar date.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
