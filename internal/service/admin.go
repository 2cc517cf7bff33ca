package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sreeharigs/organicproduct/internal/credential"
	"github.com/sreeharigs/organicproduct/internal/lifecycle"
	"github.com/sreeharigs/organicproduct/internal/model"
)

// AdminService covers the admin workflows: dashboards, moderation, the
// certificate pool, and user removal.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Dashboard gathers the overview counts and the total revenue over
// non-cancelled orders.
func (s *AdminService) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&model.Seller{}).Count(&stats.Sellers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Buyer{}).Count(&stats.Buyers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Product{}).Count(&stats.Products).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Product{}).
		Where("status = ?", lifecycle.StatusPending).
		Count(&stats.PendingProducts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Order{}).Count(&stats.Orders).Error; err != nil {
		return nil, err
	}

	err := s.db.Raw(`
		SELECT COALESCE(SUM(o.quantity * p.price), 0)
		FROM orders o
		JOIN products p ON o.product_id = p.id
		WHERE o.status <> 'Cancelled'`).
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// MonthlySalesReport groups non-cancelled orders by calendar month,
// newest first.
func (s *AdminService) MonthlySalesReport() ([]MonthlySales, error) {
	var monthly []MonthlySales
	err := s.db.Raw(`
		SELECT to_char(o.order_date, 'YYYY-MM') AS month,
		       COUNT(o.id) AS orders,
		       COALESCE(SUM(o.quantity * p.price), 0) AS revenue
		FROM orders o
		JOIN products p ON o.product_id = p.id
		WHERE o.status <> 'Cancelled'
		GROUP BY 1
		ORDER BY 1 DESC`).
		Scan(&monthly).Error
	if err != nil {
		return nil, err
	}
	return monthly, nil
}

// Buyers lists all registered buyers.
func (s *AdminService) Buyers() ([]BuyerInfo, error) {
	var buyers []BuyerInfo
	err := s.db.Model(&model.Buyer{}).
		Select("id, username, email, mobile").
		Order("id").
		Scan(&buyers).Error
	if err != nil {
		return nil, err
	}
	return buyers, nil
}

// Sellers lists all registered sellers.
func (s *AdminService) Sellers() ([]SellerInfo, error) {
	var sellers []SellerInfo
	err := s.db.Model(&model.Seller{}).
		Select("id, username, jaivik_cert, registered_at").
		Order("id").
		Scan(&sellers).Error
	if err != nil {
		return nil, err
	}
	return sellers, nil
}

// Products lists every product regardless of status.
func (s *AdminService) Products() ([]AdminProduct, error) {
	var products []AdminProduct
	err := s.db.Model(&model.Product{}).
		Select(`products.id, products.name, products.category, products.status,
			products.price, products.quantity, sellers.username AS seller`).
		Joins("JOIN sellers ON products.seller_id = sellers.id").
		Order("products.id").
		Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Orders lists every order placed.
func (s *AdminService) Orders() ([]AdminOrder, error) {
	var orders []AdminOrder
	err := s.db.Model(&model.Order{}).
		Select(`orders.id, products.name AS product, buyers.username AS buyer,
			orders.quantity, orders.status, orders.order_date`).
		Joins("JOIN products ON orders.product_id = products.id").
		Joins("JOIN buyers ON orders.buyer_id = buyers.id").
		Order("orders.order_date DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// PendingProducts lists the moderation queue.
func (s *AdminService) PendingProducts() ([]PendingProduct, error) {
	var pending []PendingProduct
	err := s.db.Model(&model.Product{}).
		Select(`products.id, products.name, products.category, products.price,
			products.quantity, products.unit, sellers.username AS seller, products.jaivik_id`).
		Joins("JOIN sellers ON products.seller_id = sellers.id").
		Where("products.status = ?", lifecycle.StatusPending).
		Order("products.id").
		Scan(&pending).Error
	if err != nil {
		return nil, err
	}
	return pending, nil
}

// ModerateProduct transitions a Pending product to Approved or Rejected.
// Products in any other status are not eligible.
func (s *AdminService) ModerateProduct(productID uint, approve bool) error {
	status := lifecycle.StatusRejected
	if approve {
		status = lifecycle.StatusApproved
	}

	res := s.db.Model(&model.Product{}).
		Where("id = ? AND status = ?", productID, lifecycle.StatusPending).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotPending
	}

	zap.L().Info("Product moderated",
		zap.Uint("product_id", productID),
		zap.String("status", status))
	return nil
}

// AddCertificate adds a certificate number to the approved pool.
func (s *AdminService) AddCertificate(certNumber string) error {
	var count int64
	if err := s.db.Model(&model.ApprovedCertificate{}).
		Where("cert_number = ?", certNumber).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	cert := model.ApprovedCertificate{CertNumber: certNumber}
	if err := s.db.Create(&cert).Error; err != nil {
		return err
	}
	zap.L().Info("Certificate approved", zap.String("cert_number", certNumber))
	return nil
}

// AddAdminUser registers another admin account.
func (s *AdminService) AddAdminUser(username, password string) error {
	var count int64
	if err := s.db.Model(&model.AdminUser{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	hashed, err := credential.HashPassword(password)
	if err != nil {
		return err
	}
	admin := model.AdminUser{Username: username, Password: hashed}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}
	zap.L().Info("Admin user added", zap.String("username", username))
	return nil
}

// LookupSeller returns the username for a confirmation prompt.
func (s *AdminService) LookupSeller(sellerID uint) (string, error) {
	var seller model.Seller
	if err := s.db.First(&seller, sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return seller.Username, nil
}

// RemoveSeller deletes a seller; the schema cascades to their products and
// onward per the products' own constraints.
func (s *AdminService) RemoveSeller(sellerID uint) error {
	res := s.db.Delete(&model.Seller{}, sellerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	zap.L().Info("Seller removed", zap.Uint("seller_id", sellerID))
	return nil
}

// LookupBuyer returns the username for a confirmation prompt.
func (s *AdminService) LookupBuyer(buyerID uint) (string, error) {
	var buyer model.Buyer
	if err := s.db.First(&buyer, buyerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return buyer.Username, nil
}

// RemoveBuyer deletes a buyer; orders, feedback and wishlist entries
// cascade.
func (s *AdminService) RemoveBuyer(buyerID uint) error {
	res := s.db.Delete(&model.Buyer{}, buyerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	zap.L().Info("Buyer removed", zap.Uint("buyer_id", buyerID))
	return nil
}
