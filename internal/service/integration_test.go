//go:build integration
// +build integration

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sreeharigs/organicproduct/internal/lifecycle"
	"github.com/sreeharigs/organicproduct/internal/model"
	"github.com/sreeharigs/organicproduct/internal/service"
)

// setupDB starts a throwaway PostgreSQL container, opens a gorm session
// against it and migrates the full schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("organicshoptest"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "starting PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.ApprovedCertificate{},
		&model.Buyer{},
		&model.Seller{},
		&model.Product{},
		&model.Order{},
		&model.Feedback{},
		&model.WishlistEntry{},
		&model.AdminUser{},
	))
	return db
}

func seedSeller(t *testing.T, db *gorm.DB, cert string) model.Seller {
	t.Helper()
	require.NoError(t, db.Create(&model.ApprovedCertificate{CertNumber: cert}).Error)
	seller := model.Seller{Username: "farm-" + cert, Password: "digest", JaivikCert: cert}
	require.NoError(t, db.Create(&seller).Error)
	return seller
}

func seedBuyer(t *testing.T, db *gorm.DB, username string) model.Buyer {
	t.Helper()
	buyer := model.Buyer{
		Username: username,
		Email:    username + "@example.com",
		Mobile:   "9876543210",
		Password: "digest",
	}
	require.NoError(t, db.Create(&buyer).Error)
	return buyer
}

func seedProduct(t *testing.T, db *gorm.DB, sellerID uint, qty float64, status string) model.Product {
	t.Helper()
	mfg := time.Now().UTC().Truncate(24 * time.Hour)
	product := model.Product{
		SellerID:        sellerID,
		Name:            "Tomatoes",
		Category:        string(lifecycle.CategoryFood),
		Price:           100,
		Quantity:        qty,
		Unit:            "kg",
		Available:       true,
		JaivikID:        "JB1000",
		Status:          status,
		ManufactureDate: mfg,
		ExpiryDate:      mfg.AddDate(0, 0, 200),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestPurchaseRejectsOverStock(t *testing.T) {
	db := setupDB(t)
	seller := seedSeller(t, db, "JB1000")
	buyer := seedBuyer(t, db, "asha")
	product := seedProduct(t, db, seller.ID, 5, lifecycle.StatusApproved)
	buyers := service.NewBuyerService(db)

	_, err := buyers.Purchase(buyer.ID, product.ID, 10, "42, MG Road - 560001", "560001", false)
	assert.ErrorIs(t, err, service.ErrInsufficientStock)

	// The rejected purchase leaves no order row and the stock untouched.
	var orderCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 5.0, reloaded.Quantity)
}

func TestPurchaseDecrementsStockAndSavesAddress(t *testing.T) {
	db := setupDB(t)
	seller := seedSeller(t, db, "JB1000")
	buyer := seedBuyer(t, db, "asha")
	product := seedProduct(t, db, seller.ID, 5, lifecycle.StatusApproved)
	buyers := service.NewBuyerService(db)

	receipt, err := buyers.Purchase(buyer.ID, product.ID, 2, "42, MG Road - 560001", "560001", true)
	require.NoError(t, err)
	assert.Equal(t, 200.0, receipt.Total)

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 3.0, reloaded.Quantity)

	var order model.Order
	require.NoError(t, db.First(&order, receipt.OrderID).Error)
	assert.Equal(t, "42, MG Road - 560001", order.Address)
	assert.Equal(t, "560001", order.Pincode)

	var reloadedBuyer model.Buyer
	require.NoError(t, db.First(&reloadedBuyer, buyer.ID).Error)
	assert.Equal(t, "42, MG Road - 560001", reloadedBuyer.Address)
	assert.Equal(t, "560001", reloadedBuyer.Pincode)
}

func TestPurchaseRejectsUnapprovedProduct(t *testing.T) {
	db := setupDB(t)
	seller := seedSeller(t, db, "JB1000")
	buyer := seedBuyer(t, db, "asha")
	product := seedProduct(t, db, seller.ID, 5, lifecycle.StatusPending)
	buyers := service.NewBuyerService(db)

	_, err := buyers.Purchase(buyer.ID, product.ID, 1, "42, MG Road - 560001", "560001", false)
	assert.ErrorIs(t, err, service.ErrProductUnavailable)
}

func TestFeedbackRequiresPurchase(t *testing.T) {
	db := setupDB(t)
	seller := seedSeller(t, db, "JB1000")
	buyer := seedBuyer(t, db, "asha")
	product := seedProduct(t, db, seller.ID, 5, lifecycle.StatusApproved)
	buyers := service.NewBuyerService(db)

	err := buyers.AddFeedback(buyer.ID, product.ID, 4, "fresh")
	assert.ErrorIs(t, err, service.ErrNotPurchased)

	var feedbackCount int64
	require.NoError(t, db.Model(&model.Feedback{}).Count(&feedbackCount).Error)
	assert.Zero(t, feedbackCount)

	_, err = buyers.Purchase(buyer.ID, product.ID, 1, "42, MG Road - 560001", "560001", false)
	require.NoError(t, err)

	require.NoError(t, buyers.AddFeedback(buyer.ID, product.ID, 4, "fresh"))
	require.NoError(t, db.Model(&model.Feedback{}).Count(&feedbackCount).Error)
	assert.Equal(t, int64(1), feedbackCount)
}

func TestWishlistRejectsDuplicatesAndAbsentRemoval(t *testing.T) {
	db := setupDB(t)
	seller := seedSeller(t, db, "JB1000")
	buyer := seedBuyer(t, db, "asha")
	product := seedProduct(t, db, seller.ID, 5, lifecycle.StatusApproved)
	buyers := service.NewBuyerService(db)

	name, err := buyers.AddToWishlist(buyer.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomatoes", name)

	_, err = buyers.AddToWishlist(buyer.ID, product.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyWishlisted)

	var entries int64
	require.NoError(t, db.Model(&model.WishlistEntry{}).Count(&entries).Error)
	assert.Equal(t, int64(1), entries)

	require.NoError(t, buyers.RemoveFromWishlist(buyer.ID, product.ID))
	err = buyers.RemoveFromWishlist(buyer.ID, product.ID)
	assert.ErrorIs(t, err, service.ErrNotWishlisted)
}

func TestModerationOnlyTouchesPendingProducts(t *testing.T) {
	db := setupDB(t)
	seller := seedSeller(t, db, "JB1000")
	product := seedProduct(t, db, seller.ID, 5, lifecycle.StatusPending)
	admins := service.NewAdminService(db)

	require.NoError(t, admins.ModerateProduct(product.ID, true))

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, lifecycle.StatusApproved, reloaded.Status)

	// A second decision on the same product has nothing Pending to move.
	err := admins.ModerateProduct(product.ID, false)
	assert.ErrorIs(t, err, service.ErrNotPending)
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, lifecycle.StatusApproved, reloaded.Status)

	rejected := seedProduct(t, db, seller.ID, 5, lifecycle.StatusPending)
	require.NoError(t, admins.ModerateProduct(rejected.ID, false))
	require.NoError(t, db.First(&reloaded, rejected.ID).Error)
	assert.Equal(t, lifecycle.StatusRejected, reloaded.Status)
}

func TestRevenueExcludesCancelledOrders(t *testing.T) {
	db := setupDB(t)
	seller := seedSeller(t, db, "JB1000")
	buyer := seedBuyer(t, db, "asha")
	product := seedProduct(t, db, seller.ID, 50, lifecycle.StatusApproved)
	admins := service.NewAdminService(db)

	for _, o := range []struct {
		qty    float64
		status string
	}{
		{1, "Delivered"},
		{2, "Pending"},
		{4, "Cancelled"},
	} {
		order := model.Order{
			BuyerID:   buyer.ID,
			ProductID: product.ID,
			Quantity:  o.qty,
			Address:   "42, MG Road - 560001",
			Pincode:   "560001",
			Status:    o.status,
		}
		require.NoError(t, db.Create(&order).Error)
	}

	stats, err := admins.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Orders)
	assert.Equal(t, 300.0, stats.TotalRevenue)

	monthly, err := admins.MonthlySalesReport()
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.Equal(t, time.Now().Format("2006-01"), monthly[0].Month)
	assert.Equal(t, int64(2), monthly[0].Orders)
	assert.Equal(t, 300.0, monthly[0].Revenue)
}
