package service

import "time"

// Mailer is the outbound email collaborator. Failures abort the workflow
// that triggered the send.
type Mailer interface {
	SendOTP(to, otp string) error
	SendResetToken(to, token string) error
}

// ProductListing is a buyer-facing row: approved and available products
// joined with the seller's name.
type ProductListing struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Seller   string  `json:"seller"`
	JaivikID string  `json:"jaivik_id"`
	Stock    float64 `json:"stock"`
	Unit     string  `json:"unit"`
}

// PurchaseQuote is the state shown to a buyer before confirming a purchase.
type PurchaseQuote struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Stock     float64 `json:"stock"`
}

// PurchaseReceipt summarizes a completed purchase.
type PurchaseReceipt struct {
	OrderID  uint    `json:"order_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Total    float64 `json:"total"`
}

// BuyerOrder is an order row in the buyer's history, including the
// computed total.
type BuyerOrder struct {
	ID        uint      `json:"id"`
	Product   string    `json:"product"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Address   string    `json:"address"`
	Seller    string    `json:"seller"`
	Status    string    `json:"status"`
	OrderDate time.Time `json:"order_date"`
	Total     float64   `json:"total"`
}

// PurchasedProduct identifies a product the buyer has ordered at least once.
type PurchasedProduct struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// WishlistItem is a row in the buyer's wishlist view.
type WishlistItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Seller    string  `json:"seller"`
	Stock     float64 `json:"stock"`
	Unit      string  `json:"unit"`
}

// SellerOrder is an order row scoped to one of the seller's products.
type SellerOrder struct {
	ID        uint      `json:"id"`
	Buyer     string    `json:"buyer"`
	Product   string    `json:"product"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	OrderDate time.Time `json:"order_date"`
}

// ReviewSummary aggregates feedback per product.
type ReviewSummary struct {
	ProductID   uint    `json:"product_id"`
	Name        string  `json:"name"`
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

// Review is a single feedback row.
type Review struct {
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
	Buyer   string    `json:"buyer"`
}

// TopProduct is a seller analytics row over delivered orders.
type TopProduct struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	UnitsSold float64 `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

// MonthlySales groups orders by calendar month.
type MonthlySales struct {
	Month   string  `json:"month"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	Sellers         int64   `json:"sellers"`
	Buyers          int64   `json:"buyers"`
	Products        int64   `json:"products"`
	PendingProducts int64   `json:"pending_products"`
	Orders          int64   `json:"orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// PendingProduct is a moderation queue row.
type PendingProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Seller   string  `json:"seller"`
	JaivikID string  `json:"jaivik_id"`
}

// AdminProduct is an all-products row for the admin views.
type AdminProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Seller   string  `json:"seller"`
}

// AdminOrder is an all-orders row for the admin views.
type AdminOrder struct {
	ID        uint      `json:"id"`
	Product   string    `json:"product"`
	Buyer     string    `json:"buyer"`
	Quantity  float64   `json:"quantity"`
	Status    string    `json:"status"`
	OrderDate time.Time `json:"order_date"`
}

// SellerInfo is an admin view of a registered seller.
type SellerInfo struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	JaivikCert   string    `json:"jaivik_cert"`
	RegisteredAt time.Time `json:"registered_at"`
}

// BuyerInfo is an admin view of a registered buyer.
type BuyerInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}
