package shell

import (
	"fmt"
	"strconv"

	"github.com/sreeharigs/organicproduct/internal/lifecycle"
	"github.com/sreeharigs/organicproduct/internal/model"
	"github.com/sreeharigs/organicproduct/internal/service"
	"github.com/sreeharigs/organicproduct/internal/validate"
)

func (s *Shell) sellerMenu() {
	for !s.p.EOF() {
		Title("--- Seller Menu ---")
		fmt.Println("1. Register")
		fmt.Println("2. Login")
		fmt.Println("3. Exit")

		switch s.p.Line("Choose an option: ") {
		case "1":
			s.registerSeller()
		case "2":
			seller, err := s.auth.LoginSeller(
				s.p.Line("Enter username: "),
				s.p.Line("Enter password: "),
			)
			if err != nil {
				Fail("%v", err)
				continue
			}
			Success("Login successful!")
			s.sellerDashboard(seller)
		case "3":
			return
		default:
			if !s.p.EOF() {
				Fail("Invalid input.")
			}
		}
	}
}

func (s *Shell) registerSeller() {
	Title("--- Seller Registration ---")
	username := s.p.NonEmpty("Enter username: ")
	password := s.p.Password("Enter password (min 6 chars): ")
	cert := s.p.NonEmpty("Enter Jaivik Bharat Certificate Number: ")

	if _, err := s.auth.RegisterSeller(username, password, cert); err != nil {
		Fail("%v", err)
		return
	}
	Success("Registration successful!")
}

func (s *Shell) sellerDashboard(seller *model.Seller) {
	for !s.p.EOF() {
		Title("--- Seller Dashboard ---")
		fmt.Println("1. View My Products")
		fmt.Println("2. Add Product")
		fmt.Println("3. Edit Product")
		fmt.Println("4. Delete Product")
		fmt.Println("5. Toggle Availability")
		fmt.Println("6. View Orders")
		fmt.Println("7. Mark Order Delivered")
		fmt.Println("8. View Product Reviews")
		fmt.Println("9. View Analytics")
		fmt.Println("10. Logout")

		switch s.p.Line("Choose an option: ") {
		case "1":
			s.viewMyProducts(seller.ID)
		case "2":
			s.addProduct(seller)
		case "3":
			s.editProduct(seller.ID)
		case "4":
			s.deleteProduct(seller.ID)
		case "5":
			s.toggleAvailability(seller.ID)
		case "6":
			s.viewSellerOrders(seller.ID)
		case "7":
			s.markOrderDelivered(seller.ID)
		case "8":
			s.viewProductReviews(seller.ID)
		case "9":
			s.viewAnalytics(seller.ID)
		case "10":
			return
		default:
			if !s.p.EOF() {
				Fail("Invalid choice.")
			}
		}
	}
}

func (s *Shell) viewMyProducts(sellerID uint) bool {
	products, err := s.sellers.MyProducts(sellerID)
	if err != nil {
		Fail("%v", err)
		return false
	}
	if len(products) == 0 {
		Muted("You haven't added any products yet.")
		return false
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		available := "No"
		if p.Available {
			available = "Yes"
		}
		longLife := "No"
		if p.LongLife {
			longLife = "Yes"
		}
		rows = append(rows, []string{
			itoa(p.ID), p.Name, p.Category, money(p.Price), num(p.Quantity), p.Unit,
			available, p.Status, p.JaivikID,
			p.ManufactureDate.Format("2006-01-02"), p.ExpiryDate.Format("2006-01-02"), longLife,
		})
	}
	Title("--- My Products ---")
	Table([]string{"ID", "Name", "Category", "Price", "Qty", "Unit", "Available", "Status", "Jaivik ID", "Mfg Date", "Expiry Date", "LongLife"}, rows)
	return true
}

// selectCategory prints the fixed category list and maps the selection.
// Out-of-range input falls back to Other.
func (s *Shell) selectCategory() lifecycle.Category {
	fmt.Println("\nSelect category:")
	for i, c := range lifecycle.Categories {
		fmt.Printf("%d. %s\n", i+1, c)
	}
	choice, err := strconv.Atoi(s.p.Line("Enter choice number: "))
	if err != nil || choice < 1 || choice > len(lifecycle.Categories) {
		Fail("Invalid choice. Defaulting to 'Other'.")
		return lifecycle.CategoryOther
	}
	return lifecycle.CategoryFromChoice(choice)
}

func (s *Shell) addProduct(seller *model.Seller) {
	Title("--- Add Product ---")
	name := s.p.NonEmpty("Enter product name: ")
	category := s.selectCategory()
	price := s.p.Float("Enter price: ", 0)
	unit := s.p.Line("Enter unit (kg/l/pcs) or press Enter for 'pcs': ")
	quantity := s.p.Float("Enter quantity: ", 0)
	discount := s.p.Float("Enter discount % (0 if none): ", 0)

	longLife := false
	if category == lifecycle.CategoryFood {
		longLife = s.p.YesNo("Is this a long-life food product? (e.g., honey) (y/n): ")
	}

	fmt.Println("Provide expiry date (YYYY-MM-DD). It must be after manufacture date.")
	expiry, err := validate.Date(s.p.Line("Expiry date (YYYY-MM-DD): "))
	if err != nil {
		Fail("Invalid expiry date format.")
		return
	}

	_, err = s.sellers.AddProduct(seller.ID, seller.JaivikCert, service.NewProduct{
		Name:       name,
		Category:   category,
		Price:      price,
		Unit:       unit,
		Quantity:   quantity,
		Discount:   discount,
		LongLife:   longLife,
		ExpiryDate: expiry,
	})
	if err != nil {
		Fail("%v", err)
		return
	}
	Success("Product added successfully! Status: Pending approval by admin.")
}

func (s *Shell) editProduct(sellerID uint) {
	if !s.viewMyProducts(sellerID) {
		return
	}
	productID := uint(s.p.Int("Enter product ID to edit: ", 1))

	product, err := s.sellers.GetProduct(sellerID, productID)
	if err != nil {
		Fail("%v", err)
		return
	}

	fmt.Println("Leave input blank to keep current value.")
	var edit lifecycle.ProductEdit

	if product.Status == lifecycle.StatusApproved {
		Muted("Product is approved: name and category cannot be changed.")
	} else {
		if name := s.p.Line(fmt.Sprintf("Name [%s]: ", product.Name)); name != "" {
			edit.Name = &name
		}
		fmt.Printf("Current category: %s\n", product.Category)
		if s.p.YesNo("Change category? (y/n): ") {
			category := s.selectCategory()
			edit.Category = &category
		}
	}

	var ok bool
	if edit.Price, ok = s.optionalFloat(fmt.Sprintf("Price [%s]: ", num(product.Price))); !ok {
		return
	}
	if edit.Quantity, ok = s.optionalFloat(fmt.Sprintf("Quantity [%s]: ", num(product.Quantity))); !ok {
		return
	}
	if unit := s.p.Line(fmt.Sprintf("Unit [%s]: ", product.Unit)); unit != "" {
		edit.Unit = &unit
	}
	if edit.Discount, ok = s.optionalFloat(fmt.Sprintf("Discount%% [%s]: ", num(product.Discount))); !ok {
		return
	}

	if raw := s.p.Line(fmt.Sprintf("Expiry Date [%s] (YYYY-MM-DD): ", product.ExpiryDate.Format("2006-01-02"))); raw != "" {
		expiry, err := validate.Date(raw)
		if err != nil {
			Fail("Invalid expiry date format.")
			return
		}
		edit.ExpiryDate = &expiry
	}

	category := lifecycle.Category(product.Category)
	if edit.Category != nil {
		category = *edit.Category
	}
	if category == lifecycle.CategoryFood {
		edit.ToggleLongLife = s.p.YesNo(fmt.Sprintf("Toggle long-life flag (currently %t)? (y/n): ", product.LongLife))
	}

	if _, err := s.sellers.EditProduct(sellerID, productID, edit); err != nil {
		Fail("%v", err)
		return
	}
	Success("Product updated. Status set to Pending for admin approval.")
}

// optionalFloat reads a blank-keeps-current numeric field. A malformed
// value reports not-ok so the caller can abort the edit.
func (s *Shell) optionalFloat(label string) (*float64, bool) {
	raw := s.p.Line(label)
	if raw == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		Fail("Invalid number.")
		return nil, false
	}
	return &f, true
}

func (s *Shell) deleteProduct(sellerID uint) {
	if !s.viewMyProducts(sellerID) {
		return
	}
	productID := uint(s.p.Int("Enter product ID to delete: ", 1))

	if _, err := s.sellers.GetProduct(sellerID, productID); err != nil {
		Fail("%v", err)
		return
	}
	if !s.p.YesNo("Are you sure you want to delete this product? (y/n): ") {
		Muted("Deletion cancelled.")
		return
	}

	if err := s.sellers.DeleteProduct(sellerID, productID); err != nil {
		Fail("%v", err)
		return
	}
	Success("Product deleted successfully.")
}

func (s *Shell) toggleAvailability(sellerID uint) {
	if !s.viewMyProducts(sellerID) {
		return
	}
	productID := uint(s.p.Int("Enter product ID: ", 1))

	available, err := s.sellers.ToggleAvailability(sellerID, productID)
	if err != nil {
		Fail("%v", err)
		return
	}
	if available {
		Success("Product availability set to Available.")
	} else {
		Success("Product availability set to Not Available.")
	}
}

func (s *Shell) viewSellerOrders(sellerID uint) bool {
	orders, err := s.sellers.Orders(sellerID)
	if err != nil {
		Fail("%v", err)
		return false
	}
	if len(orders) == 0 {
		Muted("No orders found.")
		return false
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			itoa(o.ID), o.Buyer, o.Product, num(o.Quantity), o.Unit,
			o.Address, o.Status, o.OrderDate.Format("2006-01-02 15:04"),
		})
	}
	Table([]string{"Order ID", "Buyer", "Product", "Qty", "Unit", "Address", "Status", "Order Date"}, rows)
	return true
}

func (s *Shell) markOrderDelivered(sellerID uint) {
	if !s.viewSellerOrders(sellerID) {
		return
	}
	orderID := uint(s.p.Int("Enter Order ID to mark as Delivered: ", 1))

	if err := s.sellers.MarkDelivered(sellerID, orderID); err != nil {
		Fail("%v", err)
		return
	}
	Success("Order marked as Delivered.")
}

func (s *Shell) viewProductReviews(sellerID uint) {
	summaries, err := s.sellers.ReviewSummaries(sellerID)
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(summaries) == 0 {
		Muted("No products found.")
		return
	}

	rows := make([][]string, 0, len(summaries))
	for _, r := range summaries {
		rows = append(rows, []string{
			itoa(r.ProductID), r.Name, fmt.Sprintf("%.2f", r.AvgRating), strconv.FormatInt(r.ReviewCount, 10),
		})
	}
	Table([]string{"ID", "Product Name", "Avg Rating", "Review Count"}, rows)

	choice := s.p.Line("Enter product ID to view detailed reviews (or 0 to go back): ")
	if choice == "0" || choice == "" {
		return
	}
	productID, err := strconv.Atoi(choice)
	if err != nil {
		Fail("Invalid ID.")
		return
	}

	reviews, err := s.sellers.Reviews(sellerID, uint(productID))
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(reviews) == 0 {
		Muted("No reviews for this product.")
		return
	}

	reviewRows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		reviewRows = append(reviewRows, []string{
			strconv.Itoa(r.Rating), r.Comment, r.Date.Format("2006-01-02"), r.Buyer,
		})
	}
	fmt.Printf("\nReviews for Product ID %d:\n", productID)
	Table([]string{"Rating", "Comment", "Date", "Buyer"}, reviewRows)
}

func (s *Shell) viewAnalytics(sellerID uint) {
	top, err := s.sellers.TopProducts(sellerID)
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(top) == 0 {
		Muted("No sales data yet for your products.")
	} else {
		rows := make([][]string, 0, len(top))
		for _, t := range top {
			rows = append(rows, []string{
				itoa(t.ProductID), t.Name, t.Unit, num(t.UnitsSold), money(t.Revenue),
			})
		}
		Title("Top Selling Products:")
		Table([]string{"Product ID", "Name", "Unit", "Units Sold", "Revenue"}, rows)
	}

	monthly, err := s.sellers.MonthlySales(sellerID)
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(monthly) > 0 {
		rows := make([][]string, 0, len(monthly))
		for _, m := range monthly {
			rows = append(rows, []string{m.Month, strconv.FormatInt(m.Orders, 10), money(m.Revenue)})
		}
		Title("Monthly Sales:")
		Table([]string{"Month", "Orders", "Revenue"}, rows)
	}
}
