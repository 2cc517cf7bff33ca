package shell

import (
	"fmt"

	"github.com/sreeharigs/organicproduct/internal/model"
	"github.com/sreeharigs/organicproduct/internal/service"
)

func (s *Shell) buyerMenu() {
	for !s.p.EOF() {
		Title("--- Buyer Menu ---")
		fmt.Println("1. Register")
		fmt.Println("2. Login")
		fmt.Println("3. Password Reset")
		fmt.Println("4. Exit")

		switch s.p.Line("Choose an option: ") {
		case "1":
			s.registerBuyer()
		case "2":
			buyer, err := s.auth.LoginBuyer(
				s.p.Email("Enter email: "),
				s.p.Line("Enter password: "),
			)
			if err != nil {
				Fail("%v", err)
				continue
			}
			Success("Login successful! Welcome, %s.", buyer.Username)
			s.buyerDashboard(buyer)
		case "3":
			s.resetBuyerPassword()
		case "4":
			return
		default:
			if !s.p.EOF() {
				Fail("Invalid input.")
			}
		}
	}
}

// registerBuyer gates account creation behind an emailed OTP. The account
// is only created after the OTP the user types back matches.
func (s *Shell) registerBuyer() {
	Title("--- Buyer Registration ---")
	username := s.p.NonEmpty("Enter username: ")
	email := s.p.Email("Enter email: ")
	mobile := s.p.Mobile("Enter mobile number: ")
	password := s.p.Password("Enter password (min 6 chars): ")

	otp, err := s.auth.SendRegistrationOTP(email)
	if err != nil {
		Fail("Failed to send OTP: %v", err)
		return
	}
	Info("An OTP has been sent to your email.")

	if s.p.Line("Enter the OTP: ") != otp {
		Fail("Incorrect OTP. Registration cancelled.")
		return
	}

	if _, err := s.auth.RegisterBuyer(username, email, mobile, password); err != nil {
		Fail("%v", err)
		return
	}
	Success("Registration successful! You can now log in.")
}

func (s *Shell) resetBuyerPassword() {
	Title("--- Password Reset ---")
	email := s.p.Email("Enter your registered email: ")

	if err := s.auth.RequestBuyerReset(email); err != nil {
		Fail("%v", err)
		return
	}
	Info("A reset token has been sent to your email.")

	token := s.p.NonEmpty("Enter the reset token: ")
	newPassword := s.p.Password("Enter new password (min 6 chars): ")

	if err := s.auth.CompleteBuyerReset(email, token, newPassword); err != nil {
		Fail("%v", err)
		return
	}
	Success("Password reset successful! You can now log in.")
}

func (s *Shell) buyerDashboard(buyer *model.Buyer) {
	for !s.p.EOF() {
		Title("--- Buyer Dashboard ---")
		fmt.Println("1. Browse Products")
		fmt.Println("2. Browse by Category")
		fmt.Println("3. Search Products")
		fmt.Println("4. Buy Product")
		fmt.Println("5. View My Orders")
		fmt.Println("6. Add Feedback")
		fmt.Println("7. Wishlist")
		fmt.Println("8. Logout")

		switch s.p.Line("Choose an option: ") {
		case "1":
			s.showListings(s.buyers.BrowseProducts())
		case "2":
			category := s.p.NonEmpty("Enter category (Food/Personal Care/Other): ")
			s.showListings(s.buyers.BrowseByCategory(category))
		case "3":
			keyword := s.p.NonEmpty("Enter keyword: ")
			s.showListings(s.buyers.SearchProducts(keyword))
		case "4":
			if s.showListings(s.buyers.BrowseProducts()) {
				productID := uint(s.p.Int("Enter product ID to buy: ", 1))
				s.buyProduct(buyer, productID)
			}
		case "5":
			s.viewBuyerOrders(buyer.ID)
		case "6":
			s.addFeedback(buyer.ID)
		case "7":
			s.wishlistMenu(buyer)
		case "8":
			return
		default:
			if !s.p.EOF() {
				Fail("Invalid choice.")
			}
		}
	}
}

func (s *Shell) showListings(listings []service.ProductListing, err error) bool {
	if err != nil {
		Fail("%v", err)
		return false
	}
	if len(listings) == 0 {
		Muted("No products found.")
		return false
	}

	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []string{
			itoa(l.ID), l.Name, money(l.Price), l.Category, l.Seller,
			l.JaivikID, num(l.Stock), l.Unit,
		})
	}
	Table([]string{"ID", "Name", "Price", "Category", "Seller", "Jaivik ID", "Stock", "Unit"}, rows)
	return true
}

// buyProduct quotes the product, collects quantity and delivery address,
// then hands the whole purchase to the service in one call. All prompting
// happens before any transaction is opened.
func (s *Shell) buyProduct(buyer *model.Buyer, productID uint) {
	quote, err := s.buyers.Quote(productID)
	if err != nil {
		Fail("%v", err)
		return
	}

	fmt.Printf("\n%s: %s per %s, %s in stock.\n", quote.Name, money(quote.Price), quote.Unit, num(quote.Stock))
	qty := s.p.Float(fmt.Sprintf("Enter quantity (%s): ", quote.Unit), 0)
	if qty <= 0 {
		Fail("Quantity must be greater than zero.")
		return
	}
	if qty > quote.Stock {
		Fail("Only %s %s available.", num(quote.Stock), quote.Unit)
		return
	}

	fmt.Printf("Total: %s\n", money(service.OrderTotal(qty, quote.Price)))
	if !s.p.YesNo("Confirm purchase? (y/n): ") {
		Muted("Purchase cancelled.")
		return
	}

	address, pincode, saveAddress := s.deliveryAddress(buyer)

	receipt, err := s.buyers.Purchase(buyer.ID, productID, qty, address, pincode, saveAddress)
	if err != nil {
		Fail("%v", err)
		return
	}
	if saveAddress {
		buyer.Address = address
		buyer.Pincode = pincode
	}

	Success("Order placed successfully! Order ID: %d", receipt.OrderID)
	fmt.Printf("%s x %s %s = %s\n", receipt.Name, num(receipt.Quantity), receipt.Unit, money(receipt.Total))
	fmt.Println("Payment: Cash on Delivery")
}

// deliveryAddress reuses the saved address when the buyer has one and
// wants it, otherwise collects a new one. A newly captured address is
// always persisted back to the buyer record.
func (s *Shell) deliveryAddress(buyer *model.Buyer) (address, pincode string, save bool) {
	if buyer.Address != "" {
		fmt.Printf("Saved address: %s\n", buyer.Address)
		if s.p.YesNo("Deliver to this address? (y/n): ") {
			return buyer.Address, buyer.Pincode, false
		}
	}
	address, pincode = s.p.Address()
	return address, pincode, true
}

func (s *Shell) viewBuyerOrders(buyerID uint) {
	orders, err := s.buyers.Orders(buyerID)
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(orders) == 0 {
		Muted("You have no orders yet.")
		return
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			itoa(o.ID), o.Product, num(o.Quantity), o.Unit, o.Seller,
			money(o.Total), o.Status, o.OrderDate.Format("2006-01-02 15:04"),
		})
	}
	Title("--- My Orders ---")
	Table([]string{"Order ID", "Product", "Qty", "Unit", "Seller", "Total", "Status", "Order Date"}, rows)
}

func (s *Shell) addFeedback(buyerID uint) {
	purchased, err := s.buyers.PurchasedProducts(buyerID)
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(purchased) == 0 {
		Muted("You can only review products you have purchased.")
		return
	}

	rows := make([][]string, 0, len(purchased))
	for _, p := range purchased {
		rows = append(rows, []string{itoa(p.ID), p.Name})
	}
	Title("--- Products You Have Purchased ---")
	Table([]string{"ID", "Name"}, rows)

	productID := uint(s.p.Int("Enter product ID to review: ", 1))
	rating := s.p.IntRange("Enter rating (1-5): ", 1, 5)
	comment := s.p.Line("Enter comment (optional): ")

	if err := s.buyers.AddFeedback(buyerID, productID, rating, comment); err != nil {
		Fail("%v", err)
		return
	}
	Success("Thank you for your feedback!")
}

func (s *Shell) wishlistMenu(buyer *model.Buyer) {
	for !s.p.EOF() {
		Title("--- Wishlist ---")
		fmt.Println("1. View Wishlist")
		fmt.Println("2. Add to Wishlist")
		fmt.Println("3. Buy from Wishlist")
		fmt.Println("4. Remove from Wishlist")
		fmt.Println("5. Back")

		switch s.p.Line("Choose an option: ") {
		case "1":
			s.viewWishlist(buyer.ID)
		case "2":
			if s.showListings(s.buyers.BrowseProducts()) {
				productID := uint(s.p.Int("Enter product ID to add: ", 1))
				name, err := s.buyers.AddToWishlist(buyer.ID, productID)
				if err != nil {
					Fail("%v", err)
					continue
				}
				Success("'%s' added to your wishlist.", name)
			}
		case "3":
			if !s.viewWishlist(buyer.ID) {
				continue
			}
			productID := uint(s.p.Int("Enter product ID to buy: ", 1))
			in, err := s.buyers.InWishlist(buyer.ID, productID)
			if err != nil {
				Fail("%v", err)
				continue
			}
			if !in {
				Fail("That product is not in your wishlist.")
				continue
			}
			s.buyProduct(buyer, productID)
		case "4":
			if !s.viewWishlist(buyer.ID) {
				continue
			}
			productID := uint(s.p.Int("Enter product ID to remove: ", 1))
			if err := s.buyers.RemoveFromWishlist(buyer.ID, productID); err != nil {
				Fail("%v", err)
				continue
			}
			Success("Removed from wishlist.")
		case "5":
			return
		default:
			if !s.p.EOF() {
				Fail("Invalid choice.")
			}
		}
	}
}

func (s *Shell) viewWishlist(buyerID uint) bool {
	items, err := s.buyers.Wishlist(buyerID)
	if err != nil {
		Fail("%v", err)
		return false
	}
	if len(items) == 0 {
		Muted("Your wishlist is empty.")
		return false
	}

	rows := make([][]string, 0, len(items))
	for _, w := range items {
		rows = append(rows, []string{
			itoa(w.ProductID), w.Name, money(w.Price), w.Category, w.Seller,
			num(w.Stock), w.Unit,
		})
	}
	Table([]string{"ID", "Name", "Price", "Category", "Seller", "Stock", "Unit"}, rows)
	return true
}
