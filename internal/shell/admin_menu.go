package shell

import (
	"fmt"
	"strconv"
)

func (s *Shell) adminMenu() {
	Title("--- Admin Login ---")
	admin, err := s.auth.LoginAdmin(
		s.p.Line("Enter username: "),
		s.p.Line("Enter password: "),
	)
	if err != nil {
		Fail("%v", err)
		return
	}
	Success("Welcome, %s!", admin.Username)

	for !s.p.EOF() {
		Title("--- Admin Dashboard ---")
		fmt.Println("1. Dashboard Overview")
		fmt.Println("2. Monthly Sales Report")
		fmt.Println("3. View All Products")
		fmt.Println("4. View All Orders")
		fmt.Println("5. View All Sellers")
		fmt.Println("6. View All Buyers")
		fmt.Println("7. Approve/Reject Products")
		fmt.Println("8. Add Jaivik Certificate")
		fmt.Println("9. Add Admin User")
		fmt.Println("10. Remove Seller")
		fmt.Println("11. Remove Buyer")
		fmt.Println("12. Logout")

		switch s.p.Line("Choose an option: ") {
		case "1":
			s.dashboardOverview()
		case "2":
			s.monthlySalesReport()
		case "3":
			s.viewAllProducts()
		case "4":
			s.viewAllOrders()
		case "5":
			s.viewAllSellers()
		case "6":
			s.viewAllBuyers()
		case "7":
			s.moderateProducts()
		case "8":
			s.addCertificate()
		case "9":
			s.addAdminUser()
		case "10":
			s.removeSeller()
		case "11":
			s.removeBuyer()
		case "12":
			return
		default:
			if !s.p.EOF() {
				Fail("Invalid choice.")
			}
		}
	}
}

func (s *Shell) dashboardOverview() {
	stats, err := s.admins.Dashboard()
	if err != nil {
		Fail("%v", err)
		return
	}
	Title("--- Dashboard Overview ---")
	fmt.Printf("Total Sellers:     %d\n", stats.Sellers)
	fmt.Printf("Total Buyers:      %d\n", stats.Buyers)
	fmt.Printf("Total Products:    %d\n", stats.Products)
	fmt.Printf("Pending Approvals: %d\n", stats.PendingProducts)
	fmt.Printf("Total Orders:      %d\n", stats.Orders)
	fmt.Printf("Total Revenue:     %s\n", money(stats.TotalRevenue))
}

func (s *Shell) monthlySalesReport() {
	monthly, err := s.admins.MonthlySalesReport()
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(monthly) == 0 {
		Muted("No sales data available.")
		return
	}

	rows := make([][]string, 0, len(monthly))
	for _, m := range monthly {
		rows = append(rows, []string{m.Month, strconv.FormatInt(m.Orders, 10), money(m.Revenue)})
	}
	Title("--- Monthly Sales Report ---")
	Table([]string{"Month", "Orders", "Revenue"}, rows)
}

func (s *Shell) viewAllProducts() {
	products, err := s.admins.Products()
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(products) == 0 {
		Muted("No products found.")
		return
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			itoa(p.ID), p.Name, p.Category, p.Status, money(p.Price), num(p.Quantity), p.Seller,
		})
	}
	Table([]string{"ID", "Name", "Category", "Status", "Price", "Qty", "Seller"}, rows)
}

func (s *Shell) viewAllOrders() {
	orders, err := s.admins.Orders()
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(orders) == 0 {
		Muted("No orders found.")
		return
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			itoa(o.ID), o.Product, o.Buyer, num(o.Quantity), o.Status,
			o.OrderDate.Format("2006-01-02 15:04"),
		})
	}
	Table([]string{"Order ID", "Product", "Buyer", "Qty", "Status", "Order Date"}, rows)
}

func (s *Shell) viewAllSellers() {
	sellers, err := s.admins.Sellers()
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(sellers) == 0 {
		Muted("No sellers registered.")
		return
	}

	rows := make([][]string, 0, len(sellers))
	for _, sl := range sellers {
		rows = append(rows, []string{
			itoa(sl.ID), sl.Username, sl.JaivikCert, sl.RegisteredAt.Format("2006-01-02"),
		})
	}
	Table([]string{"ID", "Username", "Jaivik Cert", "Registered"}, rows)
}

func (s *Shell) viewAllBuyers() {
	buyers, err := s.admins.Buyers()
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(buyers) == 0 {
		Muted("No buyers registered.")
		return
	}

	rows := make([][]string, 0, len(buyers))
	for _, b := range buyers {
		rows = append(rows, []string{itoa(b.ID), b.Username, b.Email, b.Mobile})
	}
	Table([]string{"ID", "Username", "Email", "Mobile"}, rows)
}

// moderateProducts walks the Pending queue one decision at a time.
func (s *Shell) moderateProducts() {
	pending, err := s.admins.PendingProducts()
	if err != nil {
		Fail("%v", err)
		return
	}
	if len(pending) == 0 {
		Muted("No products pending approval.")
		return
	}

	rows := make([][]string, 0, len(pending))
	for _, p := range pending {
		rows = append(rows, []string{
			itoa(p.ID), p.Name, p.Category, money(p.Price), num(p.Quantity), p.Unit, p.Seller, p.JaivikID,
		})
	}
	Title("--- Products Pending Approval ---")
	Table([]string{"ID", "Name", "Category", "Price", "Qty", "Unit", "Seller", "Jaivik ID"}, rows)

	productID := s.p.Int("Enter product ID to moderate (0 to cancel): ", 0)
	if productID == 0 {
		return
	}

	var approve bool
	switch s.p.Line("Approve or Reject? (A/R): ") {
	case "A", "a":
		approve = true
	case "R", "r":
		approve = false
	default:
		Fail("Invalid choice.")
		return
	}

	if err := s.admins.ModerateProduct(uint(productID), approve); err != nil {
		Fail("%v", err)
		return
	}
	if approve {
		Success("Product approved.")
	} else {
		Success("Product rejected.")
	}
}

func (s *Shell) addCertificate() {
	cert := s.p.NonEmpty("Enter new Jaivik Bharat Certificate Number: ")
	if err := s.admins.AddCertificate(cert); err != nil {
		Fail("%v", err)
		return
	}
	Success("Certificate '%s' added to the approved list.", cert)
}

func (s *Shell) addAdminUser() {
	username := s.p.NonEmpty("Enter new admin username: ")
	password := s.p.Password("Enter password (min 6 chars): ")
	if err := s.admins.AddAdminUser(username, password); err != nil {
		Fail("%v", err)
		return
	}
	Success("Admin user '%s' created.", username)
}

func (s *Shell) removeSeller() {
	s.viewAllSellers()
	id := s.p.Int("Enter seller ID to remove (0 to cancel): ", 0)
	if id == 0 {
		return
	}
	sellerID := uint(id)

	username, err := s.admins.LookupSeller(sellerID)
	if err != nil {
		Fail("%v", err)
		return
	}
	if !s.p.YesNo(fmt.Sprintf("Remove seller '%s' and all their products? (y/n): ", username)) {
		Muted("Removal cancelled.")
		return
	}

	if err := s.admins.RemoveSeller(sellerID); err != nil {
		Fail("%v", err)
		return
	}
	Success("Seller removed.")
}

func (s *Shell) removeBuyer() {
	s.viewAllBuyers()
	id := s.p.Int("Enter buyer ID to remove (0 to cancel): ", 0)
	if id == 0 {
		return
	}
	buyerID := uint(id)

	username, err := s.admins.LookupBuyer(buyerID)
	if err != nil {
		Fail("%v", err)
		return
	}
	if !s.p.YesNo(fmt.Sprintf("Remove buyer '%s' and their order history? (y/n): ", username)) {
		Muted("Removal cancelled.")
		return
	}

	if err := s.admins.RemoveBuyer(buyerID); err != nil {
		Fail("%v", err)
		return
	}
	Success("Buyer removed.")
}
