// Package shell is the interactive terminal surface: role menus, prompt
// loops and tabular output over the workflow services. Errors are printed
// and the loop resumes; nothing here is fatal to the process.
package shell

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sreeharigs/organicproduct/internal/service"
)

// Shell drives the top-level role menu.
type Shell struct {
	p       *Prompter
	auth    *service.AuthService
	buyers  *service.BuyerService
	sellers *service.SellerService
	admins  *service.AdminService
}

func New(auth *service.AuthService, buyers *service.BuyerService, sellers *service.SellerService, admins *service.AdminService) *Shell {
	return &Shell{
		p:       NewPrompter(os.Stdin),
		auth:    auth,
		buyers:  buyers,
		sellers: sellers,
		admins:  admins,
	}
}

// Run loops over the role menu until the user exits or input ends.
func (s *Shell) Run() {
	for !s.p.EOF() {
		Title("--- Organic Product Management ---")
		fmt.Println("1. Seller Module")
		fmt.Println("2. Buyer Module")
		fmt.Println("3. Admin Module")
		fmt.Println("4. Exit")

		switch s.p.Line("Choose an option: ") {
		case "1":
			s.sellerMenu()
		case "2":
			s.buyerMenu()
		case "3":
			s.adminMenu()
		case "4":
			fmt.Println("Goodbye!")
			return
		default:
			if !s.p.EOF() {
				Fail("Invalid choice. Try again.")
			}
		}
	}
}

// money renders an amount with the currency marker, two decimals.
func money(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// num renders quantities without trailing zeros.
func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
