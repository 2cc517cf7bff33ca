// Package lifecycle implements the product lifecycle rules: category
// shelf-life policy, expiry validation against the manufacture date, the
// moderation status machine, and partial-edit application.
package lifecycle

import (
	"errors"
	"fmt"
	"time"
)

// Moderation statuses. New and edited products start Pending; only an
// admin moves a Pending product to Approved or Rejected.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Category is the fixed product category enumeration.
type Category string

const (
	CategoryFood         Category = "Food"
	CategoryPersonalCare Category = "Personal Care"
	CategoryOther        Category = "Other"
)

// Categories lists the selectable categories in menu order.
var Categories = []Category{CategoryFood, CategoryPersonalCare, CategoryOther}

// Maximum shelf life in days per category. Long-life is a seller-declared
// override valid only for Food.
const (
	foodMaxDays         = 365
	personalCareMaxDays = 365 * 3
	otherMaxDays        = 365 * 10
	foodLongLifeMaxDays = 365 * 5
)

// CategoryFromChoice maps a 1-based menu selection to a category. Anything
// out of range falls back to Other.
func CategoryFromChoice(choice int) Category {
	if choice < 1 || choice > len(Categories) {
		return CategoryOther
	}
	return Categories[choice-1]
}

// AllowedDays returns the maximum days between manufacture and expiry for
// the given category. The long-life flag only affects Food.
func AllowedDays(c Category, longLife bool) int {
	switch c {
	case CategoryFood:
		if longLife {
			return foodLongLifeMaxDays
		}
		return foodMaxDays
	case CategoryPersonalCare:
		return personalCareMaxDays
	default:
		return otherMaxDays
	}
}

// ErrExpiryNotAfterManufacture rejects expiry dates on or before the
// manufacture date, regardless of category.
var ErrExpiryNotAfterManufacture = errors.New("expiry date must be after manufacture date")

// ExpiryWindowError reports an expiry date beyond the category ceiling.
type ExpiryWindowError struct {
	Category    Category
	LongLife    bool
	AllowedDays int
}

func (e *ExpiryWindowError) Error() string {
	if e.Category == CategoryFood && e.LongLife {
		return fmt.Sprintf("expiry date exceeds allowed maximum for category '%s': allowed for long-life food is up to %d years from manufacture; set a shorter expiry or request admin approval",
			e.Category, e.AllowedDays/365)
	}
	return fmt.Sprintf("expiry date exceeds allowed maximum for category '%s': allowed max is %d years from manufacture; set a shorter expiry, or mark long-life (if Food) and request admin approval",
		e.Category, e.AllowedDays/365)
}

// ValidateExpiry checks the expiry date against the manufacture date and the
// category's allowed window.
func ValidateExpiry(manufacture, expiry time.Time, c Category, longLife bool) error {
	if !expiry.After(manufacture) {
		return ErrExpiryNotAfterManufacture
	}
	allowed := AllowedDays(c, longLife)
	max := manufacture.AddDate(0, 0, allowed)
	if expiry.After(max) {
		return &ExpiryWindowError{Category: c, LongLife: longLife, AllowedDays: allowed}
	}
	return nil
}
