package lifecycle

import (
	"time"

	"github.com/sreeharigs/organicproduct/internal/model"
)

// ProductEdit carries a seller's edit of an existing product. Nil fields
// keep the current value. ToggleLongLife flips the long-life flag rather
// than setting it, and only takes effect when the resulting category is
// Food.
type ProductEdit struct {
	Name           *string
	Category       *Category
	Price          *float64
	Quantity       *float64
	Unit           *string
	Discount       *float64
	ExpiryDate     *time.Time
	ToggleLongLife bool
}

// ApplyEdit validates an edit against the lifecycle rules and applies it to
// the product in place. The manufacture date is immutable; the new expiry
// is validated against the new category's window from the original
// manufacture date. While the product is Approved, name and category are
// frozen and those fields of the edit are ignored. Any successful edit
// resets the status to Pending: every mutation requires re-moderation.
func ApplyEdit(p *model.Product, edit ProductEdit) error {
	name := p.Name
	category := Category(p.Category)
	if p.Status != StatusApproved {
		if edit.Name != nil {
			name = *edit.Name
		}
		if edit.Category != nil {
			category = *edit.Category
		}
	}

	expiry := p.ExpiryDate
	if edit.ExpiryDate != nil {
		expiry = *edit.ExpiryDate
	}

	longLife := p.LongLife
	if category == CategoryFood && edit.ToggleLongLife {
		longLife = !longLife
	}

	if err := ValidateExpiry(p.ManufactureDate, expiry, category, longLife); err != nil {
		return err
	}

	p.Name = name
	p.Category = string(category)
	if edit.Price != nil {
		p.Price = *edit.Price
	}
	if edit.Quantity != nil {
		p.Quantity = *edit.Quantity
	}
	if edit.Unit != nil {
		p.Unit = *edit.Unit
	}
	if edit.Discount != nil {
		p.Discount = *edit.Discount
	}
	p.ExpiryDate = expiry
	p.LongLife = longLife
	p.Status = StatusPending
	return nil
}
