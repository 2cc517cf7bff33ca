package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreeharigs/organicproduct/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAllowedDays(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		longLife bool
		want     int
	}{
		{"food", CategoryFood, false, 365},
		{"long-life food", CategoryFood, true, 1825},
		{"personal care", CategoryPersonalCare, false, 1095},
		{"personal care ignores long-life", CategoryPersonalCare, true, 1095},
		{"other", CategoryOther, false, 3650},
		{"other ignores long-life", CategoryOther, true, 3650},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedDays(tt.category, tt.longLife))
		})
	}
}

func TestCategoryFromChoice(t *testing.T) {
	assert.Equal(t, CategoryFood, CategoryFromChoice(1))
	assert.Equal(t, CategoryPersonalCare, CategoryFromChoice(2))
	assert.Equal(t, CategoryOther, CategoryFromChoice(3))

	// Out-of-range selections fall back to Other.
	assert.Equal(t, CategoryOther, CategoryFromChoice(0))
	assert.Equal(t, CategoryOther, CategoryFromChoice(4))
	assert.Equal(t, CategoryOther, CategoryFromChoice(-1))
}

func TestValidateExpiry(t *testing.T) {
	mfg := date("2024-01-01")

	t.Run("expiry before manufacture", func(t *testing.T) {
		err := ValidateExpiry(mfg, date("2023-12-31"), CategoryFood, false)
		assert.ErrorIs(t, err, ErrExpiryNotAfterManufacture)
	})

	t.Run("expiry equal to manufacture", func(t *testing.T) {
		err := ValidateExpiry(mfg, mfg, CategoryFood, false)
		assert.ErrorIs(t, err, ErrExpiryNotAfterManufacture)
	})

	t.Run("food within one year", func(t *testing.T) {
		assert.NoError(t, ValidateExpiry(mfg, date("2024-12-30"), CategoryFood, false))
	})

	t.Run("food at exactly the ceiling", func(t *testing.T) {
		assert.NoError(t, ValidateExpiry(mfg, mfg.AddDate(0, 0, 365), CategoryFood, false))
	})

	t.Run("food past the ceiling", func(t *testing.T) {
		err := ValidateExpiry(mfg, date("2025-01-02"), CategoryFood, false)
		var windowErr *ExpiryWindowError
		require.ErrorAs(t, err, &windowErr)
		assert.Equal(t, CategoryFood, windowErr.Category)
		assert.False(t, windowErr.LongLife)
		assert.Equal(t, 365, windowErr.AllowedDays)
	})

	t.Run("long-life food extends the window", func(t *testing.T) {
		expiry := mfg.AddDate(0, 0, 1000)
		assert.Error(t, ValidateExpiry(mfg, expiry, CategoryFood, false))
		assert.NoError(t, ValidateExpiry(mfg, expiry, CategoryFood, true))
	})

	t.Run("long-life food past five years", func(t *testing.T) {
		err := ValidateExpiry(mfg, mfg.AddDate(0, 0, 1826), CategoryFood, true)
		var windowErr *ExpiryWindowError
		require.ErrorAs(t, err, &windowErr)
		assert.True(t, windowErr.LongLife)
		assert.Equal(t, 1825, windowErr.AllowedDays)
	})

	t.Run("personal care window", func(t *testing.T) {
		assert.NoError(t, ValidateExpiry(mfg, mfg.AddDate(0, 0, 1095), CategoryPersonalCare, false))
		assert.Error(t, ValidateExpiry(mfg, mfg.AddDate(0, 0, 1096), CategoryPersonalCare, false))
	})

	t.Run("other window", func(t *testing.T) {
		assert.NoError(t, ValidateExpiry(mfg, mfg.AddDate(0, 0, 3650), CategoryOther, false))
		assert.Error(t, ValidateExpiry(mfg, mfg.AddDate(0, 0, 3651), CategoryOther, false))
	})
}

func TestExpiryWindowErrorMessage(t *testing.T) {
	err := &ExpiryWindowError{Category: CategoryFood, LongLife: false, AllowedDays: 365}
	assert.Contains(t, err.Error(), "Food")
	assert.Contains(t, err.Error(), "1 years")
	assert.Contains(t, err.Error(), "mark long-life")

	err = &ExpiryWindowError{Category: CategoryFood, LongLife: true, AllowedDays: 1825}
	assert.Contains(t, err.Error(), "long-life food")
	assert.Contains(t, err.Error(), "5 years")
}

func sampleProduct(status string) *model.Product {
	return &model.Product{
		Name:            "Raw Honey",
		Category:        string(CategoryFood),
		Price:           250,
		Quantity:        10,
		Unit:            "kg",
		Status:          status,
		ManufactureDate: date("2024-01-01"),
		ExpiryDate:      date("2024-06-01"),
	}
}

func TestApplyEditKeepsValuesOnNilFields(t *testing.T) {
	p := sampleProduct(StatusPending)

	require.NoError(t, ApplyEdit(p, ProductEdit{}))

	assert.Equal(t, "Raw Honey", p.Name)
	assert.Equal(t, string(CategoryFood), p.Category)
	assert.Equal(t, 250.0, p.Price)
	assert.Equal(t, date("2024-06-01"), p.ExpiryDate)
	assert.Equal(t, StatusPending, p.Status)
}

func TestApplyEditAppliesFields(t *testing.T) {
	p := sampleProduct(StatusPending)

	name := "Wild Honey"
	price := 300.0
	qty := 25.0
	unit := "l"
	discount := 5.0
	expiry := date("2024-09-01")

	err := ApplyEdit(p, ProductEdit{
		Name:       &name,
		Price:      &price,
		Quantity:   &qty,
		Unit:       &unit,
		Discount:   &discount,
		ExpiryDate: &expiry,
	})
	require.NoError(t, err)

	assert.Equal(t, "Wild Honey", p.Name)
	assert.Equal(t, 300.0, p.Price)
	assert.Equal(t, 25.0, p.Quantity)
	assert.Equal(t, "l", p.Unit)
	assert.Equal(t, 5.0, p.Discount)
	assert.Equal(t, expiry, p.ExpiryDate)
}

func TestApplyEditFreezesApprovedIdentity(t *testing.T) {
	p := sampleProduct(StatusApproved)

	name := "Renamed"
	category := CategoryOther
	err := ApplyEdit(p, ProductEdit{Name: &name, Category: &category})
	require.NoError(t, err)

	assert.Equal(t, "Raw Honey", p.Name)
	assert.Equal(t, string(CategoryFood), p.Category)
}

func TestApplyEditAlwaysResetsToPending(t *testing.T) {
	for _, status := range []string{StatusPending, StatusApproved, StatusRejected} {
		p := sampleProduct(status)
		require.NoError(t, ApplyEdit(p, ProductEdit{}))
		assert.Equal(t, StatusPending, p.Status)
	}
}

func TestApplyEditValidatesAgainstOriginalManufactureDate(t *testing.T) {
	p := sampleProduct(StatusPending)

	// 2025-01-02 is 367 days after the 2024-01-01 manufacture date,
	// past the one-year food ceiling.
	expiry := date("2025-01-02")
	err := ApplyEdit(p, ProductEdit{ExpiryDate: &expiry})
	var windowErr *ExpiryWindowError
	require.ErrorAs(t, err, &windowErr)

	// A failed edit leaves the product untouched.
	assert.Equal(t, date("2024-06-01"), p.ExpiryDate)
	assert.Equal(t, StatusPending, p.Status)
}

func TestApplyEditToggleLongLife(t *testing.T) {
	t.Run("toggle on extends the food window", func(t *testing.T) {
		p := sampleProduct(StatusPending)
		expiry := date("2027-01-01")

		err := ApplyEdit(p, ProductEdit{ExpiryDate: &expiry})
		assert.Error(t, err)

		err = ApplyEdit(p, ProductEdit{ExpiryDate: &expiry, ToggleLongLife: true})
		require.NoError(t, err)
		assert.True(t, p.LongLife)
	})

	t.Run("toggle off re-checks the short window", func(t *testing.T) {
		p := sampleProduct(StatusPending)
		p.LongLife = true
		p.ExpiryDate = date("2027-01-01")

		err := ApplyEdit(p, ProductEdit{ToggleLongLife: true})
		var windowErr *ExpiryWindowError
		require.ErrorAs(t, err, &windowErr)
		assert.True(t, p.LongLife)
	})

	t.Run("toggle ignored outside food", func(t *testing.T) {
		p := sampleProduct(StatusPending)
		p.Category = string(CategoryOther)

		require.NoError(t, ApplyEdit(p, ProductEdit{ToggleLongLife: true}))
		assert.False(t, p.LongLife)
	})
}

func TestErrExpiryNotAfterManufactureIsSentinel(t *testing.T) {
	err := ValidateExpiry(date("2024-01-01"), date("2024-01-01"), CategoryOther, false)
	assert.True(t, errors.Is(err, ErrExpiryNotAfterManufacture))
}
