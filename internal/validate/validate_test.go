package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	assert.True(t, Email("user@example.com"))
	assert.True(t, Email("first.last@sub.example.co.in"))

	assert.False(t, Email(""))
	assert.False(t, Email("plainaddress"))
	assert.False(t, Email("missing@tld"))
	assert.False(t, Email("two@@example.com"))
	assert.False(t, Email("spaces in@example.com"))
}

func TestMobile(t *testing.T) {
	assert.True(t, Mobile("9876543210"))

	assert.False(t, Mobile(""))
	assert.False(t, Mobile("12345"))
	assert.False(t, Mobile("98765432101"))
	assert.False(t, Mobile("98765abc10"))
	assert.False(t, Mobile("+919876543210"))
}

func TestPincode(t *testing.T) {
	assert.True(t, Pincode("560001"))

	assert.False(t, Pincode("5600"))
	assert.False(t, Pincode("5600011"))
	assert.False(t, Pincode("56000a"))
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("secret"))
	assert.True(t, Password("longer password"))

	assert.False(t, Password(""))
	assert.False(t, Password("12345"))
}

func TestPlaceName(t *testing.T) {
	assert.True(t, PlaceName("Bengaluru"))
	assert.True(t, PlaceName("New Delhi"))

	assert.False(t, PlaceName(""))
	assert.False(t, PlaceName("Sector 21"))
}

func TestDate(t *testing.T) {
	d, err := Date("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = Date("15-06-2024")
	assert.Error(t, err)
	_, err = Date("2024-13-01")
	assert.Error(t, err)
	_, err = Date("")
	assert.Error(t, err)
}
