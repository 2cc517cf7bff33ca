package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	assert.Equal(t, 500.0, OrderTotal(2, 250))
	assert.Equal(t, 0.0, OrderTotal(0, 250))

	// Fractional quantities round to two decimal places.
	assert.Equal(t, 33.33, OrderTotal(0.333, 100.1))
	assert.Equal(t, 0.1, OrderTotal(3, 0.0333))
}
