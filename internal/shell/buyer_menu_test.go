package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sreeharigs/organicproduct/internal/model"
)

func TestDeliveryAddressPersistsNewCapture(t *testing.T) {
	s := &Shell{p: prompter("42\nMG Road\nBengaluru\nKarnataka\n560001\n")}
	buyer := &model.Buyer{}

	address, pincode, save := s.deliveryAddress(buyer)

	assert.Equal(t, "42, MG Road, Bengaluru, Karnataka - 560001", address)
	assert.Equal(t, "560001", pincode)
	assert.True(t, save, "a newly captured address is always saved back to the buyer")
}

func TestDeliveryAddressReusesSaved(t *testing.T) {
	s := &Shell{p: prompter("y\n")}
	buyer := &model.Buyer{
		Address: "7, Main St, Pune, Maharashtra - 411001",
		Pincode: "411001",
	}

	address, pincode, save := s.deliveryAddress(buyer)

	assert.Equal(t, buyer.Address, address)
	assert.Equal(t, "411001", pincode)
	assert.False(t, save, "reusing the stored address needs no write-back")
}

func TestDeliveryAddressDeclinedSavedStillPersistsNew(t *testing.T) {
	s := &Shell{p: prompter("n\n42\nMG Road\nBengaluru\nKarnataka\n560001\n")}
	buyer := &model.Buyer{
		Address: "7, Main St, Pune, Maharashtra - 411001",
		Pincode: "411001",
	}

	address, pincode, save := s.deliveryAddress(buyer)

	assert.Equal(t, "42, MG Road, Bengaluru, Karnataka - 560001", address)
	assert.Equal(t, "560001", pincode)
	assert.True(t, save)
}
