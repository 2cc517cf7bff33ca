package shell

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func prompter(input string) *Prompter {
	return NewPrompter(strings.NewReader(input))
}

func TestLine(t *testing.T) {
	p := prompter("  hello world  \n")
	assert.Equal(t, "hello world", p.Line("? "))
	assert.False(t, p.EOF())

	// Exhausted input flips the EOF flag and yields empty strings.
	assert.Equal(t, "", p.Line("? "))
	assert.True(t, p.EOF())
}

func TestNonEmptyRepromptsUntilFilled(t *testing.T) {
	p := prompter("\n\nhoney\n")
	assert.Equal(t, "honey", p.NonEmpty("? "))
}

func TestNonEmptyGivesUpAtEOF(t *testing.T) {
	p := prompter("")
	assert.Equal(t, "", p.NonEmpty("? "))
	assert.True(t, p.EOF())
}

func TestYesNo(t *testing.T) {
	assert.True(t, prompter("y\n").YesNo("? "))
	assert.True(t, prompter("Y\n").YesNo("? "))
	assert.False(t, prompter("n\n").YesNo("? "))
	assert.False(t, prompter("yes\n").YesNo("? "))
	assert.False(t, prompter("\n").YesNo("? "))
}

func TestIntRepromptsOnBadInput(t *testing.T) {
	p := prompter("abc\n0\n3\n")
	assert.Equal(t, 3, p.Int("? ", 1))
}

func TestIntFailsClosedAtEOF(t *testing.T) {
	// Exhausted input must not yield a plausible ID: 0 never matches a
	// row, so no write path can act on it.
	p := prompter("")
	assert.Equal(t, 0, p.Int("? ", 1))
	assert.True(t, p.EOF())
}

func TestIntRangeFailsClosedAtEOF(t *testing.T) {
	p := prompter("bad\n")
	assert.Equal(t, 0, p.IntRange("? ", 1, 5))
	assert.True(t, p.EOF())
}

func TestFloatFailsClosedAtEOF(t *testing.T) {
	p := prompter("bad\n")
	assert.Equal(t, 0.0, p.Float("? ", 1))
	assert.True(t, p.EOF())
}

func TestIntRange(t *testing.T) {
	p := prompter("9\n5\n")
	assert.Equal(t, 5, p.IntRange("? ", 1, 5))
}

func TestFloatRepromptsOnBadInput(t *testing.T) {
	p := prompter("abc\n-1\n2.5\n")
	assert.Equal(t, 2.5, p.Float("? ", 0))
}

func TestEmailReprompts(t *testing.T) {
	p := prompter("nope\nuser@example.com\n")
	assert.Equal(t, "user@example.com", p.Email("? "))
}

func TestMobileReprompts(t *testing.T) {
	p := prompter("12345\n9876543210\n")
	assert.Equal(t, "9876543210", p.Mobile("? "))
}

func TestPasswordReprompts(t *testing.T) {
	p := prompter("short\nlongenough\n")
	assert.Equal(t, "longenough", p.Password("? "))
}

func TestPincodeReprompts(t *testing.T) {
	p := prompter("12\n560001\n")
	assert.Equal(t, "560001", p.Pincode("? "))
}

func TestPlaceNameReprompts(t *testing.T) {
	p := prompter("Sector 21\nBengaluru\n")
	assert.Equal(t, "Bengaluru", p.PlaceName("? "))
}

func TestDateReprompts(t *testing.T) {
	p := prompter("15-06-2024\n2024-06-15\n")
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), p.Date("? "))
}

func TestAddressComposite(t *testing.T) {
	p := prompter("42\nMG Road\nBengaluru\nKarnataka\n560001\n")
	address, pincode := p.Address()
	assert.Equal(t, "42, MG Road, Bengaluru, Karnataka - 560001", address)
	assert.Equal(t, "560001", pincode)
}
