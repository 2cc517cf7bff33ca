package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sreeharigs/organicproduct/internal/validate"
)

// Prompter reads and validates interactive input. Validating prompts
// re-ask until the input is acceptable; once the underlying reader is
// exhausted they give up and return the zero value so menu loops can
// unwind instead of spinning.
type Prompter struct {
	r   *bufio.Reader
	eof bool
}

func NewPrompter(r io.Reader) *Prompter {
	return &Prompter{r: bufio.NewReader(r)}
}

// EOF reports whether the input source is exhausted.
func (p *Prompter) EOF() bool {
	return p.eof
}

// Line prints the label and returns one trimmed line of input.
func (p *Prompter) Line(label string) string {
	if p.eof {
		return ""
	}
	fmt.Print(label)
	line, err := p.r.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

// NonEmpty re-prompts until the input is not blank.
func (p *Prompter) NonEmpty(label string) string {
	for {
		s := p.Line(label)
		if s != "" || p.eof {
			return s
		}
		Fail("Input cannot be empty.")
	}
}

// YesNo returns true for a "y"/"Y" answer.
func (p *Prompter) YesNo(label string) bool {
	return strings.EqualFold(p.Line(label), "y")
}

// Int re-prompts until the input is an integer of at least min. Once the
// input source is exhausted it returns 0 without validating, so ID lookups
// and cancel checks driven by the value fail closed instead of writing.
func (p *Prompter) Int(label string, min int) int {
	for {
		s := p.Line(label)
		if p.eof && s == "" {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			Fail("Please enter a valid number.")
			continue
		}
		if n < min {
			Fail("Value must be at least %d.", min)
			continue
		}
		return n
	}
}

// IntRange re-prompts until the input is an integer within [min, max].
func (p *Prompter) IntRange(label string, min, max int) int {
	for {
		n := p.Int(label, min)
		if n <= max || p.eof {
			return n
		}
		Fail("Value must not exceed %d.", max)
	}
}

// Float re-prompts until the input is a number of at least min. Exhausted
// input yields 0, which every quantity and price consumer rejects.
func (p *Prompter) Float(label string, min float64) float64 {
	for {
		s := p.Line(label)
		if p.eof && s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			Fail("Invalid input! Please enter a valid number.")
			continue
		}
		if f < min {
			Fail("Value must be at least %g.", min)
			continue
		}
		return f
	}
}

// Email re-prompts until the input looks like an email address.
func (p *Prompter) Email(label string) string {
	for {
		s := p.Line(label)
		if validate.Email(s) || p.eof {
			return s
		}
		Fail("Invalid email format.")
	}
}

// Mobile re-prompts until the input is exactly 10 digits.
func (p *Prompter) Mobile(label string) string {
	for {
		s := p.Line(label)
		if validate.Mobile(s) || p.eof {
			return s
		}
		Fail("Invalid mobile number. Must be exactly 10 digits.")
	}
}

// Password re-prompts until the input is at least 6 characters.
func (p *Prompter) Password(label string) string {
	for {
		s := p.Line(label)
		if validate.Password(s) || p.eof {
			return s
		}
		Fail("Password too short. Minimum 6 characters required.")
	}
}

// Pincode re-prompts until the input is exactly 6 digits.
func (p *Prompter) Pincode(label string) string {
	for {
		s := p.Line(label)
		if validate.Pincode(s) || p.eof {
			return s
		}
		Fail("Invalid pincode. Must be exactly 6 digits.")
	}
}

// PlaceName re-prompts until the input is non-empty and digit-free.
func (p *Prompter) PlaceName(label string) string {
	for {
		s := p.Line(label)
		if validate.PlaceName(s) || p.eof {
			return s
		}
		if s == "" {
			Fail("Input cannot be empty.")
		} else {
			Fail("Input should not contain numbers.")
		}
	}
}

// Date re-prompts until the input parses as a YYYY-MM-DD date.
func (p *Prompter) Date(label string) time.Time {
	for {
		s := p.Line(label)
		t, err := validate.Date(s)
		if err == nil || p.eof {
			return t
		}
		Fail("Invalid date format! Use YYYY-MM-DD.")
	}
}

// Address collects the delivery address pieces and returns the composite
// address string plus the pincode.
func (p *Prompter) Address() (string, string) {
	Title("--- Enter Address Details ---")
	house := p.NonEmpty("House/Flat No: ")
	street := p.NonEmpty("Street/Locality: ")
	city := p.PlaceName("City: ")
	state := p.PlaceName("State: ")
	pincode := p.Pincode("Enter pincode: ")
	return fmt.Sprintf("%s, %s, %s, %s - %s", house, street, city, state, pincode), pincode
}
