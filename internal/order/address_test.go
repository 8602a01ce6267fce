package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateAddress(t *testing.T) {
	valid := Address{
		FullName:   "Ravi Kumar",
		Address:    "12 MG Road",
		City:       "Pune",
		PostalCode: "411001",
		Phone:      "9876543210",
	}

	assert.Empty(t, ValidateAddress(valid))

	t.Run("AllMissing", func(t *testing.T) {
		errs := ValidateAddress(Address{})
		assert.Len(t, errs, 5)
	})

	t.Run("WhitespaceOnly", func(t *testing.T) {
		a := valid
		a.City = "   "
		errs := ValidateAddress(a)
		assert.Contains(t, errs, "city")
	})

	t.Run("ShortPhone", func(t *testing.T) {
		a := valid
		a.Phone = "12345"
		errs := ValidateAddress(a)
		assert.Equal(t, "Please enter a valid 10-digit phone number", errs["phone"])
	})

	t.Run("NonNumericPhone", func(t *testing.T) {
		a := valid
		a.Phone = "98765abcde"
		errs := ValidateAddress(a)
		assert.Contains(t, errs, "phone")
	})
}

func TestIDSource_Monotonic(t *testing.T) {
	var src idSource
	now := time.Now()

	// The same instant repeatedly must still yield distinct ids.
	a := src.next(now)
	b := src.next(now)
	c := src.next(now)

	assert.Equal(t, now.UnixMilli(), a)
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, c)

	// A later clock jumps ahead normally.
	later := now.Add(5 * time.Second)
	assert.Equal(t, later.UnixMilli(), src.next(later))
}

func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 30, 45, 123_000_000, time.UTC)

	inv := GenerateInvoiceNumber(now)

	assert.Regexp(t, `^INV-20260830-123045-123-\d{4}$`, inv)
}
