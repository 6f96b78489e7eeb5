package dashboard_core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// amounts are decimal(10,2): two places after the point leaves
// eight digits before it.
var maxAmount = decimal.New(1, 8)

func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}
	if !d.Equal(d.Round(2)) {
		return fmt.Errorf("%w: amount has more than 2 decimal places", ErrValidation)
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: amount exceeds 10 digits", ErrValidation)
	}
	return nil
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, value)
	}
	return t, nil
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
