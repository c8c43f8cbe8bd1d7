package grocery

import (
	"Smart-Grocery-Backend/domain"
	"time"
)

const (
	// DateLayout is the ISO calendar-date form used for every stored date.
	// Dates never carry a timezone; expiry arithmetic is pure calendar math.
	DateLayout = "2006-01-02"

	// DefaultShelfLifeDays backstops missing, zero, or negative shelf lives
	// on creation and update alike.
	DefaultShelfLifeDays = 7

	StatusExpired      = "Expired"
	StatusExpiringSoon = "Expiring Soon"
	StatusFresh        = "Fresh"
)

// ComputeExpiry adds the shelf life to the purchase date and returns the
// expiry date in YYYY-MM-DD form. A shelf life below one day is coerced to
// DefaultShelfLifeDays.
func ComputeExpiry(purchaseDate string, shelfLifeDays int) (string, error) {
	dt, err := time.Parse(DateLayout, purchaseDate)
	if err != nil {
		return "", domain.ErrInvalidPurchaseDate
	}

	if shelfLifeDays < 1 {
		shelfLifeDays = DefaultShelfLifeDays
	}

	return dt.AddDate(0, 0, shelfLifeDays).Format(DateLayout), nil
}

// DaysLeft returns the whole calendar days between today and the expiry
// date. The result is negative once the expiry date has passed.
func DaysLeft(expiryDate string, today time.Time) (int, error) {
	exp, err := time.Parse(DateLayout, expiryDate)
	if err != nil {
		return 0, domain.ErrInvalidPurchaseDate
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(exp.Sub(day).Hours() / 24), nil
}

// ClassifyExpiry buckets an expiry date relative to today: Expired when the
// date has passed, Expiring Soon within the threshold (inclusive), Fresh
// otherwise.
func ClassifyExpiry(expiryDate string, today time.Time, soonThresholdDays int) (string, error) {
	daysLeft, err := DaysLeft(expiryDate, today)
	if err != nil {
		return "", err
	}

	switch {
	case daysLeft < 0:
		return StatusExpired, nil
	case daysLeft <= soonThresholdDays:
		return StatusExpiringSoon, nil
	default:
		return StatusFresh, nil
	}
}
