// Package billing holds the pricing rules for a stay. Everything here is pure
// so the math can be tested without a database or clock.
package billing

import (
	"errors"
	"math"
	"time"

	"hotelier/shared/constant"
)

var ErrNegativeDuration = errors.New("check-out is before check-in")

// Rates is the rate card of a room class at the moment a stay is opened.
type Rates struct {
	Hourly    int64
	Daily     int64
	Overnight int64
}

// Charge is the priced duration of one room on a closed stay. Hours is
// informational for OVERNIGHT stays, which are billed flat.
type Charge struct {
	Units  int
	Hours  int
	Amount int64
}

// ResolveType normalizes a booking type. Anything unrecognized is billed as a
// daily stay.
func ResolveType(bookingType string) string {
	switch bookingType {
	case constant.BookingTypeHourly, constant.BookingTypeDaily, constant.BookingTypeOvernight:
		return bookingType
	default:
		return constant.BookingTypeDaily
	}
}

// ResolveSnapshot picks the rate matching the booking type. The caller stores
// it on the stay so later rate edits never reprice an open booking.
func ResolveSnapshot(bookingType string, rates Rates) int64 {
	switch ResolveType(bookingType) {
	case constant.BookingTypeHourly:
		return rates.Hourly
	case constant.BookingTypeOvernight:
		return rates.Overnight
	default:
		return rates.Daily
	}
}

// Calculate prices one room for the span between check-in and check-out.
//
// HOURLY bills every started hour with a one hour minimum. OVERNIGHT is a
// flat charge regardless of duration. DAILY bills every started day with a
// one day minimum.
func Calculate(bookingType string, checkIn, checkOut time.Time, snapshot int64) (Charge, error) {
	seconds := checkOut.Sub(checkIn).Seconds()
	if seconds < 0 {
		return Charge{}, ErrNegativeDuration
	}

	switch ResolveType(bookingType) {
	case constant.BookingTypeHourly:
		hours := ceilUnits(seconds, constant.SecondsPerHour)
		if hours < 1 {
			hours = 1
		}

		return Charge{Units: hours, Hours: hours, Amount: int64(hours) * snapshot}, nil
	case constant.BookingTypeOvernight:
		hours := ceilUnits(seconds, constant.SecondsPerHour)

		return Charge{Units: 1, Hours: hours, Amount: snapshot}, nil
	default:
		days := ceilUnits(seconds, constant.SecondsPerDay)
		if days < 1 {
			days = 1
		}

		return Charge{Units: days, Hours: days * constant.HoursPerDay, Amount: int64(days) * snapshot}, nil
	}
}

func ceilUnits(seconds float64, unit int) int {
	if seconds <= 0 {
		return 0
	}

	return int(math.Ceil(seconds / float64(unit)))
}
