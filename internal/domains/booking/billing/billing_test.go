package billing_test

import (
	"testing"
	"time"

	"hotelier/internal/domains/booking/billing"
	"hotelier/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		bookingType string
		checkOut    time.Time
		snapshot    int64
		wantUnits   int
		wantHours   int
		wantAmount  int64
	}{
		{
			name:        "hourly ten minutes bills one hour",
			bookingType: constant.BookingTypeHourly,
			checkOut:    checkIn.Add(10 * time.Minute),
			snapshot:    50_000,
			wantUnits:   1,
			wantHours:   1,
			wantAmount:  50_000,
		},
		{
			name:        "hourly started hour rounds up",
			bookingType: constant.BookingTypeHourly,
			checkOut:    checkIn.Add(2*time.Hour + time.Minute),
			snapshot:    50_000,
			wantUnits:   3,
			wantHours:   3,
			wantAmount:  150_000,
		},
		{
			name:        "hourly zero duration still bills the minimum",
			bookingType: constant.BookingTypeHourly,
			checkOut:    checkIn,
			snapshot:    50_000,
			wantUnits:   1,
			wantHours:   1,
			wantAmount:  50_000,
		},
		{
			name:        "daily twenty five hours bills two days",
			bookingType: constant.BookingTypeDaily,
			checkOut:    checkIn.Add(25 * time.Hour),
			snapshot:    300_000,
			wantUnits:   2,
			wantHours:   48,
			wantAmount:  600_000,
		},
		{
			name:        "daily short stay bills one day",
			bookingType: constant.BookingTypeDaily,
			checkOut:    checkIn.Add(3 * time.Hour),
			snapshot:    300_000,
			wantUnits:   1,
			wantHours:   24,
			wantAmount:  300_000,
		},
		{
			name:        "overnight is flat regardless of duration",
			bookingType: constant.BookingTypeOvernight,
			checkOut:    checkIn.Add(30 * time.Hour),
			snapshot:    250_000,
			wantUnits:   1,
			wantHours:   30,
			wantAmount:  250_000,
		},
		{
			name:        "unknown type falls back to daily",
			bookingType: "WEEKLY",
			checkOut:    checkIn.Add(2 * time.Hour),
			snapshot:    300_000,
			wantUnits:   1,
			wantHours:   24,
			wantAmount:  300_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charge, err := billing.Calculate(tt.bookingType, checkIn, tt.checkOut, tt.snapshot)
			require.NoError(t, err)

			assert.Equal(t, tt.wantUnits, charge.Units)
			assert.Equal(t, tt.wantHours, charge.Hours)
			assert.Equal(t, tt.wantAmount, charge.Amount)
		})
	}
}

func TestCalculateNegativeDuration(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(-time.Minute)

	_, err := billing.Calculate(constant.BookingTypeHourly, checkIn, checkOut, 50_000)

	assert.ErrorIs(t, err, billing.ErrNegativeDuration)
}

func TestResolveType(t *testing.T) {
	assert.Equal(t, constant.BookingTypeHourly, billing.ResolveType(constant.BookingTypeHourly))
	assert.Equal(t, constant.BookingTypeOvernight, billing.ResolveType(constant.BookingTypeOvernight))
	assert.Equal(t, constant.BookingTypeDaily, billing.ResolveType(""))
	assert.Equal(t, constant.BookingTypeDaily, billing.ResolveType("SOMETHING_ELSE"))
}

func TestResolveSnapshot(t *testing.T) {
	rates := billing.Rates{Hourly: 10, Daily: 20, Overnight: 30}

	assert.Equal(t, int64(10), billing.ResolveSnapshot(constant.BookingTypeHourly, rates))
	assert.Equal(t, int64(20), billing.ResolveSnapshot(constant.BookingTypeDaily, rates))
	assert.Equal(t, int64(30), billing.ResolveSnapshot(constant.BookingTypeOvernight, rates))
	assert.Equal(t, int64(20), billing.ResolveSnapshot("UNKNOWN", rates))
}
