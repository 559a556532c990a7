package service_test

import (
	"testing"
	"time"

	"hotelier/internal/domains/report/model"
	"hotelier/internal/domains/report/service"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindow(t *testing.T) {
	// mid-afternoon on a Wednesday, mid-month
	now := time.Date(2025, 3, 12, 15, 30, 45, 0, time.UTC)

	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		preset    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today covers one whole day",
			preset:    model.PresetToday,
			wantStart: day(12),
			wantEnd:   day(13),
		},
		{
			name:      "yesterday ends at this midnight",
			preset:    model.PresetYesterday,
			wantStart: day(11),
			wantEnd:   day(12),
		},
		{
			name:      "last seven days spans a week plus today",
			preset:    model.PresetLast7Days,
			wantStart: day(5),
			wantEnd:   day(13),
		},
		{
			name:      "this month starts on the first",
			preset:    model.PresetThisMonth,
			wantStart: day(1),
			wantEnd:   day(13),
		},
		{
			name:      "missing preset means the current month",
			preset:    "",
			wantStart: day(1),
			wantEnd:   day(13),
		},
		{
			name:      "unknown preset falls back to thirty days plus today",
			preset:    "this_quarter",
			wantStart: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   day(13),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := service.ResolveWindow(tt.preset, now)

			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
