package service

import (
	"time"

	"hotelier/internal/domains/report/model"
)

const defaultWindowDays = 30

// ResolveWindow turns a named preset into a half-open timestamp window
// [start, end). Both bounds fall on midnight so the window always covers
// whole calendar days. Relative presets run from today minus the preset span
// through today inclusive; a missing preset means the current month and an
// unknown one the last thirty days plus today.
func ResolveWindow(preset string, now time.Time) (start, end time.Time) {
	today := midnight(now)

	switch preset {
	case model.PresetToday:
		return today, today.AddDate(0, 0, 1)
	case model.PresetYesterday:
		return today.AddDate(0, 0, -1), today
	case model.PresetLast7Days:
		return today.AddDate(0, 0, -7), today.AddDate(0, 0, 1)
	case model.PresetThisMonth, "":
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		return firstOfMonth, today.AddDate(0, 0, 1)
	default:
		return today.AddDate(0, 0, -defaultWindowDays), today.AddDate(0, 0, 1)
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
