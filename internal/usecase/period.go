package usecase

import "time"

// Analytics periods understood by PeriodWindow.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// PeriodWindow resolves a named period into UTC bounds. Day boundaries follow
// the business offset; unknown names fall back to today.
func PeriodWindow(period string, now time.Time, offset time.Duration) (string, time.Time, time.Time) {
	zone := time.FixedZone("business", int(offset/time.Second))
	local := now.In(zone)

	switch period {
	case PeriodWeek:
		return PeriodWeek, now.Add(-7 * 24 * time.Hour).UTC(), now.UTC()
	case PeriodMonth:
		return PeriodMonth, local.AddDate(0, -1, 0).UTC(), now.UTC()
	default:
		start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zone)
		return PeriodToday, start.UTC(), start.AddDate(0, 0, 1).UTC()
	}
}
