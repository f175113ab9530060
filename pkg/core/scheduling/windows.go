package scheduling

import "time"

// Working hours are fixed studio-wide: bookings can only be placed
// between 09:00 and 17:00 on weekdays.
const (
	workdayStartHour = 9
	workdayEndHour   = 17
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) hours() float64 {
	return iv.End.Sub(iv.Start).Hours()
}

// workingWindow returns the full working-hours Interval for the given day.
func workingWindow(day time.Time) Interval {
	return Interval{
		Start: time.Date(day.Year(), day.Month(), day.Day(), workdayStartHour, 0, 0, 0, day.Location()),
		End:   time.Date(day.Year(), day.Month(), day.Day(), workdayEndHour, 0, 0, 0, day.Location()),
	}
}

// subtract removes block from window, returning the zero, one, or two
// sub-windows that remain. The block may be fully outside the window,
// cover it entirely, overlap one edge, or sit strictly inside it.
func subtract(window, block Interval) []Interval {
	// No overlap: window survives untouched
	if !block.Start.Before(window.End) || !block.End.After(window.Start) {
		return []Interval{window}
	}

	var remaining []Interval

	if block.Start.After(window.Start) {
		remaining = append(remaining, Interval{Start: window.Start, End: block.Start})
	}
	if block.End.Before(window.End) {
		remaining = append(remaining, Interval{Start: block.End, End: window.End})
	}

	return remaining
}

// subtractAll removes every block from every window.
func subtractAll(windows []Interval, blocks []Interval) []Interval {
	for _, block := range blocks {
		var next []Interval
		for _, window := range windows {
			next = append(next, subtract(window, block)...)
		}
		windows = next
	}
	return windows
}

// overlapsDay reports whether the half-open range [start, end) covers
// any part of the given calendar day.
func overlapsDay(start, end, day time.Time) bool {
	dayStart := midnight(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	return start.Before(dayEnd) && end.After(dayStart)
}

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// midnight truncates an instant to the start of its day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isWeekend reports whether the day is a Saturday or Sunday.
func isWeekend(day time.Time) bool {
	return day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
}
