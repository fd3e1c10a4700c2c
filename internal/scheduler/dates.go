package scheduler

import "time"

// dateLayout is the ISO calendar-date layout used at every boundary.
// Dates carry no time-of-day and no timezone; internally they are held
// at UTC midnight so comparisons can never be skewed by local offsets.
const dateLayout = "2006-01-02"

// ParseDate parses an ISO YYYY-MM-DD string into a date-only value.
// Returns nil for empty or malformed input; a bad date on one item must
// not abort a whole scheduling pass.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

// FormatDate renders a date-only value as ISO YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Date builds a date-only value at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays adds n days to d. With skipWeekends false this is plain
// calendar addition (n may be negative). With skipWeekends true the
// date advances or retreats one calendar day at a time and only
// Saturday/Sunday-free days count toward n, so the result always lands
// on a business day for nonzero n.
func AddDays(d time.Time, n int, skipWeekends bool) time.Time {
	if !skipWeekends {
		return d.AddDate(0, 0, n)
	}
	if n == 0 {
		return d
	}
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	cur := d
	for n > 0 {
		cur = cur.AddDate(0, 0, step)
		if !isWeekend(cur) {
			n--
		}
	}
	return cur
}

// DurationDays returns the span from start to end, exclusive of the
// start day: the whole-day difference, or with skipWeekends the count
// of Monday-Friday days stepped over. Either side missing means the
// duration is unknown and counts as 0.
//
// The span must be measured with the same weekend flag it is later
// projected with (AddDays), otherwise a placement that crosses a
// weekend grows its stored span and repeated passes stop being no-ops.
func DurationDays(start, end *time.Time, skipWeekends bool) int {
	if start == nil || end == nil {
		return 0
	}
	if skipWeekends {
		return businessDaysBetween(*start, *end)
	}
	days := end.Sub(*start).Hours() / 24
	// Dates sit on UTC midnights, so this is exact; ceil guards against
	// any stray time-of-day that slipped in at the boundary.
	n := int(days)
	if days > float64(n) {
		n++
	}
	return n
}

// businessDaysBetween counts the Monday-Friday days stepped over going
// from start to end, signed, excluding the start day itself. It is the
// inverse of AddDays with skipWeekends for weekday endpoints.
func businessDaysBetween(start, end time.Time) int {
	n := 0
	cur := start
	for cur.Before(end) {
		cur = cur.AddDate(0, 0, 1)
		if !isWeekend(cur) {
			n++
		}
	}
	for cur.After(end) {
		cur = cur.AddDate(0, 0, -1)
		if !isWeekend(cur) {
			n--
		}
	}
	return n
}

// ProjectEnd derives the end date for an item that moved to newStart,
// preserving the duration measured from its pre-change dates. Items
// with unknown duration collapse to a single day (end == start).
func ProjectEnd(newStart time.Time, origStart, origEnd *time.Time, skipWeekends bool) time.Time {
	return AddDays(newStart, DurationDays(origStart, origEnd, skipWeekends), skipWeekends)
}
