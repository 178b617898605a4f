package utils

import (
	"time"
)

// ISTLocation is the fixed +5:30 offset every attendance timestamp uses.
// The scanners all live in one timezone and IST has no DST.
var ISTLocation = time.FixedZone("IST", 5*3600+30*60)

// NowIST returns the current instant in IST.
func NowIST() time.Time {
	return time.Now().In(ISTLocation)
}

// DateStringIST returns t's calendar date in IST as "YYYY-MM-DD".
func DateStringIST(t time.Time) string {
	return t.In(ISTLocation).Format("2006-01-02")
}

// DayWindowUTC returns [00:00:00.000, 23:59:59.999] UTC for a "YYYY-MM-DD"
// date, the window the date query filters inTime against.
func DayWindowUTC(date string) (time.Time, time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := day.UTC()
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}
