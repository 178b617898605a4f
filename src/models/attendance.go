package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceRecord is one library visit. Name and branch are copied from the
// student at IN-scan time; renaming a student later does not rewrite history.
// OutTime is a pointer so an open visit stores no outTime field at all, which
// keeps the `outTime: {$exists: false}` open-record queries working.
type AttendanceRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RollNumber string             `bson:"rollNumber" json:"rollNumber"`
	CardID     string             `bson:"cardId" json:"cardId"`
	Name       string             `bson:"name" json:"name"`
	Branch     string             `bson:"branch" json:"branch"`
	InTime     time.Time          `bson:"inTime" json:"inTime"`
	OutTime    *time.Time         `bson:"outTime,omitempty" json:"outTime,omitempty"`
	Duration   string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Date       string             `bson:"date" json:"date"` // "YYYY-MM-DD" in IST
}

// Open reports whether the visit has started but not ended.
func (r *AttendanceRecord) Open() bool {
	return !r.InTime.IsZero() && r.OutTime == nil
}

// Close stamps the out-time and the derived duration, returning the minutes.
func (r *AttendanceRecord) Close(now time.Time) int {
	mins := DurationMins(r.InTime, now)
	r.OutTime = &now
	r.Duration = FormatDuration(mins)
	return mins
}

// DurationMins is floor((out-in)/60000) in minutes. A negative span (clock
// skew, out-of-order manual clock-out) clamps to zero so the ledger never
// shows a negative visit.
func DurationMins(in, out time.Time) int {
	mins := int(out.Sub(in).Milliseconds() / 60000)
	if mins < 0 {
		return 0
	}
	return mins
}

// FormatDuration renders minutes the way the ledger stores them: "5 mins".
func FormatDuration(mins int) string {
	return fmt.Sprintf("%d mins", mins)
}
