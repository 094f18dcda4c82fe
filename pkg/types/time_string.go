package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// Used for working hours and slot start times, where only the time of day
// matters and timezone arithmetic would get in the way.
type TimeString string

var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// NewTimeString creates a TimeString from a time.Time, truncating to minutes
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

func (t TimeString) String() string {
	return string(t)
}

// ToMinutes returns the number of minutes since midnight.
// The value must have been constructed through one of the New* helpers.
func (t TimeString) ToMinutes() int {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes returns a new TimeString shifted forward by the given minutes.
// Returns an error if the result crosses midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.ToMinutes() + minutes)
}

// IsBefore reports whether t is strictly earlier in the day than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.ToMinutes() < other.ToMinutes()
}

// IsAfter reports whether t is strictly later in the day than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.ToMinutes() > other.ToMinutes()
}

// Validate checks that the underlying string is a well-formed HH:MM value
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// Value implements driver.Valuer so TimeString can be written to TIME/TEXT columns
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as time.Time
// through lib/pq, TEXT columns as string or []byte.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		if len(v) > 5 {
			v = v[:5] // "HH:MM:SS" -> "HH:MM"
		}
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeString, src)
	}
}
