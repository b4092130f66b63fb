package flags

import (
	"fmt"
	"time"
)

// set of accepted date layouts, most precise first
var dateFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04-0700",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02-0700",
	"2006-01-02",
}

const dateFormatDisplay = "2006-01-02T15:04:05Z07:00"

// Date is a date flag.
// Dates without a zone are read in the local time zone.
type Date struct {
	Time time.Time
}

// Type returns the date flag type
func (d Date) Type() string {
	return "Date"
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateFormatDisplay)
}

// Set parses and sets the date value
func (d *Date) Set(val string) error {
	t, err := ParseDate(val)
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

// ParseDate parses val using the first accepted layout that matches
func ParseDate(val string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.ParseInLocation(format, val, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date string: %s", val)
}
