package utils

import (
	"fmt"
	"time"
)

const (
	// WireDateLayout is the MM-DD-YYYY format used by clients and data feeds.
	WireDateLayout = "01-02-2006"
	ISODateLayout  = "2006-01-02"
	ClockLayout    = "15:04"
)

func ParseWireDate(s string) (time.Time, error) {
	t, err := time.Parse(WireDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected MM-DD-YYYY", s)
	}
	return t, nil
}

func FormatWireDate(t time.Time) string {
	return t.Format(WireDateLayout)
}

func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// WireToISO converts MM-DD-YYYY to YYYY-MM-DD.
func WireToISO(s string) (string, error) {
	t, err := ParseWireDate(s)
	if err != nil {
		return "", err
	}
	return FormatISODate(t), nil
}

// ISOToWire converts YYYY-MM-DD to MM-DD-YYYY.
func ISOToWire(s string) (string, error) {
	t, err := ParseISODate(s)
	if err != nil {
		return "", err
	}
	return FormatWireDate(t), nil
}

// DateWindow returns [date-days, date+days].
func DateWindow(date time.Time, days int) (time.Time, time.Time) {
	return date.AddDate(0, 0, -days), date.AddDate(0, 0, days)
}

// NightsBetween counts whole calendar nights from checkIn to checkOut.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}
