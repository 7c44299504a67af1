package model

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the canonical date format used in messages.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order when parsing a date from a message.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"01/02/06",
}

// DateOf returns the calendar day of t, as seen in t's location,
// represented as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date typed by a subscriber. Any time of day is dropped.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
