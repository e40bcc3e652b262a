// Package expiry classifies posting expiry dates against a fixed civil time
// zone, so every reader of the listing sees the same active/expired state
// regardless of where they run the tools.
package expiry

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeZone anchors "today" for expiry math. The program office
// publishes dates in Toronto local time.
const DefaultTimeZone = "America/Toronto"

// soonWindowDays is the number of days (inclusive) before expiry during
// which a posting counts as expiring soon.
const soonWindowDays = 3

// Accepted layouts for the date strings in the published JSON.
var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// Status is the presentation-facing classification of one expiry date.
// Expired and ExpiringSoon are mutually exclusive.
type Status struct {
	Expired       bool
	ExpiringSoon  bool
	DaysRemaining int
}

// Clock yields the current time in the anchor zone.
type Clock struct {
	loc *time.Location
}

// NewClock loads the named zone (DefaultTimeZone when empty).
func NewClock(tzName string) (*Clock, error) {
	if tzName == "" {
		tzName = DefaultTimeZone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("expiry: invalid time zone %q: %w", tzName, err)
	}
	return &Clock{loc: loc}, nil
}

// Now returns the current time in the anchor zone.
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// ParseDate parses a published date string, trying each accepted layout.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("expiry: empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("expiry: unparseable date %q", s)
}

// Classify compares the expiry date with now using calendar dates only.
// DaysRemaining counts whole civil days: 0 means the posting expires today
// (not expired yet), -1 means it expired yesterday.
func Classify(expires string, now time.Time) (Status, error) {
	exp, err := ParseDate(expires)
	if err != nil {
		return Status{}, err
	}

	days := int(civilDate(exp).Sub(civilDate(now)).Hours() / 24)

	return Status{
		Expired:       days < 0,
		ExpiringSoon:  days >= 0 && days <= soonWindowDays,
		DaysRemaining: days,
	}, nil
}

// civilDate strips time-of-day and zone, leaving midnight UTC of the same
// calendar date. Doing the subtraction in UTC keeps day counts exact across
// DST transitions.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
