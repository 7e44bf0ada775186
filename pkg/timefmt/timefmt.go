// Package timefmt renders webhook timestamps as human-readable UTC strings,
// e.g. "1st April 2021 - 9:30 PM UTC".
package timefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparseable is returned by Parse when no supported layout matches.
var ErrUnparseable = errors.New("timefmt: unparseable timestamp")

// layouts are tried in order after a trailing "Z" has been rewritten to "+00:00".
var layouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Formatter formats timestamps, substituting the current time when input is missing.
type Formatter struct {
	now func() time.Time
}

// New creates a Formatter. A nil clock defaults to time.Now.
func New(now func() time.Time) *Formatter {
	if now == nil {
		now = time.Now
	}
	return &Formatter{now: now}
}

// Format renders raw. Empty or unparseable input renders the current moment.
func (f *Formatter) Format(raw string) string {
	t, err := Parse(raw)
	if err != nil {
		return Render(f.Now())
	}
	return Render(t)
}

// Now returns the formatter's current time in UTC.
func (f *Formatter) Now() time.Time {
	return f.now().UTC()
}

// Parse reads an ISO-8601 style date-time. Inputs without a zone are read as UTC.
func Parse(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrUnparseable
	}

	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "+00:00"
	}
	// Space is accepted as the date/time separator
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, raw)
}

// Render formats t (converted to UTC) as "{day}{suffix} {Month} {Year} - {h}:{mm} {AM|PM} UTC".
func Render(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d%s %s UTC", t.Day(), OrdinalSuffix(t.Day()), t.Format("January 2006 - 3:04 PM"))
}

// OrdinalSuffix returns the English ordinal suffix for a day of month.
func OrdinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
