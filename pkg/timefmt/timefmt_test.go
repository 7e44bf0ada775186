package timefmt_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"git-activity-feed/pkg/timefmt"
)

var renderedPattern = regexp.MustCompile(`^\d{1,2}(st|nd|rd|th) [A-Z][a-z]+ \d{4} - \d{1,2}:\d{2} (AM|PM) UTC$`)

func fixedClock() time.Time {
	return time.Date(2024, 5, 2, 8, 7, 0, 0, time.UTC)
}

func TestFormat(t *testing.T) {
	f := timefmt.New(fixedClock)
	now := "2nd May 2024 - 8:07 AM UTC"

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "Z suffix evening", raw: "2021-04-01T21:30:00Z", want: "1st April 2021 - 9:30 PM UTC"},
		{name: "Midnight on the 11th", raw: "2021-04-11T00:00:00Z", want: "11th April 2021 - 12:00 AM UTC"},
		{name: "Afternoon on the 23rd", raw: "2021-04-23T13:05:00Z", want: "23rd April 2021 - 1:05 PM UTC"},
		{name: "Noon", raw: "2021-04-02T12:00:00Z", want: "2nd April 2021 - 12:00 PM UTC"},
		{name: "Fractional seconds", raw: "2021-04-03T09:15:42.123Z", want: "3rd April 2021 - 9:15 AM UTC"},
		{name: "Explicit zero offset", raw: "2021-04-12T10:00:00+00:00", want: "12th April 2021 - 10:00 AM UTC"},
		{name: "Positive offset converted to UTC", raw: "2021-04-21T03:30:00+05:30", want: "20th April 2021 - 10:00 PM UTC"},
		{name: "Offset without colon", raw: "2021-04-22T10:00:00-0200", want: "22nd April 2021 - 12:00 PM UTC"},
		{name: "Naive read as UTC", raw: "2021-04-13T07:45:00", want: "13th April 2021 - 7:45 AM UTC"},
		{name: "Out of range day falls back to now", raw: "2021-04-31 07:45:00", want: now},
		{name: "Space separator", raw: "2021-04-30 07:45:00", want: "30th April 2021 - 7:45 AM UTC"},
		{name: "Date only", raw: "2021-12-31", want: "31st December 2021 - 12:00 AM UTC"},
		{name: "Empty falls back to now", raw: "", want: now},
		{name: "Garbage falls back to now", raw: "yesterday-ish", want: now},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Format(tc.raw); got != tc.want {
				t.Errorf("Format(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestFormat_DefaultClockMatchesPattern(t *testing.T) {
	f := timefmt.New(nil)
	for _, raw := range []string{"", "not a date", "2021-13-45T99:99:99Z"} {
		got := f.Format(raw)
		if !renderedPattern.MatchString(got) {
			t.Errorf("Format(%q) = %q, does not match rendered pattern", raw, got)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := timefmt.Parse("2021-04-01T21:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2021, 4, 1, 21, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}

	if _, err := timefmt.Parse("nope"); !errors.Is(err, timefmt.ErrUnparseable) {
		t.Errorf("expected ErrUnparseable, got %v", err)
	}
}

func TestOrdinalSuffix(t *testing.T) {
	want := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th", 10: "th",
		11: "th", 12: "th", 13: "th", 14: "th",
		21: "st", 22: "nd", 23: "rd", 24: "th", 30: "th", 31: "st",
	}
	for day, suffix := range want {
		if got := timefmt.OrdinalSuffix(day); got != suffix {
			t.Errorf("OrdinalSuffix(%d) = %q, want %q", day, got, suffix)
		}
	}
}
