// Package format converts between the backend's wire formats and the values
// the screens work with: datetime layouts and Brazilian phone numbers.
package format

import (
	"fmt"
	"strings"
	"time"
)

const (
	// backendLayout is the datetime layout the backend accepts and emits.
	backendLayout = "2006-01-02 15:04"

	// backendDateLayout is the date-only variant used for birth dates and
	// activity days.
	backendDateLayout = "2006-01-02"

	// inputDateLayout is the dd/mm/yyyy form users type into date fields.
	inputDateLayout = "02/01/2006"
)

// ParseBackendTime parses a backend datetime. Dashes are accepted in the
// date part even though the original backend sometimes emits them where a
// slash-tolerant parser was expected.
func ParseBackendTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(backendLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(backendDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid backend datetime %q: %w", s, err)
	}
	return t, nil
}

// FormatBackendTime renders t the way the backend wants datetimes.
func FormatBackendTime(t time.Time) string {
	return t.Format(backendLayout)
}

// FormatBackendDate renders t as a date-only backend value.
func FormatBackendDate(t time.Time) string {
	return t.Format(backendDateLayout)
}

// ParseInputDate parses a dd/mm/yyyy date typed by the user.
func ParseInputDate(s string) (time.Time, error) {
	t, err := time.Parse(inputDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected dd/mm/yyyy): %w", s, err)
	}
	return t, nil
}

// DisplayDate renders a backend date for the screens (dd/mm/yyyy). Invalid
// values are returned unchanged so lists never fail to render.
func DisplayDate(s string) string {
	t, err := ParseBackendTime(s)
	if err != nil {
		return s
	}
	return t.Format(inputDateLayout)
}
