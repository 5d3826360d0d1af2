package optimizer

import (
	"strings"
	"time"
	"unicode"
)

const (
	MinDays = 1
	MaxDays = 365

	DaysErrorMessage         = "Please enter a number between 1 and 365"
	NameRequiredMessage      = "Name is required"
	ValidDateRequiredMessage = "Valid date is required"
)

// validDays reports whether text is acceptable PTO days input: empty, or starting with a number from 1 to 365
func validDays(text string) bool {
	if text == "" {
		return true
	}
	days, ok := parseLeadingInt(text)
	return ok && days >= MinDays && days <= MaxDays
}

// parseLeadingInt reads the integer at the start of s, after any leading white space.
// Trailing characters are ignored so "12 days" reads as 12. Values too large to matter are clamped.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
	negative := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	value := 0
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if value <= MaxDays*10 {
			value = value*10 + int(s[digits]-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}

// ValidateCompanyDay returns the field errors for day, nil when day can be stored
func ValidateCompanyDay(day CompanyDayOff) *FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(day.Name) == "" {
		errs.Name = NameRequiredMessage
	}
	if _, ok := parseDate(day.Date); !ok {
		errs.Date = ValidDateRequiredMessage
	}
	if errs.empty() {
		return nil
	}
	return &errs
}

// parseDate parses a yyyy-MM-dd calendar date
func parseDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
