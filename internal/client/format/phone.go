package format

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitPhone breaks a Brazilian phone number like "(11) 98888-7777" into
// its area code (DDD) and local number. Parentheses, dashes and spaces are
// stripped before splitting.
func SplitPhone(phone string) (ddd int, number int64, err error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	// DDD (2 digits) + 8- or 9-digit local number.
	if len(digits) < 10 || len(digits) > 11 {
		return 0, 0, fmt.Errorf("invalid phone %q: expected 10 or 11 digits, got %d", phone, len(digits))
	}

	ddd, err = strconv.Atoi(digits[:2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid phone %q: %w", phone, err)
	}
	number, err = strconv.ParseInt(digits[2:], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid phone %q: %w", phone, err)
	}
	return ddd, number, nil
}

// JoinPhone renders a DDD + local number pair back into display form.
func JoinPhone(ddd int, number int64) string {
	s := strconv.FormatInt(number, 10)
	if len(s) < 8 {
		return fmt.Sprintf("(%02d) %s", ddd, s)
	}
	split := len(s) - 4
	return fmt.Sprintf("(%02d) %s-%s", ddd, s[:split], s[split:])
}
