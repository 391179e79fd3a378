package field

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// splitDate reads day, month and year from the first three digit runs of s.
func splitDate(s string) (day, month, year int, ok bool) {
	tokens := strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if len(tokens) < 3 {
		return 0, 0, 0, false
	}
	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(tokens[i])
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// daysInMonth takes a 1-based month.
func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func validDay(day, month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth(month, year)
}

// parseDateBound accepts DD/MM/YYYY (any non-digit separator) or YYYY-MM-DD
// and returns midnight UTC of that day.
func parseDateBound(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	a, b, c, ok := splitDate(s)
	if !ok {
		return time.Time{}, fmt.Errorf("field: date bound %q: %w", s, ErrInvalidConfig)
	}
	day, month, year := a, b, c
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == 4 {
		year, month, day = a, b, c
	}
	if !validDay(day, month, year) {
		return time.Time{}, fmt.Errorf("field: date bound %q: %w", s, ErrInvalidConfig)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
