package services

import (
	"fmt"
	"strings"
)

// FormatIndianNumber formats the integer part of a numeric string using the
// Indian grouping convention: 1234567 -> "12,34,567". Parsing mirrors a
// lenient leading-integer read, so "250 approx" formats as "250" and an
// entirely non-numeric input degrades to "0" instead of failing.
func FormatIndianNumber(s string) string {
	negative, digits := leadingInteger(s)
	if digits == "" {
		return "0"
	}
	out := groupIndianDigits(digits)
	if negative && digits != "0" {
		out = "-" + out
	}
	return out
}

// FormatINR formats an amount in Indian Rupee notation with the ₹ sign,
// Indian digit grouping and exactly two decimal places.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	intPart, decPart, _ := strings.Cut(raw, ".")

	result := "₹" + groupIndianDigits(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupIndianDigits inserts commas into a digit string: the rightmost three
// digits form the first group, every two digits form the groups after that.
func groupIndianDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var groups []string
	rest := digits[:len(digits)-3]
	groups = append(groups, digits[len(digits)-3:])
	for len(rest) > 2 {
		groups = append(groups, rest[len(rest)-2:])
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// leadingInteger extracts the sign and leading digit run of a trimmed
// string. It reports no digits for inputs that do not start with a number.
func leadingInteger(s string) (negative bool, digits string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, ""
	}
	if s[0] == '+' || s[0] == '-' {
		negative = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	digits = s[:end]
	// Drop leading zeros but keep a lone zero.
	digits = strings.TrimLeft(digits, "0")
	if digits == "" && end > 0 {
		digits = "0"
	}
	return negative, digits
}
