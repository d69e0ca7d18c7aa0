package services

import (
	"errors"
	"strings"
)

// ErrAmountOutOfRange is returned for amounts NumberToWords cannot express:
// anything negative or at/above one hundred crore (10^9).
var ErrAmountOutOfRange = errors.New("amount out of range for words")

var wordOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords converts a non-negative integer to English words on the
// Indian scale: Hundred, Thousand (10^3), Lakh (10^5), Crore (10^7). The
// remainder after a Lakh or Crore split runs back through the same routine,
// so "Two Lakh Fifty Thousand" comes out of 250000 with the Thousand split
// intact. Zero sub-groups are elided. Amounts of one hundred crore and up
// are refused outright rather than rendered wrong.
func NumberToWords(n int64) (string, error) {
	if n < 0 || n >= 1_000_000_000 {
		return "", ErrAmountOutOfRange
	}
	if n == 0 {
		return "Zero", nil
	}
	return scaleWords(n), nil
}

func scaleWords(n int64) string {
	switch {
	case n < 1000:
		return belowThousandWords(n)
	case n < 100_000:
		head := belowThousandWords(n / 1000)
		return head + " Thousand" + remainderWords(n%1000, belowThousandWords)
	case n < 10_000_000:
		head := belowThousandWords(n / 100_000)
		return head + " Lakh" + remainderWords(n%100_000, scaleWords)
	default:
		head := belowThousandWords(n / 10_000_000)
		return head + " Crore" + remainderWords(n%10_000_000, scaleWords)
	}
}

func remainderWords(n int64, convert func(int64) string) string {
	if n == 0 {
		return ""
	}
	return " " + convert(n)
}

func belowThousandWords(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, wordOnes[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, wordOnes[n])
	default:
		if n%10 == 0 {
			parts = append(parts, wordTens[n/10])
		} else {
			parts = append(parts, wordTens[n/10]+" "+wordOnes[n%10])
		}
	}
	return strings.Join(parts, " ")
}
