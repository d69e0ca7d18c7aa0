package services

import (
	"errors"
	"testing"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "Zero"},
		{"single digit", 7, "Seven"},
		{"teens", 14, "Fourteen"},
		{"tens", 40, "Forty"},
		{"tens with ones", 99, "Ninety Nine"},
		{"hundred", 100, "One Hundred"},
		{"hundred with remainder", 105, "One Hundred Five"},
		{"three digits", 999, "Nine Hundred Ninety Nine"},
		{"thousand", 1000, "One Thousand"},
		{"thousand with hundreds", 1500, "One Thousand Five Hundred"},
		{"tens of thousands", 45250, "Forty Five Thousand Two Hundred Fifty"},
		{"lakh", 100000, "One Lakh"},
		{"lakhs", 250000, "Two Lakh Fifty Thousand"},
		{"lakhs with remainder", 1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{"crore", 10000000, "One Crore"},
		{"crores with remainder", 12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{"largest supported", 999999999, "Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NumberToWords(tt.input)
			if err != nil {
				t.Fatalf("NumberToWords(%d) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NumberToWords(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNumberToWords_OutOfRange(t *testing.T) {
	for _, n := range []int64{1_000_000_000, -1} {
		_, err := NumberToWords(n)
		if !errors.Is(err, ErrAmountOutOfRange) {
			t.Errorf("NumberToWords(%d) error = %v, want ErrAmountOutOfRange", n, err)
		}
	}
}
