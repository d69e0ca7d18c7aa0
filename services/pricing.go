// Package services holds the quotation core: pricing arithmetic, Indian
// number formatting, the invoice layout model and document generation.
package services

import (
	"strconv"
	"strings"

	"quotationbook/store"
)

// CalcLineAmount returns the amount for a single line item. It performs no
// validation: zero, fractional and even negative inputs all compute; the
// form flow is responsible for rejecting bad fields before save.
func CalcLineAmount(qty, rate float64) float64 {
	return qty * rate
}

// CalcQuotationTotal sums the line amounts. An empty item list totals 0.
func CalcQuotationTotal(items []store.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// ReconcileAdjustment resolves an advance or credit amount against its
// checkbox state at save time:
//
//   - disabled: always "0", overwriting whatever was stored
//   - enabled with no value: defaults to the total as of this call
//   - enabled with a value: the stored value verbatim, even above the total
//
// Advance and credit are reconciled independently; both may be non-zero at
// once and their sum may exceed the total.
func ReconcileAdjustment(enabled bool, current string, total float64) string {
	if !enabled {
		return "0"
	}
	if strings.TrimSpace(current) == "" {
		return strconv.FormatFloat(total, 'f', -1, 64)
	}
	return current
}

// RenumberItems rewrites serial numbers to 1..N in place, preserving order.
func RenumberItems(items []store.LineItem) {
	for i := range items {
		items[i].Sr = i + 1
	}
}

// RemoveItem drops the item at the given index and renumbers the remainder.
// An out-of-range index returns the slice unchanged.
func RemoveItem(items []store.LineItem, index int) []store.LineItem {
	if index < 0 || index >= len(items) {
		return items
	}
	items = append(items[:index], items[index+1:]...)
	RenumberItems(items)
	return items
}
