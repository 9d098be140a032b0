package order

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberPrefix builds the shared prefix of all order numbers for one product
// in one year, e.g. "WF-2026".
func NumberPrefix(initial string, year int) string {
	return fmt.Sprintf("%s-%d", initial, year)
}

// BuildNumber formats a full order number, e.g. "WF-2026-001". Sequences are
// zero-padded to three digits; a sequence past 999 simply widens.
func BuildNumber(initial string, year, sequence int) string {
	return fmt.Sprintf("%s-%d-%03d", initial, year, sequence)
}

// SequenceOf extracts the trailing sequence from an order number. Numbers
// that don't parse yield zero, so a malformed historical row never blocks
// new order creation.
func SequenceOf(orderNumber string) int {
	idx := strings.LastIndex(orderNumber, "-")
	if idx < 0 || idx == len(orderNumber)-1 {
		return 0
	}
	seq, err := strconv.Atoi(orderNumber[idx+1:])
	if err != nil {
		return 0
	}
	return seq
}
