package payment

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// ReferencePrefix starts every transaction reference
	ReferencePrefix = "TXN"
	// FirstReference is used for the first payment and when the last
	// stored reference cannot be parsed
	FirstReference = "TXN001"
)

// NextReference returns the reference following last. References are
// TXN followed by a number zero-padded to three digits; numbers above 999
// simply widen the format.
func NextReference(last string) string {
	n, ok := ParseReference(last)
	if !ok {
		return FirstReference
	}
	return FormatReference(n + 1)
}

// ParseReference extracts the sequence number of a TXN reference
func ParseReference(ref string) (int, bool) {
	digits, found := strings.CutPrefix(strings.TrimSpace(ref), ReferencePrefix)
	if !found || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatReference formats a sequence number as a TXN reference
func FormatReference(n int) string {
	return fmt.Sprintf("%s%03d", ReferencePrefix, n)
}
