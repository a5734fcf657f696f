package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextReference(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{"empty table", "", "TXN001"},
		{"first increment", "TXN001", "TXN002"},
		{"keeps padding", "TXN009", "TXN010"},
		{"widens past 999", "TXN999", "TXN1000"},
		{"already wide", "TXN1234", "TXN1235"},
		{"surrounding spaces", "  TXN041 ", "TXN042"},
		{"missing prefix", "041", "TXN001"},
		{"garbage suffix", "TXN04a", "TXN001"},
		{"signed number", "TXN-5", "TXN001"},
		{"prefix only", "TXN", "TXN001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextReference(tt.last))
		})
	}
}

func TestParseReference(t *testing.T) {
	n, ok := ParseReference("TXN120")
	assert.True(t, ok)
	assert.Equal(t, 120, n)

	_, ok = ParseReference("REF120")
	assert.False(t, ok)
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "TXN007", FormatReference(7))
	assert.Equal(t, "TXN4321", FormatReference(4321))
}
