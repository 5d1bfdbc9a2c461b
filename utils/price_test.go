package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"2,50 €", 2.50, true},
		{"2,50€", 2.50, true},
		{"1.85", 1.85, true},
		{"  0,99 € ", 0.99, true},
		{"12", 12, true},
		{"", 0, false},
		{"   ", 0, false},
		{"precio no disponible", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParsePrice(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		assert.InDelta(t, tt.want, got, 1e-9, "raw %q", tt.raw)
	}
}

func TestPriceOrZero(t *testing.T) {
	assert.InDelta(t, 3.15, PriceOrZero("3,15 €"), 1e-9)
	assert.Zero(t, PriceOrZero("n/a"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "2,50 €", FormatPrice(2.5))
	assert.Equal(t, "0,00 €", FormatPrice(0))
	assert.Equal(t, "12,35 €", FormatPrice(12.345))
}
