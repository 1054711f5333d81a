package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsMoney(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "120", want: true},
		{in: "19.99", want: true},
		{in: "1.500", want: true},
		{in: "0.005", want: false},
		{in: "10.001", want: false},
		{in: "-3.1", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMoney(decimal.RequireFromString(tt.in)))
		})
	}
}
