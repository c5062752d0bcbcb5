package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"a.b@c-d.com", true},
		{"john.doe+tag@example.com", true},
		{"UPPER@EXAMPLE.COM", true},
		{"a@b", false},
		{"a@b.c", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@.com", false},
		{"user name@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidEmail(tt.email))
		})
	}
}

func TestParseBalance(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "whole number", raw: "100", want: "100.00"},
		{name: "two decimals kept", raw: "42.37", want: "42.37"},
		{name: "rounds half away from zero", raw: "100.555", want: "100.56"},
		{name: "rounds three decimals", raw: "15750.999", want: "15751.00"},
		{name: "zero", raw: "0", want: "0.00"},
		{name: "upper bound accepted", raw: "1000000", want: "1000000.00"},
		{name: "surrounding spaces", raw: " 250 ", want: "250.00"},
		{name: "negative", raw: "-5", wantErr: ErrBalanceNegative},
		{name: "too large", raw: "2000000", wantErr: ErrBalanceTooLarge},
		{name: "just above bound", raw: "1000000.01", wantErr: ErrBalanceTooLarge},
		{name: "not a number", raw: "abc", wantErr: ErrBalanceFormat},
		{name: "empty", raw: "", wantErr: ErrBalanceFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBalance(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
