package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantTotal string
		wantWager string
		wantFree  bool
		wantErr   bool
	}{
		{name: "dollar amounts", text: "$10.00($2.00)", wantTotal: "10", wantWager: "2"},
		{name: "plain numbers with spaces", text: " 10.00 ( 2.50 )", wantTotal: "10", wantWager: "2.5"},
		{name: "thousands separator", text: "$1,200.00($3.00)", wantTotal: "1200", wantWager: "3"},
		{name: "free play", text: "FREE", wantTotal: "0", wantWager: "0", wantFree: true},
		{name: "free play with wager text", text: "FREE($3.00)", wantTotal: "0", wantWager: "0", wantFree: true},
		{name: "non numeric amount", text: "abc(def)", wantErr: true},
		{name: "missing wager", text: "$10.00", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount, err := ParseAmount(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrAmountFormat)
				assert.True(t, amount.Total.IsZero())
				assert.True(t, amount.Wager.IsZero())
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(amount.Total), "total %s", amount.Total)
			assert.True(t, decimal.RequireFromString(tt.wantWager).Equal(amount.Wager), "wager %s", amount.Wager)
			assert.Equal(t, tt.wantFree, amount.Free)
		})
	}
}
