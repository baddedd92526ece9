package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FreeAmountToken marks a zero-cost ticket in the amount text
const FreeAmountToken = "FREE"

// Amount is the parsed form of an amount text such as "$10.00($2.50)"
type Amount struct {
	Total decimal.Decimal
	Wager decimal.Decimal
	Free  bool
}

// ParseAmount splits amount text into the ticket total and the per-board wager.
// "FREE" yields a zero total and leaves the wager unset.
func ParseAmount(text string) (Amount, error) {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '(' || r == ')'
	})

	if len(parts) > 0 && strings.TrimSpace(parts[0]) == FreeAmountToken {
		return Amount{Total: decimal.Zero, Wager: decimal.Zero, Free: true}, nil
	}

	var nonBlank []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonBlank = append(nonBlank, p)
		}
	}
	if len(nonBlank) != 2 {
		return Amount{}, fmt.Errorf("%w: %q does not hold an amount and a wager", ErrAmountFormat, text)
	}

	total, err := parseMoney(nonBlank[0])
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %v", ErrAmountFormat, text, err)
	}
	wager, err := parseMoney(nonBlank[1])
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %v", ErrAmountFormat, text, err)
	}

	return Amount{Total: total, Wager: wager}, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(strings.TrimSpace(s))
}
