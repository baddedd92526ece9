package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PrizeFilter narrows a prize selection
type PrizeFilter struct {
	IncludeTicketKeyStrings []string
}

// AddIncludeTicketKeyString restricts the selection to the given ticket
func (f *PrizeFilter) AddIncludeTicketKeyString(key string) {
	f.IncludeTicketKeyStrings = append(f.IncludeTicketKeyStrings, key)
}

// Prize is one winning amount for a ticket in one draw
type Prize struct {
	TicketKeyString string          `db:"ticket_key_string"`
	DrawNumber      int             `db:"draw_number"`
	Division        string          `db:"division"`
	Amount          decimal.Decimal `db:"amount"`
}

// PrizeInfo is the result of a prize selection
type PrizeInfo struct {
	Prizes []Prize
}

// IsEmpty returns true if no prizes were selected
func (p *PrizeInfo) IsEmpty() bool {
	return p == nil || len(p.Prizes) == 0
}

// Total returns the sum of all prize amounts
func (p *PrizeInfo) Total() decimal.Decimal {
	total := decimal.Zero
	if p == nil {
		return total
	}
	for _, prize := range p.Prizes {
		total = total.Add(prize.Amount)
	}
	return total
}

func (p *PrizeInfo) String() string {
	if p.IsEmpty() {
		return ""
	}

	lines := make([]string, 0, len(p.Prizes)+1)
	for _, prize := range p.Prizes {
		lines = append(lines, fmt.Sprintf("DRAW %d  %-8s $  %s", prize.DrawNumber, prize.Division, prize.Amount.StringFixed(2)))
	}
	lines = append(lines, "TOTAL $  "+p.Total().StringFixed(2))
	return strings.Join(lines, "\n")
}
