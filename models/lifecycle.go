package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Placeholders substituted when cancellation and validation notices are displayed
const (
	PlaceholderTicketNumber = "{TICKET_NUMBER}"
	PlaceholderGame         = "{GAME}"
)

// Cancellation is the record of a cancelled ticket
type Cancellation struct {
	TicketKeyString string    `db:"ticket_key_string"`
	CancelledAt     time.Time `db:"cancelled_at"`
	RetailerLocNo   int       `db:"retailer_loc_no"`
	Reason          string    `db:"reason"`
}

func (c *Cancellation) String() string {
	lines := []string{
		"*** CANCELLED ***",
		PlaceholderGame,
		"TICKET " + PlaceholderTicketNumber,
		c.CancelledAt.Format("2006-01-02 15:04:05"),
		fmt.Sprintf("SYSID %06d", c.RetailerLocNo),
	}
	if c.Reason != "" {
		lines = append(lines, "REASON: "+c.Reason)
	}
	return strings.Join(lines, "\n")
}

// Validation is one validation (prize claim) recorded against a ticket
type Validation struct {
	TicketKeyString string          `db:"ticket_key_string"`
	ValidatedAt     time.Time       `db:"validated_at"`
	RetailerLocNo   int             `db:"retailer_loc_no"`
	PrizeAmount     decimal.Decimal `db:"prize_amount"`
}

func (v *Validation) String() string {
	return strings.Join([]string{
		"*** VALIDATED ***",
		PlaceholderGame,
		"TICKET " + PlaceholderTicketNumber,
		v.ValidatedAt.Format("2006-01-02 15:04:05"),
		fmt.Sprintf("SYSID %06d", v.RetailerLocNo),
		"PAID $  " + v.PrizeAmount.StringFixed(2),
	}, "\n")
}

// fillPlaceholders substitutes ticket details into a notice template
func fillPlaceholders(template, ticketNumber, game string) string {
	return strings.NewReplacer(
		PlaceholderTicketNumber, ticketNumber,
		PlaceholderGame, game,
	).Replace(template)
}
