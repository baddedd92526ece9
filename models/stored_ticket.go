package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoredTicket is a ticket row as persisted in the ticket table
type StoredTicket struct {
	Date            time.Time       `db:"date"`
	Time            string          `db:"time"`
	RetailerLocNo   int             `db:"retailer_loc_no"`
	RetailerType    string          `db:"retailer_type"`
	PeriodNo        int             `db:"period_no"`
	DayNo           int             `db:"day_no"`
	ProductID       int             `db:"product_id"`
	TicketKeyString string          `db:"ticket_key_string"`
	Game            string          `db:"game"`
	Pack            string          `db:"pack"`
	CDC             int             `db:"cdc"`
	TicketAmount    decimal.Decimal `db:"ticket_amount"`
	BoardAmount     decimal.Decimal `db:"board_amount"`
	FirstDraw       int             `db:"first_draw"`
	LastDraw        int             `db:"last_draw"`
	NumberOfDraws   int             `db:"number_of_draws"`
	ControlNumber   string          `db:"control_number"`
	CheckDigit      *string         `db:"check_digit"`
	SerialNumber    *string         `db:"serial_number"`
	PlayType        string          `db:"play_type"`
	TransactionID   *string         `db:"transaction_id"`
	Cancelled       bool            `db:"cancelled"`
	Validated       bool            `db:"validated"`

	// Loaded alongside the row
	RiderEntries int
	Selections   []StoredSelection
}

// StoredSelection is one persisted board of a ticket
type StoredSelection struct {
	SelectionNumber int   `db:"selection_number"`
	Numbers         []int `db:"numbers"`
	QuickPick       bool  `db:"quick_pick"`
}
