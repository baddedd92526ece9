package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// GameRegistry resolves game descriptors
type GameRegistry interface {
	GameByName(name string) (*Game, error)
	GameByNumber(number int) (*Game, error)
}

// DrawDay is a calendar day holding a draw
type DrawDay struct {
	DrawNumber int
	Date       time.Time
}

// DrawCalendar maps a game's draw number to the day(s) containing it
type DrawCalendar interface {
	DrawDays(game *Game, drawNumber int) ([]DrawDay, error)
}

// Board is one play on a ticket. Selection encoding is game specific.
type Board interface {
	Cost() decimal.Decimal
	SelectionCount() int
	Size() int
	IsQuickPick() bool
	String() string
}

// SelectionBoard is a board whose picks can be stored and rebuilt by a BoardFactory
type SelectionBoard interface {
	Board
	Selection() []int
}

// BoardFactory builds the board type of a game from a selection
type BoardFactory interface {
	NewBoard(game *Game, selection []int, quickPick bool) (Board, error)
}

// Rider is the add-on play a ticket may carry
type Rider interface {
	Wager() decimal.Decimal
	Size() int
}

// CancellationLookup returns the cancellation of a ticket, or nil when there is none
type CancellationLookup interface {
	CancellationByTicketKey(ctx context.Context, ticketKey string) (*Cancellation, error)
}

// ValidationLookup returns the validations recorded against a ticket
type ValidationLookup interface {
	ValidationsByTicketKey(ctx context.Context, ticketKey string) ([]*Validation, error)
}

// PrizeSelector returns prize information matching a filter
type PrizeSelector interface {
	Select(ctx context.Context, filter PrizeFilter) (*PrizeInfo, error)
}

// Dependencies bundles the collaborators used while building and inspecting tickets.
// They are constructed once at startup and shared by every ticket.
type Dependencies struct {
	Games         GameRegistry
	Calendar      DrawCalendar
	Boards        BoardFactory
	Prizes        PrizeSelector
	Cancellations CancellationLookup
	Validations   ValidationLookup
}
