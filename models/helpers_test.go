package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var testLotto = &Game{
	Name:        "LOTTO649",
	Number:      1,
	Description: "Lotto 6/49",
	BoardPrice:  decimal.RequireFromString("3.00"),
	Picks:       6,
	Pool:        49,
	Rider:       &RiderConfig{Name: "EXTRA", Price: decimal.RequireFromString("1.00")},
}

type stubGames map[string]*Game

func (s stubGames) GameByName(name string) (*Game, error) {
	if g, ok := s[strings.ToUpper(name)]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownGame, name)
}

func (s stubGames) GameByNumber(number int) (*Game, error) {
	for _, g := range s {
		if g.Number == number {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownGame, number)
}

type MockCancellationLookup struct {
	mock.Mock
}

func (m *MockCancellationLookup) CancellationByTicketKey(ctx context.Context, ticketKey string) (*Cancellation, error) {
	args := m.Called(ctx, ticketKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cancellation), args.Error(1)
}

type MockValidationLookup struct {
	mock.Mock
}

func (m *MockValidationLookup) ValidationsByTicketKey(ctx context.Context, ticketKey string) ([]*Validation, error) {
	args := m.Called(ctx, ticketKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Validation), args.Error(1)
}

type MockPrizeSelector struct {
	mock.Mock
}

func (m *MockPrizeSelector) Select(ctx context.Context, filter PrizeFilter) (*PrizeInfo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PrizeInfo), args.Error(1)
}

type MockDrawCalendar struct {
	mock.Mock
}

func (m *MockDrawCalendar) DrawDays(game *Game, drawNumber int) ([]DrawDay, error) {
	args := m.Called(game, drawNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DrawDay), args.Error(1)
}

type fixedBoard struct {
	cost      string
	count     int
	quickPick bool
}

func (b fixedBoard) Cost() decimal.Decimal { return decimal.RequireFromString(b.cost) }
func (b fixedBoard) SelectionCount() int   { return b.count }
func (b fixedBoard) Size() int             { return 1 }
func (b fixedBoard) IsQuickPick() bool     { return b.quickPick }
func (b fixedBoard) String() string        { return "BOARD " + b.cost }

func testDependencies() *Dependencies {
	return &Dependencies{
		Games:  stubGames{"LOTTO649": testLotto},
		Boards: NumberBoardFactory{},
	}
}

func testRecord() Record {
	return Record{
		"date":              "2024-03-15",
		"time":              "14:03:22",
		"retailer_loc_no":   "104233",
		"retailer_type":     "regular",
		"period_no":         "12",
		"day_no":            "75",
		"cdc":               "8841",
		"product_id":        "1",
		"ticket_key_string": "T-0001",
		"game":              "LOTTO649",
		"options":           "STD",
		"amount_text":       "$12.00($3.00)",
		"details":           "000100-000103 004 12-3456-1234567 / 01-2345-67-12345678",
	}
}

func testStoredTicket() *StoredTicket {
	checkDigit := "3"
	serial := "1234567"
	return &StoredTicket{
		Date:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Time:            "14:03:22",
		RetailerLocNo:   104233,
		RetailerType:    "subscription",
		PeriodNo:        12,
		DayNo:           75,
		ProductID:       1,
		TicketKeyString: "T-0001",
		Game:            "LOTTO649",
		Pack:            "STD",
		CDC:             8841,
		TicketAmount:    decimal.RequireFromString("12.00"),
		BoardAmount:     decimal.RequireFromString("3.00"),
		FirstDraw:       100,
		LastDraw:        103,
		NumberOfDraws:   4,
		ControlNumber:   "1234561234567",
		CheckDigit:      &checkDigit,
		SerialNumber:    &serial,
		PlayType:        "standard",
	}
}
