package testutil

import (
	"context"
	"fmt"
	"testing"

	"gametool/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestGame returns a 6/49 game with an add-on
func TestGame() *models.Game {
	return &models.Game{
		Name:        "LOTTO649",
		Number:      1,
		Description: "Lotto 6/49",
		BoardPrice:  decimal.RequireFromString("3.00"),
		Picks:       6,
		Pool:        49,
		Rider:       &models.RiderConfig{Name: "EXTRA", Price: decimal.RequireFromString("1.00")},
		Schedule:    "0 22 * * 3,6",
		AnchorDraw:  3000,
	}
}

type gameRegistry struct {
	game *models.Game
}

func (g gameRegistry) GameByName(name string) (*models.Game, error) {
	if name != g.game.Name {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownGame, name)
	}
	return g.game, nil
}

func (g gameRegistry) GameByNumber(number int) (*models.Game, error) {
	if number != g.game.Number {
		return nil, fmt.Errorf("%w: %d", models.ErrUnknownGame, number)
	}
	return g.game, nil
}

// TestDependencies returns collaborators knowing only TestGame, without lookups
func TestDependencies() *models.Dependencies {
	return &models.Dependencies{
		Games:  gameRegistry{game: TestGame()},
		Boards: models.NumberBoardFactory{},
	}
}

// CreateTestRecord returns a valid import record for the given ticket key
func CreateTestRecord(ticketKey string) models.Record {
	return models.Record{
		"ticket_key_string": ticketKey,
		"date":              "2024-03-15",
		"time":              "14:03:22",
		"retailer_loc_no":   "104233",
		"retailer_type":     "subscription",
		"period_no":         "12",
		"day_no":            "75",
		"cdc":               "8841",
		"product_id":        "1",
		"game":              "LOTTO649",
		"options":           "STD",
		"amount_text":       "$14.00($3.00)",
		"details":           "003000-003001 002 12-3456-1234567 / 01-2345-67-12345678",
		"boards":            "01 02 03 04 05 06 QP|07 14 21 28 35 42",
		"rider":             "1",
	}
}

// CreateTestTicket builds a ticket from CreateTestRecord
func CreateTestTicket(t *testing.T, ticketKey string) *models.Ticket {
	t.Helper()
	ticket, err := models.NewTicketFromRecord(context.Background(), CreateTestRecord(ticketKey), TestDependencies())
	require.NoError(t, err)
	return ticket
}
