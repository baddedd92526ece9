package models

import "github.com/shopspring/decimal"

// Extra is the add-on play sold alongside a carrier ticket
type Extra struct {
	Name    string
	Entries int
	Price   decimal.Decimal
}

// Wager returns the add-on stake per draw
func (e *Extra) Wager() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Entries)))
}

// Size returns the number of add-on entries
func (e *Extra) Size() int {
	return e.Entries
}

// riderFor returns the add-on for a game, or nil when the game has none or none was bought
func riderFor(game *Game, entries int) Rider {
	if game == nil || !game.HasRider() || entries <= 0 {
		return nil
	}
	return &Extra{Name: game.Rider.Name, Entries: entries, Price: game.Rider.Price}
}
