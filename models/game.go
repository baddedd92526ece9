package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game describes the rules and pricing of one lottery game
type Game struct {
	Name        string          `yaml:"name"`
	Number      int             `yaml:"number"`
	Description string          `yaml:"description"`
	BoardPrice  decimal.Decimal `yaml:"board_price"`
	Picks       int             `yaml:"picks"`
	Pool        int             `yaml:"pool"`
	Rider       *RiderConfig    `yaml:"rider,omitempty"`

	// Draw schedule as a cron expression, anchored at a known draw
	Schedule   string    `yaml:"schedule"`
	AnchorDraw int       `yaml:"anchor_draw"`
	AnchorDate time.Time `yaml:"anchor_date"`
}

// RiderConfig describes the add-on play a game offers
type RiderConfig struct {
	Name  string          `yaml:"name"`
	Price decimal.Decimal `yaml:"price"`
}

// HasRider returns true if the game sells an add-on play
func (g *Game) HasRider() bool {
	return g.Rider != nil
}

func (g *Game) String() string {
	return g.Name
}
