package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberBoard is a pick-N-of-M board priced per play
type NumberBoard struct {
	Numbers   []int
	QuickPick bool
	Price     decimal.Decimal
}

func (b *NumberBoard) Cost() decimal.Decimal {
	return b.Price
}

func (b *NumberBoard) SelectionCount() int {
	return len(b.Numbers)
}

func (b *NumberBoard) Size() int {
	return 1
}

func (b *NumberBoard) IsQuickPick() bool {
	return b.QuickPick
}

// Selection returns the sorted picks
func (b *NumberBoard) Selection() []int {
	return b.Numbers
}

func (b *NumberBoard) String() string {
	parts := make([]string, 0, len(b.Numbers)+1)
	for _, n := range b.Numbers {
		parts = append(parts, fmt.Sprintf("%02d", n))
	}
	if b.QuickPick {
		parts = append(parts, "QP")
	}
	return strings.Join(parts, " ")
}

// NumberBoardFactory builds NumberBoards checked against the game's picks and pool
type NumberBoardFactory struct{}

func (NumberBoardFactory) NewBoard(game *Game, selection []int, quickPick bool) (Board, error) {
	if game.Picks > 0 && len(selection) != game.Picks {
		return nil, fmt.Errorf("%w: %s needs %d numbers, got %d", ErrInvalidSelection, game.Name, game.Picks, len(selection))
	}

	numbers := make([]int, len(selection))
	copy(numbers, selection)
	sort.Ints(numbers)

	for i, n := range numbers {
		if n < 1 || (game.Pool > 0 && n > game.Pool) {
			return nil, fmt.Errorf("%w: %d is outside 1-%d", ErrInvalidSelection, n, game.Pool)
		}
		if i > 0 && numbers[i-1] == n {
			return nil, fmt.Errorf("%w: %d selected twice", ErrInvalidSelection, n)
		}
	}

	return &NumberBoard{Numbers: numbers, QuickPick: quickPick, Price: game.BoardPrice}, nil
}
