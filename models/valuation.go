package models

import "github.com/shopspring/decimal"

func (t *Ticket) draws() decimal.Decimal {
	return decimal.NewFromInt(int64(t.NumberOfDraws))
}

// CarrierNominalWager is the sum of board costs, ignoring free play.
// Reporting uses it to account for the wagers of free plays.
func (t *Ticket) CarrierNominalWager() decimal.Decimal {
	result := decimal.Zero
	for _, board := range t.boards {
		result = result.Add(board.Cost())
	}
	return result
}

func (t *Ticket) CarrierNominalCost() decimal.Decimal {
	return t.CarrierNominalWager().Mul(t.draws())
}

// CarrierWager is the nominal wager, or zero for a free play
func (t *Ticket) CarrierWager() decimal.Decimal {
	if t.IsFreePlay() {
		return decimal.Zero
	}
	return t.CarrierNominalWager()
}

func (t *Ticket) CarrierCost() decimal.Decimal {
	return t.CarrierWager().Mul(t.draws())
}

// RiderWager is the add-on wager per draw, zero without an add-on
func (t *Ticket) RiderWager() decimal.Decimal {
	if t.rider == nil {
		return decimal.Zero
	}
	return t.rider.Wager()
}

func (t *Ticket) RiderCost() decimal.Decimal {
	return t.RiderWager().Mul(t.draws())
}

// TicketCost is the carrier cost plus the add-on cost.
// It is deliberately not reconciled against TicketAmount; see CostDiscrepancy.
func (t *Ticket) TicketCost() decimal.Decimal {
	return t.CarrierCost().Add(t.RiderCost())
}

// CostDiscrepancy returns the difference between the computed cost and the recorded
// amount, and whether they differ. Free plays are never reported: their notation
// differs between regular retailers and subscriptions.
func (t *Ticket) CostDiscrepancy() (decimal.Decimal, bool) {
	if t.IsFreePlay() {
		return decimal.Zero, false
	}
	diff := t.TicketCost().Sub(t.TicketAmount)
	return diff, !diff.IsZero()
}

func (t *Ticket) SelectionCount() int {
	result := 0
	for _, board := range t.boards {
		result += board.SelectionCount()
	}
	return result
}

// Size is the total size of all boards
func (t *Ticket) Size() int {
	result := 0
	for _, board := range t.boards {
		result += board.Size()
	}
	return result
}

func (t *Ticket) RiderSize() int {
	if t.rider == nil {
		return 0
	}
	return t.rider.Size()
}

// IsQuickPick returns true if any board was a quick pick
func (t *Ticket) IsQuickPick() bool {
	for _, board := range t.boards {
		if board.IsQuickPick() {
			return true
		}
	}
	return false
}
