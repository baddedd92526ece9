package models

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// ticketFields maps report tokens to accessors. Plain names address stored fields,
// names ending in "()" address derived values.
var ticketFields = map[string]func(*Ticket) any{
	"ticketKeyString": func(t *Ticket) any { return t.TicketKeyString },
	"date":            func(t *Ticket) any { return t.Date },
	"time":            func(t *Ticket) any { return t.Time },
	"retailer":        func(t *Ticket) any { return t.Retailer.Number },
	"periodNo":        func(t *Ticket) any { return t.PeriodNo },
	"dayNo":           func(t *Ticket) any { return t.DayNo },
	"cdc":             func(t *Ticket) any { return t.CDC },
	"productId":       func(t *Ticket) any { return t.ProductID },
	"game":            func(t *Ticket) any { return t.gameName() },
	"controlNumber":   func(t *Ticket) any { return t.ControlNumberText() },
	"firstDrawNumber": func(t *Ticket) any { return t.FirstDrawNumber },
	"numberOfDraws":   func(t *Ticket) any { return t.NumberOfDraws },
	"lastDrawNumber":  func(t *Ticket) any { return t.LastDrawNumber },
	"cancelled":       func(t *Ticket) any { return t.Cancelled },
	"validated":       func(t *Ticket) any { return t.Validated },
	"ticketAmount":    func(t *Ticket) any { return t.TicketAmount },
	"wager":           func(t *Ticket) any { return t.Wager },
	"pack":            func(t *Ticket) any { return t.Pack },
	"transactionId":   func(t *Ticket) any { return t.TransactionID },
	"playType":        func(t *Ticket) any { return t.PlayType },

	"carrierNominalWager()": func(t *Ticket) any { return t.CarrierNominalWager() },
	"carrierNominalCost()":  func(t *Ticket) any { return t.CarrierNominalCost() },
	"carrierWager()":        func(t *Ticket) any { return t.CarrierWager() },
	"carrierCost()":         func(t *Ticket) any { return t.CarrierCost() },
	"riderWager()":          func(t *Ticket) any { return t.RiderWager() },
	"riderCost()":           func(t *Ticket) any { return t.RiderCost() },
	"ticketCost()":          func(t *Ticket) any { return t.TicketCost() },
	"selectionCount()":      func(t *Ticket) any { return t.SelectionCount() },
	"size()":                func(t *Ticket) any { return t.Size() },
	"riderSize()":           func(t *Ticket) any { return t.RiderSize() },
	"isQuickPick()":         func(t *Ticket) any { return t.IsQuickPick() },
	"isFreePlay()":          func(t *Ticket) any { return t.IsFreePlay() },
	"retailerType()":        func(t *Ticket) any { return string(t.RetailerType()) },
	"comment()":             func(t *Ticket) any { return t.Comment() },
}

// Value returns a field or derived value by report token. Unknown tokens are logged
// and reported as absent.
func (t *Ticket) Value(name string) (any, bool) {
	accessor, ok := ticketFields[name]
	if !ok {
		log.WithFields(log.Fields{
			"ticket": t.TicketKeyString,
			"field":  name,
		}).Warn("Unknown ticket field requested")
		return nil, false
	}
	return accessor(t), true
}

// FieldNames returns every token Value accepts, sorted
func FieldNames() []string {
	names := make([]string, 0, len(ticketFields))
	for name := range ticketFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
