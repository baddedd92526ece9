package models

import (
	"context"
	"fmt"
	"strings"
)

// TicketView selects one of the texts a ticket can be displayed as
type TicketView int

const (
	ViewCancellation TicketView = iota
	ViewComment
	ViewTicket
	ViewValidation
	ViewPrizes
)

var viewNames = map[TicketView]string{
	ViewCancellation: "cancellation",
	ViewComment:      "comment",
	ViewTicket:       "ticket",
	ViewValidation:   "validation",
	ViewPrizes:       "prizes",
}

func (v TicketView) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("TicketView(%d)", int(v))
}

// ParseTicketView maps a view name (case-insensitive) to a TicketView
func ParseTicketView(name string) (TicketView, error) {
	for v, n := range viewNames {
		if strings.EqualFold(n, name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

// validationDivider separates multiple validation notices
const validationDivider = "\n\n==============================\n\n"

// DisplayString returns the text of the requested view. The boolean is false when the
// ticket has nothing to show for it: not cancelled, not validated, no prizes, no comment.
func (t *Ticket) DisplayString(ctx context.Context, view TicketView) (string, bool) {
	switch view {
	case ViewCancellation:
		cancellation, err := t.Cancellation(ctx)
		if err != nil {
			t.logger().WithError(err).Warn("Cancellation lookup failed")
			return "", false
		}
		if cancellation == nil {
			return "", false
		}
		return fillPlaceholders(cancellation.String(), t.ControlNumberText(), t.gameDescription()), true

	case ViewComment:
		comment := t.Comment()
		return comment, comment != ""

	case ViewTicket:
		return t.String(), true

	case ViewValidation:
		validations, err := t.Validations(ctx)
		if err != nil {
			t.logger().WithError(err).Warn("Validation lookup failed")
			return "", false
		}
		if len(validations) == 0 {
			return "", false
		}
		texts := make([]string, 0, len(validations))
		for _, v := range validations {
			texts = append(texts, fillPlaceholders(v.String(), t.ControlNumberText(), t.gameDescription()))
		}
		return strings.Join(texts, validationDivider), true

	case ViewPrizes:
		if t.prizeInfo.IsEmpty() {
			return "", false
		}
		return t.prizeInfo.String(), true

	default:
		t.logger().WithField("view", view).Warn("Unknown ticket view requested")
		return "", false
	}
}
