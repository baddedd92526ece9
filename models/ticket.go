package models

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"gametool/controlnumber"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// DefaultPlayType is the play type of a ticket with no promotion attached
const DefaultPlayType = "standard"

// Ticket is a purchased lottery ticket reconstructed from an import record or a stored row
type Ticket struct {
	Transaction

	ControlNumber *controlnumber.ControlNumber
	Game          *Game

	FirstDrawNumber int
	NumberOfDraws   int
	LastDrawNumber  int

	Cancelled bool
	Validated bool

	TicketAmount decimal.Decimal
	Wager        decimal.Decimal

	Pack          string
	TransactionID string
	PlayType      string

	boards  []Board
	rider   Rider
	comment []string
	deps    *Dependencies

	prizeOnce sync.Once
	prizeInfo *PrizeInfo
	prizeErr  error

	cancellationOnce sync.Once
	cancellation     *Cancellation
	cancellationErr  error

	validationOnce sync.Once
	validations    []*Validation
	validationErr  error
}

// NewTicketFromRecord builds a ticket from a raw import record. Every derived field is
// parsed and checked; structural failures and an invalid control number are returned.
func NewTicketFromRecord(ctx context.Context, rec Record, deps *Dependencies) (*Ticket, error) {
	tx, err := parseTransaction(rec)
	if err != nil {
		return nil, err
	}

	t := &Ticket{Transaction: tx, PlayType: DefaultPlayType, deps: deps}

	gameName, err := rec.Get("game")
	if err != nil {
		return nil, err
	}
	if t.Game, err = deps.Games.GameByName(gameName); err != nil {
		return nil, fmt.Errorf("ticket %s: %w", tx.TicketKeyString, err)
	}
	if tx.ProductID != t.Game.Number {
		t.logger().WithFields(log.Fields{
			"productId":  tx.ProductID,
			"gameNumber": t.Game.Number,
		}).Warn("Product id does not match game number")
	}

	if t.Pack, err = rec.Get("options"); err != nil {
		return nil, err
	}

	amountText, err := rec.Get("amount_text")
	if err != nil {
		return nil, err
	}
	if amount, err := ParseAmount(amountText); err != nil {
		t.logger().WithError(err).WithField("amountText", amountText).Warn("Unparseable amount text, amounts left at zero")
	} else {
		t.TicketAmount = amount.Total
		t.Wager = amount.Wager
	}

	details, err := rec.Get("details")
	if err != nil {
		return nil, err
	}
	drawRange, err := ParseDrawRange(details)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", tx.TicketKeyString, err)
	}
	t.FirstDrawNumber = drawRange.FirstDrawNumber
	t.NumberOfDraws = drawRange.NumberOfDraws
	t.LastDrawNumber = drawRange.LastDrawNumber

	if !drawRange.Consistent() {
		t.logger().WithFields(log.Fields{
			"retailer":      tx.Retailer.Number,
			"date":          tx.Date.Format(recordDateLayout),
			"cdc":           tx.CDC,
			"firstDraw":     t.FirstDrawNumber,
			"numberOfDraws": t.NumberOfDraws,
			"lastDraw":      t.LastDrawNumber,
		}).Warn("Incorrect last draw number, possibly due to excluded draws. Investigation required")
	}

	if t.ControlNumber, err = controlnumber.Parse(drawRange.ControlNumber); err != nil {
		return nil, fmt.Errorf("ticket %s: %w", tx.TicketKeyString, err)
	}

	t.PlayType = rec.GetOptional("play_type", DefaultPlayType)

	if riderText := rec.GetOptional("rider", ""); riderText != "" {
		entries, err := strconv.Atoi(riderText)
		if err != nil {
			return nil, fmt.Errorf("%w: rider entries %q", ErrMalformedRecord, riderText)
		}
		if entries > 0 && !t.Game.HasRider() {
			t.logger().WithFields(log.Fields{
				"game":    t.Game.Name,
				"entries": entries,
			}).Warn("Game has no add-on, rider entries ignored")
		}
		t.rider = riderFor(t.Game, entries)
	}

	if boardsText := rec.GetOptional("boards", ""); boardsText != "" {
		selections, err := parseBoards(boardsText)
		if err != nil {
			return nil, fmt.Errorf("ticket %s: %w", tx.TicketKeyString, err)
		}
		for _, sel := range selections {
			if err := t.Add(sel.numbers, sel.quickPick); err != nil {
				return nil, fmt.Errorf("ticket %s: %w", tx.TicketKeyString, err)
			}
		}
	}

	if err := t.loadPrizeInfo(ctx); err != nil {
		return nil, err
	}

	return t, nil
}

// NewTicketFromRow rebuilds a ticket from a stored row. Stored fields are trusted; only
// the control number tag is re-derived and a bad tag is logged and ignored.
func NewTicketFromRow(ctx context.Context, row *StoredTicket, deps *Dependencies) (*Ticket, error) {
	t := &Ticket{
		Transaction: Transaction{
			TicketKeyString: row.TicketKeyString,
			Date:            row.Date,
			Time:            row.Time,
			Retailer:        Retailer{Number: row.RetailerLocNo, Type: ParseRetailerType(row.RetailerType)},
			PeriodNo:        row.PeriodNo,
			DayNo:           row.DayNo,
			CDC:             row.CDC,
			ProductID:       row.ProductID,
		},
		FirstDrawNumber: row.FirstDraw,
		NumberOfDraws:   row.NumberOfDraws,
		LastDrawNumber:  row.LastDraw,
		TicketAmount:    row.TicketAmount,
		Wager:           row.BoardAmount,
		Pack:            row.Pack,
		PlayType:        row.PlayType,
		Cancelled:       row.Cancelled,
		Validated:       row.Validated,
		deps:            deps,
	}
	if t.PlayType == "" {
		t.PlayType = DefaultPlayType
	}
	if row.TransactionID != nil {
		t.TransactionID = *row.TransactionID
	}

	var err error
	if t.Game, err = deps.Games.GameByName(row.Game); err != nil {
		return nil, fmt.Errorf("ticket %s: %w", row.TicketKeyString, err)
	}

	if t.ControlNumber, err = controlnumber.FromStored(row.ControlNumber); err != nil {
		t.logger().WithError(err).Debug("Stored control number could not be rebuilt")
	} else if err := t.ControlNumber.AddTag(deref(row.CheckDigit), deref(row.SerialNumber)); err != nil {
		t.logger().WithError(err).Debug("Ignoring invalid control number tag")
	}

	t.rider = riderFor(t.Game, row.RiderEntries)

	for _, sel := range row.Selections {
		if err := t.Add(sel.Numbers, sel.QuickPick); err != nil {
			return nil, fmt.Errorf("ticket %s selection %d: %w", row.TicketKeyString, sel.SelectionNumber, err)
		}
	}

	if err := t.loadPrizeInfo(ctx); err != nil {
		return nil, err
	}

	return t, nil
}

// Add appends a board built from a selection by the game's board factory
func (t *Ticket) Add(selection []int, quickPick bool) error {
	if t.deps == nil || t.deps.Boards == nil {
		return fmt.Errorf("board factory: %w", ErrLookupUnavailable)
	}
	board, err := t.deps.Boards.NewBoard(t.Game, selection, quickPick)
	if err != nil {
		return err
	}
	t.AddBoard(board)
	return nil
}

// AddBoard appends a board
func (t *Ticket) AddBoard(board Board) {
	t.boards = append(t.boards, board)
}

// Boards returns the boards in ticket order
func (t *Ticket) Boards() []Board {
	return t.boards
}

// Board returns the board at index
func (t *Ticket) Board(index int) Board {
	return t.boards[index]
}

// Rider returns the add-on play, or nil when the ticket carries none
func (t *Ticket) Rider() Rider {
	return t.rider
}

// IsFreePlay returns true for promotional tickets
func (t *Ticket) IsFreePlay() bool {
	return strings.EqualFold(t.PlayType, "free play")
}

// AddComment appends a note; notes are joined with spaces in insertion order
func (t *Ticket) AddComment(comment string) {
	t.comment = append(t.comment, comment)
}

// Comment returns the accumulated notes
func (t *Ticket) Comment() string {
	return strings.Join(t.comment, " ")
}

// PrizeInfo returns the prizes selected for this ticket at construction
func (t *Ticket) PrizeInfo() *PrizeInfo {
	return t.prizeInfo
}

func (t *Ticket) loadPrizeInfo(ctx context.Context) error {
	t.prizeOnce.Do(func() {
		if t.deps == nil || t.deps.Prizes == nil {
			t.prizeInfo = &PrizeInfo{}
			return
		}
		var filter PrizeFilter
		filter.AddIncludeTicketKeyString(t.TicketKeyString)
		t.prizeInfo, t.prizeErr = t.deps.Prizes.Select(ctx, filter)
		if t.prizeErr == nil && t.prizeInfo == nil {
			t.prizeInfo = &PrizeInfo{}
		}
	})
	if t.prizeErr != nil {
		return fmt.Errorf("failed to select prizes for ticket %s: %w", t.TicketKeyString, t.prizeErr)
	}
	return nil
}

// Cancellation returns the cancellation record of a cancelled ticket. The lookup runs
// at most once per ticket; nil is returned for tickets that are not cancelled.
func (t *Ticket) Cancellation(ctx context.Context) (*Cancellation, error) {
	if !t.Cancelled {
		return nil, nil
	}
	t.cancellationOnce.Do(func() {
		if t.deps == nil || t.deps.Cancellations == nil {
			t.cancellationErr = fmt.Errorf("cancellation: %w", ErrLookupUnavailable)
			return
		}
		t.cancellation, t.cancellationErr = t.deps.Cancellations.CancellationByTicketKey(ctx, t.TicketKeyString)
	})
	return t.cancellation, t.cancellationErr
}

// Validations returns the validation records of a validated ticket, looked up at most once
func (t *Ticket) Validations(ctx context.Context) ([]*Validation, error) {
	if !t.Validated {
		return nil, nil
	}
	t.validationOnce.Do(func() {
		if t.deps == nil || t.deps.Validations == nil {
			t.validationErr = fmt.Errorf("validation: %w", ErrLookupUnavailable)
			return
		}
		t.validations, t.validationErr = t.deps.Validations.ValidationsByTicketKey(ctx, t.TicketKeyString)
	})
	return t.validations, t.validationErr
}

// FirstDrawDay returns the day of the first draw the ticket plays
func (t *Ticket) FirstDrawDay() (DrawDay, error) {
	return t.drawDay(t.FirstDrawNumber)
}

// LastDrawDay returns the day of the last draw the ticket plays
func (t *Ticket) LastDrawDay() (DrawDay, error) {
	return t.drawDay(t.LastDrawNumber)
}

func (t *Ticket) drawDay(drawNumber int) (DrawDay, error) {
	if t.deps == nil || t.deps.Calendar == nil {
		return DrawDay{}, fmt.Errorf("draw calendar: %w", ErrLookupUnavailable)
	}
	days, err := t.deps.Calendar.DrawDays(t.Game, drawNumber)
	if err != nil {
		return DrawDay{}, err
	}
	if len(days) == 0 {
		return DrawDay{}, fmt.Errorf("no calendar day for %s draw %d", t.Game.Name, drawNumber)
	}
	return days[0], nil
}

// RetailerType returns the sales channel of the selling retailer
func (t *Ticket) RetailerType() RetailerType {
	return t.Retailer.Type
}

// ControlNumberText returns the printable control number, empty when unknown
func (t *Ticket) ControlNumberText() string {
	if t.ControlNumber == nil {
		return ""
	}
	return t.ControlNumber.String()
}

func (t *Ticket) logger() *log.Entry {
	return log.WithField("ticket", t.TicketKeyString)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
