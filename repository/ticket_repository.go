package repository

import (
	"context"
	"errors"
	"fmt"

	"gametool/database"
	"gametool/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const insertTicketSQL = `
	INSERT INTO ticket (
		date, time, retailer_loc_no, period_no, day_no, product_id,
		ticket_key_string, game, pack, cdc, ticket_amount, board_amount,
		first_draw, last_draw, number_of_draws, control_number, check_digit, serial_number
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	ON CONFLICT (ticket_key_string) DO NOTHING
`

const selectTicketSQL = `
	SELECT
		t.date,
		t.time::text,
		t.retailer_loc_no,
		COALESCE(r.retailer_type, 'regular'),
		t.period_no,
		t.day_no,
		t.product_id,
		t.ticket_key_string,
		t.game,
		t.pack,
		t.cdc,
		t.ticket_amount::text,
		t.board_amount::text,
		t.first_draw,
		t.last_draw,
		t.number_of_draws,
		t.control_number,
		t.check_digit,
		t.serial_number,
		t.play_type,
		t.transaction_id,
		t.cancelled,
		t.validated,
		COALESCE(tr.entries, 0)
	FROM ticket t
	LEFT JOIN retailer r ON r.retailer_loc_no = t.retailer_loc_no
	LEFT JOIN ticket_rider tr ON tr.ticket_key_string = t.ticket_key_string
	WHERE t.ticket_key_string = $1
`

// TicketRepository maps tickets to the ticket table and its detail tables
type TicketRepository struct {
	q Queryable
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *database.DB) *TicketRepository {
	return &TicketRepository{q: db.Pool}
}

// newTicketRepositoryWithTx creates a new ticket repository with a transaction
func newTicketRepositoryWithTx(tx Queryable) *TicketRepository {
	return &TicketRepository{q: tx}
}

// InsertStatement returns the idempotent insert for a ticket and its parameters.
// last_draw is written as first + count - 1 whatever the details field recorded.
func InsertStatement(t *models.Ticket) (string, []any) {
	var controlNumber, checkDigit, serial any
	if t.ControlNumber != nil {
		controlNumber = t.ControlNumber.SQL()
		serial = t.ControlNumber.Serial()
		if t.ControlNumber.Tagged() {
			checkDigit = t.ControlNumber.CheckDigit()
		}
	}

	return insertTicketSQL, []any{
		t.Date,
		t.Time,
		t.Retailer.Number,
		t.PeriodNo,
		t.DayNo,
		t.ProductID,
		t.TicketKeyString,
		t.Game.Name,
		t.Pack,
		t.CDC,
		t.TicketAmount.String(),
		t.Wager.String(),
		t.FirstDrawNumber,
		t.FirstDrawNumber + t.NumberOfDraws - 1,
		t.NumberOfDraws,
		controlNumber,
		checkDigit,
		serial,
	}
}

// Insert writes the ticket row. inserted is false when the ticket key already exists.
func (r *TicketRepository) Insert(ctx context.Context, t *models.Ticket) (bool, error) {
	query, args := InsertStatement(t)
	result, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to insert ticket %s: %w", t.TicketKeyString, err)
	}
	return result.RowsAffected() == 1, nil
}

// Save inserts the ticket row and reports whether a row was written.
// Storage faults are logged and reported as false.
func (r *TicketRepository) Save(ctx context.Context, t *models.Ticket) bool {
	inserted, err := r.Insert(ctx, t)
	if err != nil {
		log.WithFields(log.Fields{
			"ticket": t.TicketKeyString,
			"error":  err,
		}).Error("Failed to save ticket")
		return false
	}
	return inserted
}

// SaveDetails writes the boards and add-on of a freshly inserted ticket
func (r *TicketRepository) SaveDetails(ctx context.Context, t *models.Ticket) error {
	for i, board := range t.Boards() {
		selection, ok := board.(models.SelectionBoard)
		if !ok {
			log.WithFields(log.Fields{
				"ticket": t.TicketKeyString,
				"board":  i + 1,
			}).Debug("Board has no storable selection")
			continue
		}

		_, err := r.q.Exec(ctx, `
			INSERT INTO ticket_selection (ticket_key_string, selection_number, numbers, quick_pick)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (ticket_key_string, selection_number) DO NOTHING
		`, t.TicketKeyString, i+1, selection.Selection(), selection.IsQuickPick())
		if err != nil {
			return fmt.Errorf("failed to save selection %d of ticket %s: %w", i+1, t.TicketKeyString, err)
		}
	}

	if entries := t.RiderSize(); entries > 0 {
		_, err := r.q.Exec(ctx, `
			INSERT INTO ticket_rider (ticket_key_string, entries)
			VALUES ($1, $2)
			ON CONFLICT (ticket_key_string) DO NOTHING
		`, t.TicketKeyString, entries)
		if err != nil {
			return fmt.Errorf("failed to save add-on of ticket %s: %w", t.TicketKeyString, err)
		}
	}

	return nil
}

// GetByKey loads a stored ticket with its selections
func (r *TicketRepository) GetByKey(ctx context.Context, ticketKey string) (*models.StoredTicket, error) {
	var row models.StoredTicket
	var ticketAmount, boardAmount string
	err := r.q.QueryRow(ctx, selectTicketSQL, ticketKey).Scan(
		&row.Date,
		&row.Time,
		&row.RetailerLocNo,
		&row.RetailerType,
		&row.PeriodNo,
		&row.DayNo,
		&row.ProductID,
		&row.TicketKeyString,
		&row.Game,
		&row.Pack,
		&row.CDC,
		&ticketAmount,
		&boardAmount,
		&row.FirstDraw,
		&row.LastDraw,
		&row.NumberOfDraws,
		&row.ControlNumber,
		&row.CheckDigit,
		&row.SerialNumber,
		&row.PlayType,
		&row.TransactionID,
		&row.Cancelled,
		&row.Validated,
		&row.RiderEntries,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrTicketNotFound, ticketKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket %s: %w", ticketKey, err)
	}

	if row.TicketAmount, err = decimal.NewFromString(ticketAmount); err != nil {
		return nil, fmt.Errorf("failed to parse ticket amount of %s: %w", ticketKey, err)
	}
	if row.BoardAmount, err = decimal.NewFromString(boardAmount); err != nil {
		return nil, fmt.Errorf("failed to parse board amount of %s: %w", ticketKey, err)
	}

	if row.Selections, err = r.selections(ctx, ticketKey); err != nil {
		return nil, err
	}

	return &row, nil
}

func (r *TicketRepository) selections(ctx context.Context, ticketKey string) ([]models.StoredSelection, error) {
	rows, err := r.q.Query(ctx, `
		SELECT selection_number, numbers, quick_pick
		FROM ticket_selection
		WHERE ticket_key_string = $1
		ORDER BY selection_number ASC
	`, ticketKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get selections of ticket %s: %w", ticketKey, err)
	}
	defer rows.Close()

	var selections []models.StoredSelection
	for rows.Next() {
		var sel models.StoredSelection
		if err := rows.Scan(&sel.SelectionNumber, &sel.Numbers, &sel.QuickPick); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		selections = append(selections, sel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate selections: %w", err)
	}

	return selections, nil
}

// Exists reports whether a ticket key is already stored
func (r *TicketRepository) Exists(ctx context.Context, ticketKey string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ticket WHERE ticket_key_string = $1)`, ticketKey).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ticket %s: %w", ticketKey, err)
	}
	return exists, nil
}
