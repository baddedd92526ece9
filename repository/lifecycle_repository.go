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

// CancellationRepository records and looks up ticket cancellations
type CancellationRepository struct {
	db *database.DB
	q  Queryable
}

// NewCancellationRepository creates a new cancellation repository
func NewCancellationRepository(db *database.DB) *CancellationRepository {
	return &CancellationRepository{db: db, q: db.Pool}
}

// Record stores a cancellation and flags the ticket cancelled in one transaction
func (r *CancellationRepository) Record(ctx context.Context, c *models.Cancellation) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := markTicket(ctx, tx, "cancelled", c.TicketKeyString); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
			INSERT INTO cancellation (ticket_key_string, cancelled_at, retailer_loc_no, reason)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (ticket_key_string) DO NOTHING
		`, c.TicketKeyString, c.CancelledAt, c.RetailerLocNo, c.Reason)
		if err != nil {
			return fmt.Errorf("failed to record cancellation of ticket %s: %w", c.TicketKeyString, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", models.ErrAlreadyCancelled, c.TicketKeyString)
		}

		log.WithFields(log.Fields{
			"ticket":   c.TicketKeyString,
			"retailer": c.RetailerLocNo,
		}).Info("Ticket cancelled")
		return nil
	})
}

// CancellationByTicketKey returns the cancellation of a ticket, or nil when there is none
func (r *CancellationRepository) CancellationByTicketKey(ctx context.Context, ticketKey string) (*models.Cancellation, error) {
	var c models.Cancellation
	err := r.q.QueryRow(ctx, `
		SELECT ticket_key_string, cancelled_at, retailer_loc_no, reason
		FROM cancellation
		WHERE ticket_key_string = $1
	`, ticketKey).Scan(&c.TicketKeyString, &c.CancelledAt, &c.RetailerLocNo, &c.Reason)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cancellation of ticket %s: %w", ticketKey, err)
	}

	return &c, nil
}

// ValidationRepository records and looks up ticket validations
type ValidationRepository struct {
	db *database.DB
	q  Queryable
}

// NewValidationRepository creates a new validation repository
func NewValidationRepository(db *database.DB) *ValidationRepository {
	return &ValidationRepository{db: db, q: db.Pool}
}

// Record stores a validation and flags the ticket validated in one transaction.
// A ticket may be validated more than once.
func (r *ValidationRepository) Record(ctx context.Context, v *models.Validation) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := markTicket(ctx, tx, "validated", v.TicketKeyString); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO validation (ticket_key_string, validated_at, retailer_loc_no, prize_amount)
			VALUES ($1, $2, $3, $4)
		`, v.TicketKeyString, v.ValidatedAt, v.RetailerLocNo, v.PrizeAmount.String())
		if err != nil {
			return fmt.Errorf("failed to record validation of ticket %s: %w", v.TicketKeyString, err)
		}

		log.WithFields(log.Fields{
			"ticket":   v.TicketKeyString,
			"retailer": v.RetailerLocNo,
			"amount":   v.PrizeAmount.StringFixed(2),
		}).Info("Ticket validated")
		return nil
	})
}

// ValidationsByTicketKey returns the validations of a ticket, oldest first
func (r *ValidationRepository) ValidationsByTicketKey(ctx context.Context, ticketKey string) ([]*models.Validation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT ticket_key_string, validated_at, retailer_loc_no, prize_amount::text
		FROM validation
		WHERE ticket_key_string = $1
		ORDER BY validated_at ASC, id ASC
	`, ticketKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get validations of ticket %s: %w", ticketKey, err)
	}
	defer rows.Close()

	var validations []*models.Validation
	for rows.Next() {
		var v models.Validation
		var amount string
		if err := rows.Scan(&v.TicketKeyString, &v.ValidatedAt, &v.RetailerLocNo, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan validation: %w", err)
		}
		if v.PrizeAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse prize amount %q: %w", amount, err)
		}
		validations = append(validations, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate validations: %w", err)
	}

	return validations, nil
}

// markTicket sets a lifecycle flag column on a stored ticket
func markTicket(ctx context.Context, tx pgx.Tx, column, ticketKey string) error {
	tag, err := tx.Exec(ctx, `UPDATE ticket SET `+column+` = TRUE WHERE ticket_key_string = $1`, ticketKey)
	if err != nil {
		return fmt.Errorf("failed to mark ticket %s %s: %w", ticketKey, column, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", models.ErrTicketNotFound, ticketKey)
	}
	return nil
}

// PrizeRepository selects prize information
type PrizeRepository struct {
	q Queryable
}

// NewPrizeRepository creates a new prize repository
func NewPrizeRepository(db *database.DB) *PrizeRepository {
	return &PrizeRepository{q: db.Pool}
}

// Select returns the prizes of the tickets named by the filter. An empty filter selects nothing.
func (r *PrizeRepository) Select(ctx context.Context, filter models.PrizeFilter) (*models.PrizeInfo, error) {
	info := &models.PrizeInfo{}
	if len(filter.IncludeTicketKeyStrings) == 0 {
		return info, nil
	}

	rows, err := r.q.Query(ctx, `
		SELECT ticket_key_string, draw_number, division, amount::text
		FROM prize
		WHERE ticket_key_string = ANY($1)
		ORDER BY ticket_key_string ASC, draw_number ASC, division ASC
	`, filter.IncludeTicketKeyStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to select prizes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Prize
		var amount string
		if err := rows.Scan(&p.TicketKeyString, &p.DrawNumber, &p.Division, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan prize: %w", err)
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse prize amount %q: %w", amount, err)
		}
		info.Prizes = append(info.Prizes, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate prizes: %w", err)
	}

	return info, nil
}
