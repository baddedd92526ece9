package service

import (
	"context"
	"fmt"
	"time"

	"gametool/models"

	"github.com/shopspring/decimal"
)

// Report is a table of ticket field values, one row per ticket
type Report struct {
	Fields []string
	Rows   [][]string
}

// TicketService reloads stored tickets for reprint and reporting
type TicketService struct {
	uowFactory UnitOfWorkFactory
	deps       *models.Dependencies
}

// NewTicketService creates a new ticket service
func NewTicketService(uowFactory UnitOfWorkFactory, deps *models.Dependencies) *TicketService {
	return &TicketService{
		uowFactory: uowFactory,
		deps:       deps,
	}
}

// Load rebuilds a stored ticket with its boards and add-on
func (s *TicketService) Load(ctx context.Context, ticketKey string) (*models.Ticket, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	row, err := uow.TicketRepository().GetByKey(ctx, ticketKey)
	if err != nil {
		return nil, err
	}

	return models.NewTicketFromRow(ctx, row, s.deps)
}

// Render returns a view of a stored ticket; ok is false when the view has nothing to show
func (s *TicketService) Render(ctx context.Context, ticketKey string, view models.TicketView) (text string, ok bool, err error) {
	ticket, err := s.Load(ctx, ticketKey)
	if err != nil {
		return "", false, err
	}

	text, ok = ticket.DisplayString(ctx, view)
	return text, ok, nil
}

// Report collects the named fields of each ticket. Unknown fields are reported as empty cells.
func (s *TicketService) Report(ctx context.Context, ticketKeys []string, fields []string) (*Report, error) {
	report := &Report{Fields: fields}
	for _, key := range ticketKeys {
		ticket, err := s.Load(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to load ticket %s for report: %w", key, err)
		}

		row := make([]string, len(fields))
		for i, field := range fields {
			if value, ok := ticket.Value(field); ok {
				row[i] = formatValue(value)
			}
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case decimal.Decimal:
		return v.StringFixed(2)
	case time.Time:
		return v.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}
