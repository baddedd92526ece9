package service

import (
	"context"
	"errors"
	"fmt"

	"gametool/controlnumber"
	"gametool/events"
	"gametool/models"

	log "github.com/sirupsen/logrus"
)

// DefaultBatchSize is the number of records saved per transaction when none is configured
const DefaultBatchSize = 500

// ImportOptions controls a batch import
type ImportOptions struct {
	BatchSize int

	// StopOnError aborts the run at the first rejected record instead of skipping it.
	// Batches committed before the failure stay committed.
	StopOnError bool
}

// ImportResult summarizes a batch import
type ImportResult struct {
	Read       int
	Imported   int
	Duplicates int
	Rejected   int
}

// ImportService turns raw records into stored tickets
type ImportService struct {
	uowFactory UnitOfWorkFactory
	deps       *models.Dependencies
}

// NewImportService creates a new import service
func NewImportService(uowFactory UnitOfWorkFactory, deps *models.Dependencies) *ImportService {
	return &ImportService{
		uowFactory: uowFactory,
		deps:       deps,
	}
}

// Import builds a ticket from every record and stores it. Records that fail parsing
// are rejected; keys already stored are counted as duplicates.
func (s *ImportService) Import(ctx context.Context, records []models.Record, opts ImportOptions) (*ImportResult, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	result := &ImportResult{}
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))

		batch, err := s.importBatch(ctx, records[start:end], start, opts)
		if batch != nil {
			result.add(batch)
		}
		if err != nil {
			return result, err
		}
	}

	log.WithFields(log.Fields{
		"read":       result.Read,
		"imported":   result.Imported,
		"duplicates": result.Duplicates,
		"rejected":   result.Rejected,
	}).Info("Import finished")

	return result, nil
}

// importBatch stores one batch inside a unit of work. The returned counts are nil
// when the batch was rolled back.
func (s *ImportService) importBatch(ctx context.Context, records []models.Record, offset int, opts ImportOptions) (*ImportResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	counts := &ImportResult{}
	for i, rec := range records {
		recordNumber := offset + i + 1
		counts.Read++

		ticket, err := models.NewTicketFromRecord(ctx, rec, s.deps)
		if err != nil {
			if !isRejection(err) {
				return nil, fmt.Errorf("record %d: %w", recordNumber, err)
			}

			ticketKey := rec.GetOptional("ticket_key_string", "")
			log.WithFields(log.Fields{
				"record": recordNumber,
				"ticket": ticketKey,
				"error":  err,
			}).Warn("Rejected import record")

			if opts.StopOnError {
				return nil, fmt.Errorf("record %d: %w", recordNumber, err)
			}

			counts.Rejected++
			uow.EventBus().Publish(events.RecordRejectedEvent{
				RecordNumber:    recordNumber,
				TicketKeyString: ticketKey,
				Reason:          err.Error(),
			})
			continue
		}

		if err := uow.RetailerRepository().Register(ctx, ticket.Retailer); err != nil {
			return nil, err
		}

		inserted, err := uow.TicketRepository().Insert(ctx, ticket)
		if err != nil {
			return nil, err
		}
		if !inserted {
			counts.Duplicates++
			uow.EventBus().Publish(events.TicketDuplicateEvent{TicketKeyString: ticket.TicketKeyString})
			continue
		}

		if err := uow.TicketRepository().SaveDetails(ctx, ticket); err != nil {
			return nil, err
		}

		counts.Imported++
		uow.EventBus().Publish(events.TicketImportedEvent{
			TicketKeyString: ticket.TicketKeyString,
			Game:            ticket.Game.Name,
			RetailerLocNo:   ticket.Retailer.Number,
			TicketCost:      ticket.TicketCost(),
			Cancelled:       ticket.Cancelled,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return counts, nil
}

// isRejection reports whether err comes from the record itself rather than from storage
func isRejection(err error) bool {
	return errors.Is(err, models.ErrMalformedRecord) ||
		errors.Is(err, models.ErrUnknownGame) ||
		errors.Is(err, models.ErrInvalidSelection) ||
		errors.Is(err, controlnumber.ErrInvalid)
}

func (r *ImportResult) add(other *ImportResult) {
	r.Read += other.Read
	r.Imported += other.Imported
	r.Duplicates += other.Duplicates
	r.Rejected += other.Rejected
}
