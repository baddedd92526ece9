package service

import (
	"context"

	"gametool/events"
	"gametool/models"
)

// TicketRepository defines the interface for ticket persistence
type TicketRepository interface {
	// Insert writes the ticket row; false means the ticket key was already stored
	Insert(ctx context.Context, t *models.Ticket) (bool, error)

	// Save inserts the ticket row, logging storage faults and reporting them as false
	Save(ctx context.Context, t *models.Ticket) bool

	// SaveDetails writes the boards and add-on of a ticket
	SaveDetails(ctx context.Context, t *models.Ticket) error

	// GetByKey loads a stored ticket with its selections and add-on
	GetByKey(ctx context.Context, ticketKey string) (*models.StoredTicket, error)

	// Exists reports whether a ticket key is already stored
	Exists(ctx context.Context, ticketKey string) (bool, error)
}

// RetailerRepository defines the interface for retailer registration
type RetailerRepository interface {
	// Register stores a retailer the first time it is seen
	Register(ctx context.Context, retailer models.Retailer) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes pending events
	Commit() error

	// Rollback rolls back the transaction and discards pending events
	Rollback() error

	// Repository getters
	TicketRepository() TicketRepository
	RetailerRepository() RetailerRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
