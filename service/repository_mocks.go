package service

import (
	"context"

	"gametool/events"
	"gametool/models"

	"github.com/stretchr/testify/mock"
)

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Insert(ctx context.Context, t *models.Ticket) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *MockTicketRepository) Save(ctx context.Context, t *models.Ticket) bool {
	args := m.Called(ctx, t)
	return args.Bool(0)
}

func (m *MockTicketRepository) SaveDetails(ctx context.Context, t *models.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByKey(ctx context.Context, ticketKey string) (*models.StoredTicket, error) {
	args := m.Called(ctx, ticketKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredTicket), args.Error(1)
}

func (m *MockTicketRepository) Exists(ctx context.Context, ticketKey string) (bool, error) {
	args := m.Called(ctx, ticketKey)
	return args.Bool(0), args.Error(1)
}

// MockRetailerRepository is a mock implementation of RetailerRepository
type MockRetailerRepository struct {
	mock.Mock
}

func (m *MockRetailerRepository) Register(ctx context.Context, retailer models.Retailer) error {
	args := m.Called(ctx, retailer)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock

	ticketRepo   TicketRepository
	retailerRepo RetailerRepository
	eventBus     EventPublisher
}

// SetRepositories sets the repositories returned by the getters
func (m *MockUnitOfWork) SetRepositories(ticketRepo TicketRepository, retailerRepo RetailerRepository, eventBus EventPublisher) {
	m.ticketRepo = ticketRepo
	m.retailerRepo = retailerRepo
	m.eventBus = eventBus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) TicketRepository() TicketRepository {
	return m.ticketRepo
}

func (m *MockUnitOfWork) RetailerRepository() RetailerRepository {
	return m.retailerRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
