package service

import (
	"context"
	"errors"
	"testing"

	"gametool/events"
	"gametool/models"
	"gametool/repository/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type importMocks struct {
	factory   *MockUnitOfWorkFactory
	uow       *MockUnitOfWork
	tickets   *MockTicketRepository
	retailers *MockRetailerRepository
	publisher *MockEventPublisher
}

func newImportMocks() *importMocks {
	m := &importMocks{
		factory:   new(MockUnitOfWorkFactory),
		uow:       new(MockUnitOfWork),
		tickets:   new(MockTicketRepository),
		retailers: new(MockRetailerRepository),
		publisher: new(MockEventPublisher),
	}
	m.uow.SetRepositories(m.tickets, m.retailers, m.publisher)
	m.factory.On("Create").Return(m.uow)
	m.uow.On("Rollback").Return(nil)
	m.publisher.On("Publish", mock.Anything).Return()
	return m
}

func (m *importMocks) published() []events.Event {
	var published []events.Event
	for _, call := range m.publisher.Calls {
		published = append(published, call.Arguments.Get(0).(events.Event))
	}
	return published
}

func unknownGameRecord(ticketKey string) models.Record {
	rec := testutil.CreateTestRecord(ticketKey)
	rec["game"] = "KENO"
	return rec
}

func TestImportService_Import_StoresTickets(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()

	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.retailers.On("Register", ctx, mock.AnythingOfType("models.Retailer")).Return(nil)
	m.tickets.On("Insert", ctx, mock.AnythingOfType("*models.Ticket")).Return(true, nil)
	m.tickets.On("SaveDetails", ctx, mock.AnythingOfType("*models.Ticket")).Return(nil)

	service := NewImportService(m.factory, testutil.TestDependencies())
	records := []models.Record{
		testutil.CreateTestRecord("T-1"),
		testutil.CreateTestRecord("T-2"),
		testutil.CreateTestRecord("T-3"),
	}

	result, err := service.Import(ctx, records, ImportOptions{BatchSize: 2})

	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Read: 3, Imported: 3}, result)

	// Two batches, each in its own unit of work
	m.factory.AssertNumberOfCalls(t, "Create", 2)
	m.uow.AssertNumberOfCalls(t, "Begin", 2)
	m.uow.AssertNumberOfCalls(t, "Commit", 2)
	m.tickets.AssertNumberOfCalls(t, "Insert", 3)
	m.tickets.AssertNumberOfCalls(t, "SaveDetails", 3)

	published := m.published()
	require.Len(t, published, 3)
	imported, ok := published[0].(events.TicketImportedEvent)
	require.True(t, ok)
	assert.Equal(t, "T-1", imported.TicketKeyString)
	assert.Equal(t, "LOTTO649", imported.Game)
	assert.Equal(t, 104233, imported.RetailerLocNo)
	assert.True(t, decimal.RequireFromString("14.00").Equal(imported.TicketCost))
}

func TestImportService_Import_Duplicate(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()

	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.retailers.On("Register", ctx, mock.AnythingOfType("models.Retailer")).Return(nil)
	m.tickets.On("Insert", ctx, mock.AnythingOfType("*models.Ticket")).Return(false, nil)

	service := NewImportService(m.factory, testutil.TestDependencies())

	result, err := service.Import(ctx, []models.Record{testutil.CreateTestRecord("T-1")}, ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Read: 1, Duplicates: 1}, result)
	m.tickets.AssertNotCalled(t, "SaveDetails", mock.Anything, mock.Anything)
	assert.Equal(t, []events.Event{events.TicketDuplicateEvent{TicketKeyString: "T-1"}}, m.published())
}

func TestImportService_Import_SkipsRejectedRecords(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()

	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.retailers.On("Register", ctx, mock.AnythingOfType("models.Retailer")).Return(nil)
	m.tickets.On("Insert", ctx, mock.AnythingOfType("*models.Ticket")).Return(true, nil)
	m.tickets.On("SaveDetails", ctx, mock.AnythingOfType("*models.Ticket")).Return(nil)

	badDetails := testutil.CreateTestRecord("T-3")
	badDetails["details"] = "not a details field"

	missingColumn := testutil.CreateTestRecord("T-4")
	delete(missingColumn, "cdc")

	badSelection := testutil.CreateTestRecord("T-5")
	badSelection["boards"] = "01 02 03 04 05 99"

	service := NewImportService(m.factory, testutil.TestDependencies())
	records := []models.Record{
		testutil.CreateTestRecord("T-1"),
		unknownGameRecord("T-2"),
		badDetails,
		missingColumn,
		badSelection,
	}

	result, err := service.Import(ctx, records, ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Read: 5, Imported: 1, Rejected: 4}, result)
	m.uow.AssertNumberOfCalls(t, "Commit", 1)

	var rejected []events.RecordRejectedEvent
	for _, e := range m.published() {
		if r, ok := e.(events.RecordRejectedEvent); ok {
			rejected = append(rejected, r)
		}
	}
	require.Len(t, rejected, 4)
	assert.Equal(t, 2, rejected[0].RecordNumber)
	assert.Equal(t, "T-2", rejected[0].TicketKeyString)
	assert.Contains(t, rejected[0].Reason, "unknown game")
	assert.Equal(t, 5, rejected[3].RecordNumber)
}

func TestImportService_Import_StopOnError(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()

	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.retailers.On("Register", ctx, mock.AnythingOfType("models.Retailer")).Return(nil)
	m.tickets.On("Insert", ctx, mock.AnythingOfType("*models.Ticket")).Return(true, nil)
	m.tickets.On("SaveDetails", ctx, mock.AnythingOfType("*models.Ticket")).Return(nil)

	service := NewImportService(m.factory, testutil.TestDependencies())
	records := []models.Record{
		testutil.CreateTestRecord("T-1"),
		testutil.CreateTestRecord("T-2"),
		unknownGameRecord("T-3"),
		testutil.CreateTestRecord("T-4"),
	}

	result, err := service.Import(ctx, records, ImportOptions{BatchSize: 2, StopOnError: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownGame)
	assert.Contains(t, err.Error(), "record 3")

	// The first batch stays committed, the failing one is rolled back
	assert.Equal(t, &ImportResult{Read: 2, Imported: 2}, result)
	m.uow.AssertNumberOfCalls(t, "Commit", 1)
	m.uow.AssertNumberOfCalls(t, "Rollback", 2)
	m.tickets.AssertNumberOfCalls(t, "Insert", 2)
}

func TestImportService_Import_StorageFailure(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()
	storageErr := errors.New("connection reset")

	m.uow.On("Begin", ctx).Return(nil)
	m.retailers.On("Register", ctx, mock.AnythingOfType("models.Retailer")).Return(nil)
	m.tickets.On("Insert", ctx, mock.AnythingOfType("*models.Ticket")).Return(false, storageErr)

	service := NewImportService(m.factory, testutil.TestDependencies())
	records := []models.Record{testutil.CreateTestRecord("T-1"), unknownGameRecord("T-2")}

	result, err := service.Import(ctx, records, ImportOptions{})

	assert.ErrorIs(t, err, storageErr)
	assert.Equal(t, &ImportResult{}, result)
	m.uow.AssertNotCalled(t, "Commit")
	m.uow.AssertCalled(t, "Rollback")
	assert.Empty(t, m.published())
}

func TestImportService_Import_BeginFailure(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()
	m.uow.On("Begin", ctx).Return(errors.New("pool closed"))

	service := NewImportService(m.factory, testutil.TestDependencies())

	_, err := service.Import(ctx, []models.Record{testutil.CreateTestRecord("T-1")}, ImportOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	m.uow.AssertNotCalled(t, "Rollback")
}

func TestImportService_Import_NoRecords(t *testing.T) {
	m := newImportMocks()
	service := NewImportService(m.factory, testutil.TestDependencies())

	result, err := service.Import(context.Background(), nil, ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, &ImportResult{}, result)
	m.factory.AssertNotCalled(t, "Create")
}

func TestImportService_Import_ZeroDrawCountIsRejected(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()

	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.retailers.On("Register", ctx, mock.AnythingOfType("models.Retailer")).Return(nil)
	m.tickets.On("Insert", ctx, mock.AnythingOfType("*models.Ticket")).Return(true, nil)
	m.tickets.On("SaveDetails", ctx, mock.AnythingOfType("*models.Ticket")).Return(nil)

	noDraws := testutil.CreateTestRecord("T-2")
	noDraws["details"] = "003000-003000 000 12-3456-1234567 / 01-2345-67-12345678"

	service := NewImportService(m.factory, testutil.TestDependencies())
	records := []models.Record{testutil.CreateTestRecord("T-1"), noDraws, testutil.CreateTestRecord("T-3")}

	result, err := service.Import(ctx, records, ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Read: 3, Imported: 2, Rejected: 1}, result)
	m.tickets.AssertNumberOfCalls(t, "Insert", 2)
	m.uow.AssertNumberOfCalls(t, "Commit", 1)
}
