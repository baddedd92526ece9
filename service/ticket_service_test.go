package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gametool/models"
	"gametool/repository/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedTicket(ticketKey string) *models.StoredTicket {
	checkDigit, serial := "3", "1234567"
	return &models.StoredTicket{
		Date:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Time:            "14:03:22",
		RetailerLocNo:   104233,
		RetailerType:    "subscription",
		PeriodNo:        12,
		DayNo:           75,
		ProductID:       1,
		TicketKeyString: ticketKey,
		Game:            "LOTTO649",
		Pack:            "STD",
		CDC:             8841,
		TicketAmount:    decimal.RequireFromString("14.00"),
		BoardAmount:     decimal.RequireFromString("3.00"),
		FirstDraw:       3000,
		LastDraw:        3001,
		NumberOfDraws:   2,
		ControlNumber:   "1234561234567",
		CheckDigit:      &checkDigit,
		SerialNumber:    &serial,
		PlayType:        "standard",
		RiderEntries:    1,
		Selections: []models.StoredSelection{
			{SelectionNumber: 1, Numbers: []int{1, 2, 3, 4, 5, 6}, QuickPick: true},
			{SelectionNumber: 2, Numbers: []int{7, 14, 21, 28, 35, 42}},
		},
	}
}

func newTicketServiceMocks(ctx context.Context) (*MockUnitOfWorkFactory, *MockUnitOfWork, *MockTicketRepository) {
	factory := new(MockUnitOfWorkFactory)
	uow := new(MockUnitOfWork)
	tickets := new(MockTicketRepository)

	uow.SetRepositories(tickets, nil, nil)
	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback").Return(nil)
	return factory, uow, tickets
}

func TestTicketService_Load(t *testing.T) {
	ctx := context.Background()
	factory, uow, tickets := newTicketServiceMocks(ctx)
	tickets.On("GetByKey", ctx, "T-1").Return(storedTicket("T-1"), nil)

	service := NewTicketService(factory, testutil.TestDependencies())

	ticket, err := service.Load(ctx, "T-1")

	require.NoError(t, err)
	assert.Equal(t, "12-3456-1234567-3", ticket.ControlNumberText())
	assert.Len(t, ticket.Boards(), 2)
	assert.True(t, ticket.IsQuickPick())
	assert.Equal(t, models.RetailerTypeSubscription, ticket.RetailerType())
	assert.True(t, decimal.RequireFromString("14.00").Equal(ticket.TicketCost()))

	// Reads never commit
	uow.AssertNotCalled(t, "Commit")
	uow.AssertCalled(t, "Rollback")
}

func TestTicketService_Load_NotFound(t *testing.T) {
	ctx := context.Background()
	factory, _, tickets := newTicketServiceMocks(ctx)
	tickets.On("GetByKey", ctx, "missing").Return(nil, fmt.Errorf("%w: missing", models.ErrTicketNotFound))

	service := NewTicketService(factory, testutil.TestDependencies())

	ticket, err := service.Load(ctx, "missing")

	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, models.ErrTicketNotFound)
}

func TestTicketService_Render(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		view     models.TicketView
		wantOK   bool
		contains []string
	}{
		{
			name:     "ticket",
			view:     models.ViewTicket,
			wantOK:   true,
			contains: []string{"LOTTO 6/49", "2 DRAWS", "01 02 03 04 05 06 QP", "$  14.00"},
		},
		{name: "no prizes", view: models.ViewPrizes},
		{name: "no comment", view: models.ViewComment},
		{name: "not cancelled", view: models.ViewCancellation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, _, tickets := newTicketServiceMocks(ctx)
			tickets.On("GetByKey", ctx, "T-1").Return(storedTicket("T-1"), nil)

			service := NewTicketService(factory, testutil.TestDependencies())

			text, ok, err := service.Render(ctx, "T-1", tt.view)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			for _, want := range tt.contains {
				assert.Contains(t, text, want)
			}
			if !tt.wantOK {
				assert.Empty(t, text)
			}
		})
	}
}

func TestTicketService_Report(t *testing.T) {
	ctx := context.Background()
	factory, _, tickets := newTicketServiceMocks(ctx)
	tickets.On("GetByKey", ctx, "T-1").Return(storedTicket("T-1"), nil)
	tickets.On("GetByKey", ctx, "T-2").Return(storedTicket("T-2"), nil)

	service := NewTicketService(factory, testutil.TestDependencies())
	fields := []string{"ticketKeyString", "date", "ticketCost()", "riderCost()", "cancelled", "noSuchField", "retailerType()"}

	report, err := service.Report(ctx, []string{"T-1", "T-2"}, fields)

	require.NoError(t, err)
	assert.Equal(t, fields, report.Fields)
	assert.Equal(t, [][]string{
		{"T-1", "2024-03-15", "14.00", "2.00", "false", "", "subscription"},
		{"T-2", "2024-03-15", "14.00", "2.00", "false", "", "subscription"},
	}, report.Rows)
}

func TestTicketService_Report_LoadFailure(t *testing.T) {
	ctx := context.Background()
	factory, _, tickets := newTicketServiceMocks(ctx)
	tickets.On("GetByKey", ctx, "T-9").Return(nil, models.ErrTicketNotFound)

	service := NewTicketService(factory, testutil.TestDependencies())

	report, err := service.Report(ctx, []string{"T-9"}, []string{"ticketKeyString"})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, models.ErrTicketNotFound)
	assert.Contains(t, err.Error(), "T-9")
}
