package models

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicket_Value(t *testing.T) {
	t.Parallel()

	ticket, err := NewTicketFromRecord(context.Background(), testRecord(), testDependencies())
	require.NoError(t, err)
	require.NoError(t, ticket.Add([]int{1, 2, 3, 4, 5, 6}, false))

	tests := []struct {
		field string
		want  any
	}{
		{field: "ticketKeyString", want: "T-0001"},
		{field: "retailer", want: 104233},
		{field: "game", want: "LOTTO649"},
		{field: "controlNumber", want: "12-3456-1234567-3"},
		{field: "lastDrawNumber", want: 103},
		{field: "pack", want: "STD"},
		{field: "cancelled", want: false},
		{field: "selectionCount()", want: 6},
		{field: "isFreePlay()", want: false},
		{field: "retailerType()", want: "regular"},
		{field: "comment()", want: ""},
	}

	for _, tt := range tests {
		got, ok := ticket.Value(tt.field)
		require.True(t, ok, tt.field)
		assert.Equal(t, tt.want, got, tt.field)
	}

	cost, ok := ticket.Value("ticketCost()")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("12").Equal(cost.(decimal.Decimal)))
}

func TestTicket_ValueUnknownField(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ticket := &Ticket{Transaction: Transaction{TicketKeyString: "T-0002"}}

	got, ok := ticket.Value("ticketCost")
	assert.False(t, ok)
	assert.Nil(t, got)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Unknown ticket field requested", entry.Message)
	assert.Equal(t, "ticketCost", entry.Data["field"])
}

func TestFieldNames(t *testing.T) {
	t.Parallel()

	names := FieldNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "ticketKeyString")
	assert.Contains(t, names, "carrierCost()")
	assert.Len(t, names, len(ticketFields))
}
