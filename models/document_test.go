package models

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSection_AppendText(t *testing.T) {
	t.Parallel()

	section := NewTextSection(5)
	section.AppendText("abcdefghijk\nxy")

	assert.Equal(t, []string{"abcde", "fghij", "k", "xy"}, section.Lines())
	assert.Equal(t, "abcde\nfghij\nk\nxy", section.String())
}

func TestTextSection_AppendTextMultiByte(t *testing.T) {
	t.Parallel()

	section := NewTextSection(5)
	section.AppendText("QUÉBEC ÉTÉ")

	assert.Equal(t, []string{"QUÉBE", "C ÉTÉ"}, section.Lines())
	for _, line := range section.Lines() {
		assert.True(t, utf8.ValidString(line), line)
	}
}

func TestTextDocument_SkipsEmptySections(t *testing.T) {
	t.Parallel()

	header := NewTextSection(TicketWidth)
	header.AppendText("HEAD")
	footer := NewTextSection(TicketWidth)
	footer.AppendText("FOOT")

	doc := &TextDocument{Header: header, Content: NewTextSection(TicketWidth), Footer: footer}
	assert.Equal(t, "HEAD\nFOOT", doc.String())
}

func TestTicket_String(t *testing.T) {
	t.Parallel()

	ticket, err := NewTicketFromRecord(context.Background(), testRecord(), testDependencies())
	require.NoError(t, err)
	require.NoError(t, ticket.Add([]int{6, 5, 4, 3, 2, 1}, true))

	want := strings.Join([]string{
		"==============================",
		"LOTTO 6/49",
		"",
		"4 DRAWS",
		"01 02 03 04 05 06 QP",
		"SEE REVERSE",
		"$  12.00",
		"SYSID 104233",
		"",
		"X_____________________________",
		"PRINT YOUR NAME HERE",
		"",
		"TICKET TAG",
	}, "\n")
	assert.Equal(t, want, ticket.String())

	for _, line := range ticket.TextDocument().Footer.Lines() {
		assert.LessOrEqual(t, len(line), TicketWidth)
	}
}

func TestTicket_StringFreePlaySingleDraw(t *testing.T) {
	t.Parallel()

	rec := testRecord()
	rec["play_type"] = "free play"
	rec["details"] = "000100-000100 001 12-3456-1234567 / 01-2345-67-12345678"

	ticket, err := NewTicketFromRecord(context.Background(), rec, testDependencies())
	require.NoError(t, err)
	require.NoError(t, ticket.Add([]int{7, 8, 9, 10, 11, 12}, false))

	lines := strings.Split(ticket.String(), "\n")
	assert.Equal(t, "1 DRAW", lines[3])
	assert.Contains(t, lines, "FREE PLAY")
}
