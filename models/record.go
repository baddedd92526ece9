package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one raw import line keyed by column header
type Record map[string]string

// Get returns a required column
func (r Record) Get(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", fmt.Errorf("%w: missing column %q", ErrMalformedRecord, field)
	}
	return strings.TrimSpace(v), nil
}

// GetOptional returns a column or the fallback when absent or blank
func (r Record) GetOptional(field, fallback string) string {
	v := strings.TrimSpace(r[field])
	if v == "" {
		return fallback
	}
	return v
}

// GetInt returns a required integer column
func (r Record) GetInt(field string) (int, error) {
	v, err := r.Get(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q is not an integer: %q", ErrMalformedRecord, field, v)
	}
	return n, nil
}

// Transaction holds the header fields every sales transaction carries
type Transaction struct {
	TicketKeyString string
	Date            time.Time
	Time            string
	Retailer        Retailer
	PeriodNo        int
	DayNo           int
	CDC             int
	ProductID       int
}

const recordDateLayout = "2006-01-02"

func parseTransaction(rec Record) (Transaction, error) {
	var tx Transaction
	var err error

	if tx.TicketKeyString, err = rec.Get("ticket_key_string"); err != nil {
		return tx, err
	}
	if tx.TicketKeyString == "" {
		return tx, fmt.Errorf("%w: empty ticket_key_string", ErrMalformedRecord)
	}

	date, err := rec.Get("date")
	if err != nil {
		return tx, err
	}
	if tx.Date, err = time.Parse(recordDateLayout, date); err != nil {
		return tx, fmt.Errorf("%w: invalid date %q", ErrMalformedRecord, date)
	}
	if tx.Time, err = rec.Get("time"); err != nil {
		return tx, err
	}
	if tx.Retailer.Number, err = rec.GetInt("retailer_loc_no"); err != nil {
		return tx, err
	}
	tx.Retailer.Type = ParseRetailerType(rec.GetOptional("retailer_type", ""))
	if tx.PeriodNo, err = rec.GetInt("period_no"); err != nil {
		return tx, err
	}
	if tx.DayNo, err = rec.GetInt("day_no"); err != nil {
		return tx, err
	}
	if tx.CDC, err = rec.GetInt("cdc"); err != nil {
		return tx, err
	}
	if tx.ProductID, err = rec.GetInt("product_id"); err != nil {
		return tx, err
	}

	return tx, nil
}

type boardSelection struct {
	numbers   []int
	quickPick bool
}

// parseBoards reads the optional boards column: selections separated by "|",
// numbers by whitespace, a trailing QP marking a quick pick
func parseBoards(text string) ([]boardSelection, error) {
	var selections []boardSelection
	for i, part := range strings.Split(text, "|") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: board %d is empty", ErrMalformedRecord, i+1)
		}

		var sel boardSelection
		if strings.EqualFold(fields[len(fields)-1], "QP") {
			sel.quickPick = true
			fields = fields[:len(fields)-1]
		}
		for _, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: board %d has non-numeric pick %q", ErrMalformedRecord, i+1, field)
			}
			sel.numbers = append(sel.numbers, n)
		}
		selections = append(selections, sel)
	}
	return selections, nil
}
