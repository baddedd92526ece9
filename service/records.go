package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"gametool/models"
)

// ReadRecords reads header-keyed CSV import records. Header names are trimmed and
// lower-cased; every line must have as many fields as the header.
func ReadRecords(r io.Reader) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")))
	}

	var records []models.Record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrMalformedRecord, err)
		}

		record := make(models.Record, len(header))
		for i, name := range header {
			record[name] = fields[i]
		}
		records = append(records, record)
	}

	return records, nil
}
