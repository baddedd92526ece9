package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// detailsPattern captures first draw, last draw, draw count and the control number
var detailsPattern = regexp.MustCompile(`(\d{6})-(\d{6})\s+?(\d{3})\s+?(\d{2}-\d{4}-\d{7})\s+?/\s+?\d{2}-\d{4}-\d{2}-\d{8}`)

// DrawRange is what the details field of a sell record encodes
type DrawRange struct {
	FirstDrawNumber int
	LastDrawNumber  int
	NumberOfDraws   int
	ControlNumber   string
}

// Consistent reports whether first + count - 1 == last.
// Tickets spanning excluded draws legitimately break this.
func (d DrawRange) Consistent() bool {
	return d.FirstDrawNumber+d.NumberOfDraws-1 == d.LastDrawNumber
}

// ParseDrawRange extracts the draw bounds and control number fragment from a details string
func ParseDrawRange(details string) (DrawRange, error) {
	m := detailsPattern.FindStringSubmatch(details)
	if len(m) != 5 {
		return DrawRange{}, fmt.Errorf("%w: invalid SELL record details: %q", ErrMalformedRecord, details)
	}

	var dr DrawRange
	var err error
	if dr.FirstDrawNumber, err = strconv.Atoi(m[1]); err != nil {
		return DrawRange{}, fmt.Errorf("%w: first draw %q: %v", ErrMalformedRecord, m[1], err)
	}
	if dr.LastDrawNumber, err = strconv.Atoi(m[2]); err != nil {
		return DrawRange{}, fmt.Errorf("%w: last draw %q: %v", ErrMalformedRecord, m[2], err)
	}
	if dr.NumberOfDraws, err = strconv.Atoi(strings.ReplaceAll(m[3], "-", "")); err != nil {
		return DrawRange{}, fmt.Errorf("%w: draw count %q: %v", ErrMalformedRecord, m[3], err)
	}
	if dr.NumberOfDraws <= 0 {
		return DrawRange{}, fmt.Errorf("%w: draw count must be positive: %q", ErrMalformedRecord, m[3])
	}
	dr.ControlNumber = m[4]

	return dr, nil
}
