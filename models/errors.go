package models

import "errors"

var (
	// ErrMalformedRecord is returned when raw import text fails its structural contract.
	// It is fatal for the ticket being built; batch callers decide whether to skip or abort.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrAmountFormat is returned by ParseAmount for non-numeric amount text
	ErrAmountFormat = errors.New("malformed amount text")

	ErrTicketNotFound    = errors.New("ticket not found")
	ErrAlreadyCancelled  = errors.New("ticket already cancelled")
	ErrUnknownGame       = errors.New("unknown game")
	ErrInvalidSelection  = errors.New("invalid board selection")
	ErrUnknownView       = errors.New("unknown ticket view")
	ErrLookupUnavailable = errors.New("lookup not configured")
)
