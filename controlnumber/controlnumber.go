package controlnumber

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a control number or its tag is missing or malformed
var ErrInvalid = errors.New("invalid control number")

var (
	rawPattern    = regexp.MustCompile(`^(\d{2})-(\d{4})-(\d{7})$`)
	storedPattern = regexp.MustCompile(`^\d{13}$`)
	serialPattern = regexp.MustCompile(`^\d{7}$`)
)

// ControlNumber is the unique printed identifier of a physical ticket.
// The base is PP-BBBB-SSSSSSS; the tag is the check digit plus the serial.
type ControlNumber struct {
	prefix     string
	block      string
	serial     string
	checkDigit string
}

// Parse builds a tagged control number from its printed form, e.g. "12-3456-1234567"
func Parse(raw string) (*ControlNumber, error) {
	m := rawPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, fmt.Errorf("%w: %q does not match PP-BBBB-SSSSSSS", ErrInvalid, raw)
	}

	cn := &ControlNumber{prefix: m[1], block: m[2], serial: m[3]}
	cn.checkDigit = strconv.Itoa(checkDigit(cn.digits()))
	return cn, nil
}

// FromStored rebuilds an untagged control number from its 13 digit storage form
func FromStored(stored string) (*ControlNumber, error) {
	stored = strings.TrimSpace(stored)
	if !storedPattern.MatchString(stored) {
		return nil, fmt.Errorf("%w: stored value %q is not 13 digits", ErrInvalid, stored)
	}
	return &ControlNumber{
		prefix: stored[:2],
		block:  stored[2:6],
		serial: stored[6:],
	}, nil
}

// AddTag attaches a stored check digit and serial number after verifying them
// against the base number.
func (c *ControlNumber) AddTag(checkDigitText, serial string) error {
	checkDigitText = strings.TrimSpace(checkDigitText)
	serial = strings.TrimSpace(serial)

	if checkDigitText == "" || serial == "" {
		return fmt.Errorf("%w: tag is missing", ErrInvalid)
	}
	if len(checkDigitText) != 1 || checkDigitText[0] < '0' || checkDigitText[0] > '9' {
		return fmt.Errorf("%w: check digit %q is not a single digit", ErrInvalid, checkDigitText)
	}
	if !serialPattern.MatchString(serial) {
		return fmt.Errorf("%w: serial %q is not 7 digits", ErrInvalid, serial)
	}
	if serial != c.serial {
		return fmt.Errorf("%w: serial %s does not belong to %s", ErrInvalid, serial, c.base())
	}
	if want := strconv.Itoa(checkDigit(c.digits())); want != checkDigitText {
		return fmt.Errorf("%w: check digit %s does not verify for %s", ErrInvalid, checkDigitText, c.base())
	}

	c.checkDigit = checkDigitText
	return nil
}

// Tagged reports whether the check digit is known
func (c *ControlNumber) Tagged() bool {
	return c.checkDigit != ""
}

// CheckDigit returns the check digit, empty when untagged
func (c *ControlNumber) CheckDigit() string {
	return c.checkDigit
}

// Serial returns the 7 digit serial
func (c *ControlNumber) Serial() string {
	return c.serial
}

// SQL returns the storable form: the 13 base digits with no separators
func (c *ControlNumber) SQL() string {
	return c.digits()
}

// String returns the printable form, PP-BBBB-SSSSSSS-C
func (c *ControlNumber) String() string {
	if c.checkDigit == "" {
		return c.base()
	}
	return c.base() + "-" + c.checkDigit
}

func (c *ControlNumber) base() string {
	return c.prefix + "-" + c.block + "-" + c.serial
}

func (c *ControlNumber) digits() string {
	return c.prefix + c.block + c.serial
}

// checkDigit computes the Luhn mod 10 check digit for a string of digits
func checkDigit(digits string) int {
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}
