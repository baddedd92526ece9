package models

import "fmt"

// RetailerType distinguishes sales channels; free play notation differs between them
type RetailerType string

const (
	RetailerTypeRegular      RetailerType = "regular"
	RetailerTypeSubscription RetailerType = "subscription"
	RetailerTypeOnline       RetailerType = "online"
)

// Retailer identifies the location that sold a ticket
type Retailer struct {
	Number int
	Type   RetailerType
}

func (r Retailer) String() string {
	return fmt.Sprintf("%06d", r.Number)
}

// ParseRetailerType maps free text to a retailer type, defaulting to regular
func ParseRetailerType(s string) RetailerType {
	switch RetailerType(s) {
	case RetailerTypeSubscription, RetailerTypeOnline:
		return RetailerType(s)
	default:
		return RetailerTypeRegular
	}
}
