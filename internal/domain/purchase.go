package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const invalidPurchasePrefix = "Invalid Purchase: "

// InvalidPurchaseError is the single error kind returned for a rejected purchase.
type InvalidPurchaseError struct {
	Err error
}

func NewInvalidPurchaseError(err error) *InvalidPurchaseError {
	return &InvalidPurchaseError{Err: err}
}

func (e *InvalidPurchaseError) Error() string {
	return invalidPurchasePrefix + e.Reason()
}

// Reason is the message without the "Invalid Purchase: " prefix.
func (e *InvalidPurchaseError) Reason() string {
	if e.Err == nil {
		return "unknown reason"
	}

	return e.Err.Error()
}

func (e *InvalidPurchaseError) Unwrap() error {
	return e.Err
}

type PurchaseSummary struct {
	AccountID     int64
	TotalCost     decimal.Decimal
	SeatsReserved int
}

func (p PurchaseSummary) Message() string {
	return fmt.Sprintf("Successfully reserved %d seats. Total cost: £%s.", p.SeatsReserved, p.TotalCost.String())
}
