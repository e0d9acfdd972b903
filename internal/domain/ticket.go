package domain

import (
	"github.com/shopspring/decimal"
)

type TicketType string

const (
	TicketTypeAdult  TicketType = "ADULT"
	TicketTypeChild  TicketType = "CHILD"
	TicketTypeInfant TicketType = "INFANT"
)

const MaxTicketsPerPurchase = 20

var (
	AdultTicketPrice  = decimal.NewFromInt(20)
	ChildTicketPrice  = decimal.NewFromInt(10)
	InfantTicketPrice = decimal.Zero
)

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeAdult, TicketTypeChild, TicketTypeInfant:
		return true
	default:
		return false
	}
}

// Price returns the unit price of the ticket type and false if the type is unknown.
func (t TicketType) Price() (decimal.Decimal, bool) {
	switch t {
	case TicketTypeAdult:
		return AdultTicketPrice, true
	case TicketTypeChild:
		return ChildTicketPrice, true
	case TicketTypeInfant:
		return InfantTicketPrice, true
	default:
		return decimal.Zero, false
	}
}

// OccupiesSeat reports whether a ticket of this type needs a seat. Infants sit on an adult's lap.
func (t TicketType) OccupiesSeat() bool {
	return t != TicketTypeInfant
}

// TicketTypeRequest is a (type, count) pair describing part of a purchase.
// It is a value type; services receive copies and never modify them.
type TicketTypeRequest struct {
	Type        TicketType
	NoOfTickets int
}

func NewTicketTypeRequest(ticketType TicketType, noOfTickets int) (TicketTypeRequest, error) {
	if !ticketType.Valid() {
		return TicketTypeRequest{}, ErrInvalidTicketType
	}

	if noOfTickets < 0 {
		return TicketTypeRequest{}, ErrNegativeTicketCount
	}

	return TicketTypeRequest{
		Type:        ticketType,
		NoOfTickets: noOfTickets,
	}, nil
}
