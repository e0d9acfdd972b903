package domain

import "errors"

var (
	ErrInvalidTicketType     = errors.New("type must be ADULT, CHILD, or INFANT")
	ErrInvalidTicketCount    = errors.New("noOfTickets must be an integer")
	ErrNegativeTicketCount   = errors.New("noOfTickets must not be negative")
	ErrTicketCountOutOfRange = errors.New("noOfTickets is out of range")

	ErrAccountNotRecognised = errors.New("Account ID not recognised.")
	ErrNoTicketsSelected    = errors.New("No ticket type selection made, please request an Adult, Child or Infant Ticket.")
	ErrAdultTicketRequired  = errors.New("An Adult ticket must be purchased alongside a Child or Infant ticket.")
	ErrUnknownTicketType    = errors.New("Unknown ticket type")
	ErrInvalidNoOfTickets   = errors.New("Invalid number of tickets")
	ErrMaxTicketsExceeded   = errors.New("Exceeded Maximum limit of 20 tickets.")

	ErrPaymentFailed         = errors.New("payment failed")
	ErrSeatReservationFailed = errors.New("seat reservation failed")
	ErrInvalidSeatCount      = errors.New("seat count must not be negative")
)
