package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type PaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount decimal.Decimal) error
}

type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, seats int) error
}
