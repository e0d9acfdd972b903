package domain

import (
	"context"
	"time"
)

type SeatReservation struct {
	ID        int
	AccountID int64
	Seats     int
	CreatedAt time.Time
}

type SeatReservationRepository interface {
	Create(ctx context.Context, reservation *SeatReservation) error
	GetByAccountId(ctx context.Context, accountID int64) ([]SeatReservation, error)
}
