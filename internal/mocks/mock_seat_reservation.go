package mocks

import (
	"context"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatReservationService struct {
	mock.Mock
}

func (m *MockSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	args := m.Called(ctx, accountID, seats)
	return args.Error(0)
}

type MockSeatReservationRepo struct {
	mock.Mock
	domain.SeatReservationRepository
}

func (m *MockSeatReservationRepo) Create(ctx context.Context, reservation *domain.SeatReservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockSeatReservationRepo) GetByAccountId(ctx context.Context, accountID int64) ([]domain.SeatReservation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatReservation), args.Error(1)
}
