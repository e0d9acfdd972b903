package reservation

import (
	"context"
	"log/slog"

	"github.com/metinatakli/cinema-tickets/internal/domain"
)

// SeatReservationService books seats by recording them in the reservation store.
type SeatReservationService struct {
	repo   domain.SeatReservationRepository
	logger *slog.Logger
}

func NewSeatReservationService(repo domain.SeatReservationRepository, logger *slog.Logger) *SeatReservationService {
	return &SeatReservationService{
		repo:   repo,
		logger: logger,
	}
}

func (s *SeatReservationService) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	if seats < 0 {
		return domain.ErrInvalidSeatCount
	}

	reservation := &domain.SeatReservation{
		AccountID: accountID,
		Seats:     seats,
	}

	err := s.repo.Create(ctx, reservation)
	if err != nil {
		return err
	}

	s.logger.Info("seats reserved", "reservation_id", reservation.ID, "account_id", accountID, "seats", seats)

	return nil
}

// NoopSeatReservationService accepts every reservation without contacting a booking system.
type NoopSeatReservationService struct {
	logger *slog.Logger
}

func NewNoopSeatReservationService(logger *slog.Logger) *NoopSeatReservationService {
	return &NoopSeatReservationService{logger: logger}
}

func (n *NoopSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	n.logger.Debug("seat reservation skipped, no booking system configured", "account_id", accountID, "seats", seats)
	return nil
}
