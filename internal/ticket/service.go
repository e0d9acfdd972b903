package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/cinema-tickets/internal/ticket"

const (
	outcomeCompleted = "completed"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
)

// Service validates ticket purchases, then charges the account and reserves the seats.
type Service struct {
	logger       *slog.Logger
	payments     domain.PaymentService
	reservations domain.SeatReservationService
	tracer       trace.Tracer
	purchases    metric.Int64Counter
}

func NewService(
	logger *slog.Logger,
	payments domain.PaymentService,
	reservations domain.SeatReservationService) *Service {

	purchases, err := otel.Meter(instrumentationName).Int64Counter(
		"ticket.purchases",
		metric.WithDescription("Number of ticket purchase attempts by outcome"),
	)
	if err != nil {
		logger.Warn("failed to create purchase counter, falling back to no-op", "error", err)
		purchases = noop.Int64Counter{}
	}

	return &Service{
		logger:       logger,
		payments:     payments,
		reservations: reservations,
		tracer:       otel.Tracer(instrumentationName),
		purchases:    purchases,
	}
}

// PurchaseTickets validates the requests and, if they form a valid purchase, pays for and
// reserves them. Every failure is returned as *domain.InvalidPurchaseError. Payment and
// reservation are only called once the whole purchase has been validated.
func (s *Service) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	ticketTypeRequests ...domain.TicketTypeRequest) (domain.PurchaseSummary, error) {

	ctx, span := s.tracer.Start(ctx, "PurchaseTickets", trace.WithAttributes(
		attribute.Int64("account.id", accountID),
		attribute.Int("ticket.requests", len(ticketTypeRequests)),
	))
	defer span.End()

	summary, err := s.purchase(ctx, accountID, ticketTypeRequests)
	if err != nil {
		outcome := outcomeRejected

		switch {
		case errors.Is(err, domain.ErrPaymentFailed), errors.Is(err, domain.ErrSeatReservationFailed):
			outcome = outcomeFailed
			s.logger.Error("ticket purchase failed", "account_id", accountID, "error", err)
		default:
			s.logger.Warn("ticket purchase rejected", "account_id", accountID, "reason", err.Error())
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

		return domain.PurchaseSummary{}, domain.NewInvalidPurchaseError(err)
	}

	span.SetAttributes(
		attribute.Int("ticket.seats", summary.SeatsReserved),
		attribute.String("ticket.total_cost", summary.TotalCost.String()),
	)
	s.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcomeCompleted)))
	s.logger.Info(
		"ticket purchase completed",
		"account_id", accountID,
		"seats", summary.SeatsReserved,
		"total_cost", summary.TotalCost.String(),
	)

	return summary, nil
}

func (s *Service) purchase(
	ctx context.Context,
	accountID int64,
	ticketTypeRequests []domain.TicketTypeRequest) (domain.PurchaseSummary, error) {

	if accountID <= 0 {
		return domain.PurchaseSummary{}, domain.ErrAccountNotRecognised
	}

	err := validatePurchase(ticketTypeRequests)
	if err != nil {
		return domain.PurchaseSummary{}, err
	}

	totalCost, err := calculateTicketCost(ticketTypeRequests)
	if err != nil {
		return domain.PurchaseSummary{}, err
	}

	seatsToReserve, err := calculateSeats(ticketTypeRequests)
	if err != nil {
		return domain.PurchaseSummary{}, err
	}

	err = s.payments.MakePayment(ctx, accountID, totalCost)
	if err != nil {
		return domain.PurchaseSummary{}, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}

	err = s.reservations.ReserveSeat(ctx, accountID, seatsToReserve)
	if err != nil {
		// the payment has already been taken at this point and is not refunded
		s.logger.Error(
			"seats not reserved after payment was taken",
			"account_id", accountID,
			"seats", seatsToReserve,
			"total_cost", totalCost.String(),
		)
		return domain.PurchaseSummary{}, fmt.Errorf("%w: %w", domain.ErrSeatReservationFailed, err)
	}

	return domain.PurchaseSummary{
		AccountID:     accountID,
		TotalCost:     totalCost,
		SeatsReserved: seatsToReserve,
	}, nil
}

func validatePurchase(ticketTypeRequests []domain.TicketTypeRequest) error {
	if len(ticketTypeRequests) == 0 {
		return domain.ErrNoTicketsSelected
	}

	hasAdultTicket, hasChildOrInfantTicket := false, false

	for _, request := range ticketTypeRequests {
		switch request.Type {
		case domain.TicketTypeAdult:
			hasAdultTicket = true
		case domain.TicketTypeChild, domain.TicketTypeInfant:
			hasChildOrInfantTicket = true
		}
	}

	if hasChildOrInfantTicket && !hasAdultTicket {
		return domain.ErrAdultTicketRequired
	}

	return nil
}

func calculateTicketCost(ticketTypeRequests []domain.TicketTypeRequest) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, request := range ticketTypeRequests {
		price, ok := request.Type.Price()
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownTicketType, request.Type)
		}

		if request.NoOfTickets < 0 {
			return decimal.Zero, fmt.Errorf("%w: %s x %d", domain.ErrInvalidNoOfTickets, request.Type, request.NoOfTickets)
		}

		total = total.Add(price.Mul(decimal.NewFromInt(int64(request.NoOfTickets))))
	}

	return total, nil
}

// calculateSeats expects non-negative counts. The running total is compared with the
// limit before each addition so that large counts cannot wrap it around.
func calculateSeats(ticketTypeRequests []domain.TicketTypeRequest) (int, error) {
	totalTickets, seats := 0, 0

	for _, request := range ticketTypeRequests {
		if request.NoOfTickets > domain.MaxTicketsPerPurchase-totalTickets {
			return 0, domain.ErrMaxTicketsExceeded
		}

		totalTickets += request.NoOfTickets

		if request.Type.OccupiesSeat() {
			seats += request.NoOfTickets
		}
	}

	return seats, nil
}
