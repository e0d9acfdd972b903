package integration_test

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-tickets/internal/app"
	"github.com/metinatakli/cinema-tickets/internal/repository"
	"github.com/metinatakli/cinema-tickets/internal/reservation"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
	"github.com/shopspring/decimal"
)

type TestApp struct {
	App             *app.Application
	DB              *pgxpool.Pool
	ReservationRepo *repository.PostgresSeatReservationRepository
	PaymentService  *RecordingPaymentService
}

// RecordingPaymentService stands in for the payment gateway and keeps every charge it receives.
type RecordingPaymentService struct {
	mu       sync.Mutex
	Payments []Payment
	Err      error
}

type Payment struct {
	AccountID int64
	Amount    decimal.Decimal
}

func (p *RecordingPaymentService) MakePayment(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}

	p.Payments = append(p.Payments, Payment{AccountID: accountID, Amount: amount})
	return nil
}

func (p *RecordingPaymentService) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Payments = nil
	p.Err = nil
}

func (p *RecordingPaymentService) Recorded() []Payment {
	p.mu.Lock()
	defer p.mu.Unlock()

	payments := make([]Payment, len(p.Payments))
	copy(payments, p.Payments)
	return payments
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	reservationRepo := repository.NewPostgresSeatReservationRepository(db)
	paymentService := &RecordingPaymentService{}

	application := app.NewApp(
		cfg,
		logger,
		db,
		appvalidator.NewValidator(),
		paymentService,
		reservation.NewSeatReservationService(reservationRepo, logger),
	)

	return &TestApp{
		App:             application,
		DB:              db,
		ReservationRepo: reservationRepo,
		PaymentService:  paymentService,
	}, nil
}
