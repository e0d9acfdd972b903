package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

var maxAmountPence = decimal.NewFromInt(math.MaxInt64)

type contextKey string

const contextKeyIdempotencyKey = contextKey("idempotency_key")

// ContextWithIdempotencyKey returns a copy of ctx whose payments use the given idempotency key.
func ContextWithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, contextKeyIdempotencyKey, key)
}

func IdempotencyKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(contextKeyIdempotencyKey).(string)
	return key, ok && key != ""
}

type StripePaymentService struct {
	logger           *slog.Logger
	newPaymentIntent func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func NewStripePaymentService(logger *slog.Logger) *StripePaymentService {
	return &StripePaymentService{
		logger:           logger,
		newPaymentIntent: paymentintent.New,
	}
}

// MakePayment charges the account for the given amount in GBP. Zero amounts are not sent to Stripe.
func (s *StripePaymentService) MakePayment(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative: %s", amount)
	}

	if amount.IsZero() {
		s.logger.Info("skipping payment of zero amount", "account_id", accountID)
		return nil
	}

	pence := amount.Mul(decimal.NewFromInt(100))
	if !pence.IsInteger() {
		return fmt.Errorf("amount must be a whole number of pence: %s", amount)
	}

	if pence.GreaterThan(maxAmountPence) {
		return fmt.Errorf("amount exceeds the largest chargeable amount: %s", amount)
	}

	amountPence := pence.IntPart()

	idempotencyKey, ok := IdempotencyKeyFromContext(ctx)
	if !ok {
		idempotencyKey = uuid.New().String()
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountPence),
		Currency:    stripe.String(string(stripe.CurrencyGBP)),
		Description: stripe.String(fmt.Sprintf("Cinema tickets for account %d", accountID)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)
	params.AddMetadata("account_id", strconv.FormatInt(accountID, 10))

	pi, err := s.newPaymentIntent(params)
	if err != nil {
		return err
	}

	s.logger.Info(
		"payment intent created",
		"account_id", accountID,
		"payment_intent_id", pi.ID,
		"amount_pence", amountPence,
		"idempotency_key", idempotencyKey,
	)

	return nil
}
