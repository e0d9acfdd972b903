package payment

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

// NoopPaymentService accepts every payment without charging anyone.
type NoopPaymentService struct {
	logger *slog.Logger
}

func NewNoopPaymentService(logger *slog.Logger) *NoopPaymentService {
	return &NoopPaymentService{logger: logger}
}

func (n *NoopPaymentService) MakePayment(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	n.logger.Debug("payment skipped, no payment gateway configured", "account_id", accountID, "amount", amount.String())
	return nil
}
