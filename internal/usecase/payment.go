package usecase

import (
	"context"
	"log/slog"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/logging"
)

// StubPayments is the placeholder payment step: it logs the charge and
// reports success unconditionally. A real processor slots in behind
// PaymentProcessor without touching checkout.
type StubPayments struct {
	log *slog.Logger
}

func NewStubPayments() *StubPayments {
	return &StubPayments{log: logging.New("payments")}
}

func (s *StubPayments) Process(ctx context.Context, totalCents int64, method domain.PaymentMethod, orderNumber string) error {
	s.log.Info("processing payment",
		"total", domain.FormatRand(totalCents),
		"method", string(method),
		"order", orderNumber,
	)
	return nil
}

var _ PaymentProcessor = (*StubPayments)(nil)
