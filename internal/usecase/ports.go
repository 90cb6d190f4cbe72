package usecase

import (
	"context"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

// CartRepo is the document-store port for cart lines. List order is
// store-defined, not insertion order.
type CartRepo interface {
	Add(ctx context.Context, line domain.CartLine) error
	// RemoveByName deletes every line matching name exactly and reports
	// how many were removed.
	RemoveByName(ctx context.Context, name string) (int, error)
	List(ctx context.Context) ([]domain.CartLine, error)
	Clear(ctx context.Context) error
}

// LeadRepo persists lead-capture submissions.
type LeadRepo interface {
	SaveJoinRequest(ctx context.Context, j domain.JoinRequest) error
	SaveContactMessage(ctx context.Context, m domain.ContactMessage) error
}

// Sequencer issues order numbers. Implementations must be safe under
// concurrent issuance.
type Sequencer interface {
	Next(ctx context.Context) (string, error)
}

// Notifier delivers operator notifications. Delivery is at-most-once and
// best-effort: implementations log failures instead of returning them, so
// callers never block on or fail from notification outcome.
type Notifier interface {
	NotifyOrder(ctx context.Context, o domain.Order)
	NotifyJoin(ctx context.Context, j domain.JoinRequest)
	NotifyContact(ctx context.Context, m domain.ContactMessage)
}

// PaymentProcessor charges an order total.
type PaymentProcessor interface {
	Process(ctx context.Context, totalCents int64, method domain.PaymentMethod, orderNumber string) error
}
