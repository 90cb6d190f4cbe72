package usecase

import (
	"context"
	"strings"
	"sync"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

type CheckoutInput struct {
	Name          string
	Surname       string
	Phone         string
	Email         string
	PaymentMethod string
	SpecialNote   string
	Remember      bool
}

// Checkout coordinates order placement: validate input, snapshot the cart,
// assign an order number, charge (stub), clear the cart, notify.
//
// Snapshotting through clearing run under an exclusive lock on the cart,
// so two concurrent checkouts cannot both consume the same snapshot: the
// loser observes an empty cart and is rejected. The notifier is called
// after the lock is released, with the order number and snapshot captured
// inside it, and its outcome never affects the response.
type Checkout struct {
	cart     CartRepo
	seq      Sequencer
	notifier Notifier
	payments PaymentProcessor

	mu sync.Mutex // serializes snapshot → clear

	remMu      sync.Mutex
	remembered domain.Customer
	hasRemem   bool
}

func NewCheckout(cart CartRepo, seq Sequencer, notifier Notifier, payments PaymentProcessor) *Checkout {
	return &Checkout{cart: cart, seq: seq, notifier: notifier, payments: payments}
}

func (uc *Checkout) Execute(ctx context.Context, in CheckoutInput) (*domain.Order, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	email := strings.TrimSpace(in.Email)
	surname := strings.TrimSpace(in.Surname)
	if surname == "" {
		surname = "N/A"
	}

	if name == "" || phone == "" || email == "" {
		return nil, invalid("Name, phone, and email are required 🚫")
	}
	if in.PaymentMethod == "" {
		return nil, invalid("Payment method is required 🚫")
	}
	method := domain.PaymentMethod(in.PaymentMethod)
	if err := method.Validate(); err != nil {
		return nil, err
	}

	customer := domain.Customer{Name: name, Surname: surname, Phone: phone, Email: email}
	if in.Remember {
		uc.remMu.Lock()
		uc.remembered = customer
		uc.hasRemem = true
		uc.remMu.Unlock()
	}

	order, err := uc.place(ctx, customer, method, strings.TrimSpace(in.SpecialNote))
	if err != nil {
		return nil, err
	}

	// Outside the cart lock: slow and non-critical.
	uc.notifier.NotifyOrder(ctx, *order)
	return order, nil
}

// place runs the locked section: snapshot, total, number, payment, clear.
func (uc *Checkout) place(ctx context.Context, customer domain.Customer, method domain.PaymentMethod, note string) (*domain.Order, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lines, err := uc.cart.List(ctx)
	if err != nil {
		return nil, storeErr("list", err)
	}
	// Checked after the snapshot read: a cart emptied concurrently still
	// produces a consistent reject, and no order number is consumed.
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	total := domain.CartTotal(lines)

	number, err := uc.seq.Next(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.payments.Process(ctx, total, method, number); err != nil {
		return nil, err
	}

	if err := uc.cart.Clear(ctx); err != nil {
		return nil, storeErr("clear", err)
	}

	return &domain.Order{
		Number:        number,
		Customer:      customer,
		PaymentMethod: method,
		SpecialNote:   note,
		Lines:         lines,
		TotalCents:    total,
	}, nil
}

// Remembered returns the last customer who opted in to being remembered,
// used to pre-fill the checkout form. Process-wide, not per session.
func (uc *Checkout) Remembered() (domain.Customer, bool) {
	uc.remMu.Lock()
	defer uc.remMu.Unlock()
	return uc.remembered, uc.hasRemem
}
