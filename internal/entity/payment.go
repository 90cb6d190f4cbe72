package domain

import "errors"

type PaymentMethod string

const (
	PaymentEWallet  PaymentMethod = "E-wallet"
	PaymentCashSend PaymentMethod = "Cash send"
	PaymentInApp    PaymentMethod = "In-App"
	PaymentEFT      PaymentMethod = "EFT"
)

var (
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrPaymentMethodUnavailable = errors.New("payment method is coming soon and not available yet")
)

var allowedMethods = map[PaymentMethod]bool{
	PaymentEWallet:  true,
	PaymentCashSend: true,
	PaymentInApp:    true,
}

// comingSoon lists methods that are advertised but cannot be charged yet.
// In-App is in the allowed set and still rejected here, matching the
// storefront's published payment options.
var comingSoon = map[PaymentMethod]bool{
	PaymentInApp: true,
	PaymentEFT:   true,
}

func (m PaymentMethod) Validate() error {
	if !allowedMethods[m] {
		return ErrUnsupportedPaymentMethod
	}
	if comingSoon[m] {
		return ErrPaymentMethodUnavailable
	}
	return nil
}
