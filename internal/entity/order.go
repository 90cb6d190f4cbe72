package domain

import "fmt"

// Customer identity submitted with a checkout. Surname defaults to "N/A"
// when left blank.
type Customer struct {
	Name    string
	Surname string
	Phone   string
	Email   string
}

// Order is transient: constructed at checkout, notified, returned to the
// caller and discarded. It is never persisted.
type Order struct {
	Number        string
	Customer      Customer
	PaymentMethod PaymentMethod
	SpecialNote   string
	Lines         []CartLine
	TotalCents    int64
}

// FormatOrderNumber renders a sequence value as "#0001".
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("#%04d", n)
}
