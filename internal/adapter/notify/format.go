package notify

import (
	"fmt"
	"strings"
	"time"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

var sast = func() *time.Location {
	loc, err := time.LoadLocation("Africa/Johannesburg")
	if err != nil {
		return time.FixedZone("SAST", 2*60*60)
	}
	return loc
}()

func timestamp(t time.Time) string {
	return t.In(sast).Format("03:04 PM SAST, January 02, 2006")
}

// RenderOrder produces the operator-facing order summary.
func RenderOrder(o domain.Order, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order Number: %s\n\n", o.Number)
	fmt.Fprintf(&b, "Customer Details:\nName: %s\nSurname: %s\nPhone: %s\nEmail: %s\n",
		o.Customer.Name, o.Customer.Surname, o.Customer.Phone, o.Customer.Email)
	if o.SpecialNote != "" {
		fmt.Fprintf(&b, "Special Note: %s\n", o.SpecialNote)
	}
	b.WriteString("\nOrder Details:\n")
	for _, l := range o.Lines {
		if l.Quantity > 0 {
			fmt.Fprintf(&b, "%s - %s x %d = %s\n",
				l.Name, domain.FormatRand(l.AmountCents), l.Quantity, domain.FormatRand(l.LineTotal()))
		} else {
			// Legacy document without a quantity.
			fmt.Fprintf(&b, "%s - %s\n", l.Name, domain.FormatRand(l.AmountCents))
		}
	}
	fmt.Fprintf(&b, "\nPayment Method: %s\nTotal: %s\nTime: %s",
		o.PaymentMethod, domain.FormatRand(o.TotalCents), timestamp(now))
	return b.String()
}

// RenderJoin produces the join-request summary.
func RenderJoin(j domain.JoinRequest, now time.Time) string {
	return fmt.Sprintf("New Join Request\nName: %s\nPhone: %s\nEmail: %s\nPackage: %s\nTime: %s\nContact Zama Sibiya to finalize! 📝",
		j.Name, j.Phone, j.Email, j.Package, timestamp(now))
}

// RenderContact produces the contact-message summary.
func RenderContact(m domain.ContactMessage, now time.Time) string {
	return fmt.Sprintf("New Contact Message\nName: %s\nPhone: %s\nEmail: %s\nMessage: %s\nTime: %s 📬",
		m.Name, m.Phone, m.Email, m.Message, timestamp(now))
}
