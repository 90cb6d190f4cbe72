package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

var fixedNow = time.Date(2026, time.August, 31, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// capturedSend records the form fields Telegram would have received.
type capturedSend struct {
	chatID string
	text   string
}

func newFakeTelegram(t *testing.T, reply string) (*httptest.Server, *[]capturedSend) {
	t.Helper()
	var (
		mu    sync.Mutex
		sends []capturedSend
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.NoError(t, r.ParseForm())
		mu.Lock()
		sends = append(sends, capturedSend{
			chatID: r.PostForm.Get("chat_id"),
			text:   r.PostForm.Get("text"),
		})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, &sends
}

func TestSendPostsFormToBotEndpoint(t *testing.T) {
	srv, sends := newFakeTelegram(t, `{"ok":true}`)
	n := NewTelegramNotifier("test-token", "12345", time.Second, WithAPIBase(srv.URL))

	err := n.Send(context.Background(), "hello there")
	require.NoError(t, err)

	require.Len(t, *sends, 1)
	assert.Equal(t, "12345", (*sends)[0].chatID)
	assert.Equal(t, "hello there", (*sends)[0].text)
}

func TestSendErrorsWhenTelegramRejects(t *testing.T) {
	srv, _ := newFakeTelegram(t, `{"ok":false,"description":"chat not found"}`)
	n := NewTelegramNotifier("test-token", "12345", time.Second, WithAPIBase(srv.URL))

	err := n.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestNotifyOrderSwallowsDeliveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"ok":false,"description":"upstream"}`))
	}))
	t.Cleanup(srv.Close)
	n := NewTelegramNotifier("test-token", "12345", time.Second, WithAPIBase(srv.URL), WithClock(fixedClock))

	// Must not panic or surface anything; checkout never sees this.
	n.NotifyOrder(context.Background(), domain.Order{Number: "#0001"})
}

func TestNotifyOrderRendersFullSummary(t *testing.T) {
	srv, sends := newFakeTelegram(t, `{"ok":true}`)
	n := NewTelegramNotifier("test-token", "9", time.Second, WithAPIBase(srv.URL), WithClock(fixedClock))

	n.NotifyOrder(context.Background(), domain.Order{
		Number: "#0007",
		Customer: domain.Customer{
			Name:    "Thandi",
			Surname: "Dlamini",
			Phone:   "0821234567",
			Email:   "thandi@example.com",
		},
		PaymentMethod: domain.PaymentEWallet,
		SpecialNote:   "Gate 4",
		Lines: []domain.CartLine{
			{Name: "Aloe Vera Gel", AmountCents: 56146, Quantity: 2, TotalCents: 112292},
		},
		TotalCents: 112292,
	})

	require.Len(t, *sends, 1)
	want := "Order Number: #0007\n\n" +
		"Customer Details:\n" +
		"Name: Thandi\n" +
		"Surname: Dlamini\n" +
		"Phone: 0821234567\n" +
		"Email: thandi@example.com\n" +
		"Special Note: Gate 4\n" +
		"\nOrder Details:\n" +
		"Aloe Vera Gel - R561.46 x 2 = R1122.92\n" +
		"\nPayment Method: E-wallet\n" +
		"Total: R1122.92\n" +
		"Time: 04:30 PM SAST, August 31, 2026"
	assert.Equal(t, want, (*sends)[0].text)
}

func TestRenderOrderOmitsEmptyNote(t *testing.T) {
	text := RenderOrder(domain.Order{
		Number:        "#0002",
		Customer:      domain.Customer{Name: "A", Surname: "N/A", Phone: "1", Email: "a@b.c"},
		PaymentMethod: domain.PaymentCashSend,
		Lines:         []domain.CartLine{{Name: "Aloe Lips", AmountCents: 7480, Quantity: 1, TotalCents: 7480}},
		TotalCents:    7480,
	}, fixedNow)

	assert.NotContains(t, text, "Special Note")
}

func TestRenderOrderLegacyLineWithoutQuantity(t *testing.T) {
	text := RenderOrder(domain.Order{
		Number:     "#0003",
		Customer:   domain.Customer{Name: "A", Surname: "N/A", Phone: "1", Email: "a@b.c"},
		Lines:      []domain.CartLine{{Name: "Bee Pollen", AmountCents: 32880}},
		TotalCents: 32880,
	}, fixedNow)

	assert.Contains(t, text, "Bee Pollen - R328.80\n")
	assert.NotContains(t, text, "x 0")
}

func TestRenderJoin(t *testing.T) {
	text := RenderJoin(domain.JoinRequest{
		Name:    "Sipho",
		Phone:   "0731112222",
		Email:   "sipho@example.com",
		Package: "Business Builder Pack",
	}, fixedNow)

	want := "New Join Request\n" +
		"Name: Sipho\n" +
		"Phone: 0731112222\n" +
		"Email: sipho@example.com\n" +
		"Package: Business Builder Pack\n" +
		"Time: 04:30 PM SAST, August 31, 2026\n" +
		"Contact Zama Sibiya to finalize! 📝"
	assert.Equal(t, want, text)
}

func TestRenderContact(t *testing.T) {
	text := RenderContact(domain.ContactMessage{
		Name:    "Lerato",
		Phone:   "0823334444",
		Email:   "lerato@example.com",
		Message: "Do you deliver to Durban?",
	}, fixedNow)

	assert.Contains(t, text, "New Contact Message\n")
	assert.Contains(t, text, "Message: Do you deliver to Durban?\n")
	assert.Contains(t, text, "Time: 04:30 PM SAST, August 31, 2026 📬")
}
