// Package notify delivers order and inquiry summaries to the operator's
// Telegram chat. Delivery is at-most-once: failures are logged and counted,
// never surfaced to the checkout caller.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/logging"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

var sendAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "telegram_send_attempts_total",
		Help: "Telegram sendMessage attempts by outcome",
	},
	[]string{"outcome"},
)

const defaultAPIBase = "https://api.telegram.org"

type TelegramNotifier struct {
	httpc   *http.Client
	apiBase string
	token   string
	chatID  string
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*TelegramNotifier)

// WithAPIBase points the notifier at a different endpoint (tests).
func WithAPIBase(base string) Option {
	return func(n *TelegramNotifier) { n.apiBase = strings.TrimRight(base, "/") }
}

// WithClock fixes the timestamp source (tests).
func WithClock(now func() time.Time) Option {
	return func(n *TelegramNotifier) { n.now = now }
}

func NewTelegramNotifier(token, chatID string, timeout time.Duration, opts ...Option) *TelegramNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	n := &TelegramNotifier{
		httpc:   &http.Client{Timeout: timeout},
		apiBase: defaultAPIBase,
		token:   token,
		chatID:  chatID,
		log:     logging.New("notify"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send posts one message to the configured chat. Unlike the Notify
// methods it returns the delivery error, so the queue consumer can retry.
func (n *TelegramNotifier) Send(ctx context.Context, text string) error {
	err := n.send(ctx, text)
	if err != nil {
		sendAttempts.WithLabelValues("failed").Inc()
		return err
	}
	sendAttempts.WithLabelValues("sent").Inc()
	return nil
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.token)
	form := url.Values{"chat_id": {n.chatID}, "text": {text}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !body.OK {
		return fmt.Errorf("sendMessage status=%d ok=%v: %s", resp.StatusCode, body.OK, body.Description)
	}
	return nil
}

func (n *TelegramNotifier) NotifyOrder(ctx context.Context, o domain.Order) {
	n.deliver(ctx, "order", RenderOrder(o, n.now()))
}

func (n *TelegramNotifier) NotifyJoin(ctx context.Context, j domain.JoinRequest) {
	n.deliver(ctx, "join", RenderJoin(j, n.now()))
}

func (n *TelegramNotifier) NotifyContact(ctx context.Context, m domain.ContactMessage) {
	n.deliver(ctx, "contact", RenderContact(m, n.now()))
}

func (n *TelegramNotifier) deliver(ctx context.Context, kind, text string) {
	if err := n.Send(ctx, text); err != nil {
		n.log.Error("notification failed", "kind", kind, "error", err.Error())
		return
	}
	n.log.Info("notification sent", "kind", kind)
}

var _ usecase.Notifier = (*TelegramNotifier)(nil)
