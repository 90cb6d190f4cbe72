package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/LeonardBuda/forever-zama/internal/logging"
)

// Sender is the downstream messaging endpoint (Telegram).
type Sender interface {
	Send(ctx context.Context, text string) error
}

// SendNotificationHandler drains queued notifications to the messaging
// endpoint with bounded retry. After the attempts are exhausted the
// message is dropped and logged; there is no dead-letter queue.
type SendNotificationHandler struct {
	sender   Sender
	attempts int
	backoff  time.Duration
	log      *slog.Logger
}

func NewSendNotificationHandler(sender Sender) *SendNotificationHandler {
	return &SendNotificationHandler{
		sender:   sender,
		attempts: 3,
		backoff:  2 * time.Second,
		log:      logging.New("notify-consumer"),
	}
}

// HandleSend is intended to be used with the JSON adapter
// (queue.JSONHandler[NotificationMsg]).
func (h *SendNotificationHandler) HandleSend(ctx context.Context, msg NotificationMsg) error {
	var err error
	for i := 0; i < h.attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(h.backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err = h.sender.Send(ctx, msg.Text); err == nil {
			return nil
		}
		h.log.Warn("notification attempt failed",
			"kind", msg.Kind, "attempt", i+1, "error", err.Error())
	}
	h.log.Error("notification dropped after retries", "kind", msg.Kind, "error", err.Error())
	// Spent: the router acks on nil so the message is not redelivered.
	return nil
}
