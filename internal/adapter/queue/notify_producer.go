package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/LeonardBuda/forever-zama/internal/adapter/notify"
	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/logging"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

const (
	exchangeName = "storefront.notifications"
	routingKey   = "notification.send"

	// NotificationsQueue is the queue the consumer drains; declared and
	// bound by NewNotifyProducer.
	NotificationsQueue = "notifications.telegram.q"
)

// NotificationMsg is the queued, already-rendered notification text.
type NotificationMsg struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// NotifyProducer is the durable notification path: instead of posting to
// Telegram inline, checkout publishes the rendered summary to a durable
// queue and a consumer drains it with bounded retry. Still fire-and-forget
// at the API boundary: publish failures are logged, never returned.
type NotifyProducer struct {
	ch  *amqp.Channel
	log *slog.Logger
	now func() time.Time
}

// NewNotifyProducer sets up the exchange, queue, and binding once at startup.
func NewNotifyProducer(ch *amqp.Channel) (*NotifyProducer, error) {
	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		NotificationsQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, routingKey, exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("queue bind: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}

	return &NotifyProducer{ch: ch, log: logging.New("notify-outbox"), now: time.Now}, nil
}

func (p *NotifyProducer) NotifyOrder(ctx context.Context, o domain.Order) {
	p.publish(ctx, "order", notify.RenderOrder(o, p.now()))
}

func (p *NotifyProducer) NotifyJoin(ctx context.Context, j domain.JoinRequest) {
	p.publish(ctx, "join", notify.RenderJoin(j, p.now()))
}

func (p *NotifyProducer) NotifyContact(ctx context.Context, m domain.ContactMessage) {
	p.publish(ctx, "contact", notify.RenderContact(m, p.now()))
}

func (p *NotifyProducer) publish(ctx context.Context, kind, text string) {
	body, err := json.Marshal(NotificationMsg{Kind: kind, Text: text})
	if err != nil {
		p.log.Error("marshal notification", "kind", kind, "error", err.Error())
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // survive broker restarts
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, pub); err != nil {
		p.log.Error("publish notification", "kind", kind, "error", err.Error())
		return
	}
	p.log.Info("notification queued", "kind", kind)
}

var _ usecase.Notifier = (*NotifyProducer)(nil)
