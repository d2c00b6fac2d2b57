package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Producer publishes payment lifecycle events for analytics consumers.
type Producer struct {
	l             *slog.Logger
	w             *kafka.Writer
	paymentsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:             l,
		w:             w,
		paymentsTopic: topic,
	}
}

const (
	EventOrderCreated     = "order_created"
	EventPaymentSucceeded = "payment_succeeded"
	EventPaymentCanceled  = "payment_canceled"
	EventPostPayment      = "post_payment"
)

type PaymentEvent struct {
	Event     string          `json:"event"`
	SessionID uuid.UUID       `json:"session_id"`
	UserID    uuid.UUID       `json:"user_id"`
	OrderID   int64           `json:"order_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	// Screen is set only for EventPostPayment and tells the client where
	// to navigate after the 3 second hold.
	Screen string `json:"screen,omitempty"`
}

// SendPaymentEvent publishes the event fire-and-forget. Delivery failures
// are logged, never surfaced: analytics must not break a payment.
func (p *Producer) SendPaymentEvent(ctx context.Context, event PaymentEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SessionID.String()),
		Value: b,
		Topic: p.paymentsTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, args ...any) {
	l.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, args ...any) {
	l.l.Error(fmt.Sprintf(format, args...))
}
