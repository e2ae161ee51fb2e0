package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/Temutjin2k/wtl-cabs/pkg/metrics"
	"github.com/rabbitmq/amqp091-go"
)

const (
	ReservationExchange = "reservation_topic"

	serviceLabel = "site"
)

// Client is the part of pkg/rabbit the producer needs.
type Client interface {
	Publish(ctx context.Context, exchange, key string, msg amqp091.Publishing) error
}

type ReservationProducer struct {
	client   Client
	exchange string

	l logger.Logger
}

func NewReservationProducer(client Client, exchange string, log logger.Logger) *ReservationProducer {
	if exchange == "" {
		exchange = ReservationExchange
	}
	return &ReservationProducer{
		client:   client,
		exchange: exchange,
		l:        log,
	}
}

// PublishReservation publishes a reservation lead to the reservation exchange
// with the key 'reservation.requested.{category}'.
func (p *ReservationProducer) PublishReservation(ctx context.Context, msg models.ReservationEvent) (err error) {
	const op = "ReservationProducer.PublishReservation"

	defer func() {
		metrics.RecordRabbitMQPublish(serviceLabel, p.exchange, err)
	}()

	body, err := json.Marshal(msg)
	if err != nil {
		ctx = wrap.WithAction(ctx, "marshal_reservation")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to marshal message: %w", op, err))
	}

	key := RoutingKey(msg.Category)

	publish := func() error {
		return p.client.Publish(ctx, p.exchange, key, amqp091.Publishing{
			ContentType:   "application/json",
			Body:          body,
			Timestamp:     time.Now(),
			CorrelationId: msg.RequestID,
		})
	}

	if err := retry(ctx, 2, 100*time.Millisecond, publish); err != nil {
		ctx = wrap.WithAction(ctx, "publish_message")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to publish with context: %w", op, err))
	}

	p.l.Debug(ctx, "reservation event published", "routing_key", key)

	return nil
}

// RoutingKey builds 'reservation.requested.{category}' with the category lowercased
// and spaces replaced by underscores.
func RoutingKey(category string) string {
	segment := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(category)), " ", "_")
	if segment == "" {
		segment = "unknown"
	}
	return "reservation.requested." + segment
}
