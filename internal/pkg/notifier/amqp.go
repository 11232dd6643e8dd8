package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/clearshift/workforce-backend-go/internal/domain/notification"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPSink publishes scheduling events to a RabbitMQ queue consumed by the
// notification workers. Delivery is best effort; callers never fail because
// a notification could not be queued.
type AMQPSink struct {
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

func NewAMQPSink(conn *amqp.Connection, queue string, logger *slog.Logger) (*AMQPSink, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPSink{channel: ch, queue: queue, logger: logger}, nil
}

// Notify implements notification.Sink.
func (s *AMQPSink) Notify(ctx context.Context, event notification.Event) {
	body, err := json.Marshal(event)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal notification event",
			slog.String("kind", string(event.Kind)), slog.Any("error", err))
		return
	}

	err = s.channel.PublishWithContext(
		ctx,
		"",
		s.queue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to publish notification event",
			slog.String("kind", string(event.Kind)),
			slog.String("worker_id", event.WorkerID),
			slog.Any("error", err))
	}
}

func (s *AMQPSink) Close() error {
	return s.channel.Close()
}

// LogSink writes events to the application log. It stands in for the queue
// in environments without a broker.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Notify implements notification.Sink.
func (s *LogSink) Notify(ctx context.Context, event notification.Event) {
	s.logger.InfoContext(ctx, "notification event",
		slog.String("kind", string(event.Kind)),
		slog.String("worker_id", event.WorkerID),
		slog.String("shift_id", event.ShiftID))
}
