package rabbitmq

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	contentType  = "application/json"
	exchangeKind = "topic"
	consumerName = "stock-sync"
)

// HandlerFunc handles single message body.
type HandlerFunc func(ctx context.Context, message []byte) error

// RabbitMQ consumes and publishes sync commands.
type RabbitMQ struct {
	channel  *amqp.Channel
	exchange string
	done     chan struct{}
}

// NewRabbitMQ opens channel on provided connection.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	return &RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Declare declares durable topic exchange and durable queue bound to it with routingKey.
func (mq *RabbitMQ) Declare(queue, routingKey string) error {
	if err := mq.channel.ExchangeDeclare(mq.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare exchange %q: %w", mq.exchange, err)
	}

	if _, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare queue %q: %w", queue, err)
	}

	if err := mq.channel.QueueBind(queue, routingKey, mq.exchange, false, nil); err != nil {
		return fmt.Errorf("can't bind queue %q to %q: %w", queue, routingKey, err)
	}

	return nil
}

// Publish publishes persistent json message with routing key.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	err := mq.channel.PublishWithContext(ctx, mq.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Body:         message,
	})
	if err != nil {
		return fmt.Errorf("can't publish message: %w", err)
	}

	return nil
}

// Consume consumes queue in background and passes message bodies to handler, one at a time.
// Handled messages are acked, failed ones are nacked without requeue.
// Returned channel receives handler and acknowledgement errors, consuming stops when ctx is done.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	// one sync run at a time.
	if err := mq.channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("can't set prefetch: %w", err)
	}

	tag := consumerName + "-" + uuid.NewString()
	deliveries, err := mq.channel.ConsumeWithContext(ctx, queue, tag, false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	errs := make(chan error)
	mq.done = make(chan struct{})

	go func() {
		defer close(mq.done)
		defer close(errs)
		mq.consume(ctx, deliveries, errs, handler)
	}()

	return errs, nil
}

func (mq *RabbitMQ) consume(ctx context.Context, deliveries <-chan amqp.Delivery, errs chan<- error, handler HandlerFunc) {
	for {
		var delivery amqp.Delivery
		var ok bool

		select {
		case <-ctx.Done():
			return
		case delivery, ok = <-deliveries:
			if !ok {
				return
			}
		}

		if err := handler(ctx, delivery.Body); err != nil {
			if pushError(ctx, fmt.Errorf("message %s: %w", delivery.MessageId, err), errs) != nil {
				return
			}
			if err := delivery.Nack(false, false); err != nil {
				_ = pushError(ctx, fmt.Errorf("can't nack message: %w", err), errs)
				return
			}
			continue
		}

		if err := delivery.Ack(false); err != nil {
			_ = pushError(ctx, fmt.Errorf("can't ack message: %w", err), errs)
			return
		}
	}
}

// Done returns channel closed when consuming is finished.
func (mq *RabbitMQ) Done() <-chan struct{} {
	return mq.done
}

// Close closes underlying channel.
func (mq *RabbitMQ) Close() error {
	return mq.channel.Close()
}

func pushError(ctx context.Context, err error, errs chan<- error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errs <- err:
	}
	return nil
}
