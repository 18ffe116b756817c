package amqpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/streadway/amqp"

	"dfp-sync/internal/config/configs"
	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
)

// Message actions understood by the consumer.
const (
	ActionUpsert     = "upsert"
	ActionDeactivate = "deactivate"
)

// Message is the body of a campaign-change delivery.
type Message struct {
	Action   string          `json:"action" validate:"oneof=upsert deactivate"`
	User     domain.User     `json:"user"`
	Campaign domain.Campaign `json:"campaign"`
}

// Channel is the subset of *amqp.Channel used to subscribe.
type Channel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Subscribe declares the durable queue and starts a manual-ack consumer
// on it.
func Subscribe(ch Channel, cfg configs.AMQP) (<-chan amqp.Delivery, error) {
	q, err := ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue %q: %w", cfg.Queue, err)
	}
	if cfg.Prefetch > 0 {
		if err = ch.Qos(cfg.Prefetch, 0, false); err != nil {
			return nil, fmt.Errorf("set prefetch: %w", err)
		}
	}
	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume %q: %w", q.Name, err)
	}
	return msgs, nil
}

// Consumer applies campaign-change messages to the ad server.
type Consumer struct {
	svc      port.LineItemUseCase
	logger   *slog.Logger
	validate *validator.Validate
}

// NewConsumer returns a consumer driving svc.
func NewConsumer(svc port.LineItemUseCase, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{
		svc:      svc,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Run handles deliveries until ctx is done or the channel is closed.
// Deliveries are processed one at a time.
func (c *Consumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.Handle(ctx, d)
		}
	}
}

// Handle processes one delivery and settles it. Successful and
// unprocessable messages are acked; remote failures are requeued.
func (c *Consumer) Handle(ctx context.Context, d amqp.Delivery) {
	logger := c.logger.With(slog.Uint64("delivery_tag", d.DeliveryTag))

	err := c.process(ctx, d.Body)
	switch {
	case err == nil:
		c.settle(logger, d.Ack(false))
	case port.IsRemoteError(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		logger.Warn("requeue campaign change", slog.Any("error", err), slog.Bool("redelivered", d.Redelivered))
		c.settle(logger, d.Nack(false, true))
	default:
		logger.Error("drop campaign change", slog.Any("error", err))
		c.settle(logger, d.Ack(false))
	}
}

func (c *Consumer) process(ctx context.Context, body []byte) error {
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}

	switch msg.Action {
	case ActionUpsert:
		if err := c.validate.Struct(msg); err != nil {
			return err
		}
		lineItem, err := c.svc.UpsertLineItem(ctx, msg.User, msg.Campaign)
		if err != nil {
			return err
		}
		id, _ := lineItem.ID()
		c.logger.Info("campaign synced", slog.String("campaign", msg.Campaign.Fullname), slog.Int64("lineitem_id", id))
		return nil
	case ActionDeactivate:
		if err := c.validate.Var(msg.Campaign.Fullname, "required"); err != nil {
			return fmt.Errorf("campaign fullname: %w", err)
		}
		changed, err := c.svc.Deactivate(ctx, msg.Campaign)
		if err != nil {
			return err
		}
		c.logger.Info("campaign deactivated", slog.String("campaign", msg.Campaign.Fullname), slog.Bool("changed", changed))
		return nil
	default:
		return fmt.Errorf("unknown action %q", msg.Action)
	}
}

func (c *Consumer) settle(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("settle delivery", slog.Any("error", err))
	}
}
