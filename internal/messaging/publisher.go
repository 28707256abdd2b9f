package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
)

// Compile-time check
var _ interfaces.EventPublisher = (*RabbitMQPublisher)(nil)

// RabbitMQPublisher публикует события жизненного цикла в topic exchange.
type RabbitMQPublisher struct {
	conn     *amqp091.Connection
	ch       *amqp091.Channel
	exchange string
	logger   *zap.Logger
}

// NewRabbitMQPublisher создает издателя событий.
// Важно: предполагается, что соединение conn уже установлено и обработка
// ошибок/переподключений управляется внешним кодом, который передает сюда
// стабильное соединение.
func NewRabbitMQPublisher(conn *amqp091.Connection, exchange string, logger *zap.Logger) (*RabbitMQPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is nil")
	}
	log := logger.Named("RabbitMQPublisher")

	ch, err := conn.Channel()
	if err != nil {
		log.Error("Failed to open a channel", zap.Error(err))
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// Объявляем topic exchange. Durable, чтобы пережил перезапуск брокера.
	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		log.Error("Failed to declare exchange", zap.Error(err), zap.String("exchange", exchange))
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchange, err)
	}

	log.Info("Event exchange declared successfully", zap.String("exchange", exchange))
	return &RabbitMQPublisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

// Publish сериализует payload в JSON и публикует его с указанным routing key.
func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("Failed to marshal event payload", zap.Error(err), zap.String("routingKey", routingKey))
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish event", zap.Error(err), zap.String("routingKey", routingKey))
		return fmt.Errorf("failed to publish event '%s': %w", routingKey, err)
	}

	p.logger.Debug("Event published", zap.String("routingKey", routingKey), zap.Int("bytes", len(body)))
	return nil
}

// Close закрывает канал RabbitMQ. Соединением управляет вызывающий код.
func (p *RabbitMQPublisher) Close() error {
	if p.ch != nil {
		return p.ch.Close()
	}
	return nil
}
