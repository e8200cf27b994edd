package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	channel *amqp.Channel
}

func NewProducer(channel *amqp.Channel) *Producer {
	return &Producer{channel: channel}
}

// PublishJSON публикует сообщение в формате JSON, возвращает message id
func (p *Producer) PublishJSON(ctx context.Context, routingKey string, eventType string, message interface{}) (string, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate message id: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",         // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         eventType,
			MessageId:    id.String(),
			Body:         body,
			DeliveryMode: amqp.Persistent, // Сохранять при перезапуске
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return "", fmt.Errorf("publish %s: %w", eventType, err)
	}
	return id.String(), nil
}
