package rabbitmq

import (
	"fmt"
	"net/url"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsQueue = "tweet_events"
)

// RabbitMQClient обертка для работы с RabbitMQ
type RabbitMQClient struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

// NewRabbitMQClient создает нового клиента RabbitMQ и объявляет очередь событий
func NewRabbitMQClient(host string, port string, username string, password string, vHost string) (*RabbitMQClient, error) {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(username, password),
		Host:   host + ":" + port,
	}
	// пустой vhost - дефолтный "/"
	if vHost != "" {
		u.Path = "/" + vHost
	}

	conn, err := amqp.Dial(u.String())
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Объявляем очередь для событий
	_, err = ch.QueueDeclare(
		EventsQueue,
		true,  // durable
		false, // auto-deleted
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", EventsQueue, err)
	}

	return &RabbitMQClient{Conn: conn, Ch: ch}, nil
}

// Close закрывает соединение с RabbitMQ
func (c *RabbitMQClient) Close() {
	if c.Ch != nil {
		c.Ch.Close()
	}
	if c.Conn != nil {
		c.Conn.Close()
	}
}
