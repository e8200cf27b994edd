package producer

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetchain/internal/rabbitmq"
)

// брокер из TWEETCHAIN_TEST_AMQP_HOST/PORT, пользователь guest
func TestPublishJSON(t *testing.T) {
	host, port := os.Getenv("TWEETCHAIN_TEST_AMQP_HOST"), os.Getenv("TWEETCHAIN_TEST_AMQP_PORT")
	if host == "" || port == "" {
		t.Skip("TWEETCHAIN_TEST_AMQP_HOST/PORT are not set")
	}
	client, err := rabbitmq.NewRabbitMQClient(host, port, "guest", "guest", "")
	require.NoError(t, err)
	t.Cleanup(client.Close)

	queue, err := client.Ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := NewProducer(client.Ch).PublishJSON(ctx, queue.Name, "tweet.created", map[string]string{"topic": "bikes"})
	require.NoError(t, err)
	parsed, err := uuid.FromString(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.V7, parsed.Version())

	var msg amqp.Delivery
	require.Eventually(t, func() bool {
		m, ok, err := client.Ch.Get(queue.Name, true)
		if err != nil || !ok {
			return false
		}
		msg = m
		return true
	}, 3*time.Second, 50*time.Millisecond)
	assert.Equal(t, id, msg.MessageId)
	assert.Equal(t, "tweet.created", msg.Type)
	assert.Equal(t, "application/json", msg.ContentType)

	var body map[string]string
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "bikes", body["topic"])
}
