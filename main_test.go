package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
)

func TestCatalogEventLoggerAcknowledgesDeliveries(t *testing.T) {
	var buf bytes.Buffer
	handler := catalogEventLogger(zerolog.New(&buf))

	err := handler(amqp.Delivery{
		DeliveryTag: 7,
		Body:        []byte(`{"event":"product.created","payload":{"productId":"p1"}}`),
	})

	// A nil return acknowledges the message instead of requeueing it.
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "product.created")
	assert.Contains(t, buf.String(), "catalog event received")
}
