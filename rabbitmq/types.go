// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

type Config struct {
	AMQPURL string
	// Exchange the worker consumes QueuedNumber messages from
	Exchange   string
	BindingKey string
	QueueName  string
	// ResultExchange receives ClassifiedNumber messages; a topic exchange
	// declared on startup
	ResultExchange string
	ResultPrefix   string
}

type Client struct {
	config  Config
	conn    *amqp.Connection
	channel *amqp.Channel
}
