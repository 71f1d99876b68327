package worker

import "github.com/streadway/amqp"

type MessageRouter interface {
	HandleMessage(message amqp.Delivery) error
}
