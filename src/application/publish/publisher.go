package publish

import (
	"sync"

	"video-fetch-be/src/lib/werror"

	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

var _ Publisher = &RabbitMQPublisher{}

//counterfeiter:generate . Publisher
type Publisher interface {
	Publish(msg amqp.Publishing) error
}

func NewRabbitMQPublisher(conn *amqp.Connection, queueName string) (*RabbitMQPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, werror.WrapError("Failed to create rabbit channel", err)
	}

	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		return nil, werror.WrapError("Failed to declare queue", err)
	}

	return &RabbitMQPublisher{
		channel:   channel,
		queueName: queueName,
	}, nil
}

// RabbitMQPublisher is shared by the HTTP handlers and the workers, so publishes are serialized
type RabbitMQPublisher struct {
	channel   *amqp.Channel
	queueName string
	mutex     sync.Mutex
}

func (r *RabbitMQPublisher) Publish(msg amqp.Publishing) error {
	msg.ContentType = "application/json"
	msg.DeliveryMode = amqp.Persistent

	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.channel.Publish("", r.queueName, true, false, msg)
}

func (r *RabbitMQPublisher) Close() error {
	return r.channel.Close()
}
