package worker

import (
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"

	"github.com/streadway/amqp"
)

type MessageChannel interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type QueueWorker struct {
	channel   MessageChannel
	router    MessageRouter
	queueName string
	name      string
}

func NewQueueWorker(channel MessageChannel, queueName string, name string, router MessageRouter) QueueWorker {
	return QueueWorker{
		channel:   channel,
		queueName: queueName,
		name:      name,
		router:    router,
	}
}

func NewQueueWorkerFromConnection(conn *amqp.Connection, queueName string, name string, router MessageRouter) (QueueWorker, error) {
	rabbitChannel, err := conn.Channel()
	if err != nil {
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to get channel")
	}

	// one unacked delivery per worker, progression steps sleep between updates
	if err := rabbitChannel.Qos(1, 0, false); err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to set channel prefetch")
	}

	queue, err := rabbitChannel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to declare queue")
	}

	return NewQueueWorker(rabbitChannel, queue.Name, name, router), nil
}

func (q *QueueWorker) Start() error {
	workerLogger := log.WithField("worker", q.name)
	workerLogger.Info("Starting worker")

	defer q.channel.Close()

	messageStream, err := q.channel.Consume(
		q.queueName,
		q.name,
		false,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		return cerr.Field("queue_name", q.queueName).
			Wrap(err).Error("Failed to start consuming from channel")
	}

	for message := range messageStream {
		logger := workerLogger.WithField("message_type", message.Type)
		logger.Info("Handling message")
		err := q.router.HandleMessage(message)
		if err != nil {
			err = cerr.Field("message_type", message.Type).
				Wrap(err).Error("Failed to process message")

			cerr.Log(err)

			if err = message.Nack(false, false); err != nil {
				logger.Error("Failed to nack message")
			}
		} else {
			logger.Info("Successfully processed message")
			if err = message.Ack(false); err != nil {
				logger.Error("Failed to ack message")
			}
		}
	}

	workerLogger.Info("Message stream closed, stopping worker")
	return nil
}
