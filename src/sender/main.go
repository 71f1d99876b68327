package main

import (
	"flag"
	"os"

	"video-fetch-be/src/application/jobs/advance"
	"video-fetch-be/src/application/jobs/verify"

	"github.com/streadway/amqp"
)

// sender pushes a single progression job onto the queue, for poking a running worker by hand
func main() {
	rabbitURL := os.Getenv("RABBITMQ_URL")
	if rabbitURL == "" {
		panic("Can't get rabbitmq url")
	}

	queueName := os.Getenv("RABBITMQ_QUEUE_NAME")
	if queueName == "" {
		queueName = "test1"
	}

	requestID := flag.String("request", "", "download request ID to advance")
	downloadURL := flag.String("url", "https://example.com/video.mp4", "download URL to attach")
	step := flag.Int("step", -1, "advance step to send, -1 sends the verify job")
	flag.Parse()

	if *requestID == "" {
		panic("-request is required")
	}

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	rabbitChannel, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer rabbitChannel.Close()

	queue, err := rabbitChannel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		panic(err)
	}

	var job amqp.Publishing
	if *step < 0 {
		job, err = verify.CreateJobMessage(*requestID, *downloadURL)
	} else {
		job, err = advance.CreateJobMessage(*requestID, *downloadURL, *step)
	}
	if err != nil {
		panic(err)
	}

	job.DeliveryMode = amqp.Persistent
	job.ContentType = "application/json"

	err = rabbitChannel.Publish("", queue.Name, true, false, job)

	if err != nil {
		panic(err)
	}
}
