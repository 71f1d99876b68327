package job_message

import (
	"encoding/json"

	"video-fetch-be/src/lib/cerr"

	"github.com/streadway/amqp"
)

type RequestIdentifier struct {
	RequestID string `json:"request_id"`
}

func CreateJobMessage(jobType string, params interface{}) (amqp.Publishing, error) {
	jsonBytes, err := json.Marshal(params)
	if err != nil {
		return amqp.Publishing{}, cerr.Field("job_type", jobType).Wrap(err).Error("Failed to marshal job params")
	}

	return amqp.Publishing{
		Type: jobType,
		Body: jsonBytes,
	}, nil
}
