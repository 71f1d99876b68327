package advance

import (
	"context"
	"encoding/json"
	"time"

	"video-fetch-be/src/application/jobs/job_message"
	"video-fetch-be/src/application/requests/entity"
	"video-fetch-be/src/application/requests/tracker"
	"video-fetch-be/src/lib/cerr"

	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const JobType string = "advance_download"
const ErrorMessage string = "Failed to prepare the download"

// Steps are the progress percentages reported after verification, the last one completes the request
var Steps = []int{40, 60, 80, 100}

//counterfeiter:generate . AdvanceJobHandler
type AdvanceJobHandler interface {
	HandleAdvanceJob(message []byte) (JobParams, error)
}

type JobParams struct {
	job_message.RequestIdentifier
	DownloadURL string `json:"download_url"`
	Step        int    `json:"step"`
}

func (p JobParams) IsLastStep() bool {
	return p.Step == len(Steps)-1
}

func CreateJobMessage(requestID string, downloadURL string, step int) (amqp.Publishing, error) {
	return job_message.CreateJobMessage(JobType, JobParams{
		RequestIdentifier: job_message.RequestIdentifier{RequestID: requestID},
		DownloadURL:       downloadURL,
		Step:              step,
	})
}

func NewJobHandler(requestTracker tracker.Tracker, stepDelay time.Duration) JobHandler {
	return JobHandler{
		requestTracker: requestTracker,
		stepDelay:      stepDelay,
	}
}

type JobHandler struct {
	requestTracker tracker.Tracker
	stepDelay      time.Duration
}

func (j JobHandler) HandleAdvanceJob(message []byte) (JobParams, error) {
	params, err := unmarshalMessage(message)
	if err != nil {
		return JobParams{}, cerr.Wrap(err).Error("Failed to unmarshal message JSON")
	}

	errCtx := cerr.Field("request_id", params.RequestID).Field("step", params.Step)

	time.Sleep(j.stepDelay)

	if params.IsLastStep() {
		_, err = j.requestTracker.Complete(context.Background(), params.RequestID, params.DownloadURL)
		if err != nil {
			return JobParams{}, errCtx.Wrap(err).Error("Failed to complete the request")
		}

		return params, nil
	}

	_, err = j.requestTracker.Advance(context.Background(), params.RequestID, tracker.Progress{
		Percent: Steps[params.Step],
		Status:  entity.ProcessingStatus,
	})
	if err != nil {
		return JobParams{}, errCtx.Wrap(err).Error("Failed to advance the request")
	}

	return params, nil
}

func unmarshalMessage(message []byte) (JobParams, error) {
	params := JobParams{}
	err := json.Unmarshal(message, &params)
	if err != nil {
		return JobParams{}, cerr.Wrap(err).Error("Failed to unmarshal message JSON")
	}

	errctx := cerr.Field("job_params", params)

	if params.RequestID == "" {
		return JobParams{}, errctx.Error("Missing request ID")
	}

	if params.DownloadURL == "" {
		return JobParams{}, errctx.Error("Missing download URL")
	}

	if params.Step < 0 || params.Step >= len(Steps) {
		return JobParams{}, errctx.Error("Step out of range")
	}

	return params, nil
}
