package job_router

import (
	"context"
	"encoding/json"
	"errors"

	"video-fetch-be/src/application/jobs/advance"
	"video-fetch-be/src/application/jobs/job_message"
	"video-fetch-be/src/application/jobs/verify"
	"video-fetch-be/src/application/publish"
	"video-fetch-be/src/application/requests/tracker"
	"video-fetch-be/src/application/worker"
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

const unknownJobErrorMessage = "Failed to process the download"

var _ worker.MessageRouter = JobRouter{}

func NewJobRouter(
	requestTracker tracker.Tracker,
	publisher publish.Publisher,
	verifyHandler verify.VerifyJobHandler,
	advanceHandler advance.AdvanceJobHandler,
) JobRouter {
	return JobRouter{
		requestTracker: requestTracker,
		publisher:      publisher,
		verifyHandler:  verifyHandler,
		advanceHandler: advanceHandler,
	}
}

type JobRouter struct {
	publisher      publish.Publisher
	requestTracker tracker.Tracker

	verifyHandler  verify.VerifyJobHandler
	advanceHandler advance.AdvanceJobHandler
}

func (j JobRouter) HandleMessage(message amqp.Delivery) error {
	err := j.handleMessageWithoutErrorHandling(message)
	if errors.Is(err, tracker.ErrProgressRegression) {
		// a redelivered job the request has already moved past
		log.WithFields(log.Fields{
			"job_type":  message.Type,
			"debug_log": err.Error(),
		}).Warn("Skipping stale job delivery")
		return nil
	}
	if err != nil {
		if reportErr := j.handleError(message, err); reportErr != nil {
			cerr.Log(reportErr)
		}
		return err
	}

	return nil
}

func (j JobRouter) handleMessageWithoutErrorHandling(message amqp.Delivery) error {
	var nextJobMsg amqp.Publishing
	wasLastJob := false

	switch message.Type {
	case verify.JobType:
		verifyJobParams, err := j.verifyHandler.HandleVerifyJob(message.Body)
		if err != nil {
			return cerr.Field("message_body", string(message.Body)).Wrap(err).Error("Failed to handle verify job")
		}

		nextJobMsg, err = advance.CreateJobMessage(verifyJobParams.RequestID, verifyJobParams.DownloadURL, 0)
		if err != nil {
			return cerr.Field("request_id", verifyJobParams.RequestID).
				Wrap(err).
				Error("Failed to create advance job message")
		}

	case advance.JobType:
		advanceJobParams, err := j.advanceHandler.HandleAdvanceJob(message.Body)
		if err != nil {
			return cerr.Field("message_body", string(message.Body)).Wrap(err).Error("Failed to handle advance job")
		}

		if advanceJobParams.IsLastStep() {
			wasLastJob = true
			break
		}

		nextJobMsg, err = advance.CreateJobMessage(advanceJobParams.RequestID, advanceJobParams.DownloadURL, advanceJobParams.Step+1)
		if err != nil {
			return cerr.Field("request_id", advanceJobParams.RequestID).
				Field("step", advanceJobParams.Step+1).
				Wrap(err).
				Error("Failed to create advance job message")
		}

	default:
		return cerr.Field("job_type", message.Type).Error("Unrecognized amqp job type")
	}

	if !wasLastJob {
		if err := j.publisher.Publish(nextJobMsg); err != nil {
			return cerr.Field("next_job_type", nextJobMsg.Type).
				Wrap(err).Error("Failed to publish next job message")
		}
	}

	return nil
}

func (j JobRouter) getErrorMessage(jobType string) string {
	switch jobType {
	case verify.JobType:
		return verify.ErrorMessage
	case advance.JobType:
		return advance.ErrorMessage
	default:
		return unknownJobErrorMessage
	}
}

func (j JobRouter) handleError(message amqp.Delivery, jobError error) error {
	var requestParams job_message.RequestIdentifier
	err := json.Unmarshal(message.Body, &requestParams)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to report error to request store")
	}

	if requestParams.RequestID == "" {
		return cerr.Field("message_body", string(message.Body)).Error("Job has no request ID to report the error to")
	}

	log.WithFields(log.Fields{
		"request_id": requestParams.RequestID,
		"debug_log":  jobError.Error(),
	}).Warn("Marking download request as failed")

	_, err = j.requestTracker.Fail(context.Background(), requestParams.RequestID, j.getErrorMessage(message.Type))
	if errors.Is(err, tracker.ErrRequestFinished) {
		return nil
	}
	if err != nil {
		return cerr.Field("request_id", requestParams.RequestID).Wrap(err).Error("Failed to mark request as failed")
	}

	return nil
}
