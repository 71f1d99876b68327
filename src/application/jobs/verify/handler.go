package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"video-fetch-be/src/application/jobs/job_message"
	"video-fetch-be/src/application/requests/entity"
	"video-fetch-be/src/application/requests/tracker"
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const JobType string = "verify_link"
const ErrorMessage string = "Failed to verify the download link"

const VerifiedProgress = 20

//counterfeiter:generate . VerifyJobHandler
type VerifyJobHandler interface {
	HandleVerifyJob(message []byte) (JobParams, error)
}

type JobParams struct {
	job_message.RequestIdentifier
	DownloadURL string `json:"download_url"`
}

func CreateJobMessage(requestID string, downloadURL string) (amqp.Publishing, error) {
	return job_message.CreateJobMessage(JobType, JobParams{
		RequestIdentifier: job_message.RequestIdentifier{RequestID: requestID},
		DownloadURL:       downloadURL,
	})
}

func NewJobHandler(requestTracker tracker.Tracker, httpClient *http.Client, checkTimeout time.Duration) JobHandler {
	return JobHandler{
		requestTracker: requestTracker,
		httpClient:     httpClient,
		checkTimeout:   checkTimeout,
	}
}

type JobHandler struct {
	requestTracker tracker.Tracker
	httpClient     *http.Client
	checkTimeout   time.Duration
}

func (j JobHandler) HandleVerifyJob(message []byte) (JobParams, error) {
	params, err := unmarshalMessage(message)
	if err != nil {
		return JobParams{}, cerr.Wrap(err).Error("Failed to unmarshal message JSON")
	}

	errCtx := cerr.Field("request_id", params.RequestID)

	_, err = j.requestTracker.Advance(context.Background(), params.RequestID, tracker.Progress{
		Percent: VerifiedProgress,
		Status:  entity.ProcessingStatus,
	})
	if err != nil {
		return JobParams{}, errCtx.Wrap(err).Error("Failed to mark the request as processing")
	}

	j.checkLink(params)

	return params, nil
}

// checkLink is informational only, a link that refuses HEAD can still be downloadable
func (j JobHandler) checkLink(params JobParams) {
	logger := log.WithField("request_id", params.RequestID)

	ctx, cancel := context.WithTimeout(context.Background(), j.checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, params.DownloadURL, nil)
	if err != nil {
		cerr.Warn(cerr.Field("request_id", params.RequestID).Wrap(err).Error("Failed to build link check request"))
		return
	}

	res, err := j.httpClient.Do(req)
	if err != nil {
		cerr.Warn(cerr.Field("request_id", params.RequestID).Wrap(err).Error("Failed to check download link"))
		return
	}
	_ = res.Body.Close()

	if res.ContentLength < 0 {
		logger.WithField("status", res.StatusCode).Info("Checked download link, size unknown")
		return
	}

	logger.WithFields(log.Fields{
		"status": res.StatusCode,
		"size":   humanize.Bytes(uint64(res.ContentLength)),
	}).Info("Checked download link")
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

	return params, nil
}
