package tracker

import (
	"context"
	"errors"
	"time"

	"video-fetch-be/src/application/apperr"
	"video-fetch-be/src/application/requests/entity"
	videos "video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"
	"github.com/google/uuid"
)

var (
	ErrRequestFinished    = errors.New("download request is already finished")
	ErrProgressRegression = errors.New("download progress can't go backwards or past 100")
	ErrInvalidProgress    = errors.New("invalid download progress update")
)

// Progress is one observation of a download. DownloadURL is only allowed with CompletedStatus
// and ErrorMessage is required with FailedStatus.
type Progress struct {
	Percent      int
	Status       entity.Status
	DownloadURL  string
	ErrorMessage string
}

func NewTracker(store entity.RequestStore) Tracker {
	return Tracker{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type Tracker struct {
	store entity.RequestStore
	now   func() time.Time
	newID func() string
}

func (t Tracker) WithClock(now func() time.Time) Tracker {
	t.now = now
	return t
}

func (t Tracker) CreateRequest(ctx context.Context, sourceURL string, videoID string, format videos.Format, quality videos.Quality) (entity.DownloadRequest, error) {
	request := entity.DownloadRequest{
		ID:        t.newID(),
		SourceURL: sourceURL,
		VideoID:   videoID,
		Format:    format,
		Quality:   quality,
		Status:    entity.PendingStatus,
		Progress:  0,
		CreatedAt: t.now().UTC(),
	}

	if err := t.store.CreateRequest(ctx, request); err != nil {
		return entity.DownloadRequest{}, apperr.Wrap(apperr.InternalError, "Failed to record download request",
			cerr.Field("video_id", videoID).Wrap(err).Error("Failed to create download request"))
	}

	log.WithFields(log.Fields{
		"request_id": request.ID,
		"video_id":   videoID,
	}).Info("Created download request")

	return request, nil
}

func (t Tracker) GetRequest(ctx context.Context, requestID string) (entity.DownloadRequest, error) {
	request, err := t.store.GetRequest(ctx, requestID)
	if err != nil {
		return entity.DownloadRequest{}, storeError(requestID, err)
	}

	return request, nil
}

func (t Tracker) Advance(ctx context.Context, requestID string, progress Progress) (entity.DownloadRequest, error) {
	request, err := t.store.UpdateRequest(ctx, requestID, func(request entity.DownloadRequest) (entity.DownloadRequest, error) {
		return t.apply(request, progress)
	})
	if err != nil {
		return entity.DownloadRequest{}, storeError(requestID, err)
	}

	log.WithFields(log.Fields{
		"request_id": requestID,
		"status":     request.Status,
		"progress":   request.Progress,
	}).Info("Advanced download request")

	return request, nil
}

func (t Tracker) Complete(ctx context.Context, requestID string, downloadURL string) (entity.DownloadRequest, error) {
	return t.Advance(ctx, requestID, Progress{
		Percent:     100,
		Status:      entity.CompletedStatus,
		DownloadURL: downloadURL,
	})
}

func (t Tracker) Fail(ctx context.Context, requestID string, errorMessage string) (entity.DownloadRequest, error) {
	return t.Advance(ctx, requestID, Progress{
		Status:       entity.FailedStatus,
		ErrorMessage: errorMessage,
	})
}

func (t Tracker) apply(request entity.DownloadRequest, progress Progress) (entity.DownloadRequest, error) {
	if request.Status.IsFinished() {
		return entity.DownloadRequest{}, ErrRequestFinished
	}

	switch progress.Status {
	case entity.PendingStatus, entity.ProcessingStatus:
		if progress.Status == entity.PendingStatus && request.Status != entity.PendingStatus {
			return entity.DownloadRequest{}, ErrInvalidProgress
		}
		if progress.DownloadURL != "" || progress.ErrorMessage != "" {
			return entity.DownloadRequest{}, ErrInvalidProgress
		}
		if progress.Percent < request.Progress || progress.Percent > 100 {
			return entity.DownloadRequest{}, ErrProgressRegression
		}

		request.Status = progress.Status
		request.Progress = progress.Percent
	case entity.CompletedStatus:
		if progress.DownloadURL == "" {
			return entity.DownloadRequest{}, ErrInvalidProgress
		}

		completedAt := t.now().UTC()
		request.Status = entity.CompletedStatus
		request.Progress = 100
		request.DownloadURL = progress.DownloadURL
		request.CompletedAt = &completedAt
	case entity.FailedStatus:
		if progress.ErrorMessage == "" || progress.DownloadURL != "" {
			return entity.DownloadRequest{}, ErrInvalidProgress
		}

		// progress stays where the request got to
		request.Status = entity.FailedStatus
		request.ErrorMessage = progress.ErrorMessage
	default:
		return entity.DownloadRequest{}, ErrInvalidProgress
	}

	return request, nil
}

func storeError(requestID string, err error) error {
	switch {
	case errors.Is(err, entity.ErrRequestNotFound):
		return apperr.Wrap(apperr.NotFound, "Download request not found", err)
	case errors.Is(err, ErrRequestFinished),
		errors.Is(err, ErrProgressRegression),
		errors.Is(err, ErrInvalidProgress):
		return err
	default:
		return apperr.Wrap(apperr.InternalError, "Failed to access download request",
			cerr.Field("request_id", requestID).Wrap(err).Error("Request store failed"))
	}
}
