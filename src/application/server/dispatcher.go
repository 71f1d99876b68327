package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"video-fetch-be/src/application/apperr"
	"video-fetch-be/src/application/jobs/verify"
	links "video-fetch-be/src/application/links/entity"
	"video-fetch-be/src/application/publish"
	requests "video-fetch-be/src/application/requests/entity"
	"video-fetch-be/src/application/requests/tracker"
	videos "video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/application/videos/videourl"
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"
	"golang.org/x/time/rate"
)

const (
	GetVideoInfoAction      = "get_video_info"
	DownloadVideoAction     = "download_video"
	GetDownloadStatusAction = "get_download_status"

	maxBodyBytes = 64 << 10
)

type VideoInfoFetcher interface {
	GetVideoInfo(ctx context.Context, url string) (videos.VideoMetadata, error)
}

type LinkResolver interface {
	Resolve(ctx context.Context, url string, format videos.Format, quality videos.Quality) (links.Resolution, error)
}

type actionRequest struct {
	Action     string `json:"action"`
	YoutubeURL string `json:"youtube_url"`
	Format     string `json:"format"`
	Quality    string `json:"quality"`
	DownloadID string `json:"download_id"`
}

type videoInfoResponse struct {
	Success bool                 `json:"success"`
	Video   videos.VideoMetadata `json:"video"`
}

type downloadResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
	VideoID     string `json:"video_id"`
	DownloadID  string `json:"download_id"`
}

type downloadStatusResponse struct {
	Success  bool                     `json:"success"`
	Download requests.DownloadRequest `json:"download"`
}

type healthResponse struct {
	Success bool `json:"success"`
}

func NewDispatcher(
	fetcher VideoInfoFetcher,
	resolver LinkResolver,
	requestTracker tracker.Tracker,
	publisher publish.Publisher,
	limiter *rate.Limiter,
) Dispatcher {
	return Dispatcher{
		fetcher:        fetcher,
		resolver:       resolver,
		requestTracker: requestTracker,
		publisher:      publisher,
		limiter:        limiter,
	}
}

// Dispatcher is the single HTTP entry point, every action is a POST with a JSON envelope
type Dispatcher struct {
	fetcher        VideoInfoFetcher
	resolver       LinkResolver
	requestTracker tracker.Tracker
	publisher      publish.Publisher
	limiter        *rate.Limiter
}

func (d Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	defer recoverWithEnvelope(w)

	switch {
	case r.Method == http.MethodOptions:
		writeJSON(w, http.StatusOK, healthResponse{Success: true})
	case r.Method == http.MethodGet && r.URL.Path == "/health":
		writeJSON(w, http.StatusOK, healthResponse{Success: true})
	case r.Method == http.MethodPost:
		d.handleAction(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
			Success:   false,
			Error:     "Method not allowed",
			ErrorCode: apperr.InvalidAction,
		})
	}
}

func recoverWithEnvelope(w http.ResponseWriter) {
	recovered := recover()
	if recovered == nil {
		return
	}
	if recovered == http.ErrAbortHandler {
		panic(recovered)
	}

	writeError(w, apperr.Wrap(apperr.InternalError, "Internal server error",
		cerr.Field("panic", fmt.Sprint(recovered)).Error("Recovered from a panic while handling the request")))
}

func (d Dispatcher) handleAction(w http.ResponseWriter, r *http.Request) {
	if d.limiter != nil && !d.limiter.Allow() {
		writeError(w, apperr.New(apperr.RateLimited, "Too many requests, try again shortly"))
		return
	}

	var req actionRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, apperr.Wrap(apperr.InvalidParameter, "Request body must be a JSON object", err))
		return
	}

	logger := log.WithFields(log.Fields{
		"action":      req.Action,
		"youtube_url": req.YoutubeURL,
	})
	logger.Info("Dispatching action")

	ctx := r.Context()

	switch req.Action {
	case GetVideoInfoAction:
		d.getVideoInfo(ctx, w, req)
	case DownloadVideoAction:
		d.downloadVideo(ctx, w, req)
	case GetDownloadStatusAction:
		d.getDownloadStatus(ctx, w, req)
	default:
		writeError(w, apperr.New(apperr.InvalidAction, "Invalid action"))
	}
}

func (d Dispatcher) getVideoInfo(ctx context.Context, w http.ResponseWriter, req actionRequest) {
	video, err := d.fetcher.GetVideoInfo(ctx, req.YoutubeURL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, videoInfoResponse{
		Success: true,
		Video:   video,
	})
}

func (d Dispatcher) downloadVideo(ctx context.Context, w http.ResponseWriter, req actionRequest) {
	format, quality, err := parseFormatAndQuality(req)
	if err != nil {
		writeError(w, err)
		return
	}

	videoID, ok := videourl.ExtractVideoID(req.YoutubeURL)
	if !ok {
		writeError(w, apperr.New(apperr.InvalidURL, "Invalid YouTube URL"))
		return
	}

	request, err := d.requestTracker.CreateRequest(ctx, req.YoutubeURL, videoID, format, quality)
	if err != nil {
		writeError(w, err)
		return
	}

	resolution, err := d.resolver.Resolve(ctx, req.YoutubeURL, format, quality)
	if err != nil {
		if _, failErr := d.requestTracker.Fail(ctx, request.ID, apperr.MessageOf(err)); failErr != nil {
			cerr.Log(cerr.Field("request_id", request.ID).Wrap(failErr).Error("Failed to mark request as failed"))
		}

		writeError(w, err)
		return
	}

	d.startProgression(ctx, request.ID, resolution.DownloadURL)

	writeJSON(w, http.StatusOK, downloadResponse{
		Success:     true,
		DownloadURL: resolution.DownloadURL,
		Filename:    resolution.Filename,
		VideoID:     resolution.VideoID,
		DownloadID:  request.ID,
	})
}

// startProgression hands the request to the workers. Without a queue the link is
// still good, so the request is completed right away rather than left pending.
func (d Dispatcher) startProgression(ctx context.Context, requestID string, downloadURL string) {
	errCtx := cerr.Field("request_id", requestID)

	message, err := verify.CreateJobMessage(requestID, downloadURL)
	if err == nil {
		err = d.publisher.Publish(message)
	}

	if err == nil {
		return
	}

	cerr.Warn(errCtx.Wrap(err).Error("Failed to publish verify job, completing request directly"))

	if _, err := d.requestTracker.Complete(ctx, requestID, downloadURL); err != nil {
		cerr.Log(errCtx.Wrap(err).Error("Failed to complete request"))
	}
}

func (d Dispatcher) getDownloadStatus(ctx context.Context, w http.ResponseWriter, req actionRequest) {
	if req.DownloadID == "" {
		writeError(w, apperr.New(apperr.InvalidParameter, "Missing download_id"))
		return
	}

	request, err := d.requestTracker.GetRequest(ctx, req.DownloadID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, downloadStatusResponse{
		Success:  true,
		Download: request,
	})
}

func parseFormatAndQuality(req actionRequest) (videos.Format, videos.Quality, error) {
	format := videos.DefaultFormat
	if req.Format != "" {
		var err error
		format, err = videos.ConvertToFormat(req.Format)
		if err != nil {
			return "", "", apperr.Wrap(apperr.InvalidParameter, "Unsupported format: "+req.Format, err)
		}
	}

	quality := videos.DefaultQuality
	if req.Quality != "" {
		var err error
		quality, err = videos.ConvertToQuality(req.Quality)
		if err != nil {
			return "", "", apperr.Wrap(apperr.InvalidParameter, "Unsupported quality: "+req.Quality, err)
		}
	}

	return format, quality, nil
}
