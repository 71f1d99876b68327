package entity

import (
	"time"

	videos "video-fetch-be/src/application/videos/entity"
)

type Status string

const (
	PendingStatus    Status = "pending"
	ProcessingStatus Status = "processing"
	CompletedStatus  Status = "completed"
	FailedStatus     Status = "failed"
)

func (s Status) IsFinished() bool {
	return s == CompletedStatus || s == FailedStatus
}

type DownloadRequest struct {
	ID           string         `json:"id"`
	SourceURL    string         `json:"source_url"`
	VideoID      string         `json:"video_id"`
	Format       videos.Format  `json:"format"`
	Quality      videos.Quality `json:"quality"`
	Status       Status         `json:"status"`
	Progress     int            `json:"progress"`
	DownloadURL  string         `json:"download_url,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
}
