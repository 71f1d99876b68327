package store

import (
	"time"

	"video-fetch-be/src/application/requests/entity"
	videos "video-fetch-be/src/application/videos/entity"
)

type dynamoRequest struct {
	ID           string     `dynamodbav:"id"`
	SourceURL    string     `dynamodbav:"source_url"`
	VideoID      string     `dynamodbav:"video_id"`
	Format       string     `dynamodbav:"format"`
	Quality      string     `dynamodbav:"quality"`
	Status       string     `dynamodbav:"status"`
	Progress     int        `dynamodbav:"progress"`
	DownloadURL  string     `dynamodbav:"download_url,omitempty"`
	ErrorMessage string     `dynamodbav:"error_message,omitempty"`
	CreatedAt    time.Time  `dynamodbav:"created_at"`
	CompletedAt  *time.Time `dynamodbav:"completed_at,omitempty"`
}

func toDynamoRequest(request entity.DownloadRequest) dynamoRequest {
	return dynamoRequest{
		ID:           request.ID,
		SourceURL:    request.SourceURL,
		VideoID:      request.VideoID,
		Format:       string(request.Format),
		Quality:      string(request.Quality),
		Status:       string(request.Status),
		Progress:     request.Progress,
		DownloadURL:  request.DownloadURL,
		ErrorMessage: request.ErrorMessage,
		CreatedAt:    request.CreatedAt,
		CompletedAt:  request.CompletedAt,
	}
}

func (d dynamoRequest) toEntity() entity.DownloadRequest {
	return entity.DownloadRequest{
		ID:           d.ID,
		SourceURL:    d.SourceURL,
		VideoID:      d.VideoID,
		Format:       videos.Format(d.Format),
		Quality:      videos.Quality(d.Quality),
		Status:       entity.Status(d.Status),
		Progress:     d.Progress,
		DownloadURL:  d.DownloadURL,
		ErrorMessage: d.ErrorMessage,
		CreatedAt:    d.CreatedAt,
		CompletedAt:  d.CompletedAt,
	}
}
