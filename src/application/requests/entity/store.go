package entity

import (
	"context"
	"errors"
)

var ErrRequestNotFound = errors.New("download request not found")

type RequestUpdater func(request DownloadRequest) (DownloadRequest, error)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . RequestStore
type RequestStore interface {
	CreateRequest(ctx context.Context, request DownloadRequest) error
	GetRequest(ctx context.Context, requestID string) (DownloadRequest, error)
	// UpdateRequest applies updater to the stored record and persists the result atomically
	UpdateRequest(ctx context.Context, requestID string, updater RequestUpdater) (DownloadRequest, error)
}
