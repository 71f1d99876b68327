package entity

import "context"

type MetadataCache interface {
	Get(ctx context.Context, videoID string) (VideoMetadata, bool, error)
	Set(ctx context.Context, videoID string, video VideoMetadata) error
}
