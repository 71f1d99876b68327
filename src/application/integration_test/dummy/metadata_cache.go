package dummy

import (
	"context"
	"sync"

	"video-fetch-be/src/application/videos/entity"
)

var _ entity.MetadataCache = &MetadataCache{}

func NewDummyMetadataCache() *MetadataCache {
	return &MetadataCache{
		Unavailable: false,
		State:       make(map[string]entity.VideoMetadata),
	}
}

type MetadataCache struct {
	Unavailable bool
	State       map[string]entity.VideoMetadata
	mutex       sync.RWMutex
}

func (m *MetadataCache) Get(_ context.Context, videoID string) (entity.VideoMetadata, bool, error) {
	if m.Unavailable {
		return entity.VideoMetadata{}, false, NetworkFailure
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	video, ok := m.State[videoID]
	return video, ok, nil
}

func (m *MetadataCache) Set(_ context.Context, videoID string, video entity.VideoMetadata) error {
	if m.Unavailable {
		return NetworkFailure
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.State[videoID] = video
	return nil
}
