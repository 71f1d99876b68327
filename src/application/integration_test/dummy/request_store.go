package dummy

import (
	"context"
	"sync"

	"video-fetch-be/src/application/requests/entity"
)

var _ entity.RequestStore = &RequestStore{}

func NewDummyRequestStore() *RequestStore {
	return &RequestStore{
		Unavailable: false,
		State:       make(map[string]entity.DownloadRequest),
	}
}

type RequestStore struct {
	Unavailable bool
	State       map[string]entity.DownloadRequest
	mutex       sync.Mutex
}

func (r *RequestStore) CreateRequest(_ context.Context, request entity.DownloadRequest) error {
	if r.Unavailable {
		return NetworkFailure
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.State[request.ID]; exists {
		return UnexpectedInput
	}

	r.State[request.ID] = request
	return nil
}

func (r *RequestStore) GetRequest(_ context.Context, requestID string) (entity.DownloadRequest, error) {
	if r.Unavailable {
		return entity.DownloadRequest{}, NetworkFailure
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	request, ok := r.State[requestID]
	if !ok {
		return entity.DownloadRequest{}, entity.ErrRequestNotFound
	}

	return request, nil
}

func (r *RequestStore) UpdateRequest(_ context.Context, requestID string, updater entity.RequestUpdater) (entity.DownloadRequest, error) {
	if r.Unavailable {
		return entity.DownloadRequest{}, NetworkFailure
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	request, ok := r.State[requestID]
	if !ok {
		return entity.DownloadRequest{}, entity.ErrRequestNotFound
	}

	updated, err := updater(request)
	if err != nil {
		return entity.DownloadRequest{}, err
	}

	r.State[requestID] = updated
	return updated, nil
}
