package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"video-fetch-be/src/application/requests/entity"
	"video-fetch-be/src/application/requests/store"
	videos "video-fetch-be/src/application/videos/entity"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("SQLiteRequestStore", func() {
	var (
		tempDir    string
		sqlStore   store.SQLiteRequestStore
		request    entity.DownloadRequest
		createdAt  time.Time
		background context.Context
	)

	BeforeEach(func() {
		var err error
		background = context.Background()

		tempDir, err = os.MkdirTemp("", "request-store")
		Expect(err).NotTo(HaveOccurred())

		sqlStore, err = store.NewSQLiteRequestStore(filepath.Join(tempDir, "requests.db"))
		Expect(err).NotTo(HaveOccurred())

		createdAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		request = entity.DownloadRequest{
			ID:        "request-1",
			SourceURL: "https://youtu.be/abc123",
			VideoID:   "abc123",
			Format:    videos.MP4Format,
			Quality:   videos.Quality720p,
			Status:    entity.PendingStatus,
			Progress:  0,
			CreatedAt: createdAt,
		}

		Expect(sqlStore.CreateRequest(background, request)).To(Succeed())
	})

	AfterEach(func() {
		Expect(sqlStore.Close()).To(Succeed())
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	It("reads back what was created", func() {
		stored, err := sqlStore.GetRequest(background, "request-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.VideoID).To(Equal("abc123"))
		Expect(stored.Format).To(Equal(videos.MP4Format))
		Expect(stored.Status).To(Equal(entity.PendingStatus))
		Expect(stored.CreatedAt).To(BeTemporally("==", createdAt))
		Expect(stored.CompletedAt).To(BeNil())
	})

	It("reports unknown ids as not found", func() {
		_, err := sqlStore.GetRequest(background, "nope")
		Expect(errors.Is(err, entity.ErrRequestNotFound)).To(BeTrue())
	})

	It("rejects duplicate ids", func() {
		Expect(sqlStore.CreateRequest(background, request)).NotTo(Succeed())
	})

	It("persists the updater's result", func() {
		completedAt := createdAt.Add(time.Minute)

		updated, err := sqlStore.UpdateRequest(background, "request-1", func(r entity.DownloadRequest) (entity.DownloadRequest, error) {
			r.Status = entity.CompletedStatus
			r.Progress = 100
			r.DownloadURL = "https://cdn/video.mp4"
			r.CompletedAt = &completedAt
			return r, nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Progress).To(Equal(100))

		stored, err := sqlStore.GetRequest(background, "request-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Status).To(Equal(entity.CompletedStatus))
		Expect(stored.DownloadURL).To(Equal("https://cdn/video.mp4"))
		Expect(stored.CompletedAt).NotTo(BeNil())
		Expect(*stored.CompletedAt).To(BeTemporally("==", completedAt))
	})

	It("leaves the record untouched when the updater fails", func() {
		updaterErr := errors.New("nope")

		_, err := sqlStore.UpdateRequest(background, "request-1", func(r entity.DownloadRequest) (entity.DownloadRequest, error) {
			r.Progress = 80
			return r, updaterErr
		})
		Expect(errors.Is(err, updaterErr)).To(BeTrue())

		stored, err := sqlStore.GetRequest(background, "request-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Progress).To(Equal(0))
	})

	It("fails to update unknown ids", func() {
		_, err := sqlStore.UpdateRequest(background, "nope", func(r entity.DownloadRequest) (entity.DownloadRequest, error) {
			return r, nil
		})
		Expect(errors.Is(err, entity.ErrRequestNotFound)).To(BeTrue())
	})
})
