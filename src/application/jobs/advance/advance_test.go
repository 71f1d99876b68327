package advance_test

import (
	"context"
	"encoding/json"

	"video-fetch-be/src/application/integration_test/dummy"
	"video-fetch-be/src/application/jobs/advance"
	"video-fetch-be/src/application/jobs/job_message"
	"video-fetch-be/src/application/requests/entity"
	"video-fetch-be/src/application/requests/tracker"
	videos "video-fetch-be/src/application/videos/entity"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Advance", func() {
	var (
		dummyRequestStore *dummy.RequestStore
		requestTracker    tracker.Tracker

		handler advance.JobHandler

		requestID   string
		downloadURL string

		messageForStep func(step int) []byte
	)

	BeforeEach(func() {
		downloadURL = "https://cdn.example/video.mp4"
		dummyRequestStore = dummy.NewDummyRequestStore()
		requestTracker = tracker.NewTracker(dummyRequestStore)
		handler = advance.NewJobHandler(requestTracker, 0)

		request, err := requestTracker.CreateRequest(context.Background(), "https://youtu.be/abc123", "abc123", videos.MP4Format, videos.Quality720p)
		Expect(err).NotTo(HaveOccurred())
		requestID = request.ID

		messageForStep = func(step int) []byte {
			message, err := json.Marshal(advance.JobParams{
				RequestIdentifier: job_message.RequestIdentifier{RequestID: requestID},
				DownloadURL:       downloadURL,
				Step:              step,
			})
			Expect(err).NotTo(HaveOccurred())
			return message
		}
	})

	It("reports the step's progress", func() {
		params, err := handler.HandleAdvanceJob(messageForStep(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(params.Step).To(Equal(1))
		Expect(params.IsLastStep()).To(BeFalse())

		request, err := requestTracker.GetRequest(context.Background(), requestID)
		Expect(err).NotTo(HaveOccurred())
		Expect(request.Status).To(Equal(entity.ProcessingStatus))
		Expect(request.Progress).To(Equal(60))
		Expect(request.DownloadURL).To(BeEmpty())
	})

	It("walks every step up to completion", func() {
		for step := range advance.Steps {
			_, err := handler.HandleAdvanceJob(messageForStep(step))
			Expect(err).NotTo(HaveOccurred())
		}

		request, err := requestTracker.GetRequest(context.Background(), requestID)
		Expect(err).NotTo(HaveOccurred())
		Expect(request.Status).To(Equal(entity.CompletedStatus))
		Expect(request.Progress).To(Equal(100))
		Expect(request.DownloadURL).To(Equal(downloadURL))
		Expect(request.CompletedAt).NotTo(BeNil())
	})

	It("refuses to replay an earlier step", func() {
		_, err := handler.HandleAdvanceJob(messageForStep(2))
		Expect(err).NotTo(HaveOccurred())

		_, err = handler.HandleAdvanceJob(messageForStep(0))
		Expect(err).To(HaveOccurred())
	})

	It("refuses to touch a failed request", func() {
		_, err := requestTracker.Fail(context.Background(), requestID, "Gave up")
		Expect(err).NotTo(HaveOccurred())

		_, err = handler.HandleAdvanceJob(messageForStep(0))
		Expect(err).To(HaveOccurred())
	})

	It("rejects steps out of range", func() {
		_, err := handler.HandleAdvanceJob(messageForStep(len(advance.Steps)))
		Expect(err).To(HaveOccurred())

		_, err = handler.HandleAdvanceJob(messageForStep(-1))
		Expect(err).To(HaveOccurred())
	})

	It("rejects malformed messages", func() {
		_, err := handler.HandleAdvanceJob([]byte("nope"))
		Expect(err).To(HaveOccurred())
	})
})
