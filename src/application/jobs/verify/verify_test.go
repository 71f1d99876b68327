package verify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"video-fetch-be/src/application/integration_test/dummy"
	"video-fetch-be/src/application/jobs/job_message"
	"video-fetch-be/src/application/jobs/verify"
	"video-fetch-be/src/application/requests/entity"
	"video-fetch-be/src/application/requests/tracker"
	videos "video-fetch-be/src/application/videos/entity"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Verify", func() {
	var (
		dummyRequestStore *dummy.RequestStore
		requestTracker    tracker.Tracker
		linkServer        *httptest.Server
		headRequests      int32

		handler verify.JobHandler

		requestID string
		message   []byte
	)

	BeforeEach(func() {
		By("Initializing all variables", func() {
			message = nil
			atomic.StoreInt32(&headRequests, 0)

			dummyRequestStore = dummy.NewDummyRequestStore()
			requestTracker = tracker.NewTracker(dummyRequestStore)

			linkServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodHead {
					atomic.AddInt32(&headRequests, 1)
				}
				w.Header().Set("Content-Length", "1048576")
				w.WriteHeader(http.StatusOK)
			}))
		})

		By("Creating the download request", func() {
			request, err := requestTracker.CreateRequest(context.Background(), "https://youtu.be/abc123", "abc123", videos.MP4Format, videos.Quality720p)
			Expect(err).NotTo(HaveOccurred())
			requestID = request.ID
		})

		By("Instantiating the handler", func() {
			handler = verify.NewJobHandler(requestTracker, linkServer.Client(), time.Second)
		})
	})

	AfterEach(func() {
		linkServer.Close()
	})

	Describe("Well formed message", func() {
		var downloadURL string

		BeforeEach(func() {
			downloadURL = linkServer.URL + "/video.mp4"

			var err error
			message, err = json.Marshal(verify.JobParams{
				RequestIdentifier: job_message.RequestIdentifier{RequestID: requestID},
				DownloadURL:       downloadURL,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("Happy path", func() {
			var err error
			var jobParams verify.JobParams

			BeforeEach(func() {
				jobParams, err = handler.HandleVerifyJob(message)
			})

			It("doesn't return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("returns the job params", func() {
				Expect(jobParams.RequestID).To(Equal(requestID))
				Expect(jobParams.DownloadURL).To(Equal(downloadURL))
			})

			It("marks the request as processing", func() {
				request, err := requestTracker.GetRequest(context.Background(), requestID)
				Expect(err).NotTo(HaveOccurred())
				Expect(request.Status).To(Equal(entity.ProcessingStatus))
				Expect(request.Progress).To(Equal(verify.VerifiedProgress))
			})

			It("checks the link", func() {
				Expect(atomic.LoadInt32(&headRequests)).To(Equal(int32(1)))
			})
		})

		Describe("When the link can't be checked", func() {
			BeforeEach(func() {
				linkServer.Close()
			})

			It("still moves the request along", func() {
				_, err := handler.HandleVerifyJob(message)
				Expect(err).NotTo(HaveOccurred())

				request, err := requestTracker.GetRequest(context.Background(), requestID)
				Expect(err).NotTo(HaveOccurred())
				Expect(request.Status).To(Equal(entity.ProcessingStatus))
			})
		})

		Describe("When the request is already finished", func() {
			BeforeEach(func() {
				_, err := requestTracker.Fail(context.Background(), requestID, "Gave up")
				Expect(err).NotTo(HaveOccurred())
			})

			It("returns an error", func() {
				_, err := handler.HandleVerifyJob(message)
				Expect(err).To(HaveOccurred())
			})
		})

		Describe("When the request store is down", func() {
			BeforeEach(func() {
				dummyRequestStore.Unavailable = true
			})

			It("returns an error", func() {
				_, err := handler.HandleVerifyJob(message)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Malformed message", func() {
		It("rejects bad JSON", func() {
			_, err := handler.HandleVerifyJob([]byte("{"))
			Expect(err).To(HaveOccurred())
		})

		It("rejects a missing request ID", func() {
			_, err := handler.HandleVerifyJob([]byte(`{"download_url":"https://cdn/x"}`))
			Expect(err).To(HaveOccurred())
		})

		It("rejects a missing download URL", func() {
			_, err := handler.HandleVerifyJob([]byte(`{"request_id":"abc"}`))
			Expect(err).To(HaveOccurred())
		})
	})
})
