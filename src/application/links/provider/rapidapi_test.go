package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"video-fetch-be/src/application/apperr"
	"video-fetch-be/src/application/links/entity"
	"video-fetch-be/src/application/links/provider"
	videos "video-fetch-be/src/application/videos/entity"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("RapidAPIProvider", func() {
	var (
		server       *httptest.Server
		responseBody string
		statusCode   int
		seenKey      string
		seenID       string

		apiKey string
		p      provider.RapidAPIProvider
	)

	BeforeEach(func() {
		statusCode = http.StatusOK
		apiKey = "rapid-key"
		seenKey = ""
		seenID = ""
		responseBody = `{
			"status": "OK",
			"title": "Cool Jamz",
			"links": [
				{"url": "https://cdn/360.mp4", "quality": "medium", "mimeType": "video/mp4", "hasAudio": true},
				{"url": "https://cdn/720.mp4", "quality": "hd720", "mimeType": "video/mp4", "hasAudio": true, "size": 2048},
				{"url": "https://cdn/1080.webm", "quality": "hd1080", "mimeType": "video/webm", "hasAudio": false},
				{"url": "https://cdn/low.m4a", "quality": "tiny", "mimeType": "audio/mp4", "audioOnly": true, "bitrate": 48000},
				{"url": "https://cdn/high.m4a", "quality": "tiny", "mimeType": "audio/mp4", "audioOnly": true, "bitrate": 128000}
			]
		}`

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenKey = r.Header.Get("X-RapidAPI-Key")
			seenID = r.URL.Query().Get("id")
			w.WriteHeader(statusCode)
			_, _ = w.Write([]byte(responseBody))
		}))
	})

	JustBeforeEach(func() {
		p = provider.NewRapidAPIProvider(server.Client(), server.URL+"/dl", "rapid.example", apiKey)
	})

	AfterEach(func() {
		server.Close()
	})

	It("sends the key and the video id", func() {
		_, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality720p)
		Expect(err).NotTo(HaveOccurred())
		Expect(seenKey).To(Equal("rapid-key"))
		Expect(seenID).To(Equal("abc123"))
	})

	It("picks the exact quality for video", func() {
		link, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality360p)
		Expect(err).NotTo(HaveOccurred())
		Expect(link).To(Equal(entity.Link{URL: "https://cdn/360.mp4", Provider: "rapidapi"}))
	})

	It("falls back to 720p when the quality is missing", func() {
		link, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality1080p)
		Expect(err).NotTo(HaveOccurred())
		Expect(link.URL).To(Equal("https://cdn/720.mp4"))
		Expect(link.FileSize).To(Equal(int64(2048)))
	})

	It("picks the highest bitrate audio for mp3", func() {
		link, err := p.TryResolve(context.Background(), "abc123", videos.MP3Format, videos.Quality720p)
		Expect(err).NotTo(HaveOccurred())
		Expect(link.URL).To(Equal("https://cdn/high.m4a"))
	})

	Describe("Only non default mp4 qualities", func() {
		BeforeEach(func() {
			responseBody = `{"status": "OK", "links": [
				{"url": "https://cdn/480.mp4", "quality": "large", "mimeType": "video/mp4"}
			]}`
		})

		It("falls back to any mp4", func() {
			link, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality1080p)
			Expect(err).NotTo(HaveOccurred())
			Expect(link.URL).To(Equal("https://cdn/480.mp4"))
		})
	})

	Describe("Provider reports failure", func() {
		BeforeEach(func() {
			responseBody = `{"status": "fail", "message": "quota"}`
		})

		It("returns an error", func() {
			_, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality720p)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Non success status", func() {
		BeforeEach(func() {
			statusCode = http.StatusTooManyRequests
		})

		It("returns an error", func() {
			_, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality720p)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("No key", func() {
		BeforeEach(func() {
			apiKey = ""
		})

		It("reports NotConfigured without calling out", func() {
			_, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality720p)
			Expect(apperr.KindOf(err)).To(Equal(apperr.NotConfigured))
			Expect(seenID).To(BeEmpty())
		})
	})
})
