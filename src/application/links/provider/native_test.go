package provider_test

import (
	"context"
	"errors"

	"video-fetch-be/src/application/links/provider"
	videos "video-fetch-be/src/application/videos/entity"

	"github.com/kkdai/youtube/v2"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

type stubStreamClient struct {
	video        *youtube.Video
	videoErr     error
	streamErr    error
	streamedItag int
}

func (s *stubStreamClient) GetVideoContext(_ context.Context, _ string) (*youtube.Video, error) {
	return s.video, s.videoErr
}

func (s *stubStreamClient) GetStreamURLContext(_ context.Context, _ *youtube.Video, format *youtube.Format) (string, error) {
	if s.streamErr != nil {
		return "", s.streamErr
	}

	s.streamedItag = format.ItagNo
	return format.URL, nil
}

var _ = Describe("NativeProvider", func() {
	var (
		client *stubStreamClient
		p      provider.NativeProvider
	)

	BeforeEach(func() {
		client = &stubStreamClient{
			video: &youtube.Video{
				ID: "abc123",
				Formats: youtube.FormatList{
					{ItagNo: 137, URL: "https://gv/1080-video-only", MimeType: "video/mp4", QualityLabel: "1080p", Height: 1080, Width: 1920},
					{ItagNo: 18, URL: "https://gv/360", MimeType: "video/mp4; codecs=\"avc1\"", QualityLabel: "360p", Height: 360, Width: 640, AudioChannels: 2},
					{ItagNo: 22, URL: "https://gv/720", MimeType: "video/mp4; codecs=\"avc1\"", QualityLabel: "720p", Height: 720, Width: 1280, AudioChannels: 2, ContentLength: 999},
					{ItagNo: 139, URL: "https://gv/audio-low", MimeType: "audio/mp4", AudioChannels: 2, Bitrate: 48000},
					{ItagNo: 140, URL: "https://gv/audio-high", MimeType: "audio/mp4", AudioChannels: 2, Bitrate: 128000},
				},
			},
		}

		p = provider.NewNativeProviderFromClient(client)
	})

	It("picks the progressive stream with the requested quality", func() {
		link, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality720p)
		Expect(err).NotTo(HaveOccurred())
		Expect(link.URL).To(Equal("https://gv/720"))
		Expect(link.FileSize).To(Equal(int64(999)))
		Expect(client.streamedItag).To(Equal(22))
	})

	It("skips video only streams and falls back to the first progressive one", func() {
		link, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality1080p)
		Expect(err).NotTo(HaveOccurred())
		Expect(link.URL).To(Equal("https://gv/360"))
	})

	It("picks the highest bitrate audio only stream", func() {
		link, err := p.TryResolve(context.Background(), "abc123", videos.MP3Format, videos.Quality720p)
		Expect(err).NotTo(HaveOccurred())
		Expect(link.URL).To(Equal("https://gv/audio-high"))
	})

	It("fails when the video can't be loaded", func() {
		client.videoErr = errors.New("login required")
		_, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality720p)
		Expect(err).To(HaveOccurred())
	})

	It("fails when the stream URL can't be deciphered", func() {
		client.streamErr = errors.New("cipher changed")
		_, err := p.TryResolve(context.Background(), "abc123", videos.MP4Format, videos.Quality720p)
		Expect(err).To(HaveOccurred())
	})

	It("fails when there is no usable format", func() {
		client.video.Formats = youtube.FormatList{}
		_, err := p.TryResolve(context.Background(), "abc123", videos.MP3Format, videos.Quality720p)
		Expect(err).To(HaveOccurred())
	})
})
