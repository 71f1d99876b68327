package links_test

import (
	"context"
	"errors"
	"time"

	"video-fetch-be/src/application/apperr"
	"video-fetch-be/src/application/links"
	"video-fetch-be/src/application/links/entity"
	"video-fetch-be/src/application/links/entity/entityfakes"
	videos "video-fetch-be/src/application/videos/entity"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Resolver", func() {
	var (
		titleLookup *entityfakes.FakeTitleLookup
		primary     *entityfakes.FakeProvider
		secondary   *entityfakes.FakeProvider

		resolver links.Resolver

		resolution entity.Resolution
		err        error
	)

	BeforeEach(func() {
		titleLookup = &entityfakes.FakeTitleLookup{}
		titleLookup.LookupTitleReturns("Cool Jamz: Live!", nil)

		primary = &entityfakes.FakeProvider{}
		primary.NameReturns("primary")
		secondary = &entityfakes.FakeProvider{}
		secondary.NameReturns("secondary")

		resolver = links.NewResolver(titleLookup, []entity.Provider{primary, secondary}, time.Second)
	})

	JustBeforeEach(func() {
		resolution, err = resolver.Resolve(context.Background(), "https://youtu.be/abc123", videos.MP3Format, videos.Quality720p)
	})

	Describe("First provider succeeds", func() {
		BeforeEach(func() {
			primary.TryResolveReturns(entity.Link{URL: "https://cdn.example/abc123.mp3"}, nil)
		})

		It("doesn't return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns the link with a sanitized filename", func() {
			Expect(resolution).To(Equal(entity.Resolution{
				DownloadURL: "https://cdn.example/abc123.mp3",
				Filename:    "cool_jamz_live.mp3",
				VideoID:     "abc123",
				Provider:    "primary",
			}))
		})

		It("short circuits the chain", func() {
			Expect(secondary.TryResolveCallCount()).To(Equal(0))
		})

		It("passes the request through to the provider", func() {
			ctx, videoID, format, quality := primary.TryResolveArgsForCall(0)
			Expect(videoID).To(Equal("abc123"))
			Expect(format).To(Equal(videos.MP3Format))
			Expect(quality).To(Equal(videos.Quality720p))

			_, hasDeadline := ctx.Deadline()
			Expect(hasDeadline).To(BeTrue())
		})
	})

	Describe("First provider fails", func() {
		BeforeEach(func() {
			primary.TryResolveReturns(entity.Link{}, errors.New("primary exploded"))
			secondary.TryResolveReturns(entity.Link{URL: "https://mirror.example/abc123.mp3", Provider: "secondary-mirror-2"}, nil)
		})

		It("falls back to the next provider", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(resolution.DownloadURL).To(Equal("https://mirror.example/abc123.mp3"))
			Expect(resolution.Provider).To(Equal("secondary-mirror-2"))
		})
	})

	Describe("First provider returns an empty link", func() {
		BeforeEach(func() {
			primary.TryResolveReturns(entity.Link{}, nil)
			secondary.TryResolveReturns(entity.Link{URL: "https://mirror.example/abc123.mp3"}, nil)
		})

		It("treats it as a failure", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(resolution.Provider).To(Equal("secondary"))
		})
	})

	Describe("All providers fail", func() {
		BeforeEach(func() {
			primary.TryResolveReturns(entity.Link{}, errors.New("primary exploded"))
			secondary.TryResolveReturns(entity.Link{}, errors.New("secondary on fire"))
		})

		It("returns NoLinkAvailable", func() {
			Expect(apperr.KindOf(err)).To(Equal(apperr.NoLinkAvailable))
		})

		It("doesn't leak provider errors", func() {
			Expect(err.Error()).To(Equal("No download link available"))
			Expect(err.Error()).NotTo(ContainSubstring("exploded"))
			Expect(err.Error()).NotTo(ContainSubstring("fire"))
		})

		It("tried every provider once", func() {
			Expect(primary.TryResolveCallCount()).To(Equal(1))
			Expect(secondary.TryResolveCallCount()).To(Equal(1))
		})
	})

	Describe("Title lookup fails", func() {
		BeforeEach(func() {
			titleLookup.LookupTitleReturns("", errors.New("quota exceeded"))
			primary.TryResolveReturns(entity.Link{URL: "https://cdn.example/abc123.mp3"}, nil)
		})

		It("uses a filename derived from the id", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(resolution.Filename).To(Equal("video_abc123.mp3"))
		})
	})

	Describe("Invalid URL", func() {
		It("fails before touching any provider", func() {
			lookupsBefore := titleLookup.LookupTitleCallCount()
			providerCallsBefore := primary.TryResolveCallCount()

			_, err := resolver.Resolve(context.Background(), "not a url", videos.MP4Format, videos.Quality720p)
			Expect(apperr.KindOf(err)).To(Equal(apperr.InvalidURL))
			Expect(titleLookup.LookupTitleCallCount()).To(Equal(lookupsBefore))
			Expect(primary.TryResolveCallCount()).To(Equal(providerCallsBefore))
		})
	})
})
