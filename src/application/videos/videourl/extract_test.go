package videourl_test

import (
	"video-fetch-be/src/application/videos/videourl"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExtractVideoID", func() {
	table.DescribeTable("recognized URL shapes",
		func(url string, expectedID string) {
			id, ok := videourl.ExtractVideoID(url)
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal(expectedID))
		},
		table.Entry("watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"),
		table.Entry("watch URL with extra params", "https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"),
		table.Entry("short link", "https://youtu.be/abc123", "abc123"),
		table.Entry("short link with query", "https://youtu.be/abc123?si=xyz", "abc123"),
		table.Entry("embed URL", "https://www.youtube.com/embed/abc123#frag", "abc123"),
	)

	table.DescribeTable("unrecognized URLs",
		func(url string) {
			id, ok := videourl.ExtractVideoID(url)
			Expect(ok).To(BeFalse())
			Expect(id).To(BeEmpty())
		},
		table.Entry("empty string", ""),
		table.Entry("other host", "https://vimeo.com/12345"),
		table.Entry("channel page", "https://www.youtube.com/@somechannel"),
	)

	It("builds a watch URL back from an id", func() {
		Expect(videourl.WatchURL("abc123")).To(Equal("https://www.youtube.com/watch?v=abc123"))
	})
})
