package display_test

import (
	"strings"

	"video-fetch-be/src/application/videos/display"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Formatters", func() {
	table.DescribeTable("ParseDuration",
		func(input string, expected string) {
			Expect(display.ParseDuration(input)).To(Equal(expected))
		},
		table.Entry("hours, minutes and seconds", "PT1H2M3S", "1:02:03"),
		table.Entry("minutes and seconds", "PT5M9S", "5:09"),
		table.Entry("seconds only", "PT45S", "0:45"),
		table.Entry("hours only", "PT2H", "2:00:00"),
		table.Entry("minutes only", "PT10M", "10:00"),
		table.Entry("malformed", "five minutes", "0:00"),
		table.Entry("empty", "", "0:00"),
	)

	table.DescribeTable("FormatViews",
		func(input string, expected string) {
			views, err := display.FormatViews(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(Equal(expected))
		},
		table.Entry("billions", "1234567890", "1.2B"),
		table.Entry("millions", "2500000", "2.5M"),
		table.Entry("thousands", "1500", "1.5K"),
		table.Entry("exactly a thousand", "1000", "1.0K"),
		table.Entry("small", "42", "42"),
		table.Entry("zero", "0", "0"),
	)

	It("fails FormatViews on non numeric input", func() {
		_, err := display.FormatViews("lots")
		Expect(err).To(HaveOccurred())
		Expect(err).To(BeAssignableToTypeOf(display.ParseError{}))
	})

	Describe("FilenameStem", func() {
		It("lowercases and replaces runs of other characters with one underscore", func() {
			Expect(display.FilenameStem("Never Gonna  Give You Up (Official Video)", "abc")).
				To(Equal("never_gonna_give_you_up_official_video"))
		})

		It("falls back to the video id when nothing usable is left", func() {
			Expect(display.FilenameStem("！！！", "abc123")).To(Equal("video_abc123"))
			Expect(display.FilenameStem("", "abc123")).To(Equal("video_abc123"))
		})

		It("caps the length", func() {
			stem := display.FilenameStem(strings.Repeat("a", 300), "abc")
			Expect(len(stem)).To(Equal(100))
		})
	})
})
