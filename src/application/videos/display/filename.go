package display

import (
	"regexp"
	"strings"
)

const maxStemLength = 100

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// FilenameStem is the one normalization used for every provider's filename.
func FilenameStem(title string, videoID string) string {
	stem := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "_")
	stem = strings.Trim(stem, "_")

	if len(stem) > maxStemLength {
		stem = strings.TrimRight(stem[:maxStemLength], "_")
	}

	if stem == "" {
		return FallbackStem(videoID)
	}

	return stem
}

func FallbackStem(videoID string) string {
	return "video_" + videoID
}
