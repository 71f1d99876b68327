// Package videourl pulls the video identifier out of the URL shapes users paste.
package videourl

import "regexp"

var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
}

// ExtractVideoID accepts watch, short link and embed URLs. The second return
// value is false when none of them match.
func ExtractVideoID(url string) (string, bool) {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(url)
		if match != nil {
			return match[1], true
		}
	}

	return "", false
}

func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
