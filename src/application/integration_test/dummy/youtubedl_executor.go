package dummy

import (
	"context"

	"video-fetch-be/src/application/executor"
)

var _ executor.Executor = &YoutubeDLExecutor{}

func NewDummyYoutubeDLExecutor() *YoutubeDLExecutor {
	return &YoutubeDLExecutor{
		Unavailable: false,
		StreamURLs:  make(StreamURLs),
	}
}

// StreamURLs maps a watch URL to the direct URL youtube-dl -g would print
type StreamURLs map[string]string

type YoutubeDLExecutor struct {
	Unavailable bool
	StreamURLs  StreamURLs
	Calls       [][]string
}

type YoutubeDLCommand struct {
	Unavailable bool
	Args        []string
	StreamURLs  StreamURLs
}

func (y *YoutubeDLExecutor) AddURL(watchURL string, streamURL string) {
	y.StreamURLs[watchURL] = streamURL
}

func (y *YoutubeDLExecutor) CommandContext(_ context.Context, _ string, arg ...string) executor.Command {
	y.Calls = append(y.Calls, append([]string{}, arg...))

	return YoutubeDLCommand{
		Unavailable: y.Unavailable,
		Args:        arg,
		StreamURLs:  y.StreamURLs,
	}
}

func (y YoutubeDLCommand) Output() ([]byte, error) {
	if len(y.Args) == 0 || y.Args[0] != "-g" {
		return nil, UnexpectedInput
	}

	if y.Unavailable {
		return nil, NetworkFailure
	}

	lastIndex := len(y.Args) - 1
	sourceURL := y.Args[lastIndex]

	streamURL, ok := y.StreamURLs[sourceURL]
	if !ok {
		return []byte("ERROR: Video unavailable\n"), NotFound
	}

	return []byte("WARNING: falling back to generic format\n" + streamURL + "\n"), nil
}
