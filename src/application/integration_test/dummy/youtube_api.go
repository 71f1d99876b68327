package dummy

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

type YoutubeVideo struct {
	ID           string
	Title        string
	ChannelTitle string
	Description  string
	Thumbnails   map[string]string
	Duration     string
	ViewCount    string
}

// YoutubeAPI serves the subset of the Data API v3 videos.list endpoint the fetcher uses
type YoutubeAPI struct {
	Server     *httptest.Server
	StatusCode int
	Videos     map[string]YoutubeVideo

	mutex    sync.Mutex
	requests int
}

func NewYoutubeAPI() *YoutubeAPI {
	api := &YoutubeAPI{
		StatusCode: http.StatusOK,
		Videos:     make(map[string]YoutubeVideo),
	}

	api.Server = httptest.NewServer(http.HandlerFunc(api.handle))
	return api
}

func (y *YoutubeAPI) Endpoint() string {
	return y.Server.URL + "/"
}

func (y *YoutubeAPI) Requests() int {
	y.mutex.Lock()
	defer y.mutex.Unlock()
	return y.requests
}

func (y *YoutubeAPI) Close() {
	y.Server.Close()
}

func (y *YoutubeAPI) handle(w http.ResponseWriter, r *http.Request) {
	y.mutex.Lock()
	y.requests++
	y.mutex.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if !strings.HasSuffix(r.URL.Path, "/videos") {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"no such endpoint"}}`))
		return
	}

	if y.StatusCode != http.StatusOK {
		w.WriteHeader(y.StatusCode)
		_, _ = fmt.Fprintf(w, `{"error":{"code":%d,"message":"forced failure"}}`, y.StatusCode)
		return
	}

	items := []interface{}{}
	if video, ok := y.Videos[r.URL.Query().Get("id")]; ok {
		items = append(items, videoResource(video))
	}

	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"kind":  "youtube#videoListResponse",
		"items": items,
	})
}

func videoResource(video YoutubeVideo) map[string]interface{} {
	thumbnails := map[string]interface{}{}
	for size, url := range video.Thumbnails {
		thumbnails[size] = map[string]interface{}{"url": url}
	}

	return map[string]interface{}{
		"kind": "youtube#video",
		"id":   video.ID,
		"snippet": map[string]interface{}{
			"title":        video.Title,
			"channelTitle": video.ChannelTitle,
			"description":  video.Description,
			"thumbnails":   thumbnails,
		},
		"contentDetails": map[string]interface{}{
			"duration": video.Duration,
		},
		"statistics": map[string]interface{}{
			"viewCount": video.ViewCount,
		},
	}
}
