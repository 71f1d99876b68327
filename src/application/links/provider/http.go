package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"video-fetch-be/src/lib/cerr"
)

const maxErrorBodyBytes = 512

func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, out interface{}) error {
	errctx := cerr.Field("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to build provider request")
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to call provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return errctx.Field("status_code", resp.StatusCode).
			Field("body", string(body)).
			Error(fmt.Sprintf("Provider responded with status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errctx.Wrap(err).Error("Failed to decode provider response")
	}

	return nil
}
