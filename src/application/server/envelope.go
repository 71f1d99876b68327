package server

import (
	"encoding/json"
	"net/http"

	"video-fetch-be/src/application/apperr"
	"video-fetch-be/src/lib/cerr"
)

type errorResponse struct {
	Success   bool        `json:"success"`
	Error     string      `json:"error"`
	ErrorCode apperr.Kind `json:"error_code"`
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Client-Info, Apikey")
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.InvalidURL, apperr.InvalidAction, apperr.InvalidParameter:
		return http.StatusBadRequest
	case apperr.RateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		cerr.Log(cerr.Wrap(err).Error("Failed to marshal response body"))
		status = http.StatusInternalServerError
		payload = []byte(`{"success":false,"error":"Internal server error","error_code":"InternalError"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func writeError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	status := statusFor(kind)

	if status >= http.StatusInternalServerError {
		cerr.Log(err)
	} else {
		cerr.Warn(err)
	}

	writeJSON(w, status, errorResponse{
		Success:   false,
		Error:     apperr.MessageOf(err),
		ErrorCode: kind,
	})
}
