package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform error envelope. Every failure, whatever the
// status code, serializes to {"success": false, "detail": "..."}.
type ErrorBody struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

// JSON writes payload as-is. Successful responses carry the bare
// representation, not an envelope.
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Detail: "Failed to encode response"})
	}
}

func Error(w http.ResponseWriter, statusCode int, detail string) {
	JSON(w, statusCode, ErrorBody{Success: false, Detail: detail})
}

func BadRequest(w http.ResponseWriter, detail string) {
	Error(w, http.StatusBadRequest, detail)
}

func NotFound(w http.ResponseWriter, detail string) {
	Error(w, http.StatusNotFound, detail)
}

func ServiceUnavailable(w http.ResponseWriter, detail string) {
	Error(w, http.StatusServiceUnavailable, detail)
}

func InternalServerError(w http.ResponseWriter, detail string) {
	Error(w, http.StatusInternalServerError, detail)
}
