package http

import (
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Backend connected",
	})
}

func Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Attendance API",
	})
}
