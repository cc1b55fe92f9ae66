package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/xdpzq/devcore/pkg/logger"
)

// JSONResponseWriter renders API payloads. Success bodies are written
// as-is; failures use a uniform error envelope.
type JSONResponseWriter struct{}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (j *JSONResponseWriter) WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	j.write(w, http.StatusOK, data)
}

func (j *JSONResponseWriter) WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	j.write(w, statusCode, ErrorResponse{Error: message})
}

func (j *JSONResponseWriter) write(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response body", "status", statusCode, logger.Err(err))
	}
}
