// Package rest maps application errors onto the HTTP response envelope.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ayowande/custpay/internal/application"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteError maps application errors to HTTP responses. Internal faults keep
// their detail out of the response body; everything is logged with the full
// chain.
func WriteError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)

	message := err.Error()
	if svcErr, ok := application.IsServiceError(err); ok {
		message = svcErr.Message
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed", "code", errorCode, "error", err)
	} else {
		logger.Debug("request rejected", "code", errorCode, "error", err)
	}

	response := ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    errorCode,
			Message: message,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
