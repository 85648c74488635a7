// Package response defines the JSON envelope shared by every endpoint and
// writes it for handlers that run outside huma, such as middleware
// rejections and router fallbacks.
package response

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	domainerrors "github.com/campfinder/campfinder-server/internal/errors"
	"github.com/campfinder/campfinder-server/internal/store"
)

// Version is the envelope schema version carried in every response.
const Version = 1

// Envelope is the response shape shared by every endpoint.
type Envelope struct {
	Version int        `json:"v"`
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error writes an error envelope.
func Error(w http.ResponseWriter, status int, code domainerrors.Code, message string, logger *slog.Logger) {
	write(w, status, Envelope{
		Version: Version,
		Error:   &ErrorBody{Code: string(code), Message: message},
	}, logger)
}

// NotFound writes a 404 Not Found response.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusNotFound, domainerrors.CodeNotFound, message, logger)
}

// MethodNotAllowed writes a 405 Method Not Allowed response.
func MethodNotAllowed(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusMethodNotAllowed, domainerrors.CodeValidation, message, logger)
}

// TooManyRequests writes a 429 Too Many Requests response.
func TooManyRequests(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusTooManyRequests, domainerrors.CodeRateLimited, message, logger)
}

// Describe converts a service error into its envelope body and HTTP status.
// Domain errors keep their code, message and details; store errors map by
// HTTP code; a deadline is reported as unavailable. ok is false for any
// other error.
func Describe(err error) (body *ErrorBody, status int, ok bool) {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		return &ErrorBody{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Details: domainErr.Details,
		}, domainErr.HTTPStatus(), true
	}

	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		code := storeErr.HTTPCode()
		return &ErrorBody{
			Code:    string(CodeForStatus(code)),
			Message: storeErr.Message,
		}, code, true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &ErrorBody{
			Code:    string(domainerrors.CodeUnavailable),
			Message: "request timed out",
		}, http.StatusServiceUnavailable, true
	}

	return nil, 0, false
}

// CodeForStatus maps an HTTP status to the closest domain error code.
func CodeForStatus(status int) domainerrors.Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusMethodNotAllowed:
		return domainerrors.CodeValidation
	case http.StatusNotFound:
		return domainerrors.CodeNotFound
	case http.StatusConflict:
		return domainerrors.CodeConflict
	case http.StatusTooManyRequests:
		return domainerrors.CodeRateLimited
	case http.StatusServiceUnavailable:
		return domainerrors.CodeUnavailable
	default:
		return domainerrors.CodeInternal
	}
}

func write(w http.ResponseWriter, status int, envelope Envelope, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		if logger != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}
