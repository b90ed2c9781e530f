package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/services/employees"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

func writeError(writer http.ResponseWriter, status int, message string) {
	writeJSON(writer, status, errorResponse{Error: message})
}

// handleError translates access-layer errors into HTTP status codes.
func (s *Server) handleError(writer http.ResponseWriter, req *http.Request, err error) {
	var validationErr *employees.ValidationError
	var notFoundErr *employees.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		writeError(writer, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		writeError(writer, http.StatusNotFound, "Employee Not Found")
	default:
		s.log.ErrorContext(req.Context(), "Request failed", slog.String("path", req.URL.Path), sl.Err(err))
		writeError(writer, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody decodes a JSON body into a freshly allocated T.
// An empty body or a literal null yields a nil result and no error; anything
// after the first JSON value is rejected.
func decodeBody[T any](writer http.ResponseWriter, req *http.Request) (*T, error) {
	var dst *T

	decoder := json.NewDecoder(http.MaxBytesReader(writer, req.Body, maxBodyBytes))
	if err := decoder.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &employees.ValidationError{Message: "invalid JSON body: " + err.Error()}
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &employees.ValidationError{Message: "invalid JSON body: unexpected data after the JSON value"}
	}

	return dst, nil
}
