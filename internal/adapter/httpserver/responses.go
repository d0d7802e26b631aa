// Package httpserver contains HTTP handlers and middleware.
//
// It provides REST API endpoints for resume analysis, interview sessions,
// question catalogs, and the chat surface, keeping HTTP concerns separate
// from the evaluation engine.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, _ *http.Request, err error, details interface{}) {
	code := http.StatusInternalServerError
	codeStr := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		code = http.StatusBadRequest
		codeStr = "INVALID_ARGUMENT"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		code = http.StatusBadRequest
		codeStr = "UNSUPPORTED_FORMAT"
	case errors.Is(err, domain.ErrInvalidQuestionIndex):
		code = http.StatusBadRequest
		codeStr = "INVALID_QUESTION_INDEX"
	case errors.Is(err, domain.ErrUnknownRole):
		code = http.StatusNotFound
		codeStr = "UNKNOWN_ROLE"
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
		codeStr = "NOT_FOUND"
	case errors.Is(err, domain.ErrParseFailure):
		code = http.StatusUnprocessableEntity
		codeStr = "PARSE_FAILURE"
	}
	writeJSON(w, code, errorEnvelope{Error: apiError{Code: codeStr, Message: err.Error(), Details: details}})
}
