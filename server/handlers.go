package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Vayain/soul-builder/builder"
	"github.com/Vayain/soul-builder/internal/utils"
	"github.com/Vayain/soul-builder/sessions"
)

const (
	contentTypeJSON     = "application/json; charset=utf-8"
	contentTypeMarkdown = "text/markdown; charset=utf-8"

	codeBadRequest builder.Code = "BAD_REQUEST"
)

// HealthResponse is served on /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	sessions.Stats
}

// HealthHandler reports liveness and session counts
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Service: s.config.GetAppName(),
			Version: Version,
			Stats:   s.builder.Stats(),
		})
	}
}

// StartSessionHandler begins a session under a generated id (POST /api/sessions)
func (s *Server) StartSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, s.builder.Begin(""))
	}
}

// BeginHandler begins or resumes a caller named session
func (s *Server) BeginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, s.builder.Begin(chi.URLParam(r, sessionIDParam)))
	}
}

// AnswerRequest is the body of an answer submission.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// AnswerHandler submits the answer to the session's current question
func (s *Server) AnswerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, sessionIDParam)

		var req AnswerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug().Err(err).Str("session_id", sessionID).Msg("invalid answer body")
			writeJSON(w, http.StatusBadRequest, builder.Result{
				Code:      codeBadRequest,
				Message:   "Request body must be JSON of the form {\"answer\": \"...\"}.",
				SessionID: sessionID,
			})
			return
		}

		writeResult(w, s.builder.SubmitAnswer(sessionID, req.Answer))
	}
}

// GenerateHandler compiles the soul document as JSON
func (s *Server) GenerateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, s.builder.Generate(chi.URLParam(r, sessionIDParam)))
	}
}

// ExportHandler serves the soul document as a markdown download. With
// ?format=json the full result is returned instead.
func (s *Server) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := s.builder.Export(chi.URLParam(r, sessionIDParam))
		if !result.Success || r.URL.Query().Get("format") == "json" {
			writeResult(w, result)
			return
		}

		w.Header().Set("Content-Type", contentTypeMarkdown)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", utils.Value(result.Filename)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(utils.Value(result.Document)))
	}
}

// statusFor maps result codes onto HTTP status codes.
func statusFor(result builder.Result) int {
	switch result.Code {
	case builder.CodeNoSession:
		return http.StatusNotFound
	case builder.CodeValidationRequired:
		return http.StatusUnprocessableEntity
	case builder.CodeNotComplete:
		return http.StatusConflict
	case builder.CodeInternal:
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

func writeResult(w http.ResponseWriter, result builder.Result) {
	writeJSON(w, statusFor(result), result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("failed to encode response")
	}
}
