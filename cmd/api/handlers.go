package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"moti/internal/llm"
	"moti/internal/plangen"
	"moti/internal/util/jsonutil"
)

const disabledMessage = "AI features are disabled - API key not configured"

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := jsonutil.MarshalNoEscape(v)
	if err != nil {
		http.Error(w, "encoding failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody rejects non-POST requests and parses the single JSON body.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return false
	}
	return true
}

// writeGenerationError maps the failure taxonomy for gating tasks. Non-gating
// handlers never reach this for recoverable failures; those substitute.
func writeGenerationError(w http.ResponseWriter, err error, parseMsg string) {
	var statusErr *llm.StatusError
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, disabledMessage)
	case errors.As(err, &statusErr):
		writeError(w, http.StatusInternalServerError, "API request failed: "+http.StatusText(statusErr.Code))
	case errors.Is(err, plangen.ErrMalformedOutput), errors.Is(err, plangen.ErrValidation), errors.Is(err, llm.ErrEmptyCompletion):
		writeError(w, http.StatusInternalServerError, parseMsg)
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (s *apiServer) handleGetQuestions(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Goal string `json:"goal"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Goal) == "" {
		writeError(w, http.StatusBadRequest, "No goal provided")
		return
	}
	questions, err := s.questions.Run(r.Context(), in.Goal)
	if err != nil {
		writeGenerationError(w, err, "Failed to generate questions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func (s *apiServer) handleFollowUpQuestions(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Goal    string            `json:"goal"`
		Answers map[string]string `json:"answers"`
		Phase   string            `json:"phase"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Goal) == "" || len(in.Answers) == 0 || in.Phase == "" {
		writeError(w, http.StatusBadRequest, "Missing required data")
		return
	}
	questions, err := s.followUp.Run(r.Context(), in.Goal, plangen.AnswerSet(in.Answers), in.Phase)
	if err != nil {
		if errors.Is(err, plangen.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Missing required data")
			return
		}
		writeGenerationError(w, err, "Failed to generate questions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func (s *apiServer) handleGenerateOverview(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Goal    string            `json:"goal"`
		Answers map[string]string `json:"answers"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Goal) == "" {
		writeError(w, http.StatusBadRequest, "No goal provided")
		return
	}
	overview, err := s.overview.Run(r.Context(), in.Goal, plangen.AnswerSet(in.Answers))
	if err != nil {
		writeGenerationError(w, err, "Failed to generate overview")
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (s *apiServer) handleGenerateTimeline(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Goal     string            `json:"goal"`
		Answers  map[string]string `json:"answers"`
		Overview *plangen.Overview `json:"overview"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Goal) == "" {
		writeError(w, http.StatusBadRequest, "No goal provided")
		return
	}
	estimate, err := s.timeline.Run(r.Context(), in.Goal, plangen.AnswerSet(in.Answers), in.Overview)
	if err != nil {
		writeGenerationError(w, err, "Failed to generate timeline")
		return
	}
	writeJSON(w, http.StatusOK, estimate)
}

func (s *apiServer) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Goal    string            `json:"goal"`
		Context map[string]string `json:"context"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Goal) == "" {
		writeError(w, http.StatusBadRequest, "No goal provided")
		return
	}
	plan, err := s.plan.Run(r.Context(), in.Goal, in.Context)
	if err != nil {
		writeGenerationError(w, err, "Failed to generate plan")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *apiServer) handleSummarizeGoal(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Goal string `json:"goal"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Goal) == "" {
		writeError(w, http.StatusBadRequest, "No goal provided")
		return
	}
	summary, err := s.summary.Run(r.Context(), in.Goal)
	if err != nil {
		if errors.Is(err, plangen.ErrGoalTooVague) {
			writeError(w, http.StatusBadRequest, "Hmm. That's a bit unclear.")
			return
		}
		writeGenerationError(w, err, "Failed to parse summary")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
