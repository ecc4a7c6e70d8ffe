package main

import (
	"net/http"

	"moti/internal/config"
	"moti/internal/llm"
	"moti/internal/plangen"
)

// apiServer wires the per-task generators behind the JSON endpoints.
type apiServer struct {
	questions *plangen.Questions
	followUp  *plangen.FollowUp
	overview  *plangen.OverviewGen
	timeline  *plangen.Timeline
	plan      *plangen.PlanGen
	summary   *plangen.Summary
}

func newAPIServer(cfg *config.Config, client llm.Client) *apiServer {
	return &apiServer{
		questions: &plangen.Questions{LLM: client},
		followUp:  &plangen.FollowUp{LLM: client},
		overview:  plangen.NewOverviewGen(client, 256),
		timeline: &plangen.Timeline{
			LLM:        client,
			Calibrator: plangen.TimelineCalibrator{Compression: cfg.TimelineCompression},
		},
		plan:    &plangen.PlanGen{LLM: client},
		summary: &plangen.Summary{LLM: client},
	}
}

func buildMux(s *apiServer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/get-questions", s.handleGetQuestions)
	mux.HandleFunc("/api/generate-follow-up-questions", s.handleFollowUpQuestions)
	mux.HandleFunc("/api/generate-overview", s.handleGenerateOverview)
	mux.HandleFunc("/api/generate-timeline", s.handleGenerateTimeline)
	mux.HandleFunc("/api/generate-plan", s.handleGeneratePlan)
	mux.HandleFunc("/api/summarize-goal", s.handleSummarizeGoal)
	return mux
}
