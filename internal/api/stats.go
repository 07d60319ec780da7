package api

import (
	"net/http"
	"time"
)

type statsRowResponse struct {
	Word     string  `json:"word"`
	Korean   string  `json:"korean"`
	Category string  `json:"category"`
	Correct  int     `json:"correct"`
	Wrong    int     `json:"wrong"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

type summaryResponse struct {
	WordCount  int `json:"word_count"`
	StatsCount int `json:"stats_count"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats handles GET /api/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	rows := h.stats.Report()

	resp := make([]statsRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, statsRowResponse{
			Word:     row.Word,
			Korean:   row.Meaning,
			Category: row.Category,
			Correct:  row.Correct,
			Wrong:    row.Wrong,
			Total:    row.Total,
			Accuracy: row.Accuracy,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Summary handles GET /api/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	s := h.stats.Summary()
	writeJSON(w, http.StatusOK, summaryResponse{
		WordCount:  s.WordCount,
		StatsCount: s.StatsCount,
	})
}

// Health is the liveness probe
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}
