package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vocabook/internal/domain"

	"go.uber.org/zap"
)

type quizRequest struct {
	Type      string `json:"type"`
	Mode      string `json:"mode"`
	Category  string `json:"category"`
	FocusMode bool   `json:"focus_mode"`
}

type quizResponse struct {
	Success       bool     `json:"success"`
	Type          string   `json:"type"`
	Mode          string   `json:"mode"`
	Word          string   `json:"word"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Choices       []string `json:"choices,omitempty"`
	CorrectIndex  *int     `json:"correct_index,omitempty"`
}

type checkRequest struct {
	Word         string          `json:"word"`
	Answer       json.RawMessage `json:"answer"`
	Type         string          `json:"type"`
	Mode         string          `json:"mode"`
	CorrectIndex *int            `json:"correct_index"`
}

type checkResponse struct {
	Success       bool   `json:"success"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Stats         [2]int `json:"stats"`
	Persisted     bool   `json:"persisted"`
}

// answerText accepts the answer as a JSON string or number
func answerText(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return trimmed
}

// GenerateQuiz handles POST /api/quiz
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := h.quiz.Generate(domain.QuizRequest{
		Direction: domain.ParseDirection(req.Type),
		Mode:      domain.ParseMode(req.Mode),
		Category:  strings.TrimSpace(req.Category),
		Focus:     req.FocusMode,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := quizResponse{
		Success:       true,
		Type:          string(q.Direction),
		Mode:          string(q.Mode),
		Word:          q.Word,
		Question:      q.Prompt,
		CorrectAnswer: q.CorrectAnswer,
	}
	if q.Mode == domain.ModeMultiple {
		idx := q.CorrectIndex
		resp.Choices = q.Choices
		resp.CorrectIndex = &idx
	}
	writeJSON(w, http.StatusOK, resp)
}

// CheckQuiz handles POST /api/quiz/check
func (h *Handler) CheckQuiz(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.quiz.Grade(domain.Submission{
		Word:         req.Word,
		Answer:       answerText(req.Answer),
		Direction:    domain.ParseDirection(req.Type),
		Mode:         domain.ParseMode(req.Mode),
		CorrectIndex: req.CorrectIndex,
	})
	persisted := true
	if err != nil {
		if result == nil || !errors.Is(err, domain.ErrPersistence) {
			h.handleError(w, r, err)
			return
		}
		// The attempt is counted in memory even though the save failed.
		h.logger.Error("Failed to persist quiz attempt", zap.Error(err), zap.String("word", req.Word))
		persisted = false
	}

	writeJSON(w, http.StatusOK, checkResponse{
		Success:       true,
		IsCorrect:     result.Correct,
		CorrectAnswer: result.CorrectAnswer,
		Stats:         [2]int{result.Stats.Correct, result.Stats.Wrong},
		Persisted:     persisted,
	})
}
