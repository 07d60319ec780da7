package api

import (
	"net/http"

	"vocabook/internal/domain"
	"vocabook/internal/service"
)

type wordRequest struct {
	English  string `json:"english"`
	Korean   string `json:"korean"`
	Category string `json:"category"`
}

func (req wordRequest) toInput() service.WordInput {
	return service.WordInput{
		Word:     req.English,
		Meaning:  req.Korean,
		Category: req.Category,
	}
}

type wordResponse struct {
	English  string `json:"english"`
	Korean   string `json:"korean"`
	Category string `json:"category"`
}

type findResponse struct {
	Success bool `json:"success"`
	wordResponse
}

func toWordResponse(w domain.Word) wordResponse {
	return wordResponse{
		English:  w.Word,
		Korean:   w.Meaning,
		Category: w.Category,
	}
}

// ListWords handles GET /api/words?category=
func (h *Handler) ListWords(w http.ResponseWriter, r *http.Request) {
	words := h.words.List(r.URL.Query().Get("category"))

	resp := make([]wordResponse, 0, len(words))
	for _, word := range words {
		resp = append(resp, toWordResponse(word))
	}
	writeJSON(w, http.StatusOK, resp)
}

// FindWord handles GET /api/words/{word}
func (h *Handler) FindWord(w http.ResponseWriter, r *http.Request) {
	word, err := h.words.Find(r.PathValue("word"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, findResponse{Success: true, wordResponse: toWordResponse(word)})
}

// AddWord handles POST /api/words
func (h *Handler) AddWord(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.words.Add(req.toInput())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

// UpdateWord handles PUT /api/words/{word}
func (h *Handler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.words.Update(r.PathValue("word"), req.toInput())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

// DeleteWord handles DELETE /api/words/{word}
func (h *Handler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	msg, err := h.words.Remove(r.PathValue("word"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

// Categories handles GET /api/categories
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.words.Categories())
}
