package api

import (
	"net/http"

	"vocabook/internal/middleware"
	"vocabook/internal/service"

	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Handler serves the JSON API over the vocabulary services
type Handler struct {
	words  *service.WordService
	quiz   *service.QuizService
	stats  *service.StatsService
	logger *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	words *service.WordService,
	quiz *service.QuizService,
	stats *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		words:  words,
		quiz:   quiz,
		stats:  stats,
		logger: logger,
	}
}

// NewRouter registers all routes and wraps them with mws, outermost first
func NewRouter(h *Handler, mws ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/words", h.ListWords)
	mux.HandleFunc("POST /api/words", h.AddWord)
	mux.HandleFunc("GET /api/words/{word}", h.FindWord)
	mux.HandleFunc("PUT /api/words/{word}", h.UpdateWord)
	mux.HandleFunc("DELETE /api/words/{word}", h.DeleteWord)

	mux.HandleFunc("POST /api/quiz", h.GenerateQuiz)
	mux.HandleFunc("POST /api/quiz/check", h.CheckQuiz)

	mux.HandleFunc("GET /api/stats", h.Stats)
	mux.HandleFunc("GET /api/categories", h.Categories)
	mux.HandleFunc("GET /api/summary", h.Summary)

	mux.HandleFunc("GET /health", h.Health)

	return middleware.Chain(mws...)(mux)
}
