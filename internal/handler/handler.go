package handler

import (
	"sync"

	"vocabook/internal/domain"
	"vocabook/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	wordService  *service.WordService
	quizService  *service.QuizService
	statsService *service.StatsService
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wordService *service.WordService,
	quizService *service.QuizService,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		wordService:  wordService,
		quizService:  quizService,
		statsService: statsService,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/quiz", h.handleQuiz)
	h.bot.Handle("/stats", h.handleStats)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnQuiz, h.handleQuiz)
	h.bot.Handle(&btnFocusQuiz, h.handleFocusQuiz)
	h.bot.Handle(&btnMore, h.handleMore)
	h.bot.Handle(&btnWords, h.handleWords)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnAddWord, h.handleAddWord)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnBack, h.handleStart)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// takeQuestion returns the pending question and clears it, so a second
// tap on the same keyboard is not graded twice
func (h *Handler) takeQuestion(userID int64) (*domain.Question, bool) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	state, exists := h.states[userID]
	if !exists || state.State != domain.StateQuiz || state.Question == nil {
		return nil, false
	}
	q := state.Question
	h.states[userID] = &domain.StateData{State: domain.StateQuiz, Focus: state.Focus}
	return q, true
}

// Inline keyboard buttons
var (
	btnQuiz = tele.Btn{
		Unique: "quiz",
		Text:   "🎯 Quiz",
	}
	btnFocusQuiz = tele.Btn{
		Unique: "focus_quiz",
		Text:   "🔥 Weak words",
	}
	btnMore = tele.Btn{
		Unique: "more",
		Text:   "🔄 Next",
	}
	btnWords = tele.Btn{
		Unique: "words",
		Text:   "📚 My words",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Stats",
	}
	btnAddWord = tele.Btn{
		Unique: "add_word",
		Text:   "➕ Add word",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Back",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

const mainMenuText = "🏠 Main menu\n\nChoose an action:"

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnQuiz, btnFocusQuiz),
		menu.Row(btnWords, btnStats),
		menu.Row(btnAddWord),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
