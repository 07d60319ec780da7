package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"vocabook/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const wordsPageSize = 10

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseSuffix returns the number after prefix in data
func parseSuffix(data, prefix string) (int, error) {
	if !strings.HasPrefix(data, prefix) {
		return 0, fmt.Errorf("callback %q has no %q prefix", data, prefix)
	}
	return strconv.Atoi(strings.TrimPrefix(data, prefix))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// The message was already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks of buttons without a registered handler
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Buttons whose Unique did not come through
	switch data {
	case btnQuiz.Unique:
		return h.handleQuiz(c)
	case btnFocusQuiz.Unique:
		return h.handleFocusQuiz(c)
	case btnMore.Unique:
		return h.handleMore(c)
	case btnWords.Unique:
		return h.handleWords(c)
	case btnStats.Unique:
		return h.handleStats(c)
	case btnAddWord.Unique:
		return h.handleAddWord(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnBack.Unique, btnMainMenu.Unique:
		return h.handleStart(c)
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, answerPrefix):
		return h.handleAnswer(c, data)
	case strings.HasPrefix(data, pagePrefix):
		return h.handlePagination(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

func (h *Handler) handleQuiz(c tele.Context) error {
	return h.startQuestion(c, false)
}

func (h *Handler) handleFocusQuiz(c tele.Context) error {
	return h.startQuestion(c, true)
}

// handleMore asks the next question in the same mode as the last one
func (h *Handler) handleMore(c tele.Context) error {
	return h.startQuestion(c, h.GetState(c.Sender().ID).Focus)
}

// startQuestion generates a multiple-choice question and keeps it in the user's state
func (h *Handler) startQuestion(c tele.Context, focus bool) error {
	userID := c.Sender().ID

	q, err := h.quizService.Generate(domain.QuizRequest{
		Direction: domain.ForeignToNative,
		Mode:      domain.ModeMultiple,
		Focus:     focus,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyVocabulary) {
			return h.alert(c, "You have no saved words yet")
		}
		h.logger.Error("Failed to generate question", zap.Error(err), zap.Int64("user_id", userID))
		return h.alert(c, "Could not build a question")
	}

	h.SetState(userID, &domain.StateData{
		State:    domain.StateQuiz,
		Question: q,
		Focus:    focus,
	})

	return h.show(c, formatQuestion(q), choicesMarkup(q))
}

// handleAnswer grades the choice tapped by the user
func (h *Handler) handleAnswer(c tele.Context, data string) error {
	userID := c.Sender().ID

	chosen, err := parseSuffix(data, answerPrefix)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid answer"})
	}

	q, ok := h.takeQuestion(userID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "This question is no longer active"})
	}

	correctIndex := q.CorrectIndex
	result, err := h.quizService.Grade(domain.Submission{
		Word:         q.Word,
		Answer:       strconv.Itoa(chosen),
		Direction:    q.Direction,
		Mode:         domain.ModeMultiple,
		CorrectIndex: &correctIndex,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPersistence) && result != nil:
			h.logger.Error("Failed to persist quiz attempt", zap.Error(err), zap.Int64("user_id", userID))
		case errors.Is(err, domain.ErrNotFound):
			return h.alert(c, "This word has been deleted")
		default:
			h.logger.Error("Failed to grade answer", zap.Error(err), zap.Int64("user_id", userID))
			return h.alert(c, "Could not check the answer")
		}
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnMore),
		markup.Row(btnBack),
	)
	return h.show(c, formatResult(q, chosen, result), markup)
}

// handleWords shows the first page of the word list
func (h *Handler) handleWords(c tele.Context) error {
	return h.showWordsPage(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := parseSuffix(data, pagePrefix)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showWordsPage(c, page)
}

func (h *Handler) showWordsPage(c tele.Context, number int) error {
	words := h.wordService.List("")
	if len(words) == 0 {
		return h.alert(c, "You have no saved words yet")
	}

	page := domain.Paginate(words, number, wordsPageSize)
	return h.show(c, formatWordsPage(page, h.wordService.Categories()), pageMarkup(page))
}

// handleStats shows the accuracy report
func (h *Handler) handleStats(c tele.Context) error {
	text := formatStats(h.statsService.Report(), h.statsService.Summary(), statsLimit)

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnFocusQuiz), markup.Row(btnBack))
	return h.show(c, text, markup)
}

// alert answers a button with a popup, or a plain message for commands
func (h *Handler) alert(c tele.Context, text string) error {
	if c.Callback() == nil {
		return c.Send(text)
	}
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}
