package handler

import (
	"errors"
	"strings"

	"vocabook/internal/domain"
	"vocabook/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingMeaning:
		word := state.CurrentWord

		msg, err := h.wordService.Add(service.WordInput{Word: word, Meaning: text})
		if err != nil {
			if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrConflict) {
				h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
				return c.Send("❌ "+err.Error()+"\n\nSend another word or go back to /start", cancelMarkup())
			}

			h.logger.Error("Failed to save word",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.String("word", word),
			)
			return c.Send("Could not save the word. Please try again.")
		}

		h.logger.Info("Word saved from bot",
			zap.Int64("user_id", userID),
			zap.String("word", word),
		)

		// Reset to waiting for next word
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})

		return c.Send("✅ " + msg + "\n\nSend the next word or go back to /start")

	default:
		// Any other state - the text starts a new word
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingMeaning,
			CurrentWord: text,
		})

		return c.Send("Now send the meaning of '"+text+"'", cancelMarkup())
	}
}

// handleAddWord starts the add-word flow
func (h *Handler) handleAddWord(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingWord})
	return h.show(c, "➕ Send me the word you want to add", cancelMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}
