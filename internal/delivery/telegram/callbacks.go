package telegram

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/football-quiz-bot/internal/repository"
	"github.com/aliskhannn/football-quiz-bot/internal/service"
)

func (h *Handler) handleCallback(cb *tgbotapi.CallbackQuery) {
	// Answer right away to drop the client's loading spinner, even for stale
	// callbacks whose message is gone.
	h.answerCallback(cb.ID, "")

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID

	ev := decodeCallback(cb.Data)
	if ev.kind == eventIgnore {
		return
	}

	if !h.membership.Verify(userID) {
		h.sendSubscriptionPrompt(chatID, userID)
		return
	}

	switch ev.kind {
	case eventCheckSubscription, eventShowCategories:
		h.clearAllSurfaces(chatID, userID)
		h.sendCategoryMenu(chatID, userID)

	case eventCategory:
		h.handleCategory(chatID, userID, ev.category)

	case eventGoBack:
		h.handleBack(chatID, userID, cb.ID)

	case eventGoNext:
		h.handleNext(chatID, userID, cb.ID, ev.manual)

	case eventSelectOption:
		h.handleAnswer(chatID, userID, cb.ID, ev.option)

	default:
		h.logger.Debug("unknown callback payload",
			zap.Int64("user_id", userID),
			zap.String("data", cb.Data),
		)
	}
}

// handleCategory starts a fresh quiz, replacing whatever came before it.
func (h *Handler) handleCategory(chatID, userID int64, category string) {
	h.clearAllSurfaces(chatID, userID)

	if _, err := h.quiz.Start(userID, category); err != nil {
		if errors.Is(err, repository.ErrUnknownCategory) {
			h.send(tgbotapi.NewMessage(chatID, msgCategoryUnavailable))
			return
		}
		h.logger.Error("failed to start quiz",
			zap.Int64("user_id", userID),
			zap.String("category", category),
			zap.Error(err),
		)
		return
	}

	h.sendQuestion(chatID, userID)
}

func (h *Handler) handleBack(chatID, userID int64, callbackID string) {
	_, err := h.quiz.Back(userID)
	switch {
	case errors.Is(err, service.ErrFirstQuestion):
		h.alertCallback(callbackID, msgFirstQuestion)
		return
	case errors.Is(err, service.ErrNoSession):
		// Stale button from a finished quiz.
		return
	case err != nil:
		h.logger.Error("navigate back failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	h.sendQuestion(chatID, userID)
}

func (h *Handler) handleNext(chatID, userID int64, callbackID string, manual bool) {
	_, summary, err := h.quiz.Next(userID, manual)
	switch {
	case errors.Is(err, service.ErrAnswerFirst):
		h.alertCallback(callbackID, msgAnswerFirst)
		return
	case errors.Is(err, service.ErrNoSession):
		return
	case err != nil:
		h.logger.Error("navigate next failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	if summary != nil {
		h.showFinalResult(chatID, userID, summary)
		return
	}

	h.sendQuestion(chatID, userID)
}

func (h *Handler) handleAnswer(chatID, userID int64, callbackID string, option int) {
	session := h.quiz.Session(userID)
	if session == nil {
		return
	}

	// Inert keyboard while the answer is being recorded.
	if session.ActiveMessageID != 0 {
		h.editReplyMarkup(chatID, session.ActiveMessageID, buildProcessingKeyboard(session.Question()))
	}

	outcome, err := h.quiz.Answer(userID, option)
	switch {
	case errors.Is(err, service.ErrAlreadyAnswered):
		h.answerCallback(callbackID, msgAlreadyAnswered)
		return
	case errors.Is(err, service.ErrNoSession), errors.Is(err, service.ErrInvalidOption):
		return
	case err != nil:
		h.logger.Error("record answer failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	if outcome.Correct {
		h.answerCallback(callbackID, msgCorrect)
	} else {
		h.answerCallback(callbackID, wrongAnswerText(outcome.CorrectOption))
	}

	index := outcome.Session.Current
	h.sendQuestion(chatID, userID)
	h.scheduleAutoAdvance(chatID, userID, index)
}

// answerCallback acknowledges a callback query with optional toast text.
func (h *Handler) answerCallback(callbackID, text string) {
	if _, err := h.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

// alertCallback acknowledges a callback query with a popup alert.
func (h *Handler) alertCallback(callbackID, text string) {
	if _, err := h.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		h.logger.Debug("callback alert error", zap.Error(err))
	}
}
