// render.go turns engine state into outbound messages, preferring to edit the
// existing question message in place over sending a new one.

package telegram

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/football-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/football-quiz-bot/internal/service"
	"github.com/aliskhannn/football-quiz-bot/internal/storage"
)

// sendQuestion renders the session's current question, in answered or
// unanswered state. The membership gate is re-checked on every render.
func (h *Handler) sendQuestion(chatID, userID int64) {
	if !h.membership.Verify(userID) {
		h.sendSubscriptionPrompt(chatID, userID)
		return
	}

	session := h.quiz.Session(userID)
	if session == nil {
		return
	}

	question := session.Question()
	caption := questionCaption(session.Current+1, session.Total(), question.Text)
	keyboard := buildQuestionKeyboard(session)

	if session.ActiveMessageID != 0 {
		if h.editQuestionMessage(chatID, session.ActiveMessageID, question, caption, keyboard) {
			return
		}
	}

	// The old message is unusable (deleted, or its media type changed), or
	// there was none yet. Send a fresh one.
	var sent tgbotapi.Message
	var err error
	if question.HasImage() {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(question.Image))
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeHTML
		photo.ReplyMarkup = keyboard
		sent, err = h.api.Send(photo)
	} else {
		msg := newHTMLMessage(chatID, caption)
		msg.ReplyMarkup = keyboard
		sent, err = h.api.Send(msg)
	}
	if err != nil {
		h.logger.Error("failed to send question message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return
	}

	// Record the new message for the slot this render was for. If the cursor
	// moved meanwhile, the engine rejects the record and the message is torn
	// down instead of becoming an untracked duplicate.
	if !h.quiz.SetActiveMessage(userID, session.Current, sent.MessageID) {
		h.deleteMessage(chatID, sent.MessageID, "question")
	}
}

// editQuestionMessage edits the active question message in place. It returns
// true when the desired view is in place (including benign "not modified"
// outcomes) and false when the caller should send a fresh message instead.
func (h *Handler) editQuestionMessage(
	chatID int64,
	messageID int,
	question entities.Question,
	caption string,
	keyboard tgbotapi.InlineKeyboardMarkup,
) bool {
	var err error
	if question.HasImage() {
		media := tgbotapi.NewInputMediaPhoto(tgbotapi.FileURL(question.Image))
		media.Caption = caption
		media.ParseMode = tgbotapi.ModeHTML

		edit := tgbotapi.EditMessageMediaConfig{
			BaseEdit: tgbotapi.BaseEdit{
				ChatID:      chatID,
				MessageID:   messageID,
				ReplyMarkup: &keyboard,
			},
			Media: media,
		}
		_, err = h.api.Request(edit)
	} else {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, caption)
		edit.ParseMode = tgbotapi.ModeHTML
		edit.ReplyMarkup = &keyboard
		_, err = h.api.Request(edit)
	}

	if err == nil || isBenignEditErr(err) {
		return true
	}
	if isEditTargetGone(err) {
		return false
	}

	h.logger.Error("failed to edit question message",
		zap.Int64("chat_id", chatID),
		zap.Int("message_id", messageID),
		zap.Error(err),
	)
	return true
}

// editReplyMarkup swaps only the keyboard of a message.
func (h *Handler) editReplyMarkup(chatID int64, messageID int, keyboard tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, keyboard)
	if _, err := h.api.Request(edit); err != nil && !isBenignEditErr(err) {
		h.logger.Error("failed to edit reply markup",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}

// sendCategoryMenu sends the category menu and tracks it for tidy-up.
// It returns the sent message ID, or 0 when sending failed.
func (h *Handler) sendCategoryMenu(chatID, userID int64) int {
	msg := tgbotapi.NewMessage(chatID, msgChooseCategory)
	msg.ReplyMarkup = buildCategoryMenuKeyboard(h.quiz.Categories(), h.quiz.Results(userID))

	sent, err := h.api.Send(msg)
	if err != nil {
		h.logger.Error("failed to send category menu",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return 0
	}

	h.refs.Set(userID, storage.SurfaceMenu, sent.MessageID)
	return sent.MessageID
}

// sendSubscriptionPrompt shows sponsor links and the re-check button.
func (h *Handler) sendSubscriptionPrompt(chatID, userID int64) {
	msg := tgbotapi.NewMessage(chatID, msgSubscriptionPrompt)
	msg.ReplyMarkup = buildSubscriptionKeyboard(h.membership.SponsorsList())
	h.send(msg)
}

// showFinalResult deletes the last question message, renders the summary and
// tracks it for tidy-up.
func (h *Handler) showFinalResult(chatID, userID int64, summary *service.Summary) {
	if summary.ActiveMessageID != 0 {
		h.deleteMessage(chatID, summary.ActiveMessageID, "question")
	}

	msg := tgbotapi.NewMessage(chatID, finalResultText(summary.Category, summary.Score, summary.Total, summary.Title))
	msg.ReplyMarkup = buildFinalResultKeyboard()

	sent, err := h.api.Send(msg)
	if err != nil {
		h.logger.Error("failed to send final result",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return
	}

	h.refs.Set(userID, storage.SurfaceResult, sent.MessageID)
}

// scheduleAutoAdvance moves past a revealed answer after the configured
// delay. The engine re-checks that the session is still on this slot when the
// timer fires, so a user who has navigated away is left alone.
func (h *Handler) scheduleAutoAdvance(chatID, userID int64, index int) {
	if h.autoAdvanceDelay <= 0 {
		return
	}

	time.AfterFunc(h.autoAdvanceDelay, func() {
		if _, ok := h.quiz.AutoNext(userID, index); ok {
			h.sendQuestion(chatID, userID)
		}
	})
}
