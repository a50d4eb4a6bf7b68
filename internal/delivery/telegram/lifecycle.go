// lifecycle.go keeps the visible conversation tidy: one live message per
// logical surface, best-effort deletion of superseded ones.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/football-quiz-bot/internal/storage"
)

// deleteMessage removes a message, swallowing "already gone" failures. Other
// failures are logged and ignored: deletion never blocks the user flow.
func (h *Handler) deleteMessage(chatID int64, messageID int, surface string) {
	_, err := h.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	if err != nil && !isBenignDeleteErr(err) {
		h.logger.Error("failed to delete message",
			zap.String("surface", surface),
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}

// deleteSurface deletes the tracked message for a surface, if any.
func (h *Handler) deleteSurface(chatID, userID int64, surface storage.Surface) {
	if id, ok := h.refs.Get(userID, surface); ok {
		h.deleteMessage(chatID, id, string(surface))
		h.refs.Clear(userID, surface)
	}
}

// clearQuestion deletes the active question message of the user's session.
func (h *Handler) clearQuestion(chatID, userID int64) {
	if id := h.quiz.ClearActiveMessage(userID); id != 0 {
		h.deleteMessage(chatID, id, "question")
	}
}

// clearAllSurfaces deletes the question, menu and result messages and tears
// down the active session. Command acknowledgements and recorded results are
// left alone.
func (h *Handler) clearAllSurfaces(chatID, userID int64) {
	h.clearQuestion(chatID, userID)
	h.deleteSurface(chatID, userID, storage.SurfaceMenu)
	h.deleteSurface(chatID, userID, storage.SurfaceResult)
	h.quiz.Reset(userID)
}

// isBenignDeleteErr reports deletion failures that mean the message is
// already gone or out of reach.
func isBenignDeleteErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "message to delete not found") ||
		strings.Contains(msg, "message can't be deleted")
}

// isBenignEditErr reports edit failures that leave the conversation in the
// desired state anyway: nothing changed, a newer edit superseded this one, or
// a question carries a broken photo URL that a resend would not fix either.
func isBenignEditErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "message is not modified") ||
		strings.Contains(msg, "canceled by new editMessageMedia request") ||
		strings.Contains(msg, "PHOTO_URL_INVALID")
}

// isEditTargetGone reports edit failures where the target message no longer
// exists or cannot carry the new content, so a fresh send is needed.
func isEditTargetGone(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "message to edit not found") ||
		strings.Contains(msg, "there is no text in the message to edit") ||
		strings.Contains(msg, "message can't be edited")
}
