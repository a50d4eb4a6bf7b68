package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/football-quiz-bot/internal/storage"
)

// handleStart tears down any previous conversation state and shows the
// welcome banner followed by the gate check and the category menu.
func (h *Handler) handleStart(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	from := msg.From
	if from == nil {
		return
	}

	count := h.audit.RecordStart(from.ID, displayName(from))
	h.notifyAdmin(from, count)

	// A repeated /start replaces the previous command banners.
	h.deleteSurface(chatID, from.ID, storage.SurfaceStartAck)
	h.deleteSurface(chatID, from.ID, storage.SurfaceCategoriesAck)

	isMember := h.membership.Verify(from.ID)
	h.clearAllSurfaces(chatID, from.ID)

	sent, err := h.api.Send(tgbotapi.NewMessage(chatID, msgWelcome))
	if err != nil {
		h.logger.Error("failed to send welcome message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	} else {
		h.refs.Set(from.ID, storage.SurfaceStartAck, sent.MessageID)
	}

	if !isMember {
		h.sendSubscriptionPrompt(chatID, from.ID)
		return
	}

	h.sendCategoryMenu(chatID, from.ID)
}

// handleCategories re-displays the gate check and the category menu without
// the welcome banner.
func (h *Handler) handleCategories(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	from := msg.From
	if from == nil {
		return
	}

	h.deleteSurface(chatID, from.ID, storage.SurfaceCategoriesAck)
	h.deleteSurface(chatID, from.ID, storage.SurfaceStartAck)

	isMember := h.membership.Verify(from.ID)
	h.clearAllSurfaces(chatID, from.ID)

	if !isMember {
		h.sendSubscriptionPrompt(chatID, from.ID)
		return
	}

	// The menu itself acknowledges the command.
	if menuID := h.sendCategoryMenu(chatID, from.ID); menuID != 0 {
		h.refs.Set(from.ID, storage.SurfaceCategoriesAck, menuID)
	}
}

// notifyAdmin forwards a new-user notice to the admin chat, if configured.
func (h *Handler) notifyAdmin(from *tgbotapi.User, count int) {
	if h.adminChatID == 0 {
		return
	}

	text := adminStartText(from.FirstName, from.UserName, from.ID, count)
	if _, err := h.api.Send(tgbotapi.NewMessage(h.adminChatID, text)); err != nil {
		h.logger.Error("failed to notify admin chat",
			zap.Int64("admin_chat_id", h.adminChatID),
			zap.Error(err),
		)
	}
}

func displayName(from *tgbotapi.User) string {
	if from.UserName != "" {
		return from.UserName
	}
	if from.FirstName != "" {
		return from.FirstName
	}
	return "unknown"
}
