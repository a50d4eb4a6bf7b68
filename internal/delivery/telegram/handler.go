package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/football-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/football-quiz-bot/internal/service"
	"github.com/aliskhannn/football-quiz-bot/internal/storage"
)

// botAPI is the subset of the Telegram Bot API the handler uses.
// Implemented by *tgbotapi.BotAPI.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// QuizService is the engine surface the handler consumes. Sessions returned
// from it are snapshots; the live session is mutated only through its methods.
type QuizService interface {
	Start(userID int64, category string) (*entities.QuizSession, error)
	Answer(userID int64, selected int) (*service.AnswerOutcome, error)
	Back(userID int64) (*entities.QuizSession, error)
	Next(userID int64, manual bool) (*entities.QuizSession, *service.Summary, error)
	AutoNext(userID int64, index int) (*entities.QuizSession, bool)
	Session(userID int64) *entities.QuizSession
	SetActiveMessage(userID int64, index, messageID int) bool
	ClearActiveMessage(userID int64) int
	Reset(userID int64)
	Results(userID int64) map[string]entities.CategoryResult
	Categories() []string
}

type MembershipService interface {
	Verify(userID int64) bool
	SponsorsList() []string
}

type AuditService interface {
	RecordStart(userID int64, displayName string) int
}

type Handler struct {
	api              botAPI
	logger           *zap.Logger
	quiz             QuizService
	membership       MembershipService
	audit            AuditService
	refs             *storage.MessageRefStore
	adminChatID      int64
	autoAdvanceDelay time.Duration
}

func NewHandler(
	api botAPI,
	logger *zap.Logger,
	quiz QuizService,
	membership MembershipService,
	audit AuditService,
	refs *storage.MessageRefStore,
	adminChatID int64,
	autoAdvanceDelay time.Duration,
) *Handler {
	return &Handler{
		api:              api,
		logger:           logger,
		quiz:             quiz,
		membership:       membership,
		audit:            audit,
		refs:             refs,
		adminChatID:      adminChatID,
		autoAdvanceDelay: autoAdvanceDelay,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(update)
		}
	}
}

func (h *Handler) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	if !update.Message.IsCommand() {
		return
	}

	switch update.Message.Command() {
	case "start":
		h.handleStart(update.Message)
	case "categories":
		h.handleCategories(update.Message)
	default:
		h.logger.Debug("unknown command",
			zap.String("command", update.Message.Command()),
		)
	}
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.api.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
