package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/football-quiz-bot/internal/config"
	"github.com/aliskhannn/football-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/football-quiz-bot/internal/logger"
	"github.com/aliskhannn/football-quiz-bot/internal/repository"
	"github.com/aliskhannn/football-quiz-bot/internal/service"
	"github.com/aliskhannn/football-quiz-bot/internal/storage"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync() //nolint:errcheck

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot api", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Սկսել բոտը",
		},
		{
			Command:     "categories",
			Description: "Վիկտորինայի կատեգորիաները",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the question repository and in-memory stores.
	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsJSONPath)
	if err != nil {
		zl.Fatal("failed to load questions", zap.Error(err))
	}

	sessions := storage.NewSessionStore()
	results := storage.NewResultStore()
	refs := storage.NewMessageRefStore()

	membership := service.NewMembershipService(bot, zl, cfg.Sponsors)
	engine := service.NewQuizEngine(questionRepo, sessions, results, zl)
	audit := service.NewStartAudit(cfg.AuditLogPath, zl)

	handler := telegram.NewHandler(
		bot,
		zl,
		engine,
		membership,
		audit,
		refs,
		cfg.AdminChatID,
		cfg.AutoAdvanceDelay,
	)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
