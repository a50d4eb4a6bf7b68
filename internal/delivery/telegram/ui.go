package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/football-quiz-bot/internal/domain/entities"
)

// buildSubscriptionKeyboard builds one URL button per sponsor channel plus
// the re-check button.
func buildSubscriptionKeyboard(channels []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, channel := range channels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(btnSubscribe, "https://t.me/"+channel),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnCheckSubscription, callbackCheckSubscription),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildCategoryMenuKeyboard builds the category menu, decorating labels with
// the user's recorded score where one exists.
func buildCategoryMenuKeyboard(categories []string, results map[string]entities.CategoryResult) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, name := range categories {
		label := categoryTitle(name)
		if res, ok := results[name]; ok {
			label = fmt.Sprintf("%s (%d/%d)", label, res.Score, res.Total)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildCategoryCallback(name)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuestionKeyboard builds the keyboard for the current question. An
// unanswered question shows selectable options; an answered one shows the
// revealed options with ✅/❌ marks and the navigation row.
func buildQuestionKeyboard(s *entities.QuizSession) tgbotapi.InlineKeyboardMarkup {
	question := s.Question()

	var rows [][]tgbotapi.InlineKeyboardButton
	if s.Answered(s.Current) {
		selected := s.Answers[s.Current]
		for i, opt := range question.Options {
			label := opt
			switch i {
			case question.CorrectIndex:
				label = "✅ " + opt
			case selected:
				label = "❌ " + opt
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, callbackIgnore),
			))
		}
		rows = append(rows, buildNavRow(s))
	} else {
		for i, opt := range question.Options {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(opt, buildOptionCallback(i)),
			))
		}
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildNavRow builds the Back/Next row shown under a revealed question.
func buildNavRow(s *entities.QuizSession) []tgbotapi.InlineKeyboardButton {
	var row []tgbotapi.InlineKeyboardButton
	if s.Current > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(btnBack, callbackGoBack))
	}

	switch {
	case s.OnLastQuestion():
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(btnFinish, callbackNextQuestion))
	case s.ManualNav:
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(btnNext, callbackNextQuestion))
	default:
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(btnContinue, callbackNextQuestion))
	}
	return row
}

// buildProcessingKeyboard shows inert options while an answer is recorded.
func buildProcessingKeyboard(question entities.Question) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, opt := range question.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt, callbackAnswerInProgress),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildFinalResultKeyboard builds the keyboard under the quiz summary.
func buildFinalResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnChooseCategory, callbackShowCategories),
		),
	)
}
