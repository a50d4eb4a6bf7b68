// messages.go contains display strings and formatting helpers for Telegram.

package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = `🎉 Բարի գալուստ Սպորտային խաղեր բոտ: 📊
🤔 Դու պատրաստ ե՞ս փորձել քո գիտելիքները ֆուտբոլից։
📌 Ընտրիր կատեգորիան եվ փորձիր ուժերդ: ⚽️`

	msgChooseCategory      = "⚽ Ընտրիր վիկտորինայի կատեգորիան"
	msgSubscriptionPrompt  = "🛑 Խաղը շարունակելու համար բաժանորդագրվեք մեր ալիքին"
	msgCategoryUnavailable = "❌ Այս կատեգորիան դեռ հասանելի չէ։"
	msgFirstQuestion       = "Սա առաջին հարցն է։"
	msgAnswerFirst         = "Խնդրում ենք նախ պատասխանել ընթացիկ հարցին։"
	msgAlreadyAnswered     = "Դուք արդեն պատասխանել եք այս հարցին։"
	msgCorrect             = "✅ Ճիշտ է։"
)

// Inline button labels.
const (
	btnSubscribe         = "📢 Բաժանորդագրվել ալիքին"
	btnCheckSubscription = "✅ Ստուգել բաժանորդագրությունը"
	btnBack              = "⬅️ Նախորդը"
	btnNext              = "Հաջորդը ➡️"
	btnContinue          = "Շարունակել ➡️"
	btnFinish            = "🏁 Ավարտել"
	btnChooseCategory    = "🎯 Ընտրել կատեգորիա"
)

// categoryTitles maps repository category keys to display labels.
var categoryTitles = map[string]string{
	"players":             "⚽ Ֆուտբոլիստներ",
	"coaches":             "👔 Մարզիչներ",
	"logos":               "🏷️ Թիմերի լոգոներ",
	"goalkeepers":         "🧤 Դարպասապահներ",
	"armenianFootballers": "🇦🇲 Հայ ֆուտբոլիստներ",
	"legends":             "👑 Լեգենդներ",
	"spanish_players":     "🇪🇸 Իսպանացիներ",
	"english_players":     "🇬🇧 Անգլիացիներ",
	"italian_players":     "🇮🇹 Իտալացիներ",
}

// categoryTitle returns the display label for a category key.
func categoryTitle(name string) string {
	if title, ok := categoryTitles[name]; ok {
		return title
	}
	return name
}

// questionCaption formats the caption shown above a question's options.
func questionCaption(num, total int, text string) string {
	return fmt.Sprintf("❓ Հարց %d/%d\n%s", num, total, text)
}

// wrongAnswerText formats the callback answer for an incorrect pick.
func wrongAnswerText(correctOption string) string {
	return fmt.Sprintf("❌ Սխալ։ Ճիշտ պատասխանը՝ %s", correctOption)
}

// finalResultText formats the quiz summary message.
func finalResultText(category string, score, total int, title string) string {
	return fmt.Sprintf(
		"%s 🏁 Վիկտորինան ավարտվեց։\n\n📊 Արդյունք՝ %d/%d ճիշտ պատասխան\n📌 Կարգավիճակդ՝ %s",
		categoryTitle(category), score, total, title,
	)
}

// adminStartText formats the new-user notification for the admin chat.
func adminStartText(firstName, username string, userID int64, count int) string {
	return fmt.Sprintf(
		"Նոր օգտատեր է սկսել բոտը։\nԱնուն: %s\nUsername: @%s\nID: %d\nԸնդհանուր քանակ: %d",
		firstName, username, userID, count,
	)
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}
