package telegram

import (
	"strconv"
	"strings"
)

// Callback payload constants. Payloads are parsed once here; the rest of the
// package works with decoded events only.
const (
	callbackCheckSubscription = "check_subscription"
	callbackShowCategories    = "show_categories"
	callbackGoBack            = "go_back"
	callbackGoNext            = "go_next"
	callbackNextQuestion      = "next_question"
	callbackIgnore            = "ignore"
	callbackAnswerInProgress  = "ignore_answer_in_progress"

	categoryPrefix = "category_"
)

type eventKind int

const (
	eventUnknown eventKind = iota
	eventCheckSubscription
	eventShowCategories
	eventCategory
	eventGoBack
	eventGoNext
	eventSelectOption
	eventIgnore
)

// callbackEvent is a decoded inline-button press.
type callbackEvent struct {
	kind     eventKind
	category string // category key, set for eventCategory
	option   int    // option index, set for eventSelectOption
	manual   bool   // eventGoNext came from the legacy explicit go_next payload
	raw      string
}

// decodeCallback parses a raw callback payload.
func decodeCallback(data string) callbackEvent {
	ev := callbackEvent{raw: data}

	switch data {
	case callbackCheckSubscription:
		ev.kind = eventCheckSubscription
		return ev
	case callbackShowCategories:
		ev.kind = eventShowCategories
		return ev
	case callbackGoBack:
		ev.kind = eventGoBack
		return ev
	case callbackGoNext:
		ev.kind = eventGoNext
		ev.manual = true
		return ev
	case callbackNextQuestion:
		ev.kind = eventGoNext
		return ev
	case callbackIgnore, callbackAnswerInProgress:
		ev.kind = eventIgnore
		return ev
	}

	if name, ok := strings.CutPrefix(data, categoryPrefix); ok && name != "" {
		ev.kind = eventCategory
		ev.category = name
		return ev
	}

	if option, err := strconv.Atoi(data); err == nil && option >= 0 {
		ev.kind = eventSelectOption
		ev.option = option
		return ev
	}

	return ev
}

// buildCategoryCallback builds the payload for picking a category.
func buildCategoryCallback(name string) string {
	return categoryPrefix + name
}

// buildOptionCallback builds the payload for selecting an answer option.
func buildOptionCallback(index int) string {
	return strconv.Itoa(index)
}
