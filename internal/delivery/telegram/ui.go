package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
	"github.com/aliskhannn/vocab-master/internal/service"
)

// buildWordCardKeyboard builds paging and learned toggle buttons for a word card.
func buildWordCardKeyboard(card *service.WordCard) tgbotapi.InlineKeyboardMarkup {
	var nav []tgbotapi.InlineKeyboardButton
	if card.HasPrev() {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Prev", buildWordCallback(card.Filter, card.Index-1)))
	}
	if card.HasNext() {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildWordCallback(card.Filter, card.Index+1)))
	}

	toggle := "✅ Mark learned"
	if card.Learned {
		toggle = "↩️ Unmark learned"
	}

	filterLabel, otherFilter := "📗 Show learned", service.FilterLearned
	if card.Filter == service.FilterLearned {
		filterLabel, otherFilter = "📚 Show all", service.FilterAll
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 3)
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggle, buildLearnCallback(card.Filter, card.Index)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(filterLabel, buildWordCallback(otherFilter, 0)),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildEmptyLearnedKeyboard leads back to the full list.
func buildEmptyLearnedKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Browse all words", buildWordCallback(service.FilterAll, 0)),
		),
	)
}

// buildLearnedPageKeyboard builds one remove button per word plus paging.
func buildLearnedPageKeyboard(words []*entities.Word, page, totalPages int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(words)+1)
	for _, w := range words {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✖️ "+w.ID, buildUnlearnCallback(w.ID, page)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Prev", buildReviewCallback(page-1)))
	}
	if page < totalPages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildReviewCallback(page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildSearchKeyboard builds remove buttons for search results.
func buildSearchKeyboard(words []*entities.Word) *tgbotapi.InlineKeyboardMarkup {
	if len(words) == 0 {
		return nil
	}
	if len(words) > searchResultsLimit {
		words = words[:searchResultsLimit]
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(words))
	for _, w := range words {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✖️ "+w.ID, buildUnlearnCallback(w.ID, 0)),
		))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// buildExamModeKeyboard builds the mode selection screen.
func buildExamModeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(formatQuizMode(entities.ModeLearned), buildExamModeCallback(entities.ModeLearned)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(formatQuizMode(entities.ModeFull), buildExamModeCallback(entities.ModeFull)),
		),
	)
}

// buildQuizAnswerKeyboard builds keyboard for quiz question.
func buildQuizAnswerKeyboard(q *entities.Question, sessionID string, questionNum int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i, option := range q.Options {
		data := buildExamAnswerCallback(sessionID, questionNum, i)
		button := tgbotapi.NewInlineKeyboardButtonData(option.NativeMeaning, data)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizFeedbackKeyboard marks the chosen and the correct option and
// offers the way forward.
func buildQuizFeedbackKeyboard(q *entities.Question, chosen int, sessionID string, questionNum int, last bool) tgbotapi.InlineKeyboardMarkup {
	noop := buildExamAnswerCallback(sessionID, questionNum, chosen)
	correct := q.CorrectIndex()

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, option := range q.Options {
		label := option.NativeMeaning
		switch {
		case i == correct:
			label = "✅ " + label
		case i == chosen:
			label = "❌ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, noop),
		))
	}

	next := "Next ▶️"
	if last {
		next = "🏁 See results"
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(next, buildExamNextCallback(sessionID, questionNum)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New exam", buildExamRestartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My progress", buildProgressCallback()),
		),
	)
}

// buildProgressKeyboard builds keyboard for progress screen.
func buildProgressKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", buildProgressCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start exam", buildExamMenuCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Reset progress", buildResetCallback(resetAsk)),
		),
	)
}

func buildResetConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes, reset", buildResetCallback(resetConfirm)),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCallback(resetCancel)),
		),
	)
}

// pageCount returns the number of pages needed for n items.
func pageCount(n, perPage int) int {
	if n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// pageOf clamps page and returns its slice of items.
func pageOf[T any](items []T, page, perPage int) ([]T, int) {
	total := pageCount(len(items), perPage)
	if total == 0 {
		return nil, 0
	}
	if page >= total {
		page = total - 1
	}
	if page < 0 {
		page = 0
	}

	start := page * perPage
	end := min(start+perPage, len(items))
	return items[start:end], page
}
