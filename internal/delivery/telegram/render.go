package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocab-master/internal/service"
)

// renderWordCard renders the word card at index of the filtered list.
// An empty learned list renders a hint instead of an error.
func (h *Handler) renderWordCard(ctx context.Context, userID int64, filter service.Filter, index int) (string, *tgbotapi.InlineKeyboardMarkup, error) {
	card, err := h.wordBrowser.Card(ctx, userID, filter, index)
	if errors.Is(err, service.ErrNoWords) {
		kb := buildEmptyLearnedKeyboard()
		return msgNoLearnedWords(), &kb, nil
	}
	if err != nil {
		return "", nil, err
	}

	kb := buildWordCardKeyboard(card)
	return formatWordCard(card), &kb, nil
}

// renderLearnedPage renders one page of the learned words with remove buttons.
func (h *Handler) renderLearnedPage(ctx context.Context, userID int64, page int) (string, *tgbotapi.InlineKeyboardMarkup) {
	words := h.learnedService.Words(ctx, userID)
	if len(words) == 0 {
		kb := buildEmptyLearnedKeyboard()
		return msgNoLearnedWords(), &kb
	}

	chunk, page := pageOf(words, page, learnedPerPage)
	totalPages := pageCount(len(words), learnedPerPage)

	kb := buildLearnedPageKeyboard(chunk, page, totalPages)
	return formatLearnedPage(chunk, page, totalPages, len(words)), &kb
}

// renderProgress renders the progress screen with its keyboard.
func (h *Handler) renderProgress(ctx context.Context, userID int64) (string, *tgbotapi.InlineKeyboardMarkup) {
	summary := h.progressService.Summary(ctx, userID)
	kb := buildProgressKeyboard()
	return formatProgress(summary), &kb
}

// renderQuestion renders the current question of a running exam.
func renderQuestion(exam *service.Exam) (string, *tgbotapi.InlineKeyboardMarkup, error) {
	q, num, err := exam.Current()
	if err != nil {
		return "", nil, err
	}

	s := exam.Session()
	kb := buildQuizAnswerKeyboard(q, s.ID.String(), num)
	return formatQuizQuestion(q, num, s.Total()), &kb, nil
}

func renderExamMenu() (string, *tgbotapi.InlineKeyboardMarkup) {
	kb := buildExamModeKeyboard()
	return formatExamMenu(), &kb
}
