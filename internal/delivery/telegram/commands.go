package telegram

import (
	"context"
	"strings"

	"github.com/aliskhannn/vocab-master/internal/service"
)

func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, msgWelcome(h.placeholder)))
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, msgHelp()))
	}
}

// handleWords opens the first word card of the whole list.
func (h *Handler) handleWords(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb, err := h.renderWordCard(ctx, userID, service.FilterAll, 0)
		if err != nil {
			return err
		}
		return h.send(withKeyboard(newMessage(chatID, text), kb))
	}
}

// handleLearned lists the learned words with remove buttons.
func (h *Handler) handleLearned(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderLearnedPage(ctx, userID, 0)
		return h.send(withKeyboard(newMessage(chatID, text), kb))
	}
}

// handleSearch searches learned words by headword or meaning.
func (h *Handler) handleSearch(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		query := strings.TrimSpace(args)
		if query == "" {
			return h.send(newPlainMessage(chatID, msgSearchUsage))
		}

		words := h.learnedService.Search(ctx, userID, query)
		msg := newMessage(chatID, formatSearchResults(query, words))
		return h.send(withKeyboard(msg, buildSearchKeyboard(words)))
	}
}

// handleRandom opens a random word card; paging continues from its position.
func (h *Handler) handleRandom(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		card, err := h.wordBrowser.RandomCard(ctx, userID)
		if err != nil {
			return err
		}

		kb := buildWordCardKeyboard(card)
		return h.send(withKeyboard(newMessage(chatID, formatWordCard(card)), &kb))
	}
}
