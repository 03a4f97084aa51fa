package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/service"
)

// callbackReply is what a callback handler wants shown: Text replaces the
// message when set, Notice pops up over the chat.
type callbackReply struct {
	Text     string
	Keyboard *tgbotapi.InlineKeyboardMarkup
	Notice   string
}

type callbackHandler func(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (callbackReply, error)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, msgStaleButton)
		return
	}

	cd := decodeCallback(cb.Data)

	var fn callbackHandler
	switch cd.Action {
	case actionWord:
		fn = h.handleWordCallback
	case actionLearn:
		fn = h.handleLearnCallback
	case actionReview:
		fn = h.handleReviewCallback
	case actionUnlearn:
		fn = h.handleUnlearnCallback
	case actionExam:
		fn = h.handleExamCallback
	case actionProgress:
		fn = h.handleProgressCallback
	case actionReset:
		fn = h.handleResetCallback
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, msgStaleButton)
		return
	}

	reply, err := fn(ctx, cb, cd)
	if err != nil {
		h.logger.Error("callback error",
			zap.Int64("user_id", cb.From.ID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		reply = callbackReply{Notice: msgInternalError}
	}

	if reply.Text != "" {
		_ = h.send(newEdit(cb.Message.Chat.ID, cb.Message.MessageID, reply.Text, reply.Keyboard))
	}

	h.answerCallback(cb.ID, reply.Notice)
}

// answerCallback removes the loading indicator of the button.
func (h *Handler) answerCallback(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func (h *Handler) handleWordCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (callbackReply, error) {
	index, ok := cd.intParam(1)
	if !ok {
		return callbackReply{Notice: msgStaleButton}, nil
	}

	text, kb, err := h.renderWordCard(ctx, cb.From.ID, service.ParseFilter(cd.param(0)), index)
	if err != nil {
		return callbackReply{}, err
	}
	return callbackReply{Text: text, Keyboard: kb}, nil
}

func (h *Handler) handleLearnCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (callbackReply, error) {
	index, ok := cd.intParam(1)
	if !ok {
		return callbackReply{Notice: msgStaleButton}, nil
	}
	filter := service.ParseFilter(cd.param(0))

	card, err := h.wordBrowser.ToggleLearned(ctx, cb.From.ID, filter, index)
	if err != nil && !errors.Is(err, service.ErrNoWords) {
		h.logger.Warn("failed to toggle learned word",
			zap.Int64("user_id", cb.From.ID),
			zap.Int("index", index),
			zap.Error(err),
		)
		return callbackReply{Notice: msgWordUnavailable}, nil
	}

	if card == nil {
		// the learned list just became empty
		text, kb, err := h.renderWordCard(ctx, cb.From.ID, filter, index)
		if err != nil {
			return callbackReply{}, err
		}
		return callbackReply{Text: text, Keyboard: kb}, nil
	}

	kb := buildWordCardKeyboard(card)
	return callbackReply{Text: formatWordCard(card), Keyboard: &kb}, nil
}

func (h *Handler) handleReviewCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (callbackReply, error) {
	page, ok := cd.intParam(0)
	if !ok {
		return callbackReply{Notice: msgStaleButton}, nil
	}

	text, kb := h.renderLearnedPage(ctx, cb.From.ID, page)
	return callbackReply{Text: text, Keyboard: kb}, nil
}

func (h *Handler) handleUnlearnCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (callbackReply, error) {
	page, ok := cd.intParam(0)
	if !ok || len(cd.Params) < 2 {
		return callbackReply{Notice: msgStaleButton}, nil
	}

	wordID := strings.Join(cd.Params[1:], ":")
	if wordID == "" {
		return callbackReply{Notice: msgStaleButton}, nil
	}

	notice := ""
	if h.learnedService.Unmark(ctx, cb.From.ID, wordID) {
		notice = fmt.Sprintf("Removed %s", wordID)
	}

	text, kb := h.renderLearnedPage(ctx, cb.From.ID, page)
	return callbackReply{Text: text, Keyboard: kb, Notice: notice}, nil
}
