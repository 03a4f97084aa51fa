package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/service"
)

func (h *Handler) handleProgress(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderProgress(ctx, userID)
		return h.send(withKeyboard(newMessage(chatID, text), kb))
	}
}

func (h *Handler) handleResetPrompt() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		kb := buildResetConfirmKeyboard()
		return h.send(withKeyboard(newMessage(chatID, msgResetPrompt()), &kb))
	}
}

func (h *Handler) handleProgressCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, _ callbackData) (callbackReply, error) {
	text, kb := h.renderProgress(ctx, cb.From.ID)
	return callbackReply{Text: text, Keyboard: kb}, nil
}

func (h *Handler) handleResetCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (callbackReply, error) {
	userID := cb.From.ID

	switch cd.param(0) {
	case resetAsk:
		kb := buildResetConfirmKeyboard()
		return callbackReply{Text: msgResetPrompt(), Keyboard: &kb}, nil

	case resetConfirm:
		h.progressService.Reset(ctx, userID)
		h.examStorage.Delete(service.ExamKey{ChatID: cb.Message.Chat.ID, UserID: userID})

		h.logger.Info("user reset progress", zap.Int64("user_id", userID))

		text, kb := h.renderProgress(ctx, userID)
		return callbackReply{Text: text, Keyboard: kb, Notice: msgResetDone}, nil

	case resetCancel:
		text, kb := h.renderProgress(ctx, userID)
		return callbackReply{Text: text, Keyboard: kb, Notice: msgResetCancelled}, nil

	default:
		return callbackReply{Notice: msgStaleButton}, nil
	}
}
