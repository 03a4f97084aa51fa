package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
	"github.com/aliskhannn/vocab-master/internal/service"
)

func examKey(chatID, userID int64) service.ExamKey {
	return service.ExamKey{ChatID: chatID, UserID: userID}
}

// examFor returns the user's exam in the chat, creating one in mode selection.
func (h *Handler) examFor(chatID, userID int64) *service.Exam {
	key := examKey(chatID, userID)
	if exam, ok := h.examStorage.Get(key); ok {
		return exam
	}

	exam := service.NewExam(h.quizService, userID)
	h.examStorage.Store(key, exam)
	return exam
}

// examScreen resumes a running exam or shows the mode selection.
func (h *Handler) examScreen(chatID, userID int64) (string, *tgbotapi.InlineKeyboardMarkup, error) {
	exam := h.examFor(chatID, userID)

	switch exam.State() {
	case service.StateInProgress:
		return renderQuestion(exam)
	case service.StateResults:
		exam.Restart()
	}

	text, kb := renderExamMenu()
	return text, kb, nil
}

func (h *Handler) handleExam(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb, err := h.examScreen(chatID, userID)
		if err != nil {
			return err
		}
		return h.send(withKeyboard(newMessage(chatID, text), kb))
	}
}

func (h *Handler) handleExamCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (callbackReply, error) {
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID

	switch cd.param(0) {
	case examMenu:
		text, kb, err := h.examScreen(chatID, userID)
		if err != nil {
			return callbackReply{}, err
		}
		return callbackReply{Text: text, Keyboard: kb}, nil

	case examMode:
		return h.startExam(ctx, chatID, userID, cd.param(1))

	case examAnswer:
		return h.answerExam(chatID, userID, cd)

	case examNext:
		return h.advanceExam(ctx, chatID, userID, cd)

	case examRestart:
		h.examFor(chatID, userID).Restart()
		text, kb := renderExamMenu()
		return callbackReply{Text: text, Keyboard: kb}, nil

	default:
		return callbackReply{Notice: msgStaleButton}, nil
	}
}

func (h *Handler) startExam(ctx context.Context, chatID, userID int64, rawMode string) (callbackReply, error) {
	mode, ok := entities.ParseQuizMode(rawMode)
	if !ok {
		return callbackReply{Notice: msgStaleButton}, nil
	}

	exam := h.examFor(chatID, userID)
	switch exam.State() {
	case service.StateInProgress:
		// a second tap on the mode buttons resumes instead of restarting
		text, kb, err := renderQuestion(exam)
		if err != nil {
			return callbackReply{}, err
		}
		return callbackReply{Text: text, Keyboard: kb}, nil
	case service.StateResults:
		exam.Restart()
	}

	if err := exam.Start(ctx, mode); err != nil {
		if errors.Is(err, service.ErrInsufficientWords) {
			h.logger.Debug("exam not started",
				zap.Int64("user_id", userID),
				zap.String("mode", string(mode)),
				zap.Error(err),
			)
			kb := buildExamModeKeyboard()
			return callbackReply{Text: msgNotEnoughWords(mode), Keyboard: &kb}, nil
		}
		return callbackReply{}, err
	}

	h.logger.Info("exam started",
		zap.Int64("user_id", userID),
		zap.String("session_id", exam.Session().ID.String()),
		zap.String("mode", string(mode)),
		zap.Int("questions", exam.Session().Total()),
	)

	text, kb, err := renderQuestion(exam)
	if err != nil {
		return callbackReply{}, err
	}
	return callbackReply{Text: text, Keyboard: kb}, nil
}

// activeQuestion resolves the exam a question button belongs to. It fails
// for buttons of another user's session, another session or an earlier question.
func (h *Handler) activeQuestion(chatID, userID int64, cd callbackData) (*service.Exam, *entities.Question, int, bool) {
	exam, ok := h.examStorage.Get(examKey(chatID, userID))
	if !ok || exam.State() != service.StateInProgress {
		return nil, nil, 0, false
	}
	if exam.Session().ID.String() != cd.param(1) {
		return nil, nil, 0, false
	}

	q, num, err := exam.Current()
	if err != nil {
		return nil, nil, 0, false
	}
	if n, ok := cd.intParam(2); !ok || n != num {
		return nil, nil, 0, false
	}

	return exam, q, num, true
}

func (h *Handler) answerExam(chatID, userID int64, cd callbackData) (callbackReply, error) {
	exam, q, num, ok := h.activeQuestion(chatID, userID, cd)
	if !ok {
		return callbackReply{Notice: msgStaleButton}, nil
	}

	idx, ok := cd.intParam(3)
	if !ok || idx < 0 || idx >= len(q.Options) {
		return callbackReply{Notice: msgStaleButton}, nil
	}

	outcome, err := exam.Answer(q.Options[idx].NativeMeaning)
	if err != nil {
		return callbackReply{}, err
	}
	if !outcome.Recorded {
		return callbackReply{Notice: msgAlreadyAnswered}, nil
	}

	s := exam.Session()
	text := formatQuizQuestion(q, num, s.Total()) + "\n\n" + formatAnswerFeedback(outcome.Correct, outcome.CorrectAnswer)
	kb := buildQuizFeedbackKeyboard(q, idx, s.ID.String(), num, outcome.Last)

	return callbackReply{Text: text, Keyboard: &kb}, nil
}

func (h *Handler) advanceExam(ctx context.Context, chatID, userID int64, cd callbackData) (callbackReply, error) {
	exam, _, _, ok := h.activeQuestion(chatID, userID, cd)
	if !ok {
		return callbackReply{Notice: msgStaleButton}, nil
	}

	finished, err := exam.Advance()
	if errors.Is(err, service.ErrNotAnswered) {
		return callbackReply{Notice: msgAnswerFirst}, nil
	}
	if err != nil {
		return callbackReply{}, err
	}

	if !finished {
		text, kb, err := renderQuestion(exam)
		if err != nil {
			return callbackReply{}, err
		}
		return callbackReply{Text: text, Keyboard: kb}, nil
	}

	res, err := exam.Results()
	if err != nil {
		return callbackReply{}, err
	}

	h.progressService.RecordAttempt(ctx, userID, res.Correct, res.Total)

	h.logger.Info("exam finished",
		zap.Int64("user_id", userID),
		zap.String("session_id", exam.Session().ID.String()),
		zap.Int("correct", res.Correct),
		zap.Int("total", res.Total),
	)

	kb := buildQuizResultKeyboard()
	return callbackReply{Text: formatQuizResult(exam.Session().Mode, res), Keyboard: &kb}, nil
}
