package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/service"
)

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	wordBrowser     WordBrowser
	learnedService  LearnedService
	progressService ProgressService
	quizService     service.QuizGenerator
	examStorage     ExamStorage
	placeholder     bool
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	wordBrowser WordBrowser,
	learnedService LearnedService,
	progressService ProgressService,
	quizService service.QuizGenerator,
	examStorage ExamStorage,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		wordBrowser:     wordBrowser,
		learnedService:  learnedService,
		progressService: progressService,
		quizService:     quizService,
		examStorage:     examStorage,
	}
}

// SetPlaceholderMode makes /start warn that the dataset could not be loaded.
func (h *Handler) SetPlaceholderMode(on bool) {
	h.placeholder = on
}

// Run processes updates until ctx is cancelled. Updates are handled one at a
// time, so per-chat exams are never touched concurrently.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		_ = h.send(newMessage(chatID, msgUnknownCommand()))
		return
	}

	var fn HandlerFunc
	switch update.Message.Command() {
	case "start":
		fn = h.handleStart()
	case "help":
		fn = h.handleHelp()
	case "words":
		fn = h.handleWords(userID)
	case "random":
		fn = h.handleRandom(userID)
	case "learned":
		fn = h.handleLearned(userID)
	case "search":
		fn = h.handleSearch(userID, update.Message.CommandArguments())
	case "exam":
		fn = h.handleExam(userID)
	case "progress":
		fn = h.handleProgress(userID)
	case "reset":
		fn = h.handleResetPrompt()
	default:
		_ = h.send(newMessage(chatID, msgUnknownCommand()))
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
