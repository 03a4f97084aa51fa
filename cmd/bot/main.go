package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"sync"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/config"
	"github.com/aliskhannn/vocab-master/internal/delivery/telegram"
	"github.com/aliskhannn/vocab-master/internal/infra/postgres"
	pgrepository "github.com/aliskhannn/vocab-master/internal/infra/postgres/repository"
	"github.com/aliskhannn/vocab-master/internal/infra/sqlite"
	"github.com/aliskhannn/vocab-master/internal/logger"
	"github.com/aliskhannn/vocab-master/internal/repository"
	"github.com/aliskhannn/vocab-master/internal/service"
	"github.com/aliskhannn/vocab-master/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	words, placeholder, err := loadWords(cfg, lg)
	if err != nil {
		lg.Fatal("failed to load dataset", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"

	idSets, stats, closeStore, err := openStores(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStore()

	learnedService := service.NewLearnedService(idSets, words, lg)
	rotation := service.NewRotationTracker(idSets, cfg.Exam.RotationBuffer, lg)
	generator := service.NewQuestionGenerator(lg)
	quizService := service.NewQuizService(words, learnedService, rotation, generator, cfg.Exam.QuestionCount, lg)
	progressService := service.NewProgressService(stats, learnedService, rotation, words, lg)
	wordService := service.NewWordService(words, learnedService, lg)

	exams := storage.NewExamStorage[service.ExamKey, *service.Exam]()
	janitor := service.NewExamJanitor(exams, cfg.Exam.IdleTTL, cfg.Exam.SweepInterval, lg)

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "words", Description: "Browse all words"},
		{Command: "random", Description: "Show a random word"},
		{Command: "learned", Description: "Your learned words"},
		{Command: "search", Description: "Search learned words (usage: /search text)"},
		{Command: "exam", Description: "Start an exam"},
		{Command: "progress", Description: "Show progress"},
		{Command: "reset", Description: "Reset all progress"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account",
		zap.String("username", bot.Self.UserName),
		zap.Int("words", words.Len()),
		zap.Bool("placeholder", placeholder),
	)

	handler := telegram.NewHandler(
		bot,
		lg,
		wordService,
		learnedService,
		progressService,
		quizService,
		exams,
	)
	handler.SetPlaceholderMode(placeholder)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		janitor.Start(ctx)
	}()

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("handler stopped", zap.Error(err))
	}

	stop()
	wg.Wait()
	lg.Info("shutdown complete")
}

// loadWords reads the dataset. With the fallback enabled an unreadable
// dataset is replaced by a single placeholder word.
func loadWords(cfg *config.Config, lg *zap.Logger) (*repository.WordRepository, bool, error) {
	words, err := repository.NewWordRepository(cfg.WordsJSONPath)
	if err == nil {
		return words, false, nil
	}

	if !cfg.Dataset.FallbackPlaceholder {
		return nil, false, err
	}

	lg.Error("dataset unavailable, using placeholder word",
		zap.String("path", cfg.WordsJSONPath),
		zap.Error(err),
	)
	return repository.NewPlaceholderRepository(), true, nil
}

// openStores builds the learned-set and statistics stores for the configured driver.
func openStores(ctx context.Context, cfg *config.Config, lg *zap.Logger) (service.IDSetStore, service.StatsRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}

		lg.Info("using postgres storage")
		idSets := pgrepository.NewIDSetRepository(pool, postgres.NewTransactor(pool))
		return idSets, pgrepository.NewStatsRepository(pool), pool.Close, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}

		lg.Info("using sqlite storage", zap.String("path", cfg.Storage.SQLitePath))
		closeDB := func() { _ = db.Close() }
		return sqlite.NewIDSetStore(db), sqlite.NewStatsStore(db), closeDB, nil

	default:
		lg.Warn("using in-memory storage, progress is lost on restart")
		return storage.NewIDSetStore(), storage.NewStatsStore(), func() {}, nil
	}
}
