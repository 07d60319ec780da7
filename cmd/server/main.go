package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocabook/internal/api"
	"vocabook/internal/config"
	"vocabook/internal/handler"
	"vocabook/internal/middleware"
	"vocabook/internal/repository/jsonfile"
	"vocabook/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := setupLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Vocabook",
		zap.String("env", cfg.Env),
		zap.String("vocab_file", cfg.Storage.VocabFile),
		zap.String("stats_file", cfg.Storage.StatsFile),
	)

	// Load both documents
	store := jsonfile.NewStore(cfg.Storage.VocabFile, cfg.Storage.StatsFile, logger)
	vocab := service.NewVocabulary(store, logger)

	// Initialize services
	wordService := service.NewWordService(vocab, logger)
	quizService := service.NewQuizService(vocab, service.DefaultRand(), logger)
	statsService := service.NewStatsService(vocab, logger)

	summary := statsService.Summary()
	logger.Info("Vocabulary loaded",
		zap.Int("words", summary.WordCount),
		zap.Int("tracked_stats", summary.StatsCount),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start cleanup job in background
	go runCleanupJob(ctx, statsService, cfg.CleanupInterval, logger)

	// HTTP server
	limiter := middleware.NewRateLimiter(cfg.Limits.RPS, cfg.Limits.Burst)
	go limiter.Run(ctx, time.Minute)

	router := api.NewRouter(
		api.NewHandler(wordService, quizService, statsService, logger),
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		limiter.Limit,
	)

	ln, err := listenWithFallback(cfg.Addr(), cfg.FallbackAddr(), logger)
	if err != nil {
		logger.Fatal("Failed to listen", zap.Error(err))
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server started", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Optional Telegram front-end
	var bot *tele.Bot
	if cfg.TelegramEnabled() {
		bot, err = startBot(cfg.BotToken, wordService, quizService, statsService, logger)
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}
	} else {
		logger.Info("BOT_TOKEN not set, Telegram bot disabled")
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	// Graceful shutdown
	if bot != nil {
		bot.Stop()
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	logger.Info("Stopped gracefully")
}

// setupLogger builds a production or development logger; level overrides the default
func setupLogger(env, level string) (*zap.Logger, error) {
	var zcfg zap.Config
	if env == config.EnvProduction {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return zcfg.Build()
}

// listenWithFallback listens on addr, or on fallback when addr is already in use
func listenWithFallback(addr, fallback string, logger *zap.Logger) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err == nil {
		return ln, nil
	}
	if !errors.Is(err, syscall.EADDRINUSE) {
		return nil, err
	}

	logger.Warn("Address in use, trying fallback",
		zap.String("addr", addr),
		zap.String("fallback", fallback),
	)
	return net.Listen("tcp", fallback)
}

// startBot creates the Telegram bot, registers handlers and starts polling
func startBot(
	token string,
	wordService *service.WordService,
	quizService *service.QuizService,
	statsService *service.StatsService,
	logger *zap.Logger,
) (*tele.Bot, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.BotLogger(logger))
	h := handler.NewHandler(bot, wordService, quizService, statsService, logger)
	h.RegisterHandlers()

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()
	return bot, nil
}

// runCleanupJob prunes orphaned stats at startup and then every interval
func runCleanupJob(ctx context.Context, statsService *service.StatsService, interval time.Duration, logger *zap.Logger) {
	// Run cleanup once at startup
	if _, err := statsService.PruneOrphans(); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if _, err := statsService.PruneOrphans(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
