package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/logging"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/quiz/ai"
	"github.com/quizforge/quizforge/internal/quiz/export"
	"github.com/quizforge/quizforge/internal/server"
)

// Application aggregates shared infrastructure (cache, HTTP server, workers).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	redis *redis.Client
	http  *http.Server

	prewarm      *quiz.PrewarmWorker
	prewarmQueue chan quiz.GenerateRequest
}

// New bootstraps config, logger, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	generationCache := quiz.NewCache(redisClient, cfg.Format.GenerationCacheTTL)

	var generator quiz.QuizGenerator
	if cfg.AI.GeneratorURL != "" {
		generator = ai.NewGenerator(ai.Config{
			GeneratorURL: cfg.AI.GeneratorURL,
			GeneratorKey: cfg.AI.GeneratorKey,
			Timeout:      cfg.AI.HTTPTimeout,
		}, logger)
	} else {
		logger.Warn().Msg("AI generator not configured (missing AI_GENERATOR_URL); generation endpoint disabled")
	}

	quizSvc := quiz.NewService(generationCache, generator, quiz.ServiceOptions{
		Formatter:            quiz.Options{StrictPoints: cfg.Format.StrictPoints},
		DefaultQuestionCount: cfg.Format.DefaultQuestionCount,
	}, logger)

	quizHandlers := quiz.NewHTTPHandlers(quizSvc, logger)
	exportHandler := export.NewHTTPHandler(quizSvc.Formatter(), logger)

	apiServer := server.NewHTTPServer(cfg, logger, redisClient, quizHandlers, exportHandler.HandleExport)

	app := &Application{
		cfg:    cfg,
		logger: logger,
		redis:  redisClient,
		http:   apiServer,
	}

	if generator != nil && len(cfg.Format.PrewarmTopics) > 0 {
		app.prewarmQueue = make(chan quiz.GenerateRequest, len(cfg.Format.PrewarmTopics))
		app.prewarm = quiz.NewPrewarmWorker(quizSvc, app.prewarmQueue, logger, cfg.AI.HTTPTimeout)
	}

	return app, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startPrewarm()

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	if a.prewarm != nil {
		a.prewarm.Stop()
	}

	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startPrewarm() {
	if a.prewarm == nil {
		return
	}
	go a.prewarm.Run()
	seeded := 0
	for _, topic := range a.cfg.Format.PrewarmTopics {
		if topic == "" {
			continue
		}
		a.prewarmQueue <- quiz.GenerateRequest{Topic: topic}
		seeded++
	}
	a.logger.Info().Int("topics", seeded).Msg("prewarm queue seeded")
}
