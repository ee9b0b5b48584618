package quiz

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// PrewarmWorker generates and caches quizzes for a queue of expected
// requests so interactive callers hit the cache instead of waiting on the
// generator.
type PrewarmWorker struct {
	service   *Service
	queue     <-chan GenerateRequest
	logger    zerolog.Logger
	timeout   time.Duration
	shutdownC chan struct{}
}

func NewPrewarmWorker(service *Service, queue <-chan GenerateRequest, logger zerolog.Logger, timeout time.Duration) *PrewarmWorker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PrewarmWorker{
		service:   service,
		queue:     queue,
		logger:    logger.With().Str("component", "prewarm_worker").Logger(),
		timeout:   timeout,
		shutdownC: make(chan struct{}),
	}
}

func (w *PrewarmWorker) Run() {
	for {
		select {
		case <-w.shutdownC:
			w.logger.Info().Msg("prewarm worker stopping")
			return
		case req := <-w.queue:
			w.handle(req)
		}
	}
}

func (w *PrewarmWorker) handle(req GenerateRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if _, err := w.service.Generate(ctx, req); err != nil {
		w.logger.Warn().Err(err).Str("topic", req.Topic).Msg("prewarm generation failed")
	}
}

func (w *PrewarmWorker) Stop() {
	close(w.shutdownC)
}
