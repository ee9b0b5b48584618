package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quizforge/quizforge/internal/metrics"
)

// GenerationCache stores generated quizzes keyed by request (implemented by
// the Redis-backed Cache).
type GenerationCache interface {
	Get(ctx context.Context, req GenerateRequest) (*Quiz, error)
	Set(ctx context.Context, req GenerateRequest, q Quiz) error
}

// QuizGenerator produces raw quiz payloads (requires AI_GENERATOR_URL).
type QuizGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (RawQuiz, error)
}

// GenerateRequest describes the quiz to generate.
type GenerateRequest struct {
	Topic           string `json:"topic" validate:"required,min=2,max=255"`
	Category        string `json:"category" validate:"omitempty,oneof=general mathematics science language history technology other"`
	DifficultyLevel string `json:"difficultyLevel" validate:"omitempty,oneof=easy medium hard expert"`
	QuestionType    string `json:"questionType" validate:"omitempty,oneof=multiple_choice true_false fill_in_blank essay matching"`
	QuestionCount   int    `json:"questionCount" validate:"omitempty,min=1,max=50"`
	Seed            string `json:"seed"`

	// UserID comes from the surrounding request context, not the payload.
	UserID string `json:"-"`
}

// Service orchestrates generation, formatting and caching. Formatting itself
// is pure; the service adds the cache and generator collaborators around it.
type Service struct {
	formatter *Formatter
	cache     GenerationCache
	generator QuizGenerator
	logger    zerolog.Logger

	defaultQuestionCount int
}

type ServiceOptions struct {
	Formatter            Options
	DefaultQuestionCount int
}

func NewService(cache GenerationCache, generator QuizGenerator, opts ServiceOptions, logger zerolog.Logger) *Service {
	count := opts.DefaultQuestionCount
	if count <= 0 {
		count = 5
	}
	return &Service{
		formatter:            NewFormatter(opts.Formatter),
		cache:                cache,
		generator:            generator,
		logger:               logger.With().Str("component", "quiz_service").Logger(),
		defaultQuestionCount: count,
	}
}

// Formatter exposes the service's formatter for collaborators that render
// exports from raw payloads.
func (s *Service) Formatter() *Formatter { return s.formatter }

// Format normalizes a raw quiz into the canonical shape.
func (s *Service) Format(raw RawQuiz, ctx Context) (Quiz, error) {
	q, err := s.formatter.FormatQuiz(raw, ctx)
	if err != nil {
		metrics.QuizzesFormatted.WithLabelValues("invalid").Inc()
		return Quiz{}, err
	}
	metrics.QuizzesFormatted.WithLabelValues("ok").Inc()
	return q, nil
}

// Generate returns a formatted quiz for the request, serving from cache when
// possible and otherwise delegating to the AI generator.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (Quiz, error) {
	req = s.withDefaults(req)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, req); err == nil && cached != nil {
			metrics.Generations.WithLabelValues("cache").Inc()
			return *cached, nil
		}
	}

	if s.generator == nil {
		return Quiz{}, fmt.Errorf("quiz generator unavailable")
	}

	start := time.Now()
	raw, err := s.generator.Generate(ctx, req)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return Quiz{}, fmt.Errorf("generate quiz: %w", err)
	}

	q, err := s.Format(raw, Context{UserID: req.UserID, GeneratedBy: SourceAI})
	if err != nil {
		return Quiz{}, err
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	metrics.Generations.WithLabelValues("generator").Inc()

	if s.cache != nil {
		// Cache writes are best effort; a miss next time just regenerates.
		if err := s.cache.Set(ctx, req, q); err != nil {
			s.logger.Warn().Err(err).Str("topic", req.Topic).Msg("generation cache write failed")
		}
	}

	return q, nil
}

func (s *Service) withDefaults(req GenerateRequest) GenerateRequest {
	if req.Category == "" {
		req.Category = CategoryGeneral
	}
	if req.DifficultyLevel == "" {
		req.DifficultyLevel = DifficultyMedium
	}
	if req.QuestionType == "" {
		req.QuestionType = TypeMultipleChoice
	}
	if req.QuestionCount <= 0 {
		req.QuestionCount = s.defaultQuestionCount
	}
	return req
}
