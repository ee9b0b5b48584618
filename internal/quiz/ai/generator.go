// Package ai implements the HTTP client for the external quiz generator
// service. The generator returns a raw quiz payload; all normalization
// happens in the formatter, never here.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Config holds connection details for the generator service.
type Config struct {
	GeneratorURL string
	GeneratorKey string
	Timeout      time.Duration
}

// Generator implements quiz.QuizGenerator.
type Generator struct {
	httpClient  *http.Client
	config      Config
	logger      zerolog.Logger
	generateURL string
}

var _ quiz.QuizGenerator = (*Generator)(nil)

func NewGenerator(cfg Config, logger zerolog.Logger) *Generator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	base := strings.TrimSuffix(cfg.GeneratorURL, "/")

	return &Generator{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:      cfg,
		logger:      logger.With().Str("component", "ai_generator").Logger(),
		generateURL: base + "/generate",
	}
}

// Generate synchronously requests a quiz from the generator service.
func (g *Generator) Generate(ctx context.Context, req quiz.GenerateRequest) (quiz.RawQuiz, error) {
	if g.config.GeneratorURL == "" {
		return quiz.RawQuiz{}, fmt.Errorf("generator endpoint not configured")
	}

	payload := generatorRequest{
		Topic:         req.Topic,
		Category:      req.Category,
		Difficulty:    req.DifficultyLevel,
		QuestionType:  req.QuestionType,
		QuestionCount: req.QuestionCount,
		Seed:          req.Seed,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return quiz.RawQuiz{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.generateURL, bytes.NewReader(body))
	if err != nil {
		return quiz.RawQuiz{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.config.GeneratorKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.config.GeneratorKey)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return quiz.RawQuiz{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return quiz.RawQuiz{}, fmt.Errorf("generator returned status %d", resp.StatusCode)
	}

	var genResp generatorResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return quiz.RawQuiz{}, fmt.Errorf("decode generator payload: %w", err)
	}
	if len(genResp.Quiz) == 0 {
		return quiz.RawQuiz{}, fmt.Errorf("generator returned empty quiz")
	}

	return quiz.DecodeQuiz(genResp.Quiz), nil
}

type generatorRequest struct {
	Topic         string `json:"topic"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	QuestionType  string `json:"question_type"`
	QuestionCount int    `json:"question_count"`
	Seed          string `json:"seed"`
}

type generatorResponse struct {
	Quiz map[string]any `json:"quiz"`
}
