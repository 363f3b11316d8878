package extractor

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/MissMyDearBear/gemini-data-extractor/internal/gemini"
)

// FailurePrefix marks a result that carries an error description instead
// of model output. Stable: the web page and tests match on it.
const FailurePrefix = "API call failed, error message: "

// Generator is the provider seam. gemini.Client implements it; tests
// substitute a fake.
type Generator interface {
	Generate(ctx context.Context, contents []*genai.Content) (string, error)
}

// Result is the outcome of one extraction. Call failures are data, not
// errors: the UI renders Text either way and never sees a Go error.
type Result struct {
	Text   string
	Failed bool
	Cached bool
}

// Service performs memoized extractions against the hosted model.
type Service struct {
	gen    Generator
	cache  *memoCache
	logger *zap.Logger
}

func NewService(gen Generator, cacheMaxEntries int, logger *zap.Logger) *Service {
	return &Service{
		gen:    gen,
		cache:  newMemoCache(cacheMaxEntries),
		logger: logger,
	}
}

// Extract sends the image and prompt to the model and returns its text.
// Identical (image, prompt) pairs are served from the cache without a
// second provider call. Any provider error is converted into a failed
// Result; Extract never returns an error.
func (s *Service) Extract(ctx context.Context, image []byte, prompt string) Result {
	key := keyFor(image, prompt)
	if text, ok := s.cache.get(key); ok {
		s.logger.Debug("cache hit", zap.Int("image_size", len(image)))
		return Result{Text: text, Cached: true}
	}

	text, err := s.gen.Generate(ctx, gemini.BuildContents(image, prompt))
	if err != nil {
		s.logger.Warn("extraction call failed", zap.Error(err))
		return Result{
			Text:   fmt.Sprintf("%s%v", FailurePrefix, err),
			Failed: true,
		}
	}

	// Failures are deliberately not cached so resubmitting after a
	// transient error retries the call.
	s.cache.put(key, text)
	return Result{Text: text}
}
