package gemini

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/MissMyDearBear/gemini-data-extractor/pkg/config"
)

// Client wraps the hosted Gemini model behind a single blocking call.
// No retries, no streaming; timeouts defer to the transport default.
type Client struct {
	client *genai.Client
	model  string
	safety SafetyConfig
	logger *zap.Logger
}

func NewClient(ctx context.Context, cfg *config.GeminiConfig, safety SafetyConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		client: client,
		model:  cfg.Model,
		safety: safety,
		logger: logger,
	}, nil
}

// Generate sends the built content list to the model and returns its text
// output. The response is not trimmed or validated against any schema.
func (c *Client) Generate(ctx context.Context, contents []*genai.Content) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SafetySettings: c.safety,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty model response")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			out.WriteString(part.Text)
		}
	}

	c.logger.Debug("model responded",
		zap.String("model", c.model),
		zap.Int("response_len", out.Len()),
	)
	return out.String(), nil
}
