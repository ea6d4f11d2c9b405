package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecosnap/ecosnap-backend/internal/logger"
	"github.com/ecosnap/ecosnap-backend/internal/model"
	"google.golang.org/genai"
)

var (
	// ErrNotConfigured means the Gemini API key is missing. Fatal to the
	// call; never retried silently.
	ErrNotConfigured = errors.New("GEMINI_API_KEY is not set")
	// ErrUnavailable covers non-quota call failures. Surfaced to the user
	// as a retryable error.
	ErrUnavailable = errors.New("analysis unavailable")
)

// TrashAnalyzer classifies a trash photo.
type TrashAnalyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (*model.Analysis, error)
}

// GeminiClient calls Gemini with the photo and the strict-JSON analysis
// prompt. Quota and rate-limit failures degrade to the offline example
// result so the flow is never blocked by billing.
type GeminiClient struct {
	apiKey string
	model  string
}

func NewGeminiClient(apiKey, modelName string) *GeminiClient {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiClient{apiKey: apiKey, model: modelName}
}

func (c *GeminiClient) Analyze(ctx context.Context, image []byte, mimeType string) (*model.Analysis, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: image is required", ErrUnavailable)
	}
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: c.apiKey,
	})
	if err != nil {
		logger.Log.Errorw("gemini client init failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText(analysisPrompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}

	start := time.Now()
	res, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		if isQuotaError(err) {
			logger.Log.Warnw("gemini quota exceeded, using offline example", "err", err)
			return ExampleAnalysis(), nil
		}
		logger.Log.Errorw("gemini generate failed", "model", c.model, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	logger.Log.Debugw("gemini analysis done",
		"model", c.model, "ms", time.Since(start).Milliseconds())

	analysis, err := ParseAnalysis(res.Text())
	if err != nil {
		logger.Log.Errorw("gemini response parse failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return analysis, nil
}

// isQuotaError matches quota/rate-limit responses by status code or
// message keywords, mirroring how the web client detects a 429.
func isQuotaError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "resource exhausted")
}
