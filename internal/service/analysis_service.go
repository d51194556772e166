package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nutriblendai/nutriblend-backend/internal/config"
	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

const analysisSystemPrompt = "You are a meal analysis AI. Return valid JSON per the schema."

const analysisUserPrompt = "Estimate macros from this image in JSON (calories, carbs, protein, fats, notes)."

// mealAnalysisSchema is the structured-output contract sent with every
// analysis request.
var mealAnalysisSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"calories": {"type": "number"},
		"carbs": {"type": "number"},
		"protein": {"type": "number"},
		"fats": {"type": "number"},
		"notes": {"type": "string"}
	},
	"required": ["calories", "carbs", "protein", "fats", "notes"],
	"additionalProperties": false
}`)

// analysisService implements AnalysisService. It forwards the image to the
// vision model and resolves the response into exactly one of: a parsed
// estimate, a refusal, or a malformed-response failure.
type analysisService struct {
	client *openai.Client
	model  string
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(cfg config.OpenAIConfig) AnalysisService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout.Duration > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout.Duration}
	}

	return &analysisService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

// AnalyzeMeal sends the image to the vision model and normalizes the reply.
// The result is a draft; nothing is persisted here.
func (s *analysisService) AnalyzeMeal(ctx context.Context, imageData string) (*domain.MealAnalysis, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: analysisSystemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: analysisUserPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    imageData,
							Detail: openai.ImageURLDetailLow,
						},
					},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "meal_analysis",
				Schema: mealAnalysisSchema,
				Strict: true,
			},
		},
		MaxTokens: 300,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrAnalysisMalformed
	}

	message := resp.Choices[0].Message
	if message.Refusal != "" {
		return nil, fmt.Errorf("%w: %s", ErrAnalysisRefused, message.Refusal)
	}

	analysis := &domain.MealAnalysis{}
	if err := json.Unmarshal([]byte(message.Content), analysis); err == nil {
		return analysis, nil
	}

	// The model sometimes wraps the JSON in code fences or prose; salvage
	// the object before giving up.
	salvaged := extractJSON(message.Content)
	if salvaged == "" {
		return nil, fmt.Errorf("%w: %q", ErrAnalysisMalformed, message.Content)
	}
	if err := json.Unmarshal([]byte(salvaged), analysis); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrAnalysisMalformed, message.Content)
	}

	return analysis, nil
}

// extractJSON returns the outermost {...} span of s, or "" when there is none
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(s, "}")
	if end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
