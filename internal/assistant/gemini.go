package assistant

import (
	"context"
	"errors"
	"fmt"

	"brandbear/internal/model"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// errEmptyResponse is returned when the provider answers with no response object.
var errEmptyResponse = errors.New("gemini returned an empty response")

// geminiCompleter implements Completer with the Gemini API.
type geminiCompleter struct {
	client *genai.Client
	model  string
	logger zerolog.Logger
}

// NewGeminiCompleter creates a Completer backed by the Gemini API.
func NewGeminiCompleter(ctx context.Context, apiKey, modelName string, logger zerolog.Logger) (Completer, error) {
	logger = logger.With().Str("component", "gemini").Logger()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to create Gemini client")
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info().Str("model", modelName).Msg("Gemini completer initialised")

	return &geminiCompleter{
		client: client,
		model:  modelName,
		logger: logger,
	}, nil
}

// Complete sends the transcript followed by the new user turn.
func (g *geminiCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	contents, err := toContents(req.History, req.UserText)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return "", errEmptyResponse
	}

	return resp.Text(), nil
}

// toContents maps the transcript onto Gemini turns: assistant messages become
// "model" turns, user messages stay "user".
func toContents(history []model.Message, userText string) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for i, m := range history {
		switch m.Role {
		case model.RoleUser:
			contents = append(contents, genai.NewContentFromText(m.Text, genai.RoleUser))
		case model.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Text, genai.RoleModel))
		default:
			return nil, fmt.Errorf("message %d: unknown role %q", i, m.Role)
		}
	}
	contents = append(contents, genai.NewContentFromText(userText, genai.RoleUser))
	return contents, nil
}
