package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/xdpzq/devcore/pkg/domain"
)

// DefaultModel favors speed over depth; terminal sessions are interactive.
const DefaultModel = "gemini-2.5-flash"

// APICaller talks to the Gemini API. A fresh client is built per attempt
// because each attempt may carry a different credential.
type APICaller struct {
	model string
}

func NewAPICaller(model string) *APICaller {
	if model == "" {
		model = DefaultModel
	}
	return &APICaller{model: model}
}

func (c *APICaller) GenerateContent(ctx context.Context, apiKey string, req domain.GenerationRequest) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("creating client: %w", err)
	}

	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		var role genai.Role = genai.RoleUser
		if turn.Role == domain.MessageRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	var parts []*genai.Part
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MimeType))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))
	contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	return resp.Text(), nil
}
