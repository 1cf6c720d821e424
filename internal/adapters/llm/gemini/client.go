// Package gemini adapts the Google Gemini API to the ModelClient port.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/swiftloan/swiftloan-cli/internal/domain"
	"github.com/swiftloan/swiftloan-cli/internal/ports"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

var _ ports.ModelClient = (*Client)(nil)

func NewClient(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client, model: model, logger: logger}, nil
}

func (c *Client) Generate(ctx context.Context, req ports.ModelRequest) (ports.ModelResponse, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}},
		Temperature:       genai.Ptr(req.Temperature),
		Tools:             []*genai.Tool{{FunctionDeclarations: functionDeclarations()}},
	}

	response, err := c.client.Models.GenerateContent(ctx, c.model, toContents(req.Contents), config)
	if err != nil {
		return ports.ModelResponse{}, fmt.Errorf("generate content: %w", err)
	}

	out := ports.ModelResponse{Text: response.Text()}
	for _, call := range response.FunctionCalls() {
		c.logger.Debug("model returned tool invocation", "name", call.Name)
		out.ToolCalls = append(out.ToolCalls, ports.ToolCall{Name: call.Name, Args: call.Args})
	}

	return out, nil
}

func toContents(contents []ports.Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(contents))
	for _, content := range contents {
		role := genai.RoleUser
		if content.Role == ports.ContentRoleAssistant {
			role = genai.RoleModel
		}

		parts := make([]*genai.Part, 0, len(content.Parts))
		for _, part := range content.Parts {
			if part.Inline != nil {
				parts = append(parts, &genai.Part{InlineData: &genai.Blob{
					MIMEType: part.Inline.MIMEType,
					Data:     part.Inline.Data,
				}})
				continue
			}
			parts = append(parts, &genai.Part{Text: part.Text})
		}

		out = append(out, &genai.Content{Role: role, Parts: parts})
	}

	return out
}
