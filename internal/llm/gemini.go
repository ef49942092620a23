package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"slidecraft/pkg/prompts"
)

type GeminiClient struct {
	client  *genai.Client
	model   string
	prompts *prompts.Prompts
}

func NewGeminiClient(ctx context.Context, apiKey, model string, p *prompts.Prompts) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		prompts: p,
	}, nil
}

func (c *GeminiClient) GenerateOutline(ctx context.Context, topic, referenceText string, minSlides, maxSlides int) (string, error) {
	prompt, err := c.prompts.RenderOutline(prompts.OutlineParams{
		Topic:            topic,
		ReferenceText:    referenceText,
		MinContentSlides: minSlides,
		MaxContentSlides: maxSlides,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return c.generate(ctx, c.prompts.System.Outline, prompt)
}

func (c *GeminiClient) GenerateKeywords(ctx context.Context, title string, bullets []string) (string, error) {
	prompt, err := c.prompts.RenderKeywords(prompts.KeywordParams{
		Title:   title,
		Bullets: strings.Join(bullets, ", "),
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return c.generate(ctx, c.prompts.System.Keywords, prompt)
}

func (c *GeminiClient) Answer(ctx context.Context, question string) (string, error) {
	prompt, err := c.prompts.RenderAssistant(prompts.AssistantParams{Question: question})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return c.generate(ctx, c.prompts.System.Assistant, prompt)
}

func (c *GeminiClient) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), config)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response")
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("empty response")
	}

	return text, nil
}
