package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/conneroisu/groq-go"

	"slidecraft/pkg/prompts"
)

type GroqClient struct {
	client  *groq.Client
	model   groq.ChatModel
	prompts *prompts.Prompts
}

func NewGroqClient(apiKey, model string, p *prompts.Prompts) (*GroqClient, error) {
	client, err := groq.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &GroqClient{
		client:  client,
		model:   groq.ChatModel(model),
		prompts: p,
	}, nil
}

func (c *GroqClient) GenerateOutline(ctx context.Context, topic, referenceText string, minSlides, maxSlides int) (string, error) {
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

func (c *GroqClient) GenerateKeywords(ctx context.Context, title string, bullets []string) (string, error) {
	prompt, err := c.prompts.RenderKeywords(prompts.KeywordParams{
		Title:   title,
		Bullets: strings.Join(bullets, ", "),
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return c.generate(ctx, c.prompts.System.Keywords, prompt)
}

func (c *GroqClient) Answer(ctx context.Context, question string) (string, error) {
	prompt, err := c.prompts.RenderAssistant(prompts.AssistantParams{Question: question})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return c.generate(ctx, c.prompts.System.Assistant, prompt)
}

func (c *GroqClient) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: systemPrompt},
			{Role: groq.RoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response")
	}

	return content, nil
}
