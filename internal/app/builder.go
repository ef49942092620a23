package app

import (
	"context"
	"fmt"

	"slidecraft/internal/assistant"
	"slidecraft/internal/content"
	"slidecraft/internal/export"
	"slidecraft/internal/images"
	"slidecraft/internal/llm"
	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
	"slidecraft/pkg/prompts"
)

func BuildService(ctx context.Context, cfg *config.Config) (*Service, error) {
	var p *prompts.Prompts
	var err error
	if cfg.PromptsPath != "" {
		p, err = prompts.LoadFrom(cfg.PromptsPath)
	} else {
		p, err = prompts.Load()
	}
	if err != nil {
		return nil, err
	}

	var llmClient llm.Client
	switch cfg.LLM.Provider {
	case "groq":
		llmClient, err = llm.NewGroqClient(cfg.GroqAPIKey, cfg.LLM.GroqModel, p)
	default:
		llmClient, err = llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.LLM.GeminiModel, p)
	}
	if err != nil {
		return nil, fmt.Errorf("build llm client: %w", err)
	}

	var enricher *images.Enricher
	var imageFetcher export.ImageFetcher
	if cfg.UnsplashAccessKey != "" {
		unsplash := images.NewUnsplashClient(cfg.UnsplashAccessKey)
		enricher = images.NewEnricher(llmClient, unsplash)
		imageFetcher = unsplash
	}

	localStorage := storage.NewLocalStorage(cfg.Export.OutputDir)
	if err := localStorage.EnsureDirectory(); err != nil {
		return nil, err
	}

	var gcs *storage.GCSStorage
	if cfg.GCS.Enabled && cfg.GCSBucket != "" {
		gcs, err = storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCS.ExportDir)
		if err != nil {
			return nil, fmt.Errorf("build gcs storage: %w", err)
		}
	}

	return NewService(ServiceOptions{
		Config:    cfg,
		LLM:       llmClient,
		Enricher:  enricher,
		Assistant: assistant.NewService(llmClient),
		Exporter:  export.NewExporter(imageFetcher),
		Storage:   localStorage,
		GCS:       gcs,
		Fetcher:   content.NewURLFetcher(),
	}), nil
}
