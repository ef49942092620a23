package app

import (
	"slidecraft/internal/assistant"
	"slidecraft/internal/content"
	"slidecraft/internal/export"
	"slidecraft/internal/images"
	"slidecraft/internal/llm"
	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
)

type Service struct {
	cfg       *config.Config
	llm       llm.Client
	enricher  *images.Enricher
	assistant *assistant.Service
	exporter  *export.Exporter
	storage   *storage.LocalStorage
	gcs       *storage.GCSStorage
	fetcher   *content.URLFetcher
}

type ServiceOptions struct {
	Config    *config.Config
	LLM       llm.Client
	Enricher  *images.Enricher
	Assistant *assistant.Service
	Exporter  *export.Exporter
	Storage   *storage.LocalStorage
	GCS       *storage.GCSStorage
	Fetcher   *content.URLFetcher
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		cfg:       opts.Config,
		llm:       opts.LLM,
		enricher:  opts.Enricher,
		assistant: opts.Assistant,
		exporter:  opts.Exporter,
		storage:   opts.Storage,
		gcs:       opts.GCS,
		fetcher:   opts.Fetcher,
	}
}

func (s *Service) Config() *config.Config         { return s.cfg }
func (s *Service) LLM() llm.Client                { return s.llm }
func (s *Service) Enricher() *images.Enricher     { return s.enricher }
func (s *Service) Assistant() *assistant.Service  { return s.assistant }
func (s *Service) Exporter() *export.Exporter     { return s.exporter }
func (s *Service) Storage() *storage.LocalStorage { return s.storage }
func (s *Service) GCS() *storage.GCSStorage       { return s.gcs }
func (s *Service) Fetcher() *content.URLFetcher   { return s.fetcher }
