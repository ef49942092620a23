package app

import (
	"context"
	"log/slog"
	"strings"

	"slidecraft/internal/export"
	"slidecraft/internal/slides"
	"slidecraft/pkg/errs"
)

const defaultParallelism = 4

// Pipeline runs a topic through outline generation, normalization, and
// per-slide image enrichment. Outline failures abort the run; enrichment
// failures degrade individual slides only.
type Pipeline struct {
	service *Service
}

type GenerateRequest struct {
	Topic         string
	ReferenceText string
}

type ExportResult struct {
	Filename  string
	LocalPath string
	RemoteURL string
}

func NewPipeline(service *Service) *Pipeline {
	return &Pipeline{service: service}
}

func (pipeline *Pipeline) Generate(ctx context.Context, request GenerateRequest) (*slides.Deck, error) {
	topic := strings.TrimSpace(request.Topic)
	if topic == "" {
		return nil, errs.New(errs.CodeEmptyInput, "presentation topic is empty")
	}

	cfg := pipeline.service.Config()

	slog.Info("Generating outline...", "topic", topic, "hasReference", request.ReferenceText != "")
	raw, err := pipeline.service.LLM().GenerateOutline(ctx, topic, request.ReferenceText,
		cfg.Content.MinContentSlides, cfg.Content.MaxContentSlides)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeGenerationFailed, "generate outline")
	}

	contents, err := slides.Normalize(raw)
	if err != nil {
		return nil, err
	}

	slog.Info("Enriching slides with images...", "count", len(contents))
	enriched := pipeline.enrichAll(ctx, contents)

	return &slides.Deck{Topic: topic, Slides: enriched}, nil
}

// enrichAll runs image enrichment across slides with bounded parallelism,
// preserving slide order in the result.
func (pipeline *Pipeline) enrichAll(ctx context.Context, contents []slides.SlideContent) []slides.Slide {
	enricher := pipeline.service.Enricher()
	if enricher == nil {
		slog.Warn("Image enrichment not configured (missing UNSPLASH_ACCESS_KEY)")
		result := make([]slides.Slide, len(contents))
		for i, c := range contents {
			result[i] = slides.Slide{
				ID:      i + 1,
				Title:   c.Title,
				Bullets: c.Content,
				Type:    c.SlideType,
			}
		}
		return result
	}

	parallelism := pipeline.service.Config().Images.Parallelism
	if parallelism <= 0 {
		parallelism = defaultParallelism
	}

	type result struct {
		index int
		slide slides.Slide
	}

	results := make(chan result, len(contents))
	semaphore := make(chan struct{}, parallelism)

	for i, c := range contents {
		go func(index int, content slides.SlideContent) {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results <- result{index: index, slide: enricher.Enrich(ctx, content, index)}
		}(i, c)
	}

	ordered := make([]slides.Slide, len(contents))
	for range contents {
		r := <-results
		ordered[r.index] = r.slide
	}
	return ordered
}

// Reference fetches a web page and extracts its readable text for use as
// outline reference material.
func (pipeline *Pipeline) Reference(ctx context.Context, url string) (string, error) {
	fetcher := pipeline.service.Fetcher()
	if fetcher == nil {
		return "", errs.New(errs.CodeInvalidRequest, "reference fetching is not configured")
	}
	return fetcher.Fetch(ctx, url)
}

// Ask answers a question about building presentations.
func (pipeline *Pipeline) Ask(ctx context.Context, question string) (string, error) {
	return pipeline.service.Assistant().Ask(ctx, question)
}

// Export renders the deck to the requested format, saves it to local
// storage, and uploads a copy to cloud storage when configured.
func (pipeline *Pipeline) Export(ctx context.Context, deck *slides.Deck, format export.Format) (*ExportResult, error) {
	data, filename, err := pipeline.service.Exporter().Export(ctx, deck, format)
	if err != nil {
		return nil, err
	}

	localPath, err := pipeline.service.Storage().SaveExport(data, filename)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeExportFailed, "save export")
	}

	result := &ExportResult{Filename: filename, LocalPath: localPath}

	if gcs := pipeline.service.GCS(); gcs != nil {
		remoteURL, err := gcs.UploadExport(ctx, localPath)
		if err != nil {
			slog.Warn("Cloud upload failed, export kept locally", "filename", filename, "error", err)
		} else {
			result.RemoteURL = remoteURL
		}
	}

	return result, nil
}
