package images

import (
	"context"
	"log/slog"
	"strings"

	"slidecraft/internal/slides"
)

// KeywordSource derives image-search keywords for a slide. Satisfied by
// llm.Client.
type KeywordSource interface {
	GenerateKeywords(ctx context.Context, title string, bullets []string) (string, error)
}

// PhotoSearcher queries a stock-photo service. Satisfied by UnsplashClient.
type PhotoSearcher interface {
	SearchPhotos(ctx context.Context, query string, count int) ([]Photo, error)
}

type Enricher struct {
	keywords KeywordSource
	photos   PhotoSearcher
}

func NewEnricher(keywords KeywordSource, photos PhotoSearcher) *Enricher {
	return &Enricher{
		keywords: keywords,
		photos:   photos,
	}
}

// Enrich turns one SlideContent into a Slide, attaching a stock-photo URL
// when one can be found. It never fails: keyword-generation errors, search
// errors, and empty result sets all degrade to a slide without an image.
func (e *Enricher) Enrich(ctx context.Context, content slides.SlideContent, index int) slides.Slide {
	slide := slides.Slide{
		ID:      index + 1,
		Title:   content.Title,
		Bullets: content.Content,
		Type:    content.SlideType,
	}

	if e.keywords == nil || e.photos == nil {
		return slide
	}

	query, err := e.keywords.GenerateKeywords(ctx, content.Title, content.Content)
	if err != nil {
		slog.Warn("Keyword generation failed, slide keeps no image", "slide", index, "error", err)
		return slide
	}
	query = cleanKeywords(query)
	if query == "" {
		slog.Warn("Empty keyword query, slide keeps no image", "slide", index)
		return slide
	}

	photos, err := e.photos.SearchPhotos(ctx, query, 1)
	if err != nil {
		slog.Warn("Photo search failed, slide keeps no image", "slide", index, "query", query, "error", err)
		return slide
	}
	if len(photos) == 0 {
		slog.Warn("No photos found for slide", "slide", index, "query", query)
		return slide
	}

	slide.Image = photos[0].RegularURL
	slog.Debug("Slide enriched", "slide", index, "query", query, "image", slide.Image)
	return slide
}

func cleanKeywords(query string) string {
	query = strings.ReplaceAll(query, "\n", "")
	return strings.TrimSpace(query)
}
