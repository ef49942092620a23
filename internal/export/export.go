// Package export renders a finished deck into downloadable documents.
// Formats mirror the editor's export menu: PowerPoint and PDF. Slide images
// are fetched by URL at export time; a failed fetch leaves the slide
// image-less rather than failing the export.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"slidecraft/internal/slides"
	"slidecraft/pkg/errs"
)

type Format string

const (
	FormatPPTX Format = "pptx"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPPTX:
		return FormatPPTX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", errs.New(errs.CodeInvalidRequest, fmt.Sprintf("unsupported export format %q", s))
	}
}

// ImageFetcher downloads slide images for embedding. Satisfied by
// images.UnsplashClient.
type ImageFetcher interface {
	DownloadImage(ctx context.Context, imageURL string) ([]byte, error)
}

type Exporter struct {
	images ImageFetcher
}

func NewExporter(images ImageFetcher) *Exporter {
	return &Exporter{images: images}
}

// Export renders the deck and returns the document bytes plus a suggested
// filename.
func (e *Exporter) Export(ctx context.Context, deck *slides.Deck, format Format) ([]byte, string, error) {
	if deck == nil || len(deck.Slides) == 0 {
		return nil, "", errs.New(errs.CodeInvalidRequest, "no deck to export")
	}

	var data []byte
	var err error
	switch format {
	case FormatPDF:
		data, err = e.exportPDF(ctx, deck)
	case FormatPPTX:
		data, err = e.exportPPTX(ctx, deck)
	default:
		return nil, "", errs.New(errs.CodeInvalidRequest, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, "", errs.Wrap(err, errs.CodeExportFailed, "export failed")
	}

	return data, exportFilename(deck.Topic, format), nil
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func exportFilename(topic string, format Format) string {
	name := strings.Trim(filenameSanitizer.ReplaceAllString(strings.ToLower(topic), "_"), "_")
	if name == "" {
		name = "presentation"
	}
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%s.%s", name, time.Now().Format("20060102_150405"), format)
}

// fetchImage downloads a slide image, returning nil on any failure so the
// exporters can carry on without it.
func (e *Exporter) fetchImage(ctx context.Context, url string) []byte {
	if e.images == nil || url == "" {
		return nil
	}
	data, err := e.images.DownloadImage(ctx, url)
	if err != nil {
		slog.Warn("Export image fetch failed, continuing without it", "url", url, "error", err)
		return nil
	}
	return data
}

func detectImageType(data []byte) string {
	if bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}) {
		return "png"
	}
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		return "jpeg"
	}
	return ""
}
