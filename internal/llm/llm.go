// Package llm abstracts the generative-language service behind a small
// client interface so the pipeline can be tested with fakes and the
// provider swapped by config.
package llm

import "context"

type Client interface {
	// GenerateOutline asks for the full slide outline as raw text. The
	// response is expected to contain a JSON array but is treated as
	// untrusted; normalization happens downstream.
	GenerateOutline(ctx context.Context, topic, referenceText string, minSlides, maxSlides int) (string, error)

	// GenerateKeywords derives comma-separated image-search keywords for
	// one slide from its title and bullets.
	GenerateKeywords(ctx context.Context, title string, bullets []string) (string, error)

	// Answer responds to an ad-hoc presentation question.
	Answer(ctx context.Context, question string) (string, error)
}
