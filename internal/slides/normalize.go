package slides

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"slidecraft/pkg/errs"
)

// Model responses are untrusted text. Normalization is a lenient unwrap
// (fence stripping) followed by a strict parse with exactly one repair
// attempt (trailing-comma removal). Anything else is a malformed response.
var (
	fenceRegex         = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)
)

type rawSlide struct {
	Title       any `json:"title"`
	Content     any `json:"content"`
	ImagePrompt any `json:"imagePrompt"`
	SlideType   any `json:"slideType"`
}

// Normalize converts a raw model response into an ordered SlideContent
// sequence. It is all-or-nothing: a payload that cannot be parsed after the
// repair pass yields a MALFORMED_RESPONSE error and no partial results.
func Normalize(raw string) ([]SlideContent, error) {
	text := unwrapFences(raw)
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		return nil, errs.New(errs.CodeMalformedResponse, "response is not a JSON array")
	}

	elements, err := parseArray(text)
	if err != nil {
		repaired := stripTrailingCommas(text)
		elements, err = parseArray(repaired)
		if err != nil {
			return nil, errs.Wrap(err, errs.CodeMalformedResponse, "response could not be parsed")
		}
	}

	contents := make([]SlideContent, len(elements))
	for i, el := range elements {
		contents[i] = coerce(el, i)
	}
	return contents, nil
}

func unwrapFences(raw string) string {
	if m := fenceRegex.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

func stripTrailingCommas(text string) string {
	return trailingCommaRegex.ReplaceAllString(text, "$1")
}

func parseArray(text string) ([]rawSlide, error) {
	var elements []rawSlide
	if err := json.Unmarshal([]byte(text), &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

func coerce(el rawSlide, index int) SlideContent {
	title := coerceTitle(el.Title, index)

	return SlideContent{
		Title:       title,
		Content:     coerceContent(el.Content),
		ImagePrompt: coerceImagePrompt(el.ImagePrompt, title),
		SlideType:   coerceType(el.SlideType, index),
	}
}

func coerceTitle(v any, index int) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fmt.Sprintf("Slide %d", index+1)
}

func coerceContent(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	bullets := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			bullets = append(bullets, s)
		}
	}
	return bullets
}

func coerceImagePrompt(v any, title string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return title
}

func coerceType(v any, index int) SlideType {
	// Slide 0 is the title slide no matter what the model said.
	if index == 0 {
		return TypeTitle
	}

	if s, ok := v.(string); ok {
		if t := SlideType(s); t.Valid() {
			return t
		}
	}

	switch {
	case index%3 == 0:
		return TypeSplit
	case index%4 == 0:
		return TypeImageFocus
	default:
		return TypeBullets
	}
}
