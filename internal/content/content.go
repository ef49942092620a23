// Package content turns the supported input sources into plain reference
// text for the generator: typed or dictated text passes through, CSV files
// are flattened row by row, and URLs are fetched and stripped of markup.
package content

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const fetchTimeout = 20 * time.Second

// FromFile reads reference text from a local file. CSV files are flattened;
// anything else is treated as plain text.
func FromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FromCSV(f)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// FromCSV flattens CSV records into sentence-like lines: cells joined with
// ", ", one line per record. Ragged rows are tolerated.
func FromCSV(r io.Reader) (string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var lines []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read csv: %w", err)
		}

		cells := make([]string, 0, len(record))
		for _, cell := range record {
			if trimmed := strings.TrimSpace(cell); trimmed != "" {
				cells = append(cells, trimmed)
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, ", "))
		}
	}

	return strings.Join(lines, "\n"), nil
}

type URLFetcher struct {
	httpClient *http.Client
}

func NewURLFetcher() *URLFetcher {
	return &URLFetcher{
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch downloads the page and returns its visible text.
func (f *URLFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch url: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch url: %s", resp.Status)
	}

	text, err := ExtractText(resp.Body)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}

// ExtractText renders an HTML document down to its visible text content,
// skipping script and style elements.
func ExtractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.Join(parts, " "), nil
}
