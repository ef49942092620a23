// Package images attaches stock photos to generated slides. Per-slide
// failures degrade to a slide without an image; they never abort the deck.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"slidecraft/pkg/httputil"
)

const (
	unsplashBaseURL = "https://api.unsplash.com"
	searchTimeout   = 15 * time.Second
)

type UnsplashClient struct {
	accessKey  string
	httpClient *httputil.RetryClient
	baseURL    string
}

type Photo struct {
	RegularURL string
	AltText    string
	Credit     string
}

type searchResponse struct {
	Results []photoItem `json:"results"`
}

type photoItem struct {
	AltDescription string    `json:"alt_description"`
	URLs           photoURLs `json:"urls"`
	User           photoUser `json:"user"`
}

type photoURLs struct {
	Regular string `json:"regular"`
}

type photoUser struct {
	Name string `json:"name"`
}

func NewUnsplashClient(accessKey string) *UnsplashClient {
	return &UnsplashClient{
		accessKey: accessKey,
		httpClient: httputil.NewRetryClient(
			&http.Client{Timeout: searchTimeout},
			httputil.DefaultRetryConfig(),
		),
		baseURL: unsplashBaseURL,
	}
}

// SearchPhotos runs a relevance-ranked, landscape-only, high-content-quality
// search and returns up to count photos.
func (c *UnsplashClient) SearchPhotos(ctx context.Context, query string, count int) ([]Photo, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", fmt.Sprintf("%d", count))
	params.Set("orientation", "landscape")
	params.Set("content_filter", "high")
	params.Set("order_by", "relevant")

	reqURL := fmt.Sprintf("%s/search/photos?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unsplash api error: %s, body: %s", resp.Status, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	photos := make([]Photo, 0, len(searchResp.Results))
	for _, item := range searchResp.Results {
		photos = append(photos, Photo{
			RegularURL: item.URLs.Regular,
			AltText:    item.AltDescription,
			Credit:     item.User.Name,
		})
	}

	return photos, nil
}

// DownloadImage fetches image bytes, used when embedding slide images into
// exported documents.
func (c *UnsplashClient) DownloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: %s", resp.Status)
	}

	if !isImageContentType(resp.Header.Get("Content-Type")) {
		return nil, fmt.Errorf("invalid content type: %s", resp.Header.Get("Content-Type"))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image data: %w", err)
	}

	return data, nil
}

func isImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}
