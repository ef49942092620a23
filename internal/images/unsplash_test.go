package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(srv *httptest.Server) *UnsplashClient {
	c := NewUnsplashClient("test-key")
	c.baseURL = srv.URL
	return c
}

func TestSearchPhotos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Client-ID test-key" {
			t.Errorf("Authorization = %q, want Client-ID test-key", got)
		}

		q := r.URL.Query()
		if q.Get("query") != "mountain sunrise" {
			t.Errorf("query = %q, want mountain sunrise", q.Get("query"))
		}
		if q.Get("orientation") != "landscape" {
			t.Errorf("orientation = %q, want landscape", q.Get("orientation"))
		}
		if q.Get("content_filter") != "high" {
			t.Errorf("content_filter = %q, want high", q.Get("content_filter"))
		}
		if q.Get("order_by") != "relevant" {
			t.Errorf("order_by = %q, want relevant", q.Get("order_by"))
		}
		if q.Get("per_page") != "1" {
			t.Errorf("per_page = %q, want 1", q.Get("per_page"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{
					"alt_description": "sun over peaks",
					"urls": {"regular": "https://images.example/regular.jpg"},
					"user": {"name": "Ana Photographer"}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	photos, err := c.SearchPhotos(context.Background(), "mountain sunrise", 1)
	if err != nil {
		t.Fatalf("SearchPhotos() error = %v", err)
	}

	if len(photos) != 1 {
		t.Fatalf("got %d photos, want 1", len(photos))
	}
	if photos[0].RegularURL != "https://images.example/regular.jpg" {
		t.Errorf("RegularURL = %q", photos[0].RegularURL)
	}
	if photos[0].Credit != "Ana Photographer" {
		t.Errorf("Credit = %q", photos[0].Credit)
	}
}

func TestSearchPhotosEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	photos, err := c.SearchPhotos(context.Background(), "nothing", 1)
	if err != nil {
		t.Fatalf("SearchPhotos() error = %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("got %d photos, want 0", len(photos))
	}
}

func TestSearchPhotosAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors": ["OAuth error"]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	if _, err := c.SearchPhotos(context.Background(), "anything", 1); err == nil {
		t.Error("SearchPhotos() should fail on a 403")
	}
}

func TestDownloadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	data, err := c.DownloadImage(context.Background(), srv.URL+"/photo.jpg")
	if err != nil {
		t.Fatalf("DownloadImage() error = %v", err)
	}
	if len(data) != 4 {
		t.Errorf("got %d bytes, want 4", len(data))
	}
}

func TestDownloadImageRejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not found</html>"))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	if _, err := c.DownloadImage(context.Background(), srv.URL); err == nil {
		t.Error("DownloadImage() should reject non-image content types")
	}
}
