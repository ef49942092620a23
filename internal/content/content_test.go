package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromCSV(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{
			name: "basic",
			csv:  "quarter,revenue\nQ1,120\nQ2,95",
			want: "quarter, revenue\nQ1, 120\nQ2, 95",
		},
		{
			name: "raggedRows",
			csv:  "a,b,c\nd",
			want: "a, b, c\nd",
		},
		{
			name: "skipsEmptyCells",
			csv:  "a,,b\n,,",
			want: "a, b",
		},
		{
			name: "empty",
			csv:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromCSV(strings.NewReader(tt.csv))
			if err != nil {
				t.Fatalf("FromCSV() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FromCSV() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromFilePlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("  some reference notes\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if got != "some reference notes" {
		t.Errorf("FromFile() = %q", got)
	}
}

func TestFromFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.CSV")
	if err := os.WriteFile(path, []byte("x,y\n1,2"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if got != "x, y\n1, 2" {
		t.Errorf("FromFile() = %q", got)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("FromFile() should fail for a missing file")
	}
}

func TestExtractText(t *testing.T) {
	page := `<html><head><style>body{color:red}</style><script>alert(1)</script></head>
	<body><h1>Solar Power</h1><p>Panels convert <b>sunlight</b> to power.</p></body></html>`

	got, err := ExtractText(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	if !strings.Contains(got, "Solar Power") || !strings.Contains(got, "sunlight") {
		t.Errorf("ExtractText() = %q, missing visible text", got)
	}
	if strings.Contains(got, "alert") || strings.Contains(got, "color:red") {
		t.Errorf("ExtractText() = %q, includes script or style content", got)
	}
}

func TestURLFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>remote content</p></body></html>"))
	}))
	defer srv.Close()

	f := NewURLFetcher()
	got, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(got, "remote content") {
		t.Errorf("Fetch() = %q", got)
	}
}

func TestURLFetcherNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewURLFetcher()
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Fetch() should fail on a 404")
	}
}
