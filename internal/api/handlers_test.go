package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"slidecraft/internal/app"
	"slidecraft/internal/assistant"
	"slidecraft/internal/export"
	"slidecraft/internal/slides"
	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
	"slidecraft/pkg/errs"
)

type scriptedLLM struct {
	mu       sync.Mutex
	outlines []string
	err      error
	answer   string
}

func (s *scriptedLLM) GenerateOutline(ctx context.Context, topic, referenceText string, minSlides, maxSlides int) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.outlines[0]
	if len(s.outlines) > 1 {
		s.outlines = s.outlines[1:]
	}
	return out, nil
}

func (s *scriptedLLM) GenerateKeywords(ctx context.Context, title string, bullets []string) (string, error) {
	return "", errors.New("not configured")
}

func (s *scriptedLLM) Answer(ctx context.Context, question string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

const validOutline = `[
  {"title":"Coral Reefs","content":[],"imagePrompt":"reef","slideType":"title"},
  {"title":"Why Reefs Matter","content":["Biodiversity","Coastal protection"],"imagePrompt":"fish","slideType":"bullets"}
]`

func newTestRouter(t *testing.T, llm *scriptedLLM, ratePerMinute, burst int) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.Content.MinContentSlides = 4
	cfg.Content.MaxContentSlides = 6
	cfg.Server.RatePerMinute = ratePerMinute
	cfg.Server.RateBurst = burst

	service := app.NewService(app.ServiceOptions{
		Config:    cfg,
		LLM:       llm,
		Assistant: assistant.NewService(llm),
		Exporter:  export.NewExporter(nil),
		Storage:   storage.NewLocalStorage(t.TempDir()),
	})
	return NewRouter(app.NewPipeline(service), cfg)
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{outlines: []string{validOutline}}, 0, 0)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGenerateDeck(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{outlines: []string{validOutline}}, 0, 0)

	w := postJSON(t, router, "/api/decks", GenerateDeckRequest{Topic: "Coral Reefs"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp DeckResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RequestID == "" {
		t.Error("missing request ID")
	}
	if resp.Deck == nil || len(resp.Deck.Slides) != 2 {
		t.Fatalf("unexpected deck: %+v", resp.Deck)
	}
	if resp.Deck.Slides[0].Type != slides.TypeTitle {
		t.Errorf("first slide type = %q", resp.Deck.Slides[0].Type)
	}
}

func TestGenerateDeckMissingTopic(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{outlines: []string{validOutline}}, 0, 0)

	w := postJSON(t, router, "/api/decks", map[string]string{"reference_text": "notes"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGenerateDeckUpstreamFailure(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{err: errors.New("model offline")}, 0, 0)

	w := postJSON(t, router, "/api/decks", GenerateDeckRequest{Topic: "Coral Reefs"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var resp DeckResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != errs.CodeGenerationFailed {
		t.Errorf("error body = %+v", resp.Error)
	}
}

func TestCurrentDeckLifecycle(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{outlines: []string{validOutline}}, 0, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/decks/current", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status before generation = %d, want 404", w.Code)
	}

	if w := postJSON(t, router, "/api/decks", GenerateDeckRequest{Topic: "Coral Reefs"}); w.Code != http.StatusOK {
		t.Fatalf("generate status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/decks/current", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status after generation = %d", w.Code)
	}
	var resp DeckResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Deck == nil || resp.Deck.Topic != "Coral Reefs" {
		t.Errorf("unexpected deck: %+v", resp.Deck)
	}
}

func TestExportDeck(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{outlines: []string{validOutline}}, 0, 0)

	w := postJSON(t, router, "/api/decks/export", ExportRequest{Format: "pdf"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("export before generation = %d, want 404", w.Code)
	}

	if w := postJSON(t, router, "/api/decks", GenerateDeckRequest{Topic: "Coral Reefs"}); w.Code != http.StatusOK {
		t.Fatalf("generate status = %d", w.Code)
	}

	w = postJSON(t, router, "/api/decks/export", ExportRequest{Format: "pdf"})
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp ExportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Filename == "" || resp.LocalPath == "" {
		t.Errorf("incomplete export response: %+v", resp)
	}

	w = postJSON(t, router, "/api/decks/export", ExportRequest{Format: "docx"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad format status = %d", w.Code)
	}
}

func TestAssistant(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{answer: "Keep slides to one idea each."}, 0, 0)

	w := postJSON(t, router, "/api/assistant", AssistantRequest{Question: "How many bullets per slide?"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp AssistantResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Answer != "Keep slides to one idea each." {
		t.Errorf("answer = %q", resp.Answer)
	}
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{answer: "ok"}, 1, 1)

	first := postJSON(t, router, "/api/assistant", AssistantRequest{Question: "q"})
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d", first.Code)
	}
	second := postJSON(t, router, "/api/assistant", AssistantRequest{Question: "q"})
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", second.Code)
	}
}

func TestDeckStoreLastRequestWins(t *testing.T) {
	store := NewDeckStore()

	older := store.Begin()
	newer := store.Begin()

	if !store.Complete(newer, &slides.Deck{Topic: "new"}) {
		t.Fatal("newer deck should be kept")
	}
	if store.Complete(older, &slides.Deck{Topic: "old"}) {
		t.Fatal("stale deck should be discarded")
	}
	if got := store.Current().Topic; got != "new" {
		t.Errorf("current topic = %q, want new", got)
	}
}
