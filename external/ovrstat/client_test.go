package ovrstat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/michelleon/overwatch-stats/internal/platform/logging"
	"github.com/michelleon/overwatch-stats/internal/usecase"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL + "/stats/pc/us/",
		Logger:     logging.NewNop(),
	})
}

func TestClientFetchPlayerStats_DecodesDocument(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/stats/pc/us/HarryHook-3986" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("accept"); got != "application/json" {
			t.Errorf("unexpected accept header: %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{
			"name": "HarryHook",
			"quickPlayStats": map[string]any{
				"topHeroes": map[string]any{
					"lucio": map[string]any{"timePlayedInSeconds": 7200},
				},
			},
		})
	}))
	defer srv.Close()

	doc, err := newTestClient(srv).FetchPlayerStats(context.Background(), "HarryHook-3986")
	if err != nil {
		t.Fatalf("fetch player stats: %v", err)
	}
	if doc.PlayerID != "HarryHook-3986" {
		t.Fatalf("unexpected player id: %s", doc.PlayerID)
	}

	quickPlay := doc.Raw["quickPlayStats"].(map[string]any)
	lucio := quickPlay["topHeroes"].(map[string]any)["lucio"].(map[string]any)
	if seconds, ok := lucio["timePlayedInSeconds"].(float64); !ok || seconds != 7200 {
		t.Fatalf("expected numbers decoded as float64, got=%T %v", lucio["timePlayedInSeconds"], lucio["timePlayedInSeconds"])
	}
}

func TestClientFetchPlayerStats_EscapesPlayerID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.EscapedPath(); got != "/stats/pc/us/Some%20One-1" {
			t.Errorf("unexpected escaped path: %s", got)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	doc, err := newTestClient(srv).FetchPlayerStats(context.Background(), "Some One-1")
	if err != nil {
		t.Fatalf("fetch player stats: %v", err)
	}
	if len(doc.Raw) != 0 {
		t.Fatalf("expected empty document, got=%v", doc.Raw)
	}
}

func TestClientFetchPlayerStats_NonOKIsUnavailable(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"message":"player not found"}`))
		}))

		_, err := newTestClient(srv).FetchPlayerStats(context.Background(), "Nobody-1")
		srv.Close()
		if !errors.Is(err, usecase.ErrPlayerUnavailable) {
			t.Fatalf("status %d: expected ErrPlayerUnavailable, got %v", status, err)
		}
		if !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("status %d: expected ErrNotFound, got %v", status, err)
		}
	}
}

func TestClientFetchPlayerStats_MalformedBody(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{"quickPlayStats":`, `[1,2,3]`, `null`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		_, err := newTestClient(srv).FetchPlayerStats(context.Background(), "Broken-1")
		srv.Close()
		if !errors.Is(err, usecase.ErrMalformedDocument) {
			t.Fatalf("body %q: expected ErrMalformedDocument, got %v", body, err)
		}
	}
}

func TestClientFetchPlayerStats_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	client := newTestClient(srv)
	srv.Close()

	_, err := client.FetchPlayerStats(context.Background(), "Offline-1")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if errors.Is(err, usecase.ErrPlayerUnavailable) {
		t.Fatalf("transport failures must not be treated as unavailable players")
	}
}

func TestClientFetchPlayerStats_CanceledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv).FetchPlayerStats(ctx, "Canceled-1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClientFetchPlayerStats_EmptyPlayerID(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchPlayerStats(context.Background(), "  ")
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no upstream call, got=%d", calls.Load())
	}
}

func TestAbbreviateBody(t *testing.T) {
	t.Parallel()

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	got := abbreviateBody(long)
	if len(got) != 243 {
		t.Fatalf("expected truncated body, got len=%d", len(got))
	}
	if abbreviateBody([]byte("  short  ")) != "short" {
		t.Fatalf("expected trimmed body")
	}
}
