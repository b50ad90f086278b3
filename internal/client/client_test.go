package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mapas-bknd/internal/models"
)

func envelope(data any) []byte {
	b, _ := json.Marshal(map[string]any{"data": data})
	return b
}

func newTestServer(t *testing.T, failing map[string]bool) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	serve := func(path string, data any) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if failing[path] {
				http.Error(w, `{"error":"db down"}`, http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(envelope(data))
		})
	}

	serve("/dimensions", sampleDimensions())
	serve("/zones", []models.ZoneSummary{{Zone: "Centro", Count: 3}})
	serve("/districts", []models.DistrictSummary{{District: "Miraflores", Count: 2}})
	serve("/district-polygons", samplePolygons())
	serve("/heatmap", sampleHeatmap())
	serve("/filters", sampleFilterSets())

	return httptest.NewServer(mux)
}

func TestFetchAllSettled(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL, MapsAPIKey: "test-key"})
	if err != nil {
		t.Fatal(err)
	}

	snap := c.FetchAll(context.Background(), models.FilterParams{})
	if len(snap.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", snap.Errors)
	}
	if snap.Fallback {
		t.Error("fallback must not trigger when fetches succeed")
	}
	if !snap.MapReady {
		t.Error("MapReady must be true with a key configured")
	}
	if len(snap.Dimensions) == 0 || len(snap.Zones) == 0 || len(snap.Polygons) == 0 || len(snap.Heatmap) == 0 {
		t.Errorf("missing layers in snapshot: %+v", snap)
	}
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	// /districts fails; dimension-derived data must still arrive.
	ts := newTestServer(t, map[string]bool{"/districts": true})
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	snap := c.FetchAll(context.Background(), models.FilterParams{})
	if len(snap.Dimensions) == 0 {
		t.Error("dimensions must survive a failing districts fetch")
	}
	if len(snap.Zones) == 0 {
		t.Error("zones must survive a failing districts fetch")
	}
	if _, ok := snap.Errors["/districts"]; !ok {
		t.Error("districts failure must be recorded")
	}
	if snap.Fallback {
		t.Error("partial failure must not trigger the sample fallback")
	}
}

func TestFetchAllFallsBackWhenAllFail(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.Close() // connection refused for every endpoint

	c, err := New(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	snap := c.FetchAll(context.Background(), models.FilterParams{})
	if !snap.Fallback {
		t.Fatal("expected sample fallback when every fetch fails")
	}
	if len(snap.Errors) != 5 {
		t.Errorf("expected 5 recorded errors, got %d", len(snap.Errors))
	}
	if len(snap.Dimensions) == 0 || len(snap.Zones) == 0 || len(snap.Districts) == 0 {
		t.Error("fallback snapshot must stay renderable")
	}

	// sample summaries must agree with sample rows
	total := 0
	for _, z := range snap.Zones {
		total += z.Count
	}
	if total != len(snap.Dimensions) {
		t.Errorf("fallback zone counts sum to %d, want %d", total, len(snap.Dimensions))
	}
}

func TestFetchAllWithoutMapKey(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	snap := c.FetchAll(context.Background(), models.FilterParams{})
	if snap.MapReady {
		t.Error("MapReady must be false without a provider key")
	}
	// filter stats still render from the data layers
	if len(snap.Dimensions) == 0 || len(snap.Zones) == 0 {
		t.Error("data layers must be populated regardless of map key")
	}
}

func TestFetchAllForwardsFilters(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dimensions" {
			gotQuery = r.URL.RawQuery
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing request correlation id")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(envelope([]models.Dimension{}))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	c.FetchAll(context.Background(), models.FilterParams{
		OperatorID: "3",
		NetworkID:  "all",
		DateFrom:   "2026-01-01",
	})

	q, err := url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatal(err)
	}
	if q.Get("operator_id") != "3" || q.Get("date_from") != "2026-01-01" {
		t.Errorf("filters not forwarded: %q", gotQuery)
	}
	if q.Has("network_id") {
		t.Errorf("unset sentinel must be skipped: %q", gotQuery)
	}
}

func TestFetchAllReportsMissingEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/dimensions" {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write(envelope([]models.Dimension{}))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	snap := c.FetchAll(context.Background(), models.FilterParams{})
	got, ok := snap.Errors["/dimensions"]
	if !ok {
		t.Fatal("a 2xx body without the envelope must be recorded as a failure")
	}
	if !strings.Contains(got.Error(), "missing data envelope") {
		t.Errorf("error should name the missing envelope, got %v", got)
	}
	if snap.Fallback {
		t.Error("one malformed endpoint must not trigger the sample fallback")
	}
}

func TestFetchFilterSetsFallback(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	sets, err := c.FetchFilterSets(context.Background())
	if err == nil {
		t.Error("expected an error from an unreachable backend")
	}
	if len(sets.Moments) == 0 || len(sets.Operators) == 0 {
		t.Error("fallback filter sets must not be empty")
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing BaseURL")
	}
}
