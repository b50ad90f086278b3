// Package client is the Go consumer of the map API: it fetches every
// layer a map view needs in one bounded parallel batch, tolerates partial
// failure, and falls back to a built-in sample dataset when the backend is
// unreachable so the view stays interactive.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"mapas-bknd/internal/models"
	"mapas-bknd/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds the parallel batch per view refresh.
const fetchConcurrency = 5

// fetchEndpoints is the number of layers FetchAll settles; the sample
// fallback triggers only when every one of them failed.
const fetchEndpoints = 5

// Config carries everything the client needs explicitly; there are no
// package-level base URLs or keys.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8780/api/v1".
	BaseURL string
	// MapsAPIKey is the map provider key. Empty is allowed: the snapshot
	// then reports MapReady=false and callers render a placeholder.
	MapsAPIKey string
	// HTTPClient is optional; a 15s-timeout client is used when nil.
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	mapsKey string
	http    *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("client: BaseURL is required")
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: cfg.BaseURL,
		mapsKey: cfg.MapsAPIKey,
		http:    hc,
	}, nil
}

// Snapshot is everything one map view renders from, plus per-endpoint
// fetch outcomes.
type Snapshot struct {
	Dimensions []models.Dimension
	Zones      []models.ZoneSummary
	Districts  []models.DistrictSummary
	Polygons   []models.DistrictPolygon
	Heatmap    []models.HeatPoint

	// Errors records the failure of each endpoint that did not settle
	// successfully, keyed by endpoint path.
	Errors map[string]error
	// Fallback is set when every endpoint failed and the snapshot was
	// built from the built-in sample dataset instead.
	Fallback bool
	// MapReady is false when no map provider key is configured; the
	// caller renders a placeholder but keeps filters and stats live.
	MapReady bool
}

// FetchAll issues the five data fetches for the given filter set as one
// all-settled batch: each fetch records its own result, no failure cancels
// the others. The batch shares one correlation id.
func (c *Client) FetchAll(ctx context.Context, p models.FilterParams) *Snapshot {
	snap := &Snapshot{
		Errors:   map[string]error{},
		MapReady: c.mapsKey != "",
	}

	query := queryValues(p).Encode()
	requestID := uuid.NewString()

	var mu sync.Mutex
	settle := func(path string, err error) {
		if err == nil {
			return
		}
		mu.Lock()
		snap.Errors[path] = err
		mu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(fetchConcurrency)

	// Workers always return nil: a rejected fetch must not cancel the
	// rest of the batch.
	g.Go(func() error {
		settle("/dimensions", c.getJSON(ctx, "/dimensions", query, requestID, &snap.Dimensions))
		return nil
	})
	g.Go(func() error {
		settle("/zones", c.getJSON(ctx, "/zones", query, requestID, &snap.Zones))
		return nil
	})
	g.Go(func() error {
		settle("/districts", c.getJSON(ctx, "/districts", query, requestID, &snap.Districts))
		return nil
	})
	g.Go(func() error {
		settle("/district-polygons", c.getJSON(ctx, "/district-polygons", "", requestID, &snap.Polygons))
		return nil
	})
	g.Go(func() error {
		settle("/heatmap", c.getJSON(ctx, "/heatmap", query, requestID, &snap.Heatmap))
		return nil
	})

	_ = g.Wait()

	if len(snap.Errors) == fetchEndpoints {
		applySampleData(snap, p)
		snap.Fallback = true
	}
	return snap
}

// FetchFilterSets loads the option lists behind the filter controls,
// falling back to the sample sets so controls never come up empty.
func (c *Client) FetchFilterSets(ctx context.Context) (models.FilterSets, error) {
	var sets models.FilterSets
	if err := c.getJSON(ctx, "/filters", "", uuid.NewString(), &sets); err != nil {
		return sampleFilterSets(), err
	}
	return sets, nil
}

// getJSON fetches one endpoint and decodes its {"data": ...} envelope.
func (c *Client) getJSON(ctx context.Context, path, query, requestID string, target any) error {
	u := c.baseURL + path
	if query != "" {
		u += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%s: decode response: %w", path, err)
	}
	if len(body.Data) == 0 {
		return fmt.Errorf("%s: missing data envelope", path)
	}
	if err := json.Unmarshal(body.Data, target); err != nil {
		return fmt.Errorf("%s: decode data: %w", path, err)
	}
	return nil
}

// queryValues encodes the filter set for the query string, skipping unset
// values so the server sees only real constraints.
func queryValues(p models.FilterParams) url.Values {
	q := url.Values{}
	set := func(key, val string) {
		if utils.IsUnsetFilter(val) {
			return
		}
		q.Set(key, val)
	}
	set("moment_id", p.MomentID)
	set("altitude_level_id", p.AltitudeLevelID)
	set("signal_level_id", p.SignalLevelID)
	set("speed_level_id", p.SpeedLevelID)
	set("operator_id", p.OperatorID)
	set("network_id", p.NetworkID)
	set("district_id", p.DistrictID)
	set("device_id", p.DeviceID)
	set("date_from", p.DateFrom)
	set("date_to", p.DateTo)
	set("time_from", p.TimeFrom)
	set("time_to", p.TimeTo)
	return q
}
