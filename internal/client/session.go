package client

import (
	"context"

	"mapas-bknd/internal/models"
)

// Session holds the view's filter state. All state lives client-side;
// every filter change triggers a full re-fetch of all layers.
type Session struct {
	client  *Client
	Filters models.FilterParams
	Current *Snapshot
}

func (c *Client) NewSession() *Session {
	return &Session{client: c}
}

// SetFilters replaces the filter set and refreshes every layer.
func (s *Session) SetFilters(ctx context.Context, p models.FilterParams) *Snapshot {
	s.Filters = p
	return s.Refresh(ctx)
}

// Refresh re-fetches all layers under the current filter set.
func (s *Session) Refresh(ctx context.Context) *Snapshot {
	s.Current = s.client.FetchAll(ctx, s.Filters)
	return s.Current
}
