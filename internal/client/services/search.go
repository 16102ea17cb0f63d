// Package services holds client-side logic that sits between the CLI and the
// raw API client.
package services

import (
	"context"
	"sync/atomic"

	"campushub/internal/client/client"
)

// SearchSession serializes a user's successive searches. Each call gets a
// monotonically increasing sequence number; when a response comes back it is
// delivered only if no newer search has been started since, so a slow old
// response can never overwrite the results of the query the user actually
// typed last.
type SearchSession struct {
	api client.Client
	seq atomic.Uint64
}

func NewSearchSession(api client.Client) *SearchSession {
	return &SearchSession{api: api}
}

// Search runs the query in the background and calls deliver with the outcome
// unless a newer Search has been issued in the meantime, in which case the
// response is dropped silently. deliver runs on the background goroutine.
func (s *SearchSession) Search(ctx context.Context, query string, deliver func(*client.SearchResult, error)) {
	seq := s.seq.Add(1)
	go func() {
		result, err := s.api.Search(ctx, query)
		if s.seq.Load() != seq {
			// a newer query superseded this one
			return
		}
		deliver(result, err)
	}()
}

// SearchSync runs the query in the calling goroutine. The sequence number
// still advances, so any in-flight async search becomes stale.
func (s *SearchSession) SearchSync(ctx context.Context, query string) (*client.SearchResult, error) {
	seq := s.seq.Add(1)
	result, err := s.api.Search(ctx, query)
	if s.seq.Load() != seq {
		return nil, ErrSuperseded
	}
	return result, err
}
