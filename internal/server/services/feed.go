package services

import (
	"context"
	"database/sql"
	"time"

	"campushub/internal/logging"
	"campushub/internal/server/metrics"
	"campushub/internal/server/models"
	"campushub/internal/server/repositories/repomanager"
)

// defaultFeaturedLimit caps the featured feed when the caller does not
// constrain it. The feed is a teaser, not a listing.
const defaultFeaturedLimit = 3

// defaultListLimit is used by the plain listing endpoints.
const defaultListLimit = 20

// FeedService selects the events shown on a user's landing feed. The feed is
// best-effort: any backend failure degrades to an empty list rather than an
// error, so the page still renders.
type FeedService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewFeedService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *FeedService {
	return &FeedService{db: db, repomanager: m, logger: logger}
}

// FeaturedEvents returns upcoming events for the user's feed.
//
// Signed-in users with interest tags get events in those categories first.
// When the interest-filtered query matches nothing, the feed falls back to
// the generic upcoming list, so a user whose interests are quiet weeks still
// sees something. Anonymous users (empty userID) always get the generic list.
func (s *FeedService) FeaturedEvents(ctx context.Context, userID string, limit int) []models.Event {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	now := time.Now()

	if userID == "" {
		return s.genericFeed(ctx, now, limit)
	}

	interests, err := s.repomanager.Users(s.db).GetInterests(ctx, userID)
	if err != nil {
		s.logger.Warn(ctx, "error loading user interests, feed degraded", "user_id", userID, "error", err)
		return []models.Event{}
	}
	if len(interests) == 0 {
		return s.genericFeed(ctx, now, limit)
	}

	events, err := s.repomanager.Events(s.db).ListUpcomingByCategories(ctx, now, interests, limit)
	if err != nil {
		s.logger.Warn(ctx, "error loading interest feed, feed degraded", "user_id", userID, "error", err)
		return []models.Event{}
	}
	if len(events) == 0 {
		metrics.FeedFallbackTotal.Inc()
		return s.genericFeed(ctx, now, limit)
	}
	return events
}

func (s *FeedService) genericFeed(ctx context.Context, from time.Time, limit int) []models.Event {
	events, err := s.repomanager.Events(s.db).ListUpcoming(ctx, from, limit)
	if err != nil {
		s.logger.Warn(ctx, "error loading upcoming events, feed degraded", "error", err)
		return []models.Event{}
	}
	return events
}
