package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"campushub/internal/server/models"
	"campushub/internal/server/repositories/repomanager"
)

// searchCategoryLimit caps the number of rows returned per category.
const searchCategoryLimit = 10

// SearchService aggregates one text query across events, clubs, and
// announcements. The three category queries run concurrently; the whole
// search fails as a unit, so callers never see partial results.
type SearchService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSearchService(db *sql.DB, m repomanager.RepositoryManager) *SearchService {
	return &SearchService{db: db, repomanager: m}
}

// Search runs a case-insensitive substring match across all three
// categories. A blank query returns an empty result set without touching
// the database.
func (s *SearchService) Search(ctx context.Context, query string) (*models.SearchResultSet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &models.SearchResultSet{}, nil
	}

	result := &models.SearchResultSet{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := s.repomanager.Events(s.db).SearchByText(ctx, query, searchCategoryLimit)
		if err != nil {
			return fmt.Errorf("error searching events: %v", err)
		}
		result.Events = events
		return nil
	})

	g.Go(func() error {
		clubs, err := s.repomanager.Clubs(s.db).SearchByText(ctx, query, searchCategoryLimit)
		if err != nil {
			return fmt.Errorf("error searching clubs: %v", err)
		}
		result.Clubs = clubs
		return nil
	})

	g.Go(func() error {
		announcements, err := s.repomanager.Announcements(s.db).SearchByText(ctx, query, searchCategoryLimit)
		if err != nil {
			return fmt.Errorf("error searching announcements: %v", err)
		}
		result.Announcements = announcements
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
