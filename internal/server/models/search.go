package models

// SearchResultSet is the transient aggregate produced by one search call.
// It reflects exactly one query string; callers discard it and build a new
// one for every search.
type SearchResultSet struct {
	Events        []Event
	Clubs         []Club
	Announcements []Announcement
}

// Empty reports whether no category matched anything.
func (s *SearchResultSet) Empty() bool {
	return len(s.Events) == 0 && len(s.Clubs) == 0 && len(s.Announcements) == 0
}
