package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campushub/internal/server/metrics"
)

func (s *Server) handleSearch(c echo.Context) error {
	result, err := s.search.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		metrics.SearchTotal.WithLabelValues("error").Inc()
		return httpError(err)
	}
	metrics.SearchTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toSearchResponse(result))
}

func (s *Server) handleFeaturedFeed(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	events := s.feed.FeaturedEvents(c.Request().Context(), currentUserID(c), limit)
	return c.JSON(http.StatusOK, toEventResponses(events))
}
