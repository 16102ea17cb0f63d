package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleMediaUploadURL(c echo.Context) error {
	key, url, err := s.media.GetPresignedPutUrl(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, uploadURLResponse{Key: key, URL: url})
}

func (s *Server) handleMediaGetURL(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key is required")
	}
	url, err := s.media.GetPresignedGetUrl(c.Request().Context(), key)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, mediaURLResponse{URL: url})
}
