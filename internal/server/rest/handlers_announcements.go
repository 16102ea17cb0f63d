package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListAnnouncements(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	list, err := s.announcements.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toAnnouncementResponses(list))
}

func (s *Server) handleGetAnnouncement(c echo.Context) error {
	a, err := s.announcements.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toAnnouncementResponse(a))
}

func (s *Server) handleCreateAnnouncement(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a, err := s.announcements.Create(c.Request().Context(), currentUserID(c), req.toModel())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toAnnouncementResponse(a))
}

func (s *Server) handleUpdateAnnouncement(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a := req.toModel()
	a.ID = c.Param("id")

	if err := s.announcements.Update(c.Request().Context(), currentUserID(c), a); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDeleteAnnouncement(c echo.Context) error {
	if err := s.announcements.Delete(c.Request().Context(), currentUserID(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
