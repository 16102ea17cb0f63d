package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListEvents(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	events, err := s.events.ListUpcoming(c.Request().Context(), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}

func (s *Server) handleGetEvent(c echo.Context) error {
	event, err := s.events.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toEventResponse(event))
}

func (s *Server) handleCreateEvent(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	event, err := s.events.Create(c.Request().Context(), currentUserID(c), req.toModel())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toEventResponse(event))
}

func (s *Server) handleUpdateEvent(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	event := req.toModel()
	event.ID = c.Param("id")

	if err := s.events.Update(c.Request().Context(), currentUserID(c), event); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDeleteEvent(c echo.Context) error {
	if err := s.events.Delete(c.Request().Context(), currentUserID(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleRegisterForEvent(c echo.Context) error {
	if err := s.events.Register(c.Request().Context(), c.Param("id"), currentUserID(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleUnregisterFromEvent(c echo.Context) error {
	if err := s.events.Unregister(c.Request().Context(), c.Param("id"), currentUserID(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
