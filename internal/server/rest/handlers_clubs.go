package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListClubs(c echo.Context) error {
	clubs, err := s.clubs.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toClubResponses(clubs))
}

func (s *Server) handleGetClub(c echo.Context) error {
	club, err := s.clubs.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toClubResponse(club))
}

func (s *Server) handleCreateClub(c echo.Context) error {
	var req clubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	club, err := s.clubs.Create(c.Request().Context(), currentUserID(c), req.toModel())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toClubResponse(club))
}

func (s *Server) handleUpdateClub(c echo.Context) error {
	var req clubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	club := req.toModel()
	club.ID = c.Param("id")

	if err := s.clubs.Update(c.Request().Context(), currentUserID(c), club); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDeleteClub(c echo.Context) error {
	if err := s.clubs.Delete(c.Request().Context(), currentUserID(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleJoinClub(c echo.Context) error {
	if err := s.clubs.Join(c.Request().Context(), c.Param("id"), currentUserID(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleLeaveClub(c echo.Context) error {
	if err := s.clubs.Leave(c.Request().Context(), c.Param("id"), currentUserID(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleListJoinedClubs(c echo.Context) error {
	clubs, err := s.clubs.ListJoined(c.Request().Context(), currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toClubResponses(clubs))
}
