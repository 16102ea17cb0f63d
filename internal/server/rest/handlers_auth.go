package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := s.users.Register(c.Request().Context(), req.Email, req.UserName, req.DisplayName, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	pair, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (s *Server) handleRefresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	pair, err := s.users.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (s *Server) handleResetRequest(c echo.Context) error {
	var req resetRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// The response is identical whether or not the account exists, so the
	// endpoint cannot be used to probe for registered emails.
	if _, err := s.users.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		s.logger.Warn(c.Request().Context(), "password reset request failed", "error", err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (s *Server) handleResetConfirm(c echo.Context) error {
	var req resetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.users.ConfirmPasswordReset(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetInterests(c echo.Context) error {
	interests, err := s.users.GetInterests(c.Request().Context(), currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	if interests == nil {
		interests = []string{}
	}
	return c.JSON(http.StatusOK, interestsPayload{Interests: interests})
}

func (s *Server) handleSetInterests(c echo.Context) error {
	var req interestsPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.users.SetInterests(c.Request().Context(), currentUserID(c), req.Interests); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
