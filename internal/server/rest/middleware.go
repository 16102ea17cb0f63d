package rest

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"campushub/internal/common"
	"campushub/internal/server/auth"
	"campushub/internal/server/metrics"
)

// userIDContextKey is where the auth middleware stores the caller's ID.
const userIDContextKey = "userID"

// currentUserID returns the authenticated user's ID or "" for anonymous
// requests.
func currentUserID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}

func (s *Server) extractUserID(c echo.Context) (string, error) {
	header := c.Request().Header.Get(common.AccessTokenHeaderName)
	if header == "" {
		return "", common.ErrorUnauthorized
	}
	token, ok := strings.CutPrefix(header, common.AccessTokenScheme+" ")
	if !ok {
		return "", common.ErrorUnauthorized
	}
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", common.ErrInvalidToken
	}
	return userID, nil
}

// authMiddleware rejects requests without a valid bearer token.
func (s *Server) authMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := s.extractUserID(c)
			if err != nil {
				return httpError(err)
			}
			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// optionalAuthMiddleware identifies the caller when a valid token is present
// and lets anonymous requests through.
func (s *Server) optionalAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, err := s.extractUserID(c); err == nil {
				c.Set(userIDContextKey, userID)
			}
			return next(c)
		}
	}
}

// observeMiddleware records request counts and latencies.
func observeMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			route := c.Path()
			method := c.Request().Method
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			metrics.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			metrics.RequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// requestLogMiddleware logs one line per request.
func (s *Server) requestLogMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			ctx := c.Request().Context()
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			if err != nil && status >= 500 {
				s.logger.Error(ctx, "request failed",
					"method", c.Request().Method,
					"uri", c.Request().RequestURI,
					"status", status,
					"latency_ms", time.Since(start).Milliseconds(),
					"error", err)
			} else {
				s.logger.Info(ctx, "request completed",
					"method", c.Request().Method,
					"uri", c.Request().RequestURI,
					"status", status,
					"latency_ms", time.Since(start).Milliseconds())
			}
			return err
		}
	}
}
