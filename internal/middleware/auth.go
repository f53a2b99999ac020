package middleware

import (
	"net/http"
	"strings"

	"github.com/fitzone/gym-booking/internal/dto"
	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/pkg/auth"
	"github.com/labstack/echo/v4"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Authenticate validates the Bearer token and stores the caller's identity on
// the request context. Downstream handlers trust these values.
func Authenticate(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return unauthorized("missing bearer token")
			}

			claims, err := tokens.ParseValidate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return unauthorized("invalid or expired token")
			}

			c.Set(ContextUserID, claims.Subject)
			c.Set(ContextRole, models.Role(claims.Role))
			return next(c)
		}
	}
}

// RequireRole allows the request through only for the listed roles. Must run
// after Authenticate.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(models.Role)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, dto.ErrorResponse{
				Code:    "ineligibleRole",
				Message: "insufficient role for this operation",
			})
		}
	}
}

func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}

func unauthorized(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    "unauthorized",
		Message: msg,
	})
}
