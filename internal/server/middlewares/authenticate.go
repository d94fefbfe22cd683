package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/checklist/internal/apierror"
	"github.com/mdouchement/checklist/internal/session"
	"github.com/pkg/errors"
)

const (
	// CurrentSessionContextKey is the key to retrieve the resolved identity from echo.Context.
	CurrentSessionContextKey = "current_session"
	// CurrentTokenContextKey is the key to retrieve the presented token from echo.Context.
	CurrentTokenContextKey = "current_token"
)

// Authenticate returns the middleware guarding every protected route.
// It extracts the bearer token, resolves it through the session manager
// and stores the resolved identity into echo.Context. This is the only
// point where identity is established; downstream handlers trust it.
func Authenticate(m session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c.Request())
			if token == "" {
				return apierror.Unauthenticated("Unauthorized")
			}

			record, err := m.Resolve(c.Request().Context(), token)
			if err != nil {
				return errors.Wrap(err, "could not get access to session store")
			}
			if record == nil {
				return apierror.InvalidToken()
			}

			c.Set(CurrentSessionContextKey, record)
			c.Set(CurrentTokenContextKey, token)
			return next(c)
		}
	}
}

// ExtractToken returns the bearer token presented by the request.
// The Authorization header is authoritative; X-Access-Token is only
// consulted when Authorization is absent, with an optional Bearer prefix.
func ExtractToken(r *http.Request) string {
	if authorization := r.Header.Get(echo.HeaderAuthorization); authorization != "" {
		return bearer(authorization)
	}
	token := r.Header.Get("X-Access-Token")
	if stripped := bearer(token); stripped != "" {
		return stripped
	}
	return token
}

func bearer(authorization string) string {
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
