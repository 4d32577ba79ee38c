package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/dscommerce/commerce-api/internal/core/authz"
)

// PrincipalKey is the context key under which the authenticated principal is
// stored.
const PrincipalKey = "principal"

// Auth validates the bearer token and injects the resolved principal into the
// request context. Any missing, malformed, expired, or unverifiable token is
// rejected with 401 before role or validation logic runs.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PrincipalKey, principalFromClaims(claims))
			return next(c)
		}
	}
}

func principalFromClaims(claims jwt.MapClaims) *authz.Principal {
	p := &authz.Principal{}
	// MapClaims decodes JSON numbers as float64.
	if sub, ok := claims["sub"].(float64); ok {
		p.UserID = int64(sub)
	}
	p.Name, _ = claims["name"].(string)
	p.Email, _ = claims["email"].(string)
	if roles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range roles {
			if role, ok := r.(string); ok {
				p.Roles = append(p.Roles, authz.Role(role))
			}
		}
	}
	return p
}
