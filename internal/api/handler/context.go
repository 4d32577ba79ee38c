package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dscommerce/commerce-api/internal/api/middleware"
	"github.com/dscommerce/commerce-api/internal/core/authz"
)

// principalFrom extracts the principal injected by the Auth middleware.
// A missing or empty principal means the middleware did not run or the token
// carried no usable identity; both are rejected with 401 before any service
// call.
func principalFrom(c echo.Context) (*authz.Principal, error) {
	p, _ := c.Get(middleware.PrincipalKey).(*authz.Principal)
	if p == nil || p.UserID == 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
