package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dscommerce/commerce-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the authenticated user's account.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userResponse struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// Me handles GET /users/me.
//
// @Summary      Get the authenticated user's own representation
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetMe(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:    detail.ID,
		Name:  detail.Name,
		Email: detail.Email,
		Roles: detail.Roles,
	})
}
