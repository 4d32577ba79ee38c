package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dscommerce/commerce-api/internal/api/metrics"
	"github.com/dscommerce/commerce-api/internal/core/domain"
	"github.com/dscommerce/commerce-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// --- Request / Response types ---

type orderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items"`
}

type clientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type orderItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	SubTotal  float64 `json:"sub_total"`
}

type orderResponse struct {
	ID        int64               `json:"id"`
	OrderedAt time.Time           `json:"ordered_at"`
	Status    string              `json:"status"`
	Client    clientResponse      `json:"client"`
	Items     []orderItemResponse `json:"items"`
	Total     float64             `json:"total"`
}

func toOrderResponse(d *ports.OrderDetail) orderResponse {
	items := make([]orderItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, orderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			SubTotal:  it.SubTotal,
		})
	}
	return orderResponse{
		ID:        d.ID,
		OrderedAt: d.OrderedAt,
		Status:    d.Status,
		Client:    clientResponse{ID: d.Client.ID, Name: d.Client.Name},
		Items:     items,
		Total:     d.Total,
	}
}

// Create handles POST /orders.
//
// @Summary      Place a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order items"
// @Success      201   {object}  orderResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	detail, err := h.service.Create(c.Request().Context(), principal, items)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues("order").Inc()
		}
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toOrderResponse(detail))
}

// Get handles GET /orders/:id.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.FindByID(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(detail))
}
