package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dscommerce/commerce-api/internal/api/metrics"
	"github.com/dscommerce/commerce-api/internal/core/domain"
	"github.com/dscommerce/commerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// --- Request / Response types ---

type categoryRef struct {
	ID int64 `json:"id"`
}

type productRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	ImgURL      string        `json:"img_url"`
	Categories  []categoryRef `json:"categories"`
}

func (r productRequest) toInput() ports.ProductInput {
	ids := make([]int64, 0, len(r.Categories))
	for _, c := range r.Categories {
		ids = append(ids, c.ID)
	}
	return ports.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImgURL:      r.ImgURL,
		CategoryIDs: ids,
	}
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type productResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	ImgURL      string             `json:"img_url"`
	Categories  []categoryResponse `json:"categories"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
}

type listProductsResponse struct {
	Content    []productResponse  `json:"content"`
	Pagination paginationResponse `json:"pagination"`
}

func toProductResponse(d *ports.ProductDetail) productResponse {
	categories := make([]categoryResponse, 0, len(d.Categories))
	for _, c := range d.Categories {
		categories = append(categories, categoryResponse{ID: c.ID, Name: c.Name})
	}
	return productResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImgURL:      d.ImgURL,
		Categories:  categories,
	}
}

// List handles GET /products.
//
// @Summary      List products, optionally filtered by name
// @Tags         products
// @Produce      json
// @Param        name  query     string  false  "Case-insensitive name filter"
// @Param        page  query     int     false  "Page number (1-based)"
// @Param        size  query     int     false  "Page size"
// @Success      200   {object}  listProductsResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	result, err := h.service.FindAll(c.Request().Context(), ports.ListProductsFilter{
		Name: c.QueryParam("name"),
		Page: page,
		Size: size,
	})
	if err != nil {
		return err
	}

	content := make([]productResponse, 0, len(result.Items))
	for i := range result.Items {
		content = append(content, toProductResponse(&result.Items[i]))
	}

	return c.JSON(http.StatusOK, listProductsResponse{
		Content: content,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Size:       result.Size,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(detail))
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  productResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Create(c.Request().Context(), principal, req.toInput())
	if err != nil {
		return countProductFailure(err)
	}

	metrics.ProductWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toProductResponse(detail))
}

// Update handles PUT /products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  productResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Update(c.Request().Context(), principal, id, req.toInput())
	if err != nil {
		return countProductFailure(err)
	}

	metrics.ProductWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toProductResponse(detail))
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// countProductFailure records validation rejections before propagating the
// error to the central handler.
func countProductFailure(err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		metrics.ValidationFailuresTotal.WithLabelValues("product").Inc()
	}
	return err
}
