package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DRTX2/products-api/internal/dto"
	"github.com/DRTX2/products-api/internal/service"
)

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// parseID reads the numeric {id} path param. A non-numeric id is
// answered with the fixed 404 envelope — the route is numeric-only, so
// "abc" is just an address that does not exist.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondProductNotFound(c)
		return 0, false
	}
	return uint(id), true
}

// List responds GET /products with a page of products.
// per_page defaults to 15 and is clamped to [1,100]; page defaults to 1.
func (h *ProductsHandler) List(c *gin.Context) {
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil {
		perPage = defaultPerPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.svc.List(c.Request.Context(), page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Lista de productos obtenida exitosamente.", result.Products, result.Meta)
}

// Create responds POST /products.
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c)
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Producto creado exitosamente.", resp)
}

// Show responds GET /products/{id}.
func (h *ProductsHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Producto obtenido exitosamente.", resp)
}

// Update responds PUT /products/{id} with a partial update.
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c)
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Producto actualizado exitosamente.", resp)
}

// Delete responds DELETE /products/{id} with a soft delete.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Producto eliminado exitosamente.", nil)
}

// ListPrices responds GET /products/{id}/prices.
func (h *ProductsHandler) ListPrices(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	prices, err := h.svc.ListPrices(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Precios del producto obtenidos exitosamente.", prices)
}

// CreatePrice responds POST /products/{id}/prices.
func (h *ProductsHandler) CreatePrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateProductPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c)
		return
	}
	resp, err := h.svc.CreatePrice(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Precio del producto creado exitosamente.", resp)
}
