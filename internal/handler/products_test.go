package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DRTX2/products-api/internal/apierror"
	"github.com/DRTX2/products-api/internal/dto"
	"github.com/DRTX2/products-api/internal/service"
)

// ── Stub service ─────────────────────────────────────────────────────────────

// stubProductService returns canned values and records the arguments the
// handler passed, so the tests can assert on clamping and wiring.
type stubProductService struct {
	listResult dto.ProductListResult
	product    dto.ProductResponse
	price      dto.ProductPriceResponse
	prices     []dto.ProductPriceResponse
	err        error

	gotPage    int
	gotPerPage int
	gotID      uint
}

func (s *stubProductService) List(_ context.Context, page, perPage int) (dto.ProductListResult, error) {
	s.gotPage, s.gotPerPage = page, perPage
	return s.listResult, s.err
}

func (s *stubProductService) Create(_ context.Context, _ dto.CreateProductRequest) (dto.ProductResponse, error) {
	return s.product, s.err
}

func (s *stubProductService) FindByID(_ context.Context, id uint) (dto.ProductResponse, error) {
	s.gotID = id
	return s.product, s.err
}

func (s *stubProductService) Update(_ context.Context, id uint, _ dto.UpdateProductRequest) (dto.ProductResponse, error) {
	s.gotID = id
	return s.product, s.err
}

func (s *stubProductService) Delete(_ context.Context, id uint) error {
	s.gotID = id
	return s.err
}

func (s *stubProductService) ListPrices(_ context.Context, id uint) ([]dto.ProductPriceResponse, error) {
	s.gotID = id
	return s.prices, s.err
}

func (s *stubProductService) CreatePrice(_ context.Context, id uint, _ dto.CreateProductPriceRequest) (dto.ProductPriceResponse, error) {
	s.gotID = id
	return s.price, s.err
}

var _ service.ProductService = (*stubProductService)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func newTestRouter(svc service.ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProductsHandler(svc)
	products := r.Group("/products")
	{
		products.GET("", h.List)
		products.POST("", h.Create)
		products.GET("/:id", h.Show)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
		products.GET("/:id/prices", h.ListPrices)
		products.POST("/:id/prices", h.CreatePrice)
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestListEmptyEnvelope(t *testing.T) {
	svc := &stubProductService{
		listResult: dto.ProductListResult{
			Products: []dto.ProductResponse{},
			Meta:     dto.Meta{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 0},
		},
	}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/products", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Lista de productos obtenida exitosamente.", env["message"])
	// An empty page still serializes data as [].
	assert.Equal(t, []any{}, env["data"])
	meta := env["meta"].(map[string]any)
	assert.Equal(t, 15.0, meta["per_page"])
	assert.Equal(t, 0.0, meta["total"])
}

func TestListPerPageDefaultsAndClamping(t *testing.T) {
	cases := []struct {
		query   string
		perPage int
		page    int
	}{
		{"", 15, 1},
		{"?per_page=3", 3, 1},
		{"?per_page=500", 100, 1},
		{"?per_page=0", 1, 1},
		{"?per_page=-5", 1, 1},
		{"?per_page=abc", 15, 1},
		{"?per_page=10&page=2", 10, 2},
		{"?page=0", 15, 1},
	}
	for _, tc := range cases {
		svc := &stubProductService{}
		r := newTestRouter(svc)

		w := doRequest(t, r, http.MethodGet, "/products"+tc.query, nil)

		assert.Equal(t, http.StatusOK, w.Code, tc.query)
		assert.Equal(t, tc.perPage, svc.gotPerPage, tc.query)
		assert.Equal(t, tc.page, svc.gotPage, tc.query)
	}
}

// ── Show / Delete / not found ────────────────────────────────────────────────

func TestShowNotFound(t *testing.T) {
	svc := &stubProductService{err: apierror.ErrProductNotFound}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/products/9999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Producto no encontrado.", env["message"])
	assert.Equal(t, uint(9999), svc.gotID)
}

func TestShowNonNumericIDIs404(t *testing.T) {
	svc := &stubProductService{}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/products/abc", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Producto no encontrado.", env["message"])
	// The service is never reached.
	assert.Equal(t, uint(0), svc.gotID)
}

func TestShowOK(t *testing.T) {
	svc := &stubProductService{product: dto.ProductResponse{ID: 7, Name: "Producto Específico"}}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/products/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Producto obtenido exitosamente.", env["message"])
	data := env["data"].(map[string]any)
	assert.Equal(t, "Producto Específico", data["name"])
}

func TestDeleteOK(t *testing.T) {
	svc := &stubProductService{}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodDelete, "/products/3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Producto eliminado exitosamente.", env["message"])
	assert.Equal(t, uint(3), svc.gotID)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateValidationEnvelope(t *testing.T) {
	svc := &stubProductService{
		err: apierror.NewValidation(map[string][]string{
			"price":       {"El precio no puede ser negativo."},
			"currency_id": {"La divisa seleccionada no existe."},
		}),
	}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/products", map[string]any{
		"name": "Producto", "price": -10, "currency_id": 9999,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Error de validación", env["message"])
	errs := env["errors"].(map[string]any)
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "currency_id")
}

func TestCreateCreated(t *testing.T) {
	svc := &stubProductService{product: dto.ProductResponse{ID: 1, Name: "X", Price: 50, TaxCost: 0}}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/products", map[string]any{
		"name": "X", "price": 50.0, "currency_id": 1,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Producto creado exitosamente.", env["message"])
	data := env["data"].(map[string]any)
	assert.Equal(t, 0.0, data["tax_cost"])
}

func TestCreateMalformedJSON(t *testing.T) {
	svc := &stubProductService{}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ── Prices ───────────────────────────────────────────────────────────────────

func TestCreatePriceCreated(t *testing.T) {
	svc := &stubProductService{price: dto.ProductPriceResponse{ID: 1, ProductID: 5, CurrencyID: 2, Price: 87.5}}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/products/5/prices", map[string]any{
		"currency_id": 2, "price": 87.5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Precio del producto creado exitosamente.", env["message"])
	data := env["data"].(map[string]any)
	assert.Equal(t, 87.5, data["price"])
	assert.Equal(t, uint(5), svc.gotID)
}

func TestCreatePriceDuplicate422(t *testing.T) {
	svc := &stubProductService{
		err: apierror.NewValidation(map[string][]string{
			"currency_id": {"Ya existe un precio para este producto en la divisa seleccionada."},
		}),
	}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/products/5/prices", map[string]any{
		"currency_id": 2, "price": 87.5,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	errs := env["errors"].(map[string]any)
	assert.Contains(t, errs, "currency_id")
}

func TestListPricesOK(t *testing.T) {
	svc := &stubProductService{prices: []dto.ProductPriceResponse{}}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/products/5/prices", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Precios del producto obtenidos exitosamente.", env["message"])
	assert.Equal(t, []any{}, env["data"])
}

func TestInternalErrorEnvelope(t *testing.T) {
	svc := &stubProductService{err: assert.AnError}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/products/1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Error interno del servidor", env["message"])
}
