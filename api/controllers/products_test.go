package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/homazon/homazon-backend/internal/catalog"
	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
	"github.com/homazon/homazon-backend/pkg/pagination"
)

type stubCatalogService struct {
	product *catalog.ProductDTO
	variant *catalog.VariantDTO
	page    *catalog.ProductListDTO
	err     error

	lastParams pagination.Params
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input catalog.UpdateProductInput) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	return s.err
}

func (s *stubCatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) ListProducts(ctx context.Context, params pagination.Params) (*catalog.ProductListDTO, error) {
	s.lastParams = params
	return s.page, s.err
}

func (s *stubCatalogService) AddVariant(ctx context.Context, productID uuid.UUID, input catalog.VariantInput) (*catalog.VariantDTO, error) {
	return s.variant, s.err
}

func (s *stubCatalogService) UpdateVariant(ctx context.Context, variantID uuid.UUID, input catalog.UpdateVariantInput) (*catalog.VariantDTO, error) {
	return s.variant, s.err
}

func (s *stubCatalogService) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	return s.err
}

func (s *stubCatalogService) GetVariantDetail(ctx context.Context, variantID uuid.UUID) (*catalog.VariantDetail, error) {
	return nil, s.err
}

func TestProductsListPassesPageParams(t *testing.T) {
	svc := &stubCatalogService{page: &catalog.ProductListDTO{Products: []catalog.ProductDTO{{ID: uuid.New()}}}}
	handler := ProductsList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/public/products?limit=10&cursor=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastParams.Limit != 10 || svc.lastParams.Cursor != "abc" {
		t.Fatalf("unexpected params %+v", svc.lastParams)
	}
}

func TestProductsListRejectsBadLimit(t *testing.T) {
	handler := ProductsList(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/public/products?limit=nope", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductGetInvalidID(t *testing.T) {
	handler := ProductGet(&stubCatalogService{}, nil)

	router := chi.NewRouter()
	router.Get("/products/{productId}", handler)

	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductGetNotFound(t *testing.T) {
	handler := ProductGet(&stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}, nil)

	router := chi.NewRouter()
	router.Get("/products/{productId}", handler)

	req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.NewString(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestAdminProductCreateSuccess(t *testing.T) {
	productID := uuid.New()
	handler := AdminProductCreate(&stubCatalogService{product: &catalog.ProductDTO{ID: productID, Title: "Walkman"}}, nil)

	body, _ := json.Marshal(map[string]any{
		"title": "Walkman",
		"variants": []map[string]any{
			{"title": "Blue", "price_cents": 1999, "stock": 5},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/products", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var envelope struct {
		Data catalog.ProductDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != productID {
		t.Fatalf("unexpected product id %s", envelope.Data.ID)
	}
}

func TestAdminProductCreateRejectsUnknownField(t *testing.T) {
	handler := AdminProductCreate(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/products",
		bytes.NewReader([]byte(`{"title":"Walkman","sku":"nope"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
