package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/homazon/homazon-backend/internal/auth"
	cartsvc "github.com/homazon/homazon-backend/internal/cart"
	"github.com/homazon/homazon-backend/internal/catalog"
	ordersvc "github.com/homazon/homazon-backend/internal/orders"
	pkgAuth "github.com/homazon/homazon-backend/pkg/auth"
	"github.com/homazon/homazon-backend/pkg/config"
	"github.com/homazon/homazon-backend/pkg/pagination"
)

type stubCatalogService struct{}

func (stubCatalogService) CreateProduct(context.Context, catalog.CreateProductInput) (*catalog.ProductDTO, error) {
	return &catalog.ProductDTO{ID: uuid.New()}, nil
}

func (stubCatalogService) UpdateProduct(context.Context, uuid.UUID, catalog.UpdateProductInput) (*catalog.ProductDTO, error) {
	return &catalog.ProductDTO{}, nil
}

func (stubCatalogService) DeleteProduct(context.Context, uuid.UUID) error {
	return nil
}

func (stubCatalogService) GetProduct(context.Context, uuid.UUID) (*catalog.ProductDTO, error) {
	return &catalog.ProductDTO{}, nil
}

func (stubCatalogService) ListProducts(context.Context, pagination.Params) (*catalog.ProductListDTO, error) {
	return &catalog.ProductListDTO{Products: []catalog.ProductDTO{}}, nil
}

func (stubCatalogService) AddVariant(context.Context, uuid.UUID, catalog.VariantInput) (*catalog.VariantDTO, error) {
	return &catalog.VariantDTO{}, nil
}

func (stubCatalogService) UpdateVariant(context.Context, uuid.UUID, catalog.UpdateVariantInput) (*catalog.VariantDTO, error) {
	return &catalog.VariantDTO{}, nil
}

func (stubCatalogService) DeleteVariant(context.Context, uuid.UUID) error {
	return nil
}

func (stubCatalogService) GetVariantDetail(context.Context, uuid.UUID) (*catalog.VariantDetail, error) {
	return nil, nil
}

type stubCartService struct{}

func (stubCartService) Get(ctx context.Context, sessionID string) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{SessionID: sessionID, Lines: []cartsvc.Line{}}, nil
}

func (stubCartService) Add(ctx context.Context, sessionID string, variantID uuid.UUID, quantity int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{SessionID: sessionID}, nil
}

func (stubCartService) UpdateQuantity(ctx context.Context, sessionID string, variantID uuid.UUID, quantity int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{SessionID: sessionID}, nil
}

func (stubCartService) Remove(ctx context.Context, sessionID string, variantID uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{SessionID: sessionID}, nil
}

func (stubCartService) Clear(ctx context.Context, sessionID string) error {
	return nil
}

func (stubCartService) Lines(ctx context.Context, sessionID string) ([]cartsvc.Line, error) {
	return nil, nil
}

type stubCheckoutService struct{}

func (stubCheckoutService) Checkout(ctx context.Context, userID uuid.UUID, sessionID string) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{ID: uuid.New()}, nil
}

func testRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	return NewRouter(cfg, nil, nil, nil, Services{
		Auth:     authsvc.Service(nil),
		Catalog:  stubCatalogService{},
		Cart:     stubCartService{},
		Checkout: stubCheckoutService{},
		Orders:   ordersvc.Service(nil),
		Users:    nil,
	}, nil)
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60},
	}
}

func mintToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:    uuid.New(),
		SessionID: uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRouterPublicProductsNeedsNoToken(t *testing.T) {
	router := testRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/public/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterHealthLive(t *testing.T) {
	router := testRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if resp.Header().Get("X-Homazon-Env") != "test" {
		t.Fatalf("missing env header")
	}
}

func TestRouterCartRequiresToken(t *testing.T) {
	router := testRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRouterCartWithToken(t *testing.T) {
	cfg := testConfig()
	router := testRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterAdminRejectsRegularUser(t *testing.T) {
	cfg := testConfig()
	router := testRouter(t, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}
