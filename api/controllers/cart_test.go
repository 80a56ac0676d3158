package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/homazon/homazon-backend/api/middleware"
	cartsvc "github.com/homazon/homazon-backend/internal/cart"
	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
)

type stubCartService struct {
	cart *cartsvc.CartDTO
	err  error

	addedQuantity *int
}

func (s stubCartService) Get(ctx context.Context, sessionID string) (*cartsvc.CartDTO, error) {
	return s.cart, s.err
}

func (s stubCartService) Add(ctx context.Context, sessionID string, variantID uuid.UUID, quantity int) (*cartsvc.CartDTO, error) {
	if s.addedQuantity != nil {
		*s.addedQuantity = quantity
	}
	return s.cart, s.err
}

func (s stubCartService) UpdateQuantity(ctx context.Context, sessionID string, variantID uuid.UUID, quantity int) (*cartsvc.CartDTO, error) {
	return s.cart, s.err
}

func (s stubCartService) Remove(ctx context.Context, sessionID string, variantID uuid.UUID) (*cartsvc.CartDTO, error) {
	return s.cart, s.err
}

func (s stubCartService) Clear(ctx context.Context, sessionID string) error {
	return s.err
}

func (s stubCartService) Lines(ctx context.Context, sessionID string) ([]cartsvc.Line, error) {
	return nil, s.err
}

func withSession(req *http.Request, sessionID string) *http.Request {
	return req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
}

func TestCartGetSuccess(t *testing.T) {
	sessionID := uuid.NewString()
	handler := CartGet(stubCartService{cart: &cartsvc.CartDTO{SessionID: sessionID}}, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), sessionID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.CartDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.SessionID != sessionID {
		t.Fatalf("unexpected session id: %s", envelope.Data.SessionID)
	}
}

func TestCartGetMissingSessionContext(t *testing.T) {
	handler := CartGet(stubCartService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartAddItemDefaultsQuantityToOne(t *testing.T) {
	sessionID := uuid.NewString()
	var quantity int
	handler := CartAddItem(stubCartService{cart: &cartsvc.CartDTO{SessionID: sessionID}, addedQuantity: &quantity}, nil)

	body, _ := json.Marshal(map[string]any{"variant_id": uuid.New()})
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body)), sessionID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if quantity != 1 {
		t.Fatalf("expected quantity 1 got %d", quantity)
	}
}

func TestCartAddItemRejectsNegativeQuantity(t *testing.T) {
	handler := CartAddItem(stubCartService{}, nil)

	body, _ := json.Marshal(map[string]any{"variant_id": uuid.New(), "quantity": -1})
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body)), uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemUnknownVariant(t *testing.T) {
	handler := CartAddItem(stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")}, nil)

	body, _ := json.Marshal(map[string]any{"variant_id": uuid.New(), "quantity": 2})
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body)), uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
