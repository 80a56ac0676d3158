package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/homazon/homazon-backend/api/middleware"
	ordersvc "github.com/homazon/homazon-backend/internal/orders"
	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
)

type stubCheckoutService struct {
	order *ordersvc.OrderDTO
	err   error
}

func (s stubCheckoutService) Checkout(ctx context.Context, userID uuid.UUID, sessionID string) (*ordersvc.OrderDTO, error) {
	return s.order, s.err
}

func checkoutRequest(userID uuid.UUID, sessionID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	ctx := middleware.WithUserID(req.Context(), userID.String())
	ctx = middleware.WithSessionID(ctx, sessionID)
	return req.WithContext(ctx)
}

func TestCheckoutSuccess(t *testing.T) {
	orderID := uuid.New()
	handler := Checkout(stubCheckoutService{order: &ordersvc.OrderDTO{ID: orderID}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, checkoutRequest(uuid.New(), uuid.NewString()))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var envelope struct {
		Data ordersvc.OrderDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != orderID {
		t.Fatalf("unexpected order id: %s", envelope.Data.ID)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	handler := Checkout(stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeEmptyCart, "cart contains no items")}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, checkoutRequest(uuid.New(), uuid.NewString()))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutStockUnavailable(t *testing.T) {
	short := uuid.New()
	handler := Checkout(stubCheckoutService{
		err: pkgerrors.New(pkgerrors.CodeStockUnavailable, "insufficient stock for one or more items").
			WithDetails([]uuid.UUID{short}),
	}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, checkoutRequest(uuid.New(), uuid.NewString()))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string   `json:"code"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeStockUnavailable) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
	if len(envelope.Error.Details) != 1 || envelope.Error.Details[0] != short.String() {
		t.Fatalf("expected the short variant id in details, got %v", envelope.Error.Details)
	}
}

func TestCheckoutMissingUserContext(t *testing.T) {
	handler := Checkout(stubCheckoutService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
