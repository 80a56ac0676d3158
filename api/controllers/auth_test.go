package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authsvc "github.com/homazon/homazon-backend/internal/auth"
	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
)

type stubAuthService struct {
	result *authsvc.AuthResult
	err    error

	lastRegister authsvc.RegisterInput
}

func (s *stubAuthService) Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error) {
	s.lastRegister = input
	return s.result, s.err
}

func (s *stubAuthService) Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResult, error) {
	return s.result, s.err
}

func TestAuthRegisterSuccess(t *testing.T) {
	svc := &stubAuthService{result: &authsvc.AuthResult{Token: "signed", SessionID: "sess"}}
	handler := AuthRegister(svc, nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "ada@example.com",
		"username": "  ada  ",
		"password": "hunter2hunter2",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if svc.lastRegister.Username != "ada" {
		t.Fatalf("expected trimmed username, got %q", svc.lastRegister.Username)
	}

	var envelope struct {
		Data authsvc.AuthResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Token != "signed" {
		t.Fatalf("unexpected token %q", envelope.Data.Token)
	}
}

func TestAuthRegisterRejectsShortPassword(t *testing.T) {
	handler := AuthRegister(&stubAuthService{}, nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "ada@example.com",
		"username": "ada",
		"password": "short",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	handler := AuthRegister(&stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "email already registered")}, nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "ada@example.com",
		"username": "ada",
		"password": "hunter2hunter2",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}

func TestAuthLoginBadCredentials(t *testing.T) {
	handler := AuthLogin(&stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}, nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
