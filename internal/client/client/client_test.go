package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T) (*httptest.Server, *APIClient) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "email and password are required"})
			return
		}
		if body.Email == "taken@x.com" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "account created"})
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	})
	mux.HandleFunc("GET /profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(Profile{
			ID:        "id-1",
			Email:     "a@x.com",
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		})
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, New(ts.URL)
}

func TestRegister(t *testing.T) {
	_, api := newTestServer(t)

	if err := api.Register(context.Background(), "a@x.com", "pw"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	err := api.Register(context.Background(), "taken@x.com", "pw")
	if err == nil || err.Error() != "email already registered" {
		t.Fatalf("expected server error message, got %v", err)
	}
}

func TestLoginAndProfile(t *testing.T) {
	_, api := newTestServer(t)

	token, err := api.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("unexpected token: %q", token)
	}

	profile, err := api.Profile(context.Background(), token)
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if profile.ID != "id-1" || profile.Email != "a@x.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if _, err := api.Profile(context.Background(), "bad-token"); err == nil {
		t.Fatal("expected error for bad token")
	}
}
