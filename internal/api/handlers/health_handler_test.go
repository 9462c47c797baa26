package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	h := NewHealthHandler("development")
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "success" {
		t.Fatalf("expected success status, got %q", body["status"])
	}
	if body["message"] != "AI Job Accessibility API is running" {
		t.Fatalf("unexpected message %q", body["message"])
	}
	if body["environment"] != "development" {
		t.Fatalf("unexpected environment %q", body["environment"])
	}
	if body["timestamp"] == "" {
		t.Fatal("timestamp missing")
	}
}
