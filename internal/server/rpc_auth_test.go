package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

func TestRequireTokenValid(t *testing.T) {
	secret := "test-secret-12345"
	handler := requireToken(secret, okHandler)

	req := httptest.NewRequest(http.MethodPost, "/rpc", nil)
	req.Header.Set("Authorization", "Bearer "+secret)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRequireTokenMissing(t *testing.T) {
	handler := requireToken("test-secret-12345", okHandler)

	req := httptest.NewRequest(http.MethodPost, "/rpc", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	if resp["jsonrpc"] != "2.0" {
		t.Fatalf("expected jsonrpc 2.0 error body, got %v", resp)
	}
}

func TestRequireTokenWrong(t *testing.T) {
	handler := requireToken("right", okHandler)

	req := httptest.NewRequest(http.MethodPost, "/rpc", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRequireTokenEmptySecretRejectsAll(t *testing.T) {
	handler := requireToken("", okHandler)

	req := httptest.NewRequest(http.MethodPost, "/rpc", nil)
	req.Header.Set("Authorization", "Bearer ")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestValidToken(t *testing.T) {
	cases := []struct {
		secret, header string
		want           bool
	}{
		{"s3cret", "Bearer s3cret", true},
		{"s3cret", "Bearer nope", false},
		{"s3cret", "s3cret", false},
		{"s3cret", "", false},
		{"", "Bearer ", false},
	}
	for _, c := range cases {
		if got := validToken(c.secret, c.header); got != c.want {
			t.Errorf("validToken(%q, %q) = %v, want %v", c.secret, c.header, got, c.want)
		}
	}
}
