package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDMiddleware(t *testing.T) {
	s := New()

	var captured string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("generates when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		if captured == "" {
			t.Fatal("expected request ID in context")
		}
		if _, err := uuid.Parse(captured); err != nil {
			t.Errorf("expected valid UUID, got %q", captured)
		}
		if w.Header().Get("X-Request-Id") != captured {
			t.Error("expected request ID echoed in response header")
		}
	})

	t.Run("preserves valid incoming ID", func(t *testing.T) {
		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-Id", id)
		w := httptest.NewRecorder()
		handler(w, req)

		if captured != id {
			t.Errorf("expected incoming ID %q preserved, got %q", id, captured)
		}
	})

	t.Run("replaces malformed incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-Id", "not-a-uuid")
		w := httptest.NewRecorder()
		handler(w, req)

		if captured == "not-a-uuid" {
			t.Error("expected malformed ID to be replaced")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	s := New(WithRateLimit(1, 1))

	handler := s.requestIDMiddleware(s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request: expected %d, got %d", http.StatusOK, w.Code)
	}

	// Burst of 1 exhausted, second immediate request must be rejected.
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected %d, got %d", http.StatusTooManyRequests, w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on rejection")
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := New()

	handler := s.panicRecoveryMiddleware(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestResponseWriterStatusTracking(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newResponseWriter(w)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK) // ignored

	if rw.Status() != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rw.Status())
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("expected recorded status %d, got %d", http.StatusTeapot, w.Code)
	}
}

func TestResponseWriterImplicitOK(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newResponseWriter(w)

	if _, err := rw.Write([]byte("body")); err != nil {
		t.Fatal(err)
	}
	if rw.Status() != http.StatusOK {
		t.Errorf("expected implicit status %d, got %d", http.StatusOK, rw.Status())
	}
}
