package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func newTestMemoryStore(rate int, interval time.Duration, clock *time.Time) *MemoryStore {
	return &MemoryStore{
		visitors: make(map[string]*visitor),
		rate:     rate,
		interval: interval,
		now:      func() time.Time { return *clock },
	}
}

func TestMemoryStore_AllowAndRefill(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ms := newTestMemoryStore(2, time.Minute, &clock)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, _ := ms.Allow(ctx, "1.2.3.4"); !ok {
			t.Fatalf("request %d rejected, want allowed", i+1)
		}
	}
	if ok, _ := ms.Allow(ctx, "1.2.3.4"); ok {
		t.Fatal("third request allowed, want rejected")
	}
	if ok, _ := ms.Allow(ctx, "5.6.7.8"); !ok {
		t.Fatal("other key rejected, want independent bucket")
	}

	clock = clock.Add(time.Minute)
	if ok, _ := ms.Allow(ctx, "1.2.3.4"); !ok {
		t.Fatal("request after refill rejected, want allowed")
	}
}

func TestMemoryStore_Cleanup(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ms := newTestMemoryStore(1, time.Second, &clock)
	_, _ = ms.Allow(context.Background(), "a")

	clock = clock.Add(4 * time.Minute)
	ms.cleanup()
	if len(ms.visitors) != 0 {
		t.Errorf("visitors = %d, want 0 after cleanup", len(ms.visitors))
	}
}

type fixedStore struct {
	allowed bool
	err     error
}

func (f fixedStore) Allow(context.Context, string) (bool, error) { return f.allowed, f.err }

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		store  LimitStore
		status int
	}{
		{"allowed", fixedStore{allowed: true}, http.StatusOK},
		{"exceeded", fixedStore{allowed: false}, http.StatusTooManyRequests},
		{"store down lets request through", fixedStore{err: errors.New("redis: connection refused")}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimit(tt.store, zerolog.Nop()))
			r.GET("/alunos", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/alunos", nil))
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}
