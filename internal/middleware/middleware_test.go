package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestMiddleware(t *testing.T) (Middleware, scope.Manager) {
	t.Helper()
	jwtManager := scope.NewManager("test-secret", time.Hour)
	return New(&mockLogger{}, jwtManager), jwtManager
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw, jwtManager := newTestMiddleware(t)

	var seen model.Scope
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		seen, _ = ScopeFromContext(c)
		c.Status(http.StatusOK)
	})

	t.Run("missing cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: scope.CookieName, Value: "not-a-jwt"})
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("valid token resolves scope", func(t *testing.T) {
		token, err := jwtManager.Generate(scope.Payload{
			UserID:    "u1",
			SessionID: "s1",
			Email:     "u1@example.com",
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: scope.CookieName, Value: token})
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if seen.UserID != "u1" || seen.SessionID != "s1" || seen.Email != "u1@example.com" {
			t.Errorf("scope = %+v, want u1/s1/u1@example.com", seen)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw, _ := newTestMiddleware(t)

	r := gin.New()
	r.GET("/limited", mw.RateLimit(3), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(remoteAddr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = remoteAddr
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("burst then throttle", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if code := do("10.0.0.1:1234"); code != http.StatusOK {
				t.Fatalf("request %d status = %d, want %d", i+1, code, http.StatusOK)
			}
		}
		if code := do("10.0.0.1:1234"); code != http.StatusTooManyRequests {
			t.Errorf("status = %d, want %d", code, http.StatusTooManyRequests)
		}
	})

	t.Run("clients do not share buckets", func(t *testing.T) {
		if code := do("10.0.0.2:1234"); code != http.StatusOK {
			t.Errorf("status = %d, want %d", code, http.StatusOK)
		}
	})
}
