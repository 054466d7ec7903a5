package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"calendar-assistant/config"
	"calendar-assistant/internal/auth/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/encrypter"
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

// Mock repository for testing
type mockRepository struct {
	userByGoogleID model.User
	userByID       model.User
	refreshToken   string

	getByGoogleIDErr error
	getByIDErr       error
	createErr        error
	upsertErr        error
	getTokenErr      error

	created []repository.CreateUserOptions
	upserts []repository.UpsertRefreshTokenOptions
}

func (m *mockRepository) GetUserByGoogleID(ctx context.Context, googleID string) (model.User, error) {
	return m.userByGoogleID, m.getByGoogleIDErr
}

func (m *mockRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	return m.userByID, m.getByIDErr
}

func (m *mockRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	m.created = append(m.created, opt)
	if m.createErr != nil {
		return model.User{}, m.createErr
	}
	return model.User{
		ID:       "u-new",
		GoogleID: opt.GoogleID,
		Email:    opt.Email,
		Name:     opt.Name,
		Picture:  opt.Picture,
	}, nil
}

func (m *mockRepository) UpsertRefreshToken(ctx context.Context, opt repository.UpsertRefreshTokenOptions) error {
	m.upserts = append(m.upserts, opt)
	return m.upsertErr
}

func (m *mockRepository) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	return m.refreshToken, m.getTokenErr
}

// stubEncrypter makes ciphertexts readable in assertions.
type stubEncrypter struct{}

func (stubEncrypter) Encrypt(plaintext string) (string, error) {
	return "enc:" + plaintext, nil
}

func (stubEncrypter) Decrypt(ciphertext string) (string, error) {
	if !strings.HasPrefix(ciphertext, "enc:") {
		return "", encrypter.ErrDecryptFailed
	}
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

func newTestUseCase(t *testing.T, repo *mockRepository) (*implUseCase, scope.Manager) {
	t.Helper()
	manager := scope.NewManager("test-secret", time.Hour)
	uc := New(&mockLogger{}, repo, manager, stubEncrypter{}, config.GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/api/auth/callback",
	})
	return uc, manager
}

// stubGoogle points the use case's Google endpoints at a local server.
func stubGoogle(t *testing.T, uc *implUseCase, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	uc.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:  srv.URL + "/auth",
		TokenURL: srv.URL + "/token",
	}
	uc.userinfoURL = srv.URL + "/userinfo"
	uc.httpClient = srv.Client()
	return srv
}
