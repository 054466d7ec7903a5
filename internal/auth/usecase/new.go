package usecase

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"calendar-assistant/config"
	"calendar-assistant/internal/auth/repository"
	"calendar-assistant/pkg/encrypter"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/scope"
)

// oauthScopes are requested once at login. Calendar access rides on
// the same grant as the identity scopes.
var oauthScopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"openid",
}

const defaultUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	jwtManager scope.Manager
	enc        encrypter.Encrypter

	oauth       *oauth2.Config
	userinfoURL string
	httpClient  *http.Client
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, repo repository.Repository, jwtManager scope.Manager, enc encrypter.Encrypter, googleCfg config.GoogleConfig) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		jwtManager: jwtManager,
		enc:        enc,
		oauth: &oauth2.Config{
			ClientID:     googleCfg.ClientID,
			ClientSecret: googleCfg.ClientSecret,
			RedirectURL:  googleCfg.RedirectURI,
			Scopes:       oauthScopes,
			Endpoint:     google.Endpoint,
		},
		userinfoURL: defaultUserinfoURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}
