package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"calendar-assistant/config"
	"calendar-assistant/internal/intent"
	"calendar-assistant/pkg/encrypter"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure, handed to the domains during wiring.
	postgresDB *pgxpool.Pool
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
	parser     intent.Parser

	// Per-domain settings
	google    config.GoogleConfig
	session   config.SessionConfig
	assistant config.AssistantConfig
	cors      config.CORSConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *pgxpool.Pool
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter
	Parser     intent.Parser

	Google    config.GoogleConfig
	Session   config.SessionConfig
	Assistant config.AssistantConfig
	CORS      config.CORSConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		jwtManager:  cfg.JWTManager,
		encrypter:   cfg.Encrypter,
		parser:      cfg.Parser,
		google:      cfg.Google,
		session:     cfg.Session,
		assistant:   cfg.Assistant,
		cors:        cfg.CORS,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres pool is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.parser == nil {
		return errors.New("intent parser is required")
	}
	return nil
}
