package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar Assistant specifics
	Groq      GroqConfig
	Google    GoogleConfig
	Postgres  PostgresConfig
	Assistant AssistantConfig

	// Sessions & secrets at rest
	Session    SessionConfig
	Encryption EncryptionConfig

	// Browser clients
	CORS CORSConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GroqConfig configures the LLM used for intent parsing.
type GroqConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GoogleConfig holds the OAuth client used for login and calendar access.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	FrontendURL  string
}

type PostgresConfig struct {
	DSN string
}

// AssistantConfig tunes the conversational pipeline.
type AssistantConfig struct {
	// DefaultTimezone is used when a user's calendar timezone cannot
	// be fetched.
	DefaultTimezone string
	// PendingTTL bounds how long a disambiguation prompt stays answerable.
	PendingTTL time.Duration
}

type SessionConfig struct {
	JWTSecret string
	Expiry    time.Duration
}

type EncryptionConfig struct {
	// Key is a base64url-encoded 32-byte Fernet key protecting refresh
	// tokens at rest.
	Key string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Groq LLM
	cfg.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.BaseURL = viper.GetString("groq.base_url")
	if groqKey := viper.GetString("groq_api_key"); groqKey != "" {
		cfg.Groq.APIKey = groqKey
	}

	// Google OAuth
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURI = viper.GetString("google.redirect_uri")
	cfg.Google.FrontendURL = viper.GetString("google.frontend_url")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Google.ClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Google.ClientSecret = clientSecret
	}
	if redirectURI := viper.GetString("google_redirect_uri"); redirectURI != "" {
		cfg.Google.RedirectURI = redirectURI
	}
	if frontendURL := viper.GetString("frontend_url"); frontendURL != "" {
		cfg.Google.FrontendURL = frontendURL
	}

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// Assistant pipeline
	cfg.Assistant.DefaultTimezone = viper.GetString("assistant.default_timezone")
	cfg.Assistant.PendingTTL = viper.GetDuration("assistant.pending_ttl")

	// Sessions
	cfg.Session.JWTSecret = viper.GetString("session.jwt_secret")
	cfg.Session.Expiry = viper.GetDuration("session.expiry")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.Session.JWTSecret = jwtSecret
	}

	// Encryption at rest
	cfg.Encryption.Key = viper.GetString("encryption.key")
	if encKey := viper.GetString("encryption_key"); encKey != "" {
		cfg.Encryption.Key = encKey
	}

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations that would only fail at first use.
func (cfg *Config) validate() error {
	if cfg.Groq.APIKey == "" {
		return fmt.Errorf("groq api key is required (GROQ_API_KEY)")
	}
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		return fmt.Errorf("google oauth client is required (GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET)")
	}
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres dsn is required (DATABASE_URL)")
	}
	if cfg.Session.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required (JWT_SECRET)")
	}
	if cfg.Encryption.Key == "" {
		return fmt.Errorf("encryption key is required (ENCRYPTION_KEY)")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google.redirect_uri", "http://localhost:8080/api/auth/callback")
	viper.SetDefault("google.frontend_url", "http://localhost:5173")

	// Assistant defaults
	viper.SetDefault("assistant.default_timezone", "America/Los_Angeles")
	viper.SetDefault("assistant.pending_ttl", "10m")

	// Session defaults: 7-day login, matching the cookie lifetime
	viper.SetDefault("session.expiry", "168h")

	viper.SetDefault("cors.allowed_origins", "http://localhost:5173")
}
