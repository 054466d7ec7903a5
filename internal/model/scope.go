package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope is the authenticated identity resolved per request by the auth
// middleware and passed explicitly through the call chain.
type Scope struct {
	UserID    string
	SessionID string
	Email     string
}
