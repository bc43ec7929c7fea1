package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the authenticated user a request acts on behalf of.
// It is built by the auth middleware from the verified token and passed
// into every usecase call.
type Scope struct {
	UserID string
	Email  string
	Name   string
}
