package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"medication-reminder/pkg/gcalendar"
	"medication-reminder/pkg/log"
	"medication-reminder/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB   *sql.DB
	scopeManager scope.Manager

	// Voice
	voiceRateLimitPerMin int

	// Appointment calendar sync (optional)
	calendar *gcalendar.Client
	timezone string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB   *sql.DB
	ScopeManager scope.Manager

	VoiceRateLimitPerMin int

	Calendar *gcalendar.Client
	Timezone string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                    logger,
		gin:                  gin.Default(),
		port:                 cfg.Port,
		mode:                 cfg.Mode,
		environment:          cfg.Environment,
		postgresDB:           cfg.PostgresDB,
		scopeManager:         cfg.ScopeManager,
		voiceRateLimitPerMin: cfg.VoiceRateLimitPerMin,
		calendar:             cfg.Calendar,
		timezone:             cfg.Timezone,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
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
		return errors.New("postgres connection is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	return nil
}
