package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/Vayain/soul-builder/builder"
	"github.com/Vayain/soul-builder/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

type Server struct {
	env     string // Environment (e.g. "DEV", "PROD")
	router  chi.Router
	config  config.Config
	builder *builder.Service
	mcp     *mcpserver.MCPServer
}

func New(config config.Config, service *builder.Service) (*Server, error) {
	if config == nil {
		return nil, errors.New("[Server New] config is required")
	}
	if service == nil {
		return nil, errors.New("[Server New] builder service is required")
	}

	s := &Server{
		env:     config.GetEnv(),
		router:  chi.NewRouter(),
		config:  config,
		builder: service,
	}
	s.mcp = s.newMCPServer()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// MCP returns the MCP server carrying the soul builder tools.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	err := chi.Walk(s.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		logRoute(method, route)
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to walk routes")
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Debug().Msgf("[%-19s] %s", displayMethod, path)
}
