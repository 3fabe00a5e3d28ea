package server

import (
	"github.com/go-chi/chi/v5/middleware"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func (s *Server) initRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(s.LoggingMiddleware)
	s.router.Use(middleware.Recoverer)
	// Top level so preflight requests are answered before method routing
	s.router.Use(s.CorsMiddleware)

	s.router.Get(RouteHealth, s.HealthHandler())

	// Question flow API
	s.router.Post(RouteSessions, s.StartSessionHandler())
	s.router.Post(RouteSessionBegin, s.BeginHandler())
	s.router.Post(RouteSessionAnswers, s.AnswerHandler())
	s.router.Get(RouteSessionSoul, s.GenerateHandler())
	s.router.Get(RouteSessionExport, s.ExportHandler())

	// MCP over streamable HTTP (GET, POST and DELETE)
	s.router.Handle(RouteMCP, mcpserver.NewStreamableHTTPServer(s.mcp))
}
