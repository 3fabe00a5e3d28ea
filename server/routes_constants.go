package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Diagnostics
	RouteHealth = "/health"

	// Question flow API
	RouteSessions       = "/api/sessions"
	RouteSessionBegin   = "/api/sessions/{sessionID}/begin"
	RouteSessionAnswers = "/api/sessions/{sessionID}/answers"
	RouteSessionSoul    = "/api/sessions/{sessionID}/soul"
	RouteSessionExport  = "/api/sessions/{sessionID}/export"

	// MCP streamable HTTP endpoint
	RouteMCP = "/mcp"

	sessionIDParam = "sessionID"
)
