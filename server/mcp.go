package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Vayain/soul-builder/builder"
)

// MCP tool names
const (
	ToolBegin    = "begin_soul"
	ToolAnswer   = "answer_question"
	ToolGenerate = "generate_soul"
	ToolExport   = "export_soul"

	argSessionID = "session_id"
	argAnswer    = "answer"
)

func (s *Server) newMCPServer() *mcpserver.MCPServer {
	m := mcpserver.NewMCPServer(
		s.config.GetAppName(),
		Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(serverInstructions()),
	)

	m.AddTool(mcp.NewTool(ToolBegin,
		mcp.WithDescription("Start building an agent soul, or resume an existing session. Returns the current question."),
		mcp.WithString(argSessionID,
			mcp.Description("Session identifier. Omit to start a new session with a generated id."),
		),
	), s.handleBegin)

	m.AddTool(mcp.NewTool(ToolAnswer,
		mcp.WithDescription(`Answer the current question. Optional questions accept "skip".`),
		mcp.WithString(argSessionID, mcp.Required(), mcp.Description("Session identifier returned by begin_soul.")),
		mcp.WithString(argAnswer, mcp.Required(), mcp.Description("The answer to the current question.")),
	), s.handleAnswer)

	m.AddTool(mcp.NewTool(ToolGenerate,
		mcp.WithDescription("Compile the SOUL.md document once every question has been answered."),
		mcp.WithString(argSessionID, mcp.Required(), mcp.Description("Session identifier.")),
	), s.handleGenerate)

	m.AddTool(mcp.NewTool(ToolExport,
		mcp.WithDescription("Return the SOUL.md document ready to copy or save."),
		mcp.WithString(argSessionID, mcp.Required(), mcp.Description("Session identifier.")),
	), s.handleExport)

	return m
}

func (s *Server) handleBegin(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.builder.Begin(request.GetString(argSessionID, ""))), nil
}

func (s *Server) handleAnswer(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString(argSessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// A missing answer is validated like an empty one
	answer := request.GetString(argAnswer, "")
	return toolResult(s.builder.SubmitAnswer(sessionID, answer)), nil
}

func (s *Server) handleGenerate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString(argSessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(s.builder.Generate(sessionID)), nil
}

func (s *Server) handleExport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString(argSessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(s.builder.Export(sessionID)), nil
}

// toolResult renders a builder result as tool output. Failures become tool
// errors the model can read, never protocol errors.
func toolResult(result builder.Result) *mcp.CallToolResult {
	text := formatResult(result)
	if !result.Success {
		return mcp.NewToolResultError(text)
	}
	return mcp.NewToolResultText(text)
}

func formatResult(result builder.Result) string {
	var b strings.Builder
	if result.Code != "" {
		fmt.Fprintf(&b, "[%s] ", result.Code)
	}
	b.WriteString(result.Message)

	if result.SessionID != "" {
		fmt.Fprintf(&b, "\n\nSession: %s", result.SessionID)
	}
	if result.CurrentStep != nil && result.TotalSteps != nil {
		fmt.Fprintf(&b, "\nProgress: %d/%d answered", *result.CurrentStep-1, *result.TotalSteps)
	}

	if result.Document != nil {
		if result.Filename != nil {
			fmt.Fprintf(&b, "\n\n--- %s ---\n%s--- end of %s ---", *result.Filename, *result.Document, *result.Filename)
		} else {
			b.WriteString("\n\n" + *result.Document)
		}
	}
	return b.String()
}

func serverInstructions() string {
	return `Soul Builder helps the user define an AI agent's soul: its name, personality,
core values, communication tone, backstory and an optional signature.

1. Call begin_soul (optionally with a session_id) and show the user the question.
2. Relay each user answer with answer_question until the result says the soul is complete.
   The signature question is optional; pass "skip" to leave it blank.
3. Call generate_soul to compile SOUL.md, or export_soul for a copy-ready version.

Sessions expire one hour after they are started.`
}
