package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/failsim/internal/history"
)

// Config holds MCP server configuration.
type Config struct {
	// HistoryPath, when set, appends every run executed through the
	// server to the hash-chained history log.
	HistoryPath string
}

// Server exposes the outcome simulator as MCP tools over stdio.
type Server struct {
	mcpServer  *mcpsdk.Server
	historyLog *history.Log
}

// New creates an MCP server with the simulator tools registered.
func New(cfg Config) (*Server, error) {
	s := &Server{}

	if cfg.HistoryPath != "" {
		log, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return nil, err
		}
		s.historyLog = log
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "failsim",
			Version: "0.1.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close closes the history log if configured.
func (s *Server) Close() error {
	if s.historyLog != nil {
		return s.historyLog.Close()
	}
	return nil
}

// registerTools adds all failsim tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "failsim_run",
		Description: "Run a scenario suite under one policy (strict or resilient) and return the outcome counts and availability.",
	}, s.handleRun)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "failsim_compare",
		Description: "Run a scenario suite under both policies and return the availability comparison.",
	}, s.handleCompare)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "failsim_suites",
		Description: "List the built-in scenario suites.",
	}, s.handleSuites)
}
