package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	failmcp "github.com/ppiankov/failsim/internal/mcp"
)

var mcpRecordLog string

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpRecordLog, "record-log", "", "Record every run to this history log")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP tool server for agent integration",
	Long: "Runs failsim as an MCP (Model Context Protocol) server over stdio.\n" +
		"Exposes the tools: failsim_run, failsim_compare, failsim_suites.",
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	srv, err := failmcp.New(failmcp.Config{HistoryPath: mcpRecordLog})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer func() { _ = srv.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down MCP server...")
		cancel()
	}()

	fmt.Fprintln(os.Stderr, "failsim MCP server running on stdio")

	err = srv.Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
