package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "starfolio/internal/adapters/mcp"
	"starfolio/internal/adapters/snapshot"
	"starfolio/internal/adapters/static"
	"starfolio/internal/logging"
)

func main() {
	size := flag.Int("size", snapshot.DefaultSize, "width in pixels of rendered star maps")
	verbose := flag.Bool("verbose", false, "debug logging to stderr")
	flag.Parse()

	// stdout carries the protocol, zap's production config writes to stderr
	logger, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "starfolio-mcp: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	content, err := static.Load()
	if err != nil {
		logger.Fatal("failed to load content", zap.Error(err))
	}

	mcpServer := server.NewMCPServer(
		"starfolio-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, content, snapshot.NewExporter(*size))

	logger.Info("serving", zap.String("transport", "stdio"))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
