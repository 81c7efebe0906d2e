package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/chromekit/internal/mcp"
)

func runMCP(args []string) int {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	scenePath := fs.String("scene", "", "Scene file (default: default_scene from config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: chromekit mcp [--scene FILE]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Serve hit-testing of a scene on stdio. Designed to be invoked by MCP")
		fmt.Fprintln(os.Stderr, "clients, for example:")
		fmt.Fprintln(os.Stderr, "  claude mcp add chromekit -- chromekit mcp --scene window.yaml")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer e.close()

	layout, err := e.loadLayout(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	server := mcp.NewServer(layout, nil, e.log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: MCP server: %v\n", err)
		return 1
	}
	return 0
}
