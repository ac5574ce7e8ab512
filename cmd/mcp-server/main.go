package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mcp-textutils-service/internal/server"
	"mcp-textutils-service/pkg/config"
)

func main() {
	var (
		envFile      = flag.String("env", config.DefaultEnvFile, "Path to the .env secrets file")
		settingsFile = flag.String("settings", "", "Path to the YAML settings file (optional)")
	)
	flag.Parse()

	// Missing credentials abort startup; everything else degrades
	cfg, err := config.Load(*envFile, *settingsFile)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	mcpServer, err := server.NewMCPServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	// Start server in a goroutine
	go func() {
		if err := mcpServer.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("MCP server error: %v", err)
		}
		cancel()
	}()

	// Wait for shutdown signal
	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
	case <-ctx.Done():
		log.Println("Context cancelled, shutting down...")
	}

	// Perform graceful shutdown
	if err := mcpServer.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
