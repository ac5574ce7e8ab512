package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"mcp-textutils-service/internal/gateway"
	"mcp-textutils-service/pkg/config"
	"mcp-textutils-service/pkg/logging"
	"mcp-textutils-service/pkg/tools"
)

func main() {
	var (
		envFile      = flag.String("env", config.DefaultEnvFile, "Path to the .env secrets file")
		settingsFile = flag.String("settings", "", "Path to the YAML settings file (optional)")
		addr         = flag.String("addr", "", "Listen address override (host:port)")
	)
	flag.Parse()

	cfg, err := config.Load(*envFile, *settingsFile)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	loggingManager := logging.NewLoggingManager()
	loggingManager.SetGlobalContext("service", config.ServerName)
	loggingManager.SetGlobalContext("version", config.ServerVersion)
	loggingManager.SetLogLevel(cfg.LogLevel)

	toolManager := tools.NewToolManager(loggingManager.GetLogger("tools"))
	if cfg.ToolTimeout > 0 {
		toolManager.SetExecutionTimeout(cfg.ToolTimeout)
	}
	if err := tools.RegisterAll(toolManager, cfg, loggingManager.GetLogger("tools")); err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}

	gw := gateway.New(cfg, toolManager, loggingManager.GetLogger("gateway"))
	if *addr != "" {
		gw.SetAddr(*addr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := gw.Run(ctx); err != nil {
		log.Fatalf("Gateway error: %v", err)
	}
}
