// Package main is the entry point for the tareas CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tareas/internal/backend/restapi"
	"tareas/internal/cli"
	"tareas/internal/commands"
	"tareas/internal/config"
	"tareas/internal/service"
	"tareas/internal/session"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create repository factory
	factory := func(ctx context.Context, cfg *config.Config, sessions *session.Store) (service.Repository, error) {
		log := config.NewLogger(cfg.Debug, os.Stderr)
		return restapi.New(cfg, sessions, log), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
