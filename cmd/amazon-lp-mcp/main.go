package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:        "amazon-lp-mcp",
		Usage:       "Amazon Leadership Principles MCP Server",
		Description: "Read-only MCP server exposing the Amazon Leadership Principles and Andy Jassy's video transcripts as lookup tools",
		Flags:       []cli.Flag{dataDirFlag, serverTypeFlag, portFlag, logLevelFlag},
		Action: func(c *cli.Context) error {
			config := &Config{
				DataDir:    c.String(dataDirFlag.Name),
				ServerType: c.String(serverTypeFlag.Name),
				Port:       c.Int(portFlag.Name),
				LogLevel:   c.String(logLevelFlag.Name),
			}

			server, err := newServer(config)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errChan := make(chan error, 1)
			go func() {
				if err := server.start(ctx); err != nil {
					errChan <- err
				}
			}()

			var serverErr error
			select {
			case <-ctx.Done():
				log.Println("Received signal, shutting down...")
			case serverErr = <-errChan:
				log.Println("Server error, shutting down...")
				stop()
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			server.stop(ctx)

			return serverErr
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
