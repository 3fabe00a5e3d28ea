package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/Vayain/soul-builder/builder"
	"github.com/Vayain/soul-builder/internal/config"
	"github.com/Vayain/soul-builder/internal/logging"
	"github.com/Vayain/soul-builder/server"
	"github.com/Vayain/soul-builder/sessions"
)

func main() {
	envErr := godotenv.Load()

	c := config.New()
	logging.Setup(c.GetEnv(), c.GetLogLevel())
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	if err := run(c); err != nil {
		log.Fatal().Err(err).Msg("Error running server")
	}
	log.Info().Msg("Server stopped")
}

func run(c config.Config) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	displayAppname(c.GetAppName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := sessions.NewInMemoryRepo(sessions.WithExpiry(c.GetSessionExpiry()))
	go repo.Run(ctx, c.GetSweepInterval())

	service, err := builder.NewService(repo)
	if err != nil {
		return errors.Wrap(err, "builder.NewService")
	}
	srv, err := server.New(c, service)
	if err != nil {
		return errors.Wrap(err, "server.New")
	}

	if c.GetTransport() == config.TransportStdio {
		log.Info().Msg("Serving MCP over stdio")
		if err := mcpserver.ServeStdio(srv.MCP()); err != nil {
			return errors.Wrap(err, "mcpserver.ServeStdio")
		}
		return nil
	}

	httpServer := &http.Server{
		Addr:              c.GetPort(),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() { serveErr <- listenAndServe(httpServer) }()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	return shutdown(httpServer)
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

// displayAppname prints the banner to stderr; stdout may carry the stdio transport.
func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	fmt.Fprintln(os.Stderr, myFigure.String())
}
