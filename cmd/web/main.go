// Package main implements parky-web, the HTML front end of the parks and
// trails API. It reads and writes everything through the API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/parky-api/internal/api/middleware"
	"github.com/phrazzld/parky-api/internal/config"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/web"
	"github.com/phrazzld/parky-api/internal/webclient"
	"github.com/urfave/cli"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := buildApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "parky-web: %v\n", err)
		os.Exit(1)
	}
}

func buildApp() *cli.App {
	app := cli.NewApp()
	app.Name = "parky-web"
	app.Usage = "web front end for the parks and trails API"
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to a config file (defaults to ./config.yaml when present)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "run the web client",
			Action: runServe,
		},
	}
	app.Action = runServe
	return app
}

func runServe(c *cli.Context) error {
	cfg, err := config.LoadWebFile(c.GlobalString("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	handler, err := newRouter(cfg, l)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg.Web.Port, handler, l)
}

// newRouter wires the page handlers to remote repositories for the API at
// cfg.Web.APIBaseURL.
func newRouter(cfg *config.WebConfig, l *slog.Logger) (http.Handler, error) {
	templates, err := web.LoadTemplates()
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: time.Duration(cfg.Web.TimeoutSeconds) * time.Second}
	h := web.NewHandler(
		webclient.NewParkRepository(client, l),
		webclient.NewTrailRepository(client, l),
		webclient.Endpoint(cfg.Web.APIBaseURL),
		templates,
		l,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(l))
	h.Routes(r)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	l.Info("Web client configured", "api_base_url", cfg.Web.APIBaseURL, "port", cfg.Web.Port)
	return r, nil
}

// serve runs the server until ctx is canceled, then drains it.
func serve(ctx context.Context, port int, handler http.Handler, l *slog.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		l.Info("Starting web client", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		l.Info("Shutting down web client...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web server shutdown failed: %w", err)
	}

	l.Info("Web client shutdown completed")
	return nil
}
