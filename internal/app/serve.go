package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"horse.fit/polyglot/internal/cli"
	"horse.fit/polyglot/internal/config"
	"horse.fit/polyglot/internal/history"
	"horse.fit/polyglot/internal/httpapi"
	"horse.fit/polyglot/internal/logging"
)

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	host := fs.String("host", "", "Host interface to bind (default: SERVER_HOST)")
	port := fs.Int("port", 0, "HTTP port (default: SERVER_PORT)")
	readTimeout := fs.Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	writeTimeout := fs.Duration("write-timeout", 60*time.Second, "HTTP write timeout")
	shutdownTimeout := fs.Duration("shutdown-timeout", 10*time.Second, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	var archive *history.Store
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		dbCtx, dbCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dbCancel()

		archive, err = history.Open(dbCtx, cfg.DatabaseURL, cfg.LogLevel)
		if err != nil {
			logger.Error().Err(err).Msg("serve failed to connect to database")
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			return 1
		}
		defer archive.Close()
	} else {
		logger.Info().Msg("DATABASE_URL is not set, translation history disabled")
	}

	serverHost := strings.TrimSpace(*host)
	if serverHost == "" {
		serverHost = cfg.ServerHost
	}
	serverPort := *port
	if serverPort <= 0 {
		serverPort = cfg.ServerPort
	}
	if serverPort <= 0 || serverPort > 65535 {
		fmt.Fprintln(os.Stderr, "--port must be between 1 and 65535")
		return 2
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		cancel()
	}()

	srv := httpapi.NewServer(logger, archive, httpapi.Options{
		Host:            serverHost,
		Port:            serverPort,
		ReadTimeout:     *readTimeout,
		WriteTimeout:    *writeTimeout,
		ShutdownTimeout: *shutdownTimeout,
		AllowedOrigins:  cfg.CORSAllowedOriginsList(),
		RequestTimeout:  cfg.Timeout(),
		Proxies:         cfg.Proxies(),
	})

	if err := srv.Start(ctx); err != nil {
		logger.Error().Err(err).Str("host", serverHost).Int("port", serverPort).Msg("server failed")
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		return 1
	}

	return 0
}
