package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myregistrar/adapters/myredis"
	"myregistrar/adapters/registry"
	"myregistrar/handlers"
	"myregistrar/interfaces"
	"myregistrar/metadata"
	"myregistrar/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

const registryKeyPrefix = "instance"

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyRegistrar")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"instance_id", config.Instance.InstanceID,
		"server_port", config.ServerPort,
		"management_port", service.Value(config.ManagementPort),
	)

	// Create publisher
	var publisher interfaces.Publisher
	{
		if config.RegistryURL != "" {
			publisher, err = registry.NewPublisher(config.RegistryURL, &http.Client{Timeout: 10 * time.Second}, logger)
			if err != nil {
				level.Error(logger).Log("msg", "Failed to create registry publisher", "err", err)
				os.Exit(1)
			}
		} else {
			redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
			if err != nil {
				level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
				os.Exit(1)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := redisClient.Ping(ctx).Err(); err != nil {
				level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
				os.Exit(1)
			}
			level.Info(logger).Log("msg", "Connected to Redis")

			publisher = myredis.NewPublisher(redisClient, registryKeyPrefix)
		}
	}

	// Resolve management metadata
	provider := metadata.NewProvider(logger)
	meta, err := provider.Get(config.Instance, config.ServerPort, config.ServerContextPath, config.ManagementContextPath, config.ManagementPort)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to resolve management metadata", "err", err)
		os.Exit(1)
	}

	// Create management HTTP server (Echo). Skipped while a random port is
	// still unbound; the registrar keeps polling and nothing is published.
	var e *echo.Echo
	if meta != nil {
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		if err := handlers.RegisterHandlers(e, handlers.NewHTTPServer(config.Instance, *meta, logger)); err != nil {
			level.Error(logger).Log("msg", "Failed to register management handlers", "err", err)
			os.Exit(1)
		}
	} else {
		level.Warn(logger).Log("msg", "Management port not assigned yet, management endpoints not started")
	}

	// Create registrar
	registrar := service.NewRegistrar(service.RegistrarConfig{
		Instance:              config.Instance,
		ServerPort:            config.ServerPort,
		ServerContextPath:     config.ServerContextPath,
		ManagementContextPath: config.ManagementContextPath,
		ManagementPort:        config.ManagementPort,
		TTLMs:                 config.TTLMs,
		Interval:              time.Duration(config.HeartbeatIntervalMs) * time.Millisecond,
	}, provider, publisher, logger)

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start registrar loop in a goroutine
	runCtx, cancelRun := context.WithCancel(context.Background())
	registrarDone := make(chan struct{})
	go func() {
		defer close(registrarDone)
		if err := registrar.Run(runCtx); err != nil {
			level.Error(logger).Log("msg", "Registrar stopped", "err", err)
		}
	}()

	// Start management server in a goroutine
	if e != nil {
		go func() {
			addr := fmt.Sprintf(":%d", meta.ManagementPort)
			level.Info(logger).Log("msg", "Starting management HTTP server", "addr", addr)
			if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
				level.Error(logger).Log("msg", "Management HTTP server error", "err", err)
			}
		}()
	}

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down...")

	// Stop the registrar first so the instance deregisters while still serving
	cancelRun()
	<-registrarDone

	if e != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
		}
	}

	level.Info(logger).Log("msg", "Stopped")
}
