// main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/anmicius0/instructor-dashboard-api/internal/server"
	"github.com/anmicius0/instructor-dashboard-api/internal/service"
	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"go.uber.org/zap"
)

func main() {
	// Initialize logging first; the configured level is applied after loading config
	if err := utils.Init(config.DefaultLogLevel, utils.DefaultLogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer utils.Sync()

	appConfig, err := config.Load()
	if err != nil {
		utils.Logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	utils.SetLevel(appConfig.LogLevel)
	utils.Logger.Info("Configuration loaded successfully", zap.String("log_level", appConfig.LogLevel))

	lms := client.NewLMSClient(appConfig.LMSURL, appConfig.LMSToken, config.DefaultClientTimeout)

	var dispatcher client.TaskDispatcher = lms
	if appConfig.UseTaskQueue() {
		queue := client.NewTaskQueue(appConfig.RedisAddr, appConfig.TaskQueue)
		defer queue.Close()
		dispatcher = queue
		utils.Logger.Info("Dispatching tasks to Redis",
			zap.String("redis_addr", appConfig.RedisAddr),
			zap.String("queue", appConfig.TaskQueue))
	}

	taskStore := config.NewTaskStore()
	svc := server.Services{
		Courses:    lms,
		Enrollment: service.NewEnrollmentManager(lms, lms),
		Access:     service.NewAccessManager(lms, lms),
		Analytics:  service.NewAnalyticsManager(lms),
		Tasks:      service.NewTaskManager(taskStore, dispatcher, lms),
	}

	router := server.NewRouter(appConfig, svc, server.NewMetrics())
	startServer(router, appConfig)
}

// startServer binds the HTTP server and handles graceful shutdown signals.
func startServer(router http.Handler, appConfig *config.Config) {
	httpServer := &http.Server{
		Addr:         appConfig.Address(),
		Handler:      router,
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		utils.Logger.Info("Shutdown signal received", zap.String(utils.FieldSignal, sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			utils.Logger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	utils.Logger.Info("Server starting",
		zap.String(utils.FieldHost, appConfig.APIHost),
		zap.String(utils.FieldPort, strconv.Itoa(appConfig.Port)))

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		utils.Logger.Fatal("Server failed to start", zap.Error(err))
	}

	utils.Logger.Info("Server stopped")
}
