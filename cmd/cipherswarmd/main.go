// CipherSwarm distribution core - serves the agent wire protocol and the
// operator control surface, and runs the background reclamation/retention
// workers.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cipherswarm/cipherswarm/pkg/agentrpc"
	"github.com/cipherswarm/cipherswarm/pkg/api"
	"github.com/cipherswarm/cipherswarm/pkg/cleanup"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/database"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/queue"
	"github.com/cipherswarm/cipherswarm/pkg/resources"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envFile := flag.String("env-file",
		getEnv("CIPHERSWARM_ENV_FILE", ".env"),
		"Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("Warning: Could not load %s file: %v", *envFile, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", *envFile)
	}

	environment := getEnv("CIPHERSWARM_ENV", "production")
	events.SetDevMode(environment == "development")

	ginMode := getEnv("GIN_MODE", gin.ReleaseMode)
	gin.SetMode(ginMode)

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	log.Printf("Starting %s", version.Full())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	dbClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	log.Println("Connected to PostgreSQL, migrations applied")

	publisher := events.NewLogPublisher(slog.Default())

	registry := resources.NewLocalRegistry(
		getEnv("CIPHERSWARM_OBJECT_STORE_URL", "http://localhost:9000"),
		cfg.Auth.InvitationSecret,
		15*time.Minute,
	)

	// Service wiring. TaskService and AttackService reference each other
	// through the cascade, so the attack side is injected after construction.
	taskService := services.NewTaskService(dbClient.Client, cfg.Progress, publisher)
	attackService := services.NewAttackService(dbClient.Client, taskService, publisher)
	taskService.SetAttackService(attackService)
	campaignService := services.NewCampaignService(dbClient.Client, attackService, publisher)
	agentService := services.NewAgentService(dbClient.Client, taskService, cfg.Auth.InvitationSecret)
	benchmarkService := services.NewBenchmarkService(dbClient.Client)
	agentErrorService := services.NewAgentErrorService(dbClient.Client, taskService)
	matcherService := services.NewMatcherService(dbClient.Client, attackService, taskService, cfg.Matcher)
	leaseService := services.NewLeaseService(dbClient.Client, taskService, attackService, cfg.Lease, slog.Default())
	progressService := services.NewProgressService(dbClient.Client, taskService, publisher)
	resultService := services.NewResultService(dbClient.Client, taskService, publisher)
	projectService := services.NewProjectService(dbClient.Client)
	hashListService := services.NewHashListService(dbClient.Client)
	resourceService := services.NewResourceService(dbClient.Client, registry)
	log.Println("Services initialized")

	// Background workers.
	sweeper := queue.NewSweeper(leaseService, cfg.Queue, slog.Default())
	sweeper.Start(ctx)

	retention := cleanup.NewService(cfg.Retention, taskService, agentErrorService)
	retention.Start(ctx)

	poller := resources.NewPoller(dbClient.Client, registry, publisher, 30*time.Second, slog.Default())
	poller.Start(ctx)

	// HTTP surface.
	server := api.NewServer(cfg, dbClient, agentService, taskService, attackService, campaignService, matcherService)
	server.SetBenchmarkService(benchmarkService)
	server.SetAgentErrorService(agentErrorService)
	server.SetProgressService(progressService)
	server.SetResultService(resultService)
	server.SetProjectService(projectService)
	server.SetHashListService(hashListService)
	server.SetResourceService(resourceService)
	server.SetRegistry(registry)
	server.SetSweeper(sweeper)
	server.SetResourcePoller(poller)
	if err := server.ValidateWiring(); err != nil {
		log.Fatalf("Server wiring incomplete: %v", err)
	}

	// Optional gRPC streaming transport.
	var rpcServer *agentrpc.Server
	if cfg.AgentRPC.Enabled {
		rpcServer = agentrpc.NewServer(cfg.AgentRPC, agentService, taskService, progressService, resultService, slog.Default())
		go func() {
			if err := rpcServer.Start(); err != nil {
				log.Fatalf("Agent RPC server failed: %v", err)
			}
		}()
	}

	go func() {
		addr := getEnv("CIPHERSWARM_HTTP_ADDR", "")
		if addr == "" {
			addr = ":" + getEnv("CIPHERSWARM_HTTP_PORT", "8080")
		}
		log.Printf("HTTP server listening on %s", addr)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then stop the workers so
	// no sweep pass races the closing database pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Queue.GracefulShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
	if rpcServer != nil {
		rpcServer.Stop()
	}
	poller.Stop()
	retention.Stop()
	sweeper.Stop()
	log.Println("Shutdown complete")
}
