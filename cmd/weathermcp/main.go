package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dileep-u-k/weather-mcp/internal/api"
	"github.com/dileep-u-k/weather-mcp/internal/mcpserver"
	"github.com/dileep-u-k/weather-mcp/internal/resources"
	"github.com/dileep-u-k/weather-mcp/internal/stats"
	"github.com/dileep-u-k/weather-mcp/internal/tools"
	"github.com/dileep-u-k/weather-mcp/internal/version"
	"github.com/dileep-u-k/weather-mcp/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/redis/go-redis/v9"
)

// main is the composition root: it loads configuration, initializes all
// services, injects dependencies and starts the selected transport.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	transport := flag.String("transport", "", "Transport to serve: stdio or http (overrides config)")
	addr := flag.String("addr", "", "Listen address for the http transport (overrides config)")
	configFile := flag.String("config", envOr("CONFIG_FILE", "config.yaml"), "Path to the YAML configuration file")
	flag.Parse()

	buildInfo := version.Get()
	log.Printf("🚀 Starting Weather MCP | Version: %s | Commit: %s | Components: %s", buildInfo.Version, buildInfo.GitCommit, buildInfo.Components)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	if *transport != "" {
		cfg.Transport = *transport
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if cfg.APIKey == "" {
		log.Println("⚠️ API_KEY is not set; lookups will fail until it is configured.")
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	svc := initializeWeatherService(cfg)
	toolManager := initializeToolManager(svc)
	profiler := initializeProfiler(cfg)
	if profiler != nil {
		toolManager.SetRecorder(profiler)
	}
	catalog := resources.NewCatalog(resources.Catalog{
		BaseURL:        cfg.BaseURL,
		DefaultUnits:   cfg.DefaultUnits,
		TimeoutSeconds: int(cfg.Timeout.Seconds()),
		PopularCities:  cfg.PopularCities,
	})
	mcpServer := mcpserver.New(toolManager, catalog, buildInfo.Version)
	log.Println("✅ All services initialized.")

	// 3. SERVE
	switch cfg.Transport {
	case TransportStdio:
		runStdio(mcpServer)
	case TransportHTTP:
		opts := api.Options{
			Tools:   toolManager,
			Weather: svc,
			Catalog: catalog,
			MCP:     mcpserver.HTTPHandler(mcpServer),
			Build:   buildInfo,
		}
		if profiler != nil {
			opts.Stats = profiler
		}
		gin.SetMode(os.Getenv("GIN_MODE"))
		srv := &http.Server{Addr: cfg.Addr, Handler: api.NewServer(opts).Engine()}
		runServerWithGracefulShutdown(srv)
	default:
		log.Fatalf("❌ FATAL: unknown transport %q (want %s or %s)", cfg.Transport, TransportStdio, TransportHTTP)
	}
}

// initializeWeatherService builds the provider chain and the lookup pipeline.
func initializeWeatherService(cfg *AppConfig) *weather.Service {
	var provider weather.Provider = weather.NewOpenWeatherMap(cfg.APIKey, cfg.Timeout, weather.WithBaseURL(cfg.BaseURL))
	if cfg.RateLimit.RequestsPerSecond > 0 {
		provider = weather.NewRateLimitedProvider(provider, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.Timeout)
		log.Printf("✅ Applied rate limiting: %.2f req/s, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	return weather.NewService(provider, weather.ServiceConfig{
		DefaultUnits:  cfg.DefaultUnits,
		Timeout:       cfg.Timeout,
		KeyConfigured: cfg.APIKey != "",
	})
}

// initializeToolManager creates and registers all available tools.
func initializeToolManager(svc tools.WeatherService) *tools.ToolManager {
	manager := tools.NewToolManager()
	tools.RegisterWeatherTools(manager, svc)
	log.Printf("✅ Tool Manager initialized with %d tools.", manager.ToolCount())
	return manager
}

// initializeProfiler connects to Redis when configured. Stats are optional:
// an unreachable Redis only disables them.
func initializeProfiler(cfg *AppConfig) *stats.Profiler {
	if cfg.RedisAddr == "" {
		log.Println("ℹ️ REDIS_ADDR not set, invocation stats disabled.")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("⚠️ Could not connect to Redis at %s, invocation stats disabled: %v", cfg.RedisAddr, err)
		rdb.Close()
		return nil
	}
	log.Printf("✅ Invocation stats enabled (redis %s).", cfg.RedisAddr)
	return stats.NewProfiler(rdb)
}

// runStdio serves MCP over stdin/stdout until the client disconnects or a
// shutdown signal arrives. Logs stay on stderr.
func runStdio(server *mcp.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("👂 Serving MCP over stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("❌ MCP server stopped: %v", err)
		return
	}
	log.Println("👋 Server exited gracefully.")
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Gateway is listening on http://localhost%s (MCP at /mcp)", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
