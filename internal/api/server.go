// Package api is the HTTP gateway in front of the weather tools.
package api

import (
	"context"
	"net/http"

	"github.com/dileep-u-k/weather-mcp/internal/resources"
	"github.com/dileep-u-k/weather-mcp/internal/stats"
	"github.com/dileep-u-k/weather-mcp/internal/tools"
	"github.com/dileep-u-k/weather-mcp/internal/version"
	"github.com/dileep-u-k/weather-mcp/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// WeatherLookup runs the full lookup pipeline for a raw location reference.
type WeatherLookup interface {
	Lookup(ctx context.Context, raw weather.RawQuery) (weather.Report, error)
}

// StatsReader reads invocation profiles.
type StatsReader interface {
	Ping(ctx context.Context) error
	Profiles(ctx context.Context, tools []string) ([]*stats.ToolProfile, error)
}

var _ StatsReader = (*stats.Profiler)(nil)

// Options holds the collaborators of the gateway. Stats and MCP are optional.
type Options struct {
	Tools   *tools.ToolManager
	Weather WeatherLookup
	Catalog *resources.Catalog
	Stats   StatsReader
	MCP     http.Handler
	Build   version.BuildInfo
}

type Server struct {
	tools   *tools.ToolManager
	weather WeatherLookup
	catalog *resources.Catalog
	stats   StatsReader
	mcp     http.Handler
	build   version.BuildInfo
}

func NewServer(opts Options) *Server {
	return &Server{
		tools:   opts.Tools,
		weather: opts.Weather,
		catalog: opts.Catalog,
		stats:   opts.Stats,
		mcp:     opts.MCP,
		build:   opts.Build,
	}
}

// Engine builds the gin engine with all routes registered.
func (s *Server) Engine() *gin.Engine {
	engine := gin.Default()
	engine.Use(RequestID())

	engine.GET("/healthz", s.HandleHealth)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/tools", s.HandleListTools)
		v1.POST("/tools/:name", s.HandleInvokeTool)
		v1.POST("/tool_calls", s.HandleToolCalls)
		v1.GET("/weather", s.HandleWeather)
		v1.GET("/resources/config", s.HandleConfigResource)
		v1.GET("/resources/cities", s.HandleCitiesResource)
		v1.GET("/stats", s.HandleStats)
	}

	if s.mcp != nil {
		engine.Any("/mcp", gin.WrapH(s.mcp))
	}
	return engine
}

// RequestID tags every request with an ID, keeping one sent by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// StatusForKind maps an error kind to the HTTP status the gateway answers with.
func StatusForKind(kind weather.ErrorKind) int {
	switch kind {
	case weather.KindValidation:
		return http.StatusBadRequest
	case weather.KindAuth:
		return http.StatusUnauthorized
	case weather.KindNotFound:
		return http.StatusNotFound
	case weather.KindRateLimit:
		return http.StatusTooManyRequests
	case weather.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func writeResult(c *gin.Context, result tools.Result) {
	if result.IsError() {
		c.JSON(StatusForKind(result.Err.Kind), result.Document())
		return
	}
	c.JSON(http.StatusOK, result.Document())
}
