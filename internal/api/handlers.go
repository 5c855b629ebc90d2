package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/dileep-u-k/weather-mcp/internal/tools"
	"github.com/dileep-u-k/weather-mcp/internal/weather"

	"github.com/gin-gonic/gin"
)

// ToolCallsRequest is a batch of OpenAI-style tool calls.
type ToolCallsRequest struct {
	ToolCalls []tools.ToolCall `json:"tool_calls" binding:"required"`
}

type ToolCallsResponse struct {
	Results []tools.ToolResult `json:"results"`
}

func (s *Server) HandleHealth(c *gin.Context) {
	redisStatus := "disabled"
	if s.stats != nil {
		redisStatus = "ok"
		if err := s.stats.Ping(c.Request.Context()); err != nil {
			log.Printf("⚠️ Redis ping failed: %v", err)
			redisStatus = "unavailable"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": s.build,
		"tools":   s.tools.ToolCount(),
		"redis":   redisStatus,
	})
}

func (s *Server) HandleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": s.tools.GetDefinitions()})
}

// HandleInvokeTool runs one tool; the request body is its JSON arguments.
func (s *Server) HandleInvokeTool(c *gin.Context) {
	name := c.Param("name")
	body, err := c.GetRawData()
	if err != nil {
		writeResult(c, tools.Failure(invalidRequest(err)))
		return
	}

	result, err := s.tools.Execute(c.Request.Context(), name, string(body))
	if err != nil {
		writeResult(c, tools.Failure(&weather.Error{
			Kind:    weather.KindNotFound,
			Message: err.Error(),
			Hint:    "List the available tools with GET /api/v1/tools.",
		}))
		return
	}
	writeResult(c, result)
}

func (s *Server) HandleToolCalls(c *gin.Context) {
	var req ToolCallsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeResult(c, tools.Failure(invalidRequest(err)))
		return
	}

	resp := ToolCallsResponse{Results: make([]tools.ToolResult, 0, len(req.ToolCalls))}
	for _, call := range req.ToolCalls {
		resp.Results = append(resp.Results, s.tools.ExecuteCall(c.Request.Context(), call))
	}
	c.JSON(http.StatusOK, resp)
}

// HandleWeather takes either city[,country_code] or lat/lon as query
// parameters and leaves the either/or check to the normalizer.
func (s *Server) HandleWeather(c *gin.Context) {
	raw := weather.RawQuery{
		City:        c.Query("city"),
		CountryCode: c.Query("country_code"),
		Units:       c.Query("units"),
	}
	var err error
	if raw.Latitude, err = floatParam(c, "lat"); err != nil {
		writeResult(c, tools.Failure(err))
		return
	}
	if raw.Longitude, err = floatParam(c, "lon"); err != nil {
		writeResult(c, tools.Failure(err))
		return
	}

	report, err := s.weather.Lookup(c.Request.Context(), raw)
	if err != nil {
		writeResult(c, tools.Failure(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

func invalidRequest(err error) *weather.Error {
	return &weather.Error{
		Kind:    weather.KindValidation,
		Message: fmt.Sprintf("invalid request: %v", err),
		Hint:    "Send a valid JSON body for this endpoint.",
		Err:     err,
	}
}

func floatParam(c *gin.Context, key string) (*float64, error) {
	value, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil, &weather.Error{
			Kind:    weather.KindValidation,
			Message: fmt.Sprintf("%s must be a number, got %q", key, value),
			Hint:    "Send decimal degrees, e.g. lat=51.5074&lon=-0.1278.",
		}
	}
	return &f, nil
}

func (s *Server) HandleConfigResource(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Config())
}

func (s *Server) HandleCitiesResource(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Cities())
}

func (s *Server) HandleStats(c *gin.Context) {
	if s.stats == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats are disabled; set REDIS_ADDR to enable them"})
		return
	}
	profiles, err := s.stats.Profiles(c.Request.Context(), s.tools.Names())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tools": profiles})
}
