// Package stats keeps per-tool invocation profiles in Redis.
package stats

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dileep-u-k/weather-mcp/internal/version"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "weathermcp:stats"
	failurePrefix = "failures:"
	outcomeOK     = "success"

	// Weight of the newest sample in the moving-average latency.
	latencyAlpha = 0.1

	writeTimeout = 2 * time.Second
)

// ToolProfile tracks reliability and latency metrics for one tool.
type ToolProfile struct {
	Tool           string           `json:"tool"`
	AvgLatencyMS   int64            `json:"avg_latency_ms"`
	TotalSuccesses int64            `json:"total_successes"`
	TotalFailures  int64            `json:"total_failures"`
	ErrorRate      float64          `json:"error_rate"`
	FailuresByKind map[string]int64 `json:"failures_by_kind,omitempty"`
	LastOutcome    string           `json:"last_outcome,omitempty"`
	LastInvocation time.Time        `json:"last_invocation,omitempty"`
}

type Profiler struct {
	rdb *redis.Client
}

func NewProfiler(rdb *redis.Client) *Profiler {
	return &Profiler{rdb: rdb}
}

func (p *Profiler) getProfileKey(tool string) string {
	return version.VersionedKey(keyPrefix, tool)
}

// Ping checks the Redis connection.
func (p *Profiler) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

// Record folds one invocation into the tool's profile. Failures are logged,
// never returned: stats must not fail a tool call.
func (p *Profiler) Record(ctx context.Context, tool string, latency time.Duration, outcome string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	key := p.getProfileKey(tool)
	if err := p.updateLatency(ctx, key, latency); err != nil {
		log.Printf("📉 Error updating latency for %s: %v", tool, err)
	}

	// HIncrBy by 0 reads the other counter and creates it when missing.
	pipe := p.rdb.Pipeline()
	var successes, failures *redis.IntCmd
	if outcome == outcomeOK {
		successes = pipe.HIncrBy(ctx, key, "total_successes", 1)
		failures = pipe.HIncrBy(ctx, key, "total_failures", 0)
	} else {
		successes = pipe.HIncrBy(ctx, key, "total_successes", 0)
		failures = pipe.HIncrBy(ctx, key, "total_failures", 1)
		pipe.HIncrBy(ctx, key, failurePrefix+outcome, 1)
	}
	pipe.HSet(ctx, key,
		"tool", tool,
		"last_outcome", outcome,
		"last_invocation", time.Now().UTC().Format(time.RFC3339Nano),
	)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("📉 Error in stats pipeline for %s: %v", tool, err)
		return
	}

	total := successes.Val() + failures.Val()
	if total > 0 {
		errorRate := float64(failures.Val()) / float64(total)
		p.rdb.HSet(ctx, key, "error_rate", errorRate)
	}
}

// updateLatency applies the exponential moving average under WATCH so
// concurrent invocations do not overwrite each other.
func (p *Profiler) updateLatency(ctx context.Context, key string, latency time.Duration) error {
	return p.rdb.Watch(ctx, func(tx *redis.Tx) error {
		sample := latency.Milliseconds()
		newLatency := sample

		current, err := tx.HGet(ctx, key, "avg_latency_ms").Result()
		switch {
		case err == redis.Nil:
		case err != nil:
			return err
		default:
			currentLatency, _ := strconv.ParseInt(current, 10, 64)
			newLatency = int64((latencyAlpha * float64(sample)) + ((1.0 - latencyAlpha) * float64(currentLatency)))
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "avg_latency_ms", newLatency)
			return nil
		})
		return err
	}, key)
}

// GetProfile retrieves a tool's profile. A tool that was never invoked gets
// an empty profile.
func (p *Profiler) GetProfile(ctx context.Context, tool string) (*ToolProfile, error) {
	data, err := p.rdb.HGetAll(ctx, p.getProfileKey(tool)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats for %s: %w", tool, err)
	}

	profile := &ToolProfile{Tool: tool}
	if len(data) == 0 {
		return profile, nil
	}
	profile.AvgLatencyMS, _ = strconv.ParseInt(data["avg_latency_ms"], 10, 64)
	profile.TotalSuccesses, _ = strconv.ParseInt(data["total_successes"], 10, 64)
	profile.TotalFailures, _ = strconv.ParseInt(data["total_failures"], 10, 64)
	profile.ErrorRate, _ = strconv.ParseFloat(data["error_rate"], 64)
	profile.LastOutcome = data["last_outcome"]
	profile.LastInvocation, _ = time.Parse(time.RFC3339Nano, data["last_invocation"])

	for field, value := range data {
		kind, ok := strings.CutPrefix(field, failurePrefix)
		if !ok {
			continue
		}
		if profile.FailuresByKind == nil {
			profile.FailuresByKind = make(map[string]int64)
		}
		profile.FailuresByKind[kind], _ = strconv.ParseInt(value, 10, 64)
	}
	return profile, nil
}

// Profiles returns the profiles of the given tools, in order.
func (p *Profiler) Profiles(ctx context.Context, tools []string) ([]*ToolProfile, error) {
	profiles := make([]*ToolProfile, 0, len(tools))
	for _, tool := range tools {
		profile, err := p.GetProfile(ctx, tool)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
