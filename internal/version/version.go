// Package version centralizes the versioning for the logical components of
// the weather server.
//
// The component versions are folded into every Redis key the server writes.
// Bumping a version (for example Tools after changing a tool's behaviour)
// starts a fresh set of invocation statistics instead of mixing numbers from
// two different implementations.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
)

// ComponentVersions holds the version strings for different logical parts of the application.
// Manually increment a version number here before you deploy a change to that component.
var ComponentVersions = struct {
	// Tools should be updated whenever the behaviour or arguments of any
	// tool change (e.g., current_weather_tool.go, status_tool.go).
	Tools string

	// Provider tracks the upstream API version the fetcher speaks.
	Provider string

	// Resources should be updated whenever the content of the
	// config or supported-cities documents changes.
	Resources string
}{
	Tools:     "v1.0",
	Provider:  "v2.5",
	Resources: "v1.0",
}

// Set through -ldflags at build time.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	GitCommit   string `json:"git_commit"`
	GoVersion   string `json:"go_version"`
	Platform    string `json:"platform"`
	Components  string `json:"components"`
	Fingerprint string `json:"fingerprint"`
}

func Get() BuildInfo {
	return BuildInfo{
		Version:     Version,
		BuildDate:   BuildDate,
		GitCommit:   GitCommit,
		GoVersion:   runtime.Version(),
		Platform:    fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Components:  componentString(),
		Fingerprint: Fingerprint(),
	}
}

func componentString() string {
	return fmt.Sprintf("tv%s_pv%s_rv%s",
		ComponentVersions.Tools,
		ComponentVersions.Provider,
		ComponentVersions.Resources,
	)
}

// Fingerprint is a short, stable hash of the component versions. Two
// deployments with the same fingerprint expose the same tool behaviour.
func Fingerprint() string {
	sum := sha256.Sum256([]byte(componentString()))
	return hex.EncodeToString(sum[:])[:12]
}

// VersionedKey creates a consistent, version-aware Redis key.
//
// It combines a prefix, the given name and the current versions of all
// logical components, so statistics written by an older build are never
// read back by a newer one.
//
// Example output: "weathermcp:stats:get_current_weather:tv1.0_pv2.5_rv1.0"
func VersionedKey(prefix, name string) string {
	return fmt.Sprintf("%s:%s:%s", prefix, name, componentString())
}
