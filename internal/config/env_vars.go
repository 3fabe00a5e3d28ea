package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	portEnvVar      = "PORT"
	appNameVar      = "APP_NAME"
	envVar          = "ENV"
	logLevelEnvVar  = "LOG_LEVEL"
	transportEnvVar = "TRANSPORT"
)

// TransportType selects how the question flow is exposed to callers.
type TransportType string

const (
	TransportHTTP  TransportType = "http"  // REST API, health and MCP over streamable HTTP
	TransportStdio TransportType = "stdio" // MCP over stdin/stdout only
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Soul Builder")
}

func (EnvVars) GetEnv() string {
	return strings.ToUpper(GetEnv(envVar, "DEV"))
}

func (EnvVars) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelEnvVar, "info"))
}

// GetTransport returns the configured transport, defaulting to HTTP for unknown values.
func (EnvVars) GetTransport() TransportType {
	switch TransportType(strings.ToLower(GetEnv(transportEnvVar, string(TransportHTTP)))) {
	case TransportStdio:
		return TransportStdio
	default:
		return TransportHTTP
	}
}

func GetEnv(envVar, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(envVar))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetDurationEnv parses envVar as a time.Duration. Missing, malformed or
// non-positive values yield defaultValue.
func GetDurationEnv(envVar string, defaultValue time.Duration) time.Duration {
	value := GetEnv(envVar, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
