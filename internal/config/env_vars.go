package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	portEnvVar     = "PORT"
	appNameVar     = "APP_NAME"
	logLevelEnvVar = "LOG_LEVEL"

	defaultPort = "8080"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

// GetPort returns the listen address. The client is single-user so it only binds to loopback.
// PORT takes a bare port number; anything else, such as a host:port pair, falls back to the default.
func (EnvVars) GetPort() string {
	value := GetEnv(portEnvVar, defaultPort)
	port := strings.TrimPrefix(value, ":")
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		log.Warn().Str(portEnvVar, value).Msgf("PORT must be a port number, using %s", defaultPort)
		port = defaultPort
	}
	return "127.0.0.1:" + port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Boarding House")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelEnvVar, "info")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
