package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	envPrefix   = "MDBLOG_"
	envTheme    = "MDBLOG_THEME"
	envBuildDir = "MDBLOG_BUILD_DIR"
	envWorkers  = "MDBLOG_WORKERS"
)

// envConfig holds overrides read from the environment.
type envConfig struct {
	Theme    string // MDBLOG_THEME: theme name
	BuildDir string // MDBLOG_BUILD_DIR: output directory
	Workers  int    // MDBLOG_WORKERS: parallel post parsers
}

// knownEnvVars lists valid MDBLOG_* variables, for typo warnings.
var knownEnvVars = map[string]bool{
	envTheme:    true,
	envBuildDir: true,
	envWorkers:  true,
}

// loadEnvConfig reads the MDBLOG_* overrides. Invalid worker counts are
// ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		Theme:    getenv(envTheme),
		BuildDir: getenv(envBuildDir),
	}
	if workers := getenv(envWorkers); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars warns about unrecognized MDBLOG_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills flags the user did not set from the environment.
// Precedence: flags > env vars > mdblog.yaml > defaults.
func applyEnvConfig(env *envConfig, f *buildFlags) {
	if env.Theme != "" && !f.set["theme"] {
		f.theme = env.Theme
	}
	if env.BuildDir != "" && !f.set["build-dir"] {
		f.buildDir = env.BuildDir
	}
	if env.Workers > 0 && !f.set["workers"] {
		f.workers = env.Workers
	}
}
