package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	SessionSecret   string
	SessionTTL      time.Duration
	AdminUsername   string
	AdminPassword   string
	RetentionWindow time.Duration
	SweepInterval   time.Duration
	BusinessOffset  time.Duration
	ShutdownTimeout time.Duration
	WSSendBuffer    int
	WSPingInterval  time.Duration
	NATSURL         string
	SeedDemo        bool
	LogLevel        string
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionSecret   = "change-me-in-production"
	defaultSessionTTL      = 24 * time.Hour
	defaultAdminUsername   = "admin"
	defaultRetentionWindow = 30 * 24 * time.Hour
	defaultSweepInterval   = time.Hour
	defaultBusinessOffset  = 5*time.Hour + 30*time.Minute
	defaultShutdownTimeout = 10 * time.Second
	defaultWSSendBuffer    = 64
	defaultWSPingInterval  = 30 * time.Second
	defaultLogLevel        = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:      getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		AdminUsername:   getString(lookup, "ADMIN_USERNAME", defaultAdminUsername),
		AdminPassword:   getString(lookup, "ADMIN_PASSWORD", ""),
		RetentionWindow: getDuration(lookup, "RETENTION_WINDOW", defaultRetentionWindow),
		SweepInterval:   getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		BusinessOffset:  getDuration(lookup, "BUSINESS_UTC_OFFSET", defaultBusinessOffset),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		WSSendBuffer:    getInt(lookup, "WS_SEND_BUFFER", defaultWSSendBuffer),
		WSPingInterval:  getDuration(lookup, "WS_PING_INTERVAL", defaultWSPingInterval),
		NATSURL:         getString(lookup, "NATS_URL", ""),
		SeedDemo:        getBool(lookup, "SEED_DEMO", false),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("orderdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		retentionStr       = cfg.RetentionWindow.String()
		sweepIntervalStr   = cfg.SweepInterval.String()
		businessOffsetStr  = cfg.BusinessOffset.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		wsPingStr          = cfg.WSPingInterval.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN, empty keeps data in memory")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing staff sessions")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Staff session lifetime")
	fs.StringVar(&cfg.AdminUsername, "admin-user", cfg.AdminUsername, "Bootstrap admin username")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Bootstrap admin password")
	fs.StringVar(&retentionStr, "retention", retentionStr, "How long orders are kept")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between retention sweeps")
	fs.StringVar(&businessOffsetStr, "business-offset", businessOffsetStr, "UTC offset of the business day")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.WSSendBuffer, "ws-buffer", cfg.WSSendBuffer, "Outbound queue length per live connection")
	fs.StringVar(&wsPingStr, "ws-ping", wsPingStr, "Keepalive ping interval for live connections")
	fs.StringVar(&cfg.NATSURL, "nats", cfg.NATSURL, "NATS server URL for the event mirror")
	fs.BoolVar(&cfg.SeedDemo, "seed-demo", cfg.SeedDemo, "Seed demo catalog on startup")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"session ttl", sessionTTLStr, &cfg.SessionTTL},
		{"retention window", retentionStr, &cfg.RetentionWindow},
		{"sweep interval", sweepIntervalStr, &cfg.SweepInterval},
		{"business offset", businessOffsetStr, &cfg.BusinessOffset},
		{"shutdown timeout", shutdownTimeoutStr, &cfg.ShutdownTimeout},
		{"ws ping interval", wsPingStr, &cfg.WSPingInterval},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.name, err)
		}
		*d.dst = v
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.RetentionWindow <= 0 {
		cfg.RetentionWindow = defaultRetentionWindow
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.WSSendBuffer <= 0 {
		cfg.WSSendBuffer = defaultWSSendBuffer
	}

	if cfg.WSPingInterval <= 0 {
		cfg.WSPingInterval = defaultWSPingInterval
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret must not be empty")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
