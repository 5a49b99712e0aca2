package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultServerHost           = "127.0.0.1"
	defaultStorePath            = "courier-sync.db"
	defaultStoreSchemaVersion   = 2
	defaultRemoteRequestTimeout = 12 * time.Second
	defaultSyncMaxRetries       = 3
	defaultLocationTimeout      = 3 * time.Second
	defaultLocationMaxAge       = 10 * time.Minute
	defaultLogLevel             = "info"
	defaultSyncDrainInterval    = 30 * time.Second
	defaultConnectivityInterval = 15 * time.Second
	defaultCacheCleanupInterval = 10 * time.Minute
	defaultRemoteProbeTimeout   = 5 * time.Second
)

type (
	Tasks struct {
		SyncDrainInterval         time.Duration
		ConnectivityProbeInterval time.Duration
		CacheCleanupInterval      time.Duration
	}

	HTTPServer struct {
		Host             string // loopback by default, the API serves the local UI shell
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // rate limiter refill per second
		RateLimiterBurst int           // rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Store struct {
		Path          string
		SchemaVersion int
	}

	Remote struct {
		BaseURL        string
		RequestTimeout time.Duration
		ProbeTimeout   time.Duration
	}

	Sync struct {
		MaxRetries int
	}

	Sequencing struct {
		LocationTimeout time.Duration
		LocationMaxAge  time.Duration
	}

	Config struct {
		LogLevel   string
		Tasks      Tasks
		Server     HTTPServer
		Store      Store
		Remote     Remote
		Sync       Sync
		Sequencing Sequencing
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	schemaVersion, err := osGetInt("STORE_SCHEMA_VERSION")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	remoteTimeout, err := osGetEnvDuration("REMOTE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	probeTimeout, err := osGetEnvDuration("REMOTE_PROBE_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxRetries, err := osGetInt("SYNC_MAX_RETRIES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	drainInterval, err := osGetEnvDuration("BACKGROUND_SYNC_DRAIN_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	probeInterval, err := osGetEnvDuration("BACKGROUND_CONNECTIVITY_PROBE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cleanupInterval, err := osGetEnvDuration("BACKGROUND_CACHE_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	locationTimeout, err := osGetEnvDuration("SEQUENCING_LOCATION_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	locationMaxAge, err := osGetEnvDuration("SEQUENCING_LOCATION_MAX_AGE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: withDefault(os.Getenv("LOG_LEVEL"), defaultLogLevel),
		Tasks: Tasks{
			SyncDrainInterval:         withDefault(drainInterval, defaultSyncDrainInterval),
			ConnectivityProbeInterval: withDefault(probeInterval, defaultConnectivityInterval),
			CacheCleanupInterval:      withDefault(cleanupInterval, defaultCacheCleanupInterval),
		},
		Server: HTTPServer{
			Host:             withDefault(os.Getenv("HOST"), defaultServerHost),
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Store: Store{
			Path:          withDefault(os.Getenv("STORE_PATH"), defaultStorePath),
			SchemaVersion: withDefault(schemaVersion, defaultStoreSchemaVersion),
		},
		Remote: Remote{
			BaseURL:        os.Getenv("REMOTE_BASE_URL"),
			RequestTimeout: withDefault(remoteTimeout, defaultRemoteRequestTimeout),
			ProbeTimeout:   withDefault(probeTimeout, defaultRemoteProbeTimeout),
		},
		Sync: Sync{
			MaxRetries: withDefault(maxRetries, defaultSyncMaxRetries),
		},
		Sequencing: Sequencing{
			LocationTimeout: withDefault(locationTimeout, defaultLocationTimeout),
			LocationMaxAge:  withDefault(locationMaxAge, defaultLocationMaxAge),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Remote.BaseURL == "" {
		return errors.New("REMOTE_BASE_URL is required")
	}

	if cfg.Store.SchemaVersion < 1 {
		return fmt.Errorf("STORE_SCHEMA_VERSION must be positive, got %d", cfg.Store.SchemaVersion)
	}
	if cfg.Sync.MaxRetries < 0 {
		return fmt.Errorf("SYNC_MAX_RETRIES must not be negative, got %d", cfg.Sync.MaxRetries)
	}

	return nil
}

func withDefault[T comparable](val, def T) T {
	var zero T
	if val == zero {
		return def
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
