package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/goran-ethernal/OrderScope/internal/common"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
)

// DefaultBucketSize is roughly one day of Terra blocks.
const DefaultBucketSize = 14400

// MaxBuckets bounds how many buckets one range may be split into.
const MaxBuckets = 10_000

// Config represents the complete configuration for OrderScope.
type Config struct {
	// Search contains the transaction search service configuration
	Search SearchConfig `yaml:"search" json:"search" toml:"search"`

	// Analysis describes what to analyze
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis" toml:"analysis"`

	// Store contains the optional result database configuration
	Store *DatabaseConfig `yaml:"store,omitempty" json:"store,omitempty" toml:"store,omitempty"`

	// API contains the optional REST API configuration
	API *APIConfig `yaml:"api,omitempty" json:"api,omitempty" toml:"api,omitempty"`

	// Logging contains logging configuration
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty" toml:"logging,omitempty"`

	// Metrics contains Prometheus metrics configuration
	Metrics *MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty" toml:"metrics,omitempty"`
}

// SearchConfig represents the configuration of the transaction search client.
type SearchConfig struct {
	// URL is the base URL of the search service
	URL string `yaml:"url" json:"url" toml:"url"`

	// APIKey is embedded in the request path
	APIKey string `yaml:"api_key" json:"api_key" toml:"api_key"`

	// Network is sent with every query
	Network string `yaml:"network" json:"network" toml:"network"`

	// Timeout bounds a single HTTP request
	Timeout common.Duration `yaml:"timeout" json:"timeout" toml:"timeout"`

	// RateLimit caps requests per second (0 = unlimited)
	RateLimit float64 `yaml:"rate_limit" json:"rate_limit" toml:"rate_limit"`

	// Retry contains retry configuration with exponential backoff
	Retry *RetryConfig `yaml:"retry,omitempty" json:"retry,omitempty" toml:"retry,omitempty"`
}

// ApplyDefaults sets default values for optional search configuration fields.
func (s *SearchConfig) ApplyDefaults() {
	if s.Network == "" {
		s.Network = "terra"
	}
	if s.Timeout.Duration == 0 {
		s.Timeout = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	if s.Retry == nil {
		s.Retry = &RetryConfig{}
	}
	s.Retry.ApplyDefaults()
}

// Validate checks if the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.URL == "" {
		return errors.New("search.url is required")
	}
	if u, err := url.Parse(s.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("search.url: invalid URL %q", s.URL)
	}
	if s.APIKey == "" {
		return errors.New("search.api_key is required")
	}
	if s.RateLimit < 0 {
		return errors.New("search.rate_limit must not be negative")
	}
	if s.Retry != nil {
		if err := s.Retry.Validate(); err != nil {
			return fmt.Errorf("search.retry: %w", err)
		}
	}
	return nil
}

// AnalysisConfig describes the liquidators to inspect and the height range.
type AnalysisConfig struct {
	// Relation is the ordering to detect: "frontrun" or "backrun"
	Relation string `yaml:"relation" json:"relation" toml:"relation"`

	// AddressPrefix is the expected bech32 prefix of every address
	AddressPrefix string `yaml:"address_prefix" json:"address_prefix" toml:"address_prefix"`

	// OracleFeeder is the account that submits price updates
	OracleFeeder string `yaml:"oracle_feeder" json:"oracle_feeder" toml:"oracle_feeder"`

	// Liquidators are analyzed one after another
	Liquidators []string `yaml:"liquidators" json:"liquidators" toml:"liquidators"`

	// FromHeight and ToHeight bound the analyzed range, both exclusive
	FromHeight uint64 `yaml:"from_height" json:"from_height" toml:"from_height"`
	ToHeight   uint64 `yaml:"to_height" json:"to_height" toml:"to_height"`

	// SplitHeight divides the before/after statistics (0 = no split)
	SplitHeight uint64 `yaml:"split_height,omitempty" json:"split_height,omitempty" toml:"split_height,omitempty"`

	// BucketSize is the number of heights per chart bucket
	BucketSize uint64 `yaml:"bucket_size" json:"bucket_size" toml:"bucket_size"`
}

// ApplyDefaults sets default values for optional analysis configuration fields.
func (a *AnalysisConfig) ApplyDefaults() {
	if a.Relation == "" {
		a.Relation = liquidation.RelationFrontrun.String()
	}
	if a.AddressPrefix == "" {
		a.AddressPrefix = "terra"
	}
	if a.BucketSize == 0 {
		a.BucketSize = DefaultBucketSize
	}
}

// Validate checks if the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if _, err := liquidation.ParseRelation(a.Relation); err != nil {
		return fmt.Errorf("analysis.relation: %w", err)
	}

	if err := validateAddress(a.OracleFeeder, a.AddressPrefix); err != nil {
		return fmt.Errorf("analysis.oracle_feeder: %w", err)
	}

	if len(a.Liquidators) == 0 {
		return errors.New("analysis.liquidators: at least one liquidator must be configured")
	}

	seen := make(map[string]bool, len(a.Liquidators))
	for i, liq := range a.Liquidators {
		if err := validateAddress(liq, a.AddressPrefix); err != nil {
			return fmt.Errorf("analysis.liquidators[%d]: %w", i, err)
		}
		if seen[liq] {
			return fmt.Errorf("analysis.liquidators[%d]: duplicate liquidator '%s'", i, liq)
		}
		seen[liq] = true
	}

	if a.ToHeight <= a.FromHeight+1 {
		return fmt.Errorf("analysis.to_height (%d) must leave at least one height after from_height (%d)",
			a.ToHeight, a.FromHeight)
	}

	if a.SplitHeight != 0 && (a.SplitHeight <= a.FromHeight || a.SplitHeight >= a.ToHeight) {
		return fmt.Errorf("analysis.split_height (%d) must lie inside (%d, %d)",
			a.SplitHeight, a.FromHeight, a.ToHeight)
	}

	if a.BucketSize != 0 && (a.ToHeight-a.FromHeight-1)/a.BucketSize >= MaxBuckets {
		return fmt.Errorf("analysis.bucket_size (%d) splits the range into more than %d buckets",
			a.BucketSize, MaxBuckets)
	}

	return nil
}

// GetRelation returns the parsed relation. Validate must have succeeded.
func (a *AnalysisConfig) GetRelation() liquidation.Relation {
	return liquidation.Relation(a.Relation)
}

func validateAddress(address, prefix string) error {
	if address == "" {
		return errors.New("address is required")
	}

	hrp, _, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return fmt.Errorf("invalid bech32 address '%s': %w", address, err)
	}
	if hrp != prefix {
		return fmt.Errorf("address '%s' has prefix '%s', expected '%s'", address, hrp, prefix)
	}

	return nil
}

// RetryConfig represents retry configuration with exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial request)
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts" toml:"max_attempts"`

	// InitialBackoff is the initial backoff duration before first retry
	InitialBackoff common.Duration `yaml:"initial_backoff" json:"initial_backoff" toml:"initial_backoff"`

	// MaxBackoff is the maximum backoff duration
	MaxBackoff common.Duration `yaml:"max_backoff" json:"max_backoff" toml:"max_backoff"`

	// BackoffMultiplier is the multiplier for exponential backoff
	BackoffMultiplier float64 `yaml:"backoff_multiplier" json:"backoff_multiplier" toml:"backoff_multiplier"`
}

// ApplyDefaults sets default values for retry configuration.
func (r *RetryConfig) ApplyDefaults() {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 5
	}
	if r.InitialBackoff.Duration == 0 {
		r.InitialBackoff = common.NewDuration(1 * time.Second)
	}
	if r.MaxBackoff.Duration == 0 {
		r.MaxBackoff = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	if r.BackoffMultiplier == 0 {
		r.BackoffMultiplier = 2.0
	}
}

// Validate checks if the retry configuration is valid.
func (r *RetryConfig) Validate() error {
	if r.MaxAttempts < 1 {
		return errors.New("max_attempts must be at least 1")
	}
	if r.BackoffMultiplier < 1 {
		return errors.New("backoff_multiplier must be at least 1")
	}
	if r.MaxBackoff.Duration < r.InitialBackoff.Duration {
		return errors.New("max_backoff must not be lower than initial_backoff")
	}
	return nil
}

// DatabaseConfig represents database configuration.
type DatabaseConfig struct {
	// Path is the file path to the SQLite database
	Path string `yaml:"path" json:"path" toml:"path"`

	// JournalMode sets the SQLite journal mode (e.g., "WAL", "DELETE")
	JournalMode string `yaml:"journal_mode" json:"journal_mode" toml:"journal_mode"`

	// Synchronous sets the synchronization level ("FULL", "NORMAL", "OFF")
	Synchronous string `yaml:"synchronous" json:"synchronous" toml:"synchronous"`

	// BusyTimeout is the time in milliseconds to wait when the database is locked
	BusyTimeout int `yaml:"busy_timeout" json:"busy_timeout" toml:"busy_timeout"`

	// CacheSize is the size of the page cache (negative = KB, positive = pages)
	CacheSize int `yaml:"cache_size" json:"cache_size" toml:"cache_size"`

	// MaxOpenConnections is the maximum number of open database connections
	MaxOpenConnections int `yaml:"max_open_connections" json:"max_open_connections" toml:"max_open_connections"`

	// MaxIdleConnections is the maximum number of idle connections in the pool
	MaxIdleConnections int `yaml:"max_idle_connections" json:"max_idle_connections" toml:"max_idle_connections"`

	// CompactOnSave checkpoints the WAL and vacuums after every saved run
	CompactOnSave bool `yaml:"compact_on_save" json:"compact_on_save" toml:"compact_on_save"`
}

// ApplyDefaults sets default values for optional database configuration fields.
func (d *DatabaseConfig) ApplyDefaults() {
	if d.JournalMode == "" {
		d.JournalMode = "WAL"
	}
	if d.Synchronous == "" {
		d.Synchronous = "NORMAL"
	}
	if d.BusyTimeout == 0 {
		d.BusyTimeout = 5000
	}
	if d.CacheSize == 0 {
		d.CacheSize = 10000
	}
	if d.MaxOpenConnections == 0 {
		d.MaxOpenConnections = 25
	}
	if d.MaxIdleConnections == 0 {
		d.MaxIdleConnections = 5
	}
}

// Validate checks if the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	if d.Path == "" {
		return errors.New("path is required")
	}

	switch d.JournalMode {
	case "", "WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY":
	default:
		return errors.New("journal_mode must be one of: WAL, DELETE, TRUNCATE, PERSIST, MEMORY")
	}

	switch d.Synchronous {
	case "", "FULL", "NORMAL", "OFF":
	default:
		return errors.New("synchronous must be one of: FULL, NORMAL, OFF")
	}

	return nil
}

// APIConfig configures the read-only REST API over stored results.
type APIConfig struct {
	// Enabled controls whether the API server is started
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the API server to
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// ReadTimeout, WriteTimeout and IdleTimeout configure the HTTP server
	ReadTimeout  common.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`
	WriteTimeout common.Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`
	IdleTimeout  common.Duration `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout"`

	// CORS configures cross-origin requests
	CORS CORSConfig `yaml:"cors" json:"cors" toml:"cors"`
}

// CORSConfig configures cross-origin resource sharing.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled" json:"enabled" toml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" toml:"allowed_origins"`
}

// ApplyDefaults sets default values for optional API configuration fields.
func (a *APIConfig) ApplyDefaults() {
	if a.ListenAddress == "" {
		a.ListenAddress = ":8080"
	}
	if a.ReadTimeout.Duration == 0 {
		a.ReadTimeout = common.NewDuration(15 * time.Second) //nolint:mnd
	}
	if a.WriteTimeout.Duration == 0 {
		a.WriteTimeout = common.NewDuration(15 * time.Second) //nolint:mnd
	}
	if a.IdleTimeout.Duration == 0 {
		a.IdleTimeout = common.NewDuration(60 * time.Second) //nolint:mnd
	}
	if a.CORS.Enabled && len(a.CORS.AllowedOrigins) == 0 {
		a.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks if the API configuration is valid.
func (a *APIConfig) Validate() error {
	if a.Enabled && a.ListenAddress == "" {
		return errors.New("listen_address is required when the API is enabled")
	}
	return nil
}

// LoggingConfig configures logging behavior with per-component log levels.
type LoggingConfig struct {
	// DefaultLevel is the default log level for all components
	// Options: "debug", "info", "warn", "error"
	DefaultLevel string `yaml:"default_level" json:"default_level" toml:"default_level"`

	// Development enables development mode (stack traces, console encoder)
	Development bool `yaml:"development" json:"development" toml:"development"`

	// ComponentLevels sets log levels for specific components
	// Available components:
	//   - search-client: Transaction search requests
	//   - block-fetcher: Block retrieval and caching
	//   - extractor: Liquidation extraction
	//   - detector: Ordering detection
	//   - analyzer: Run orchestration
	//   - report-store: Result storage
	//   - api: REST API
	ComponentLevels map[string]string `yaml:"component_levels,omitempty" json:"component_levels,omitempty" toml:"component_levels,omitempty"` //nolint:lll
}

// ApplyDefaults sets default values for optional logging configuration fields.
func (l *LoggingConfig) ApplyDefaults() {
	if l.DefaultLevel == "" {
		l.DefaultLevel = "info"
	}
	if l.ComponentLevels == nil {
		l.ComponentLevels = make(map[string]string)
	}
}

// Validate checks if the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	if l.DefaultLevel != "" {
		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(l.DefaultLevel)]; !valid {
			return fmt.Errorf("logging.default_level: must be one of: debug, info, warn, error")
		}
	}

	for component, level := range l.ComponentLevels {
		if _, validComponent := common.AllComponents[common.ToLowerWithTrim(component)]; !validComponent {
			return fmt.Errorf("logging.component_levels: unknown component '%s'", component)
		}

		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(level)]; !valid {
			return fmt.Errorf("logging.component_levels[%s]: must be one of: debug, info, warn, error", component)
		}
	}

	return nil
}

// GetComponentLevel returns the log level for a specific component.
// Falls back to DefaultLevel if no component-specific level is set.
func (l *LoggingConfig) GetComponentLevel(component string) string {
	if level, ok := l.ComponentLevels[component]; ok {
		return common.ToLowerWithTrim(level)
	}
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// GetDefaultLevel returns the default log level.
func (l *LoggingConfig) GetDefaultLevel() string {
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// IsDevelopment returns whether development mode is enabled.
func (l *LoggingConfig) IsDevelopment() bool {
	return l.Development
}

// MetricsConfig configures Prometheus metrics exposition.
type MetricsConfig struct {
	// Enabled controls whether metrics collection and HTTP endpoint are active
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the metrics HTTP server to
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// Path is the HTTP path where metrics are exposed
	Path string `yaml:"path" json:"path" toml:"path"`
}

// ApplyDefaults sets default values for optional metrics configuration fields.
func (m *MetricsConfig) ApplyDefaults() {
	if m.ListenAddress == "" {
		m.ListenAddress = ":9090"
	}
	if m.Path == "" {
		m.Path = "/metrics"
	}
}

// Validate checks if the metrics configuration is valid.
func (m *MetricsConfig) Validate() error {
	if m.Enabled {
		if m.ListenAddress == "" {
			return fmt.Errorf("listen_address is required when metrics are enabled")
		}
		if m.Path == "" {
			return fmt.Errorf("path is required when metrics are enabled")
		}
		if m.Path[0] != '/' {
			return fmt.Errorf("path must start with '/'")
		}
	}
	return nil
}

// ApplyDefaults sets default values for optional configuration fields.
func (c *Config) ApplyDefaults() {
	c.Search.ApplyDefaults()
	c.Analysis.ApplyDefaults()

	if c.Store != nil {
		c.Store.ApplyDefaults()
	}

	if c.API != nil {
		c.API.ApplyDefaults()
	}

	if c.Logging != nil {
		c.Logging.ApplyDefaults()
	}

	if c.Metrics != nil {
		c.Metrics.ApplyDefaults()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}

	if err := c.Analysis.Validate(); err != nil {
		return err
	}

	if c.Store != nil {
		if err := c.Store.Validate(); err != nil {
			return fmt.Errorf("store: %w", err)
		}
	}

	if c.API != nil {
		if err := c.API.Validate(); err != nil {
			return fmt.Errorf("api: %w", err)
		}
		if c.API.Enabled && c.Store == nil {
			return errors.New("api: a store must be configured to serve results")
		}
	}

	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}
