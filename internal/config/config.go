package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rohmanhakim/recipebox/internal/fetcher"
	"github.com/rohmanhakim/recipebox/pkg/fileutil"
	"gopkg.in/yaml.v3"
)

const mebibyte = 1024 * 1024

type Config struct {
	//===============
	// Endpoints
	//===============
	// Recipe list locator. Also the cache key of the fetched collection.
	recipesEndpoint string
	// Summary API base; the normalized term is appended as the last path segment
	summaryBaseURL string

	//===============
	// Fetch
	//===============
	// Maximum time of a single request
	timeout time.Duration
	// User agent that will be used in the request header. In raw string
	userAgent string
	// Response bodies larger than this are rejected. 0 disables the cap
	maxBodyBytes int64

	//===============
	// Cache
	//===============
	// Zero means unlimited for all four limits
	recipeCacheCountLimit  int
	recipeCacheCostLimit   int
	summaryCacheCountLimit int
	summaryCacheCostLimit  int

	//===============
	// Politeness
	//===============
	// Minimum, fixed waiting time enforced between two requests to the same host.
	baseDelay time.Duration
	// Randomized variation added on top of the base delay.
	jitter time.Duration
	// Controls the random number generator
	randomSeed int64
	// Maximum attempts of a caller-driven retry. 1 means no retry
	maxAttempt int
	// initial delay for backoff
	backoffInitialDuration time.Duration
	// multiplier during exponential backoff
	backoffMultiplier float64
	// capped maximum delay for backoff to stop exponential multiplication
	backoffMaxDuration time.Duration

	//===============
	// Logging
	//===============
	// debug, info, warn or error. Empty defers to the LOG_LEVEL environment variable
	logLevel string
}

// configDTO is shared by the JSON and YAML readers.
// Durations are integer nanoseconds in JSON and strings like "5s" in YAML.
type configDTO struct {
	RecipesEndpoint        string        `json:"recipesEndpoint,omitempty" yaml:"recipesEndpoint,omitempty"`
	SummaryBaseURL         string        `json:"summaryBaseURL,omitempty" yaml:"summaryBaseURL,omitempty"`
	Timeout                time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	UserAgent              string        `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`
	MaxBodyBytes           int64         `json:"maxBodyBytes,omitempty" yaml:"maxBodyBytes,omitempty"`
	RecipeCacheCountLimit  *int          `json:"recipeCacheCountLimit,omitempty" yaml:"recipeCacheCountLimit,omitempty"`
	RecipeCacheCostLimit   *int          `json:"recipeCacheCostLimit,omitempty" yaml:"recipeCacheCostLimit,omitempty"`
	SummaryCacheCountLimit *int          `json:"summaryCacheCountLimit,omitempty" yaml:"summaryCacheCountLimit,omitempty"`
	SummaryCacheCostLimit  *int          `json:"summaryCacheCostLimit,omitempty" yaml:"summaryCacheCostLimit,omitempty"`
	BaseDelay              time.Duration `json:"baseDelay,omitempty" yaml:"baseDelay,omitempty"`
	Jitter                 time.Duration `json:"jitter,omitempty" yaml:"jitter,omitempty"`
	RandomSeed             int64         `json:"randomSeed,omitempty" yaml:"randomSeed,omitempty"`
	MaxAttempt             int           `json:"maxAttempt,omitempty" yaml:"maxAttempt,omitempty"`
	BackoffInitialDuration time.Duration `json:"backoffInitialDuration,omitempty" yaml:"backoffInitialDuration,omitempty"`
	BackoffMultiplier      float64       `json:"backoffMultiplier,omitempty" yaml:"backoffMultiplier,omitempty"`
	BackoffMaxDuration     time.Duration `json:"backoffMaxDuration,omitempty" yaml:"backoffMaxDuration,omitempty"`
	LogLevel               string        `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	builder := WithDefault()

	// only override when a non-zero value is provided
	if dto.RecipesEndpoint != "" {
		builder.WithRecipesEndpoint(dto.RecipesEndpoint)
	}
	if dto.SummaryBaseURL != "" {
		builder.WithSummaryBaseURL(dto.SummaryBaseURL)
	}
	if dto.Timeout != 0 {
		builder.WithTimeout(dto.Timeout)
	}
	if dto.UserAgent != "" {
		builder.WithUserAgent(dto.UserAgent)
	}
	if dto.MaxBodyBytes != 0 {
		builder.WithMaxBodyBytes(dto.MaxBodyBytes)
	}
	// cache limits are pointers because 0 (unlimited) is a meaningful value
	if dto.RecipeCacheCountLimit != nil {
		builder.WithRecipeCacheCountLimit(*dto.RecipeCacheCountLimit)
	}
	if dto.RecipeCacheCostLimit != nil {
		builder.WithRecipeCacheCostLimit(*dto.RecipeCacheCostLimit)
	}
	if dto.SummaryCacheCountLimit != nil {
		builder.WithSummaryCacheCountLimit(*dto.SummaryCacheCountLimit)
	}
	if dto.SummaryCacheCostLimit != nil {
		builder.WithSummaryCacheCostLimit(*dto.SummaryCacheCostLimit)
	}
	if dto.BaseDelay != 0 {
		builder.WithBaseDelay(dto.BaseDelay)
	}
	if dto.Jitter != 0 {
		builder.WithJitter(dto.Jitter)
	}
	if dto.RandomSeed != 0 {
		builder.WithRandomSeed(dto.RandomSeed)
	}
	if dto.MaxAttempt != 0 {
		builder.WithMaxAttempt(dto.MaxAttempt)
	}
	if dto.BackoffInitialDuration != 0 {
		builder.WithBackoffInitialDuration(dto.BackoffInitialDuration)
	}
	if dto.BackoffMultiplier != 0 {
		builder.WithBackoffMultiplier(dto.BackoffMultiplier)
	}
	if dto.BackoffMaxDuration != 0 {
		builder.WithBackoffMaxDuration(dto.BackoffMaxDuration)
	}
	if dto.LogLevel != "" {
		builder.WithLogLevel(dto.LogLevel)
	}

	return builder.Build()
}

// WithConfigFile loads a .json, .yaml or .yml file on top of the defaults.
func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}

	cfgDTO := configDTO{}
	switch ext := strings.ToLower(fileutil.GetFileExtension(path)); ext {
	case "json":
		err = json.Unmarshal(configContent, &cfgDTO)
	case "yaml", "yml":
		err = yaml.Unmarshal(configContent, &cfgDTO)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	return newConfigFromDTO(cfgDTO)
}

// WithDefault creates a new Config builder holding the default value of every field.
func WithDefault() *Config {
	defaultConfig := Config{
		recipesEndpoint:        fetcher.CompleteEndpoint,
		summaryBaseURL:         fetcher.DefaultSummaryBaseURL,
		timeout:                10 * time.Second,
		userAgent:              "recipebox/1.0",
		maxBodyBytes:           10 * mebibyte,
		recipeCacheCountLimit:  100,
		recipeCacheCostLimit:   100 * mebibyte,
		summaryCacheCountLimit: 75,
		summaryCacheCostLimit:  50 * mebibyte,
		baseDelay:              0,
		jitter:                 0,
		randomSeed:             time.Now().UnixNano(),
		maxAttempt:             1,
		backoffInitialDuration: 100 * time.Millisecond,
		backoffMultiplier:      2.0,
		backoffMaxDuration:     10 * time.Second,
		logLevel:               "",
	}
	return &defaultConfig
}

func (c *Config) WithRecipesEndpoint(endpoint string) *Config {
	c.recipesEndpoint = endpoint
	return c
}

func (c *Config) WithSummaryBaseURL(baseURL string) *Config {
	c.summaryBaseURL = baseURL
	return c
}

func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.timeout = timeout
	return c
}

func (c *Config) WithUserAgent(agent string) *Config {
	c.userAgent = agent
	return c
}

func (c *Config) WithMaxBodyBytes(limit int64) *Config {
	c.maxBodyBytes = limit
	return c
}

func (c *Config) WithRecipeCacheCountLimit(limit int) *Config {
	c.recipeCacheCountLimit = limit
	return c
}

func (c *Config) WithRecipeCacheCostLimit(limit int) *Config {
	c.recipeCacheCostLimit = limit
	return c
}

func (c *Config) WithSummaryCacheCountLimit(limit int) *Config {
	c.summaryCacheCountLimit = limit
	return c
}

func (c *Config) WithSummaryCacheCostLimit(limit int) *Config {
	c.summaryCacheCostLimit = limit
	return c
}

func (c *Config) WithBaseDelay(delay time.Duration) *Config {
	c.baseDelay = delay
	return c
}

func (c *Config) WithJitter(jitter time.Duration) *Config {
	c.jitter = jitter
	return c
}

func (c *Config) WithRandomSeed(seed int64) *Config {
	c.randomSeed = seed
	return c
}

func (c *Config) WithMaxAttempt(attempts int) *Config {
	c.maxAttempt = attempts
	return c
}

func (c *Config) WithBackoffInitialDuration(duration time.Duration) *Config {
	c.backoffInitialDuration = duration
	return c
}

func (c *Config) WithBackoffMultiplier(multiplier float64) *Config {
	c.backoffMultiplier = multiplier
	return c
}

func (c *Config) WithBackoffMaxDuration(duration time.Duration) *Config {
	c.backoffMaxDuration = duration
	return c
}

func (c *Config) WithLogLevel(level string) *Config {
	c.logLevel = level
	return c
}

// Build validates the builder and returns an immutable copy.
func (c *Config) Build() (Config, error) {
	if strings.TrimSpace(c.recipesEndpoint) == "" {
		return Config{}, fmt.Errorf("%w: recipesEndpoint cannot be empty", ErrInvalidConfig)
	}
	base, err := url.Parse(c.summaryBaseURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return Config{}, fmt.Errorf("%w: summaryBaseURL must be an absolute http(s) URL, got %q", ErrInvalidConfig, c.summaryBaseURL)
	}
	if base.RawQuery != "" || base.Fragment != "" {
		return Config{}, fmt.Errorf("%w: summaryBaseURL cannot carry a query or fragment, got %q", ErrInvalidConfig, c.summaryBaseURL)
	}
	if c.timeout <= 0 {
		return Config{}, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if c.maxBodyBytes < 0 {
		return Config{}, fmt.Errorf("%w: maxBodyBytes cannot be negative", ErrInvalidConfig)
	}
	if c.recipeCacheCountLimit < 0 || c.recipeCacheCostLimit < 0 ||
		c.summaryCacheCountLimit < 0 || c.summaryCacheCostLimit < 0 {
		return Config{}, fmt.Errorf("%w: cache limits cannot be negative", ErrInvalidConfig)
	}
	if c.baseDelay < 0 || c.jitter < 0 {
		return Config{}, fmt.Errorf("%w: baseDelay and jitter cannot be negative", ErrInvalidConfig)
	}
	if c.maxAttempt < 1 {
		return Config{}, fmt.Errorf("%w: maxAttempt must be at least 1", ErrInvalidConfig)
	}
	if c.backoffMultiplier < 1 {
		return Config{}, fmt.Errorf("%w: backoffMultiplier must be at least 1", ErrInvalidConfig)
	}
	switch strings.ToLower(c.logLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("%w: unknown logLevel %q", ErrInvalidConfig, c.logLevel)
	}

	built := *c
	// lookup terms are appended to the base as the last path segment
	if !strings.HasSuffix(built.summaryBaseURL, "/") {
		built.summaryBaseURL += "/"
	}
	return built, nil
}

func (c Config) RecipesEndpoint() string {
	return c.recipesEndpoint
}

func (c Config) SummaryBaseURL() string {
	return c.summaryBaseURL
}

func (c Config) Timeout() time.Duration {
	return c.timeout
}

func (c Config) UserAgent() string {
	return c.userAgent
}

func (c Config) MaxBodyBytes() int64 {
	return c.maxBodyBytes
}

func (c Config) RecipeCacheCountLimit() int {
	return c.recipeCacheCountLimit
}

func (c Config) RecipeCacheCostLimit() int {
	return c.recipeCacheCostLimit
}

func (c Config) SummaryCacheCountLimit() int {
	return c.summaryCacheCountLimit
}

func (c Config) SummaryCacheCostLimit() int {
	return c.summaryCacheCostLimit
}

func (c Config) BaseDelay() time.Duration {
	return c.baseDelay
}

func (c Config) Jitter() time.Duration {
	return c.jitter
}

func (c Config) RandomSeed() int64 {
	return c.randomSeed
}

func (c Config) MaxAttempt() int {
	return c.maxAttempt
}

func (c Config) BackoffInitialDuration() time.Duration {
	return c.backoffInitialDuration
}

func (c Config) BackoffMultiplier() float64 {
	return c.backoffMultiplier
}

func (c Config) BackoffMaxDuration() time.Duration {
	return c.backoffMaxDuration
}

func (c Config) LogLevel() string {
	return c.logLevel
}
