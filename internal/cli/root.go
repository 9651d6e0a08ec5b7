package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rohmanhakim/recipebox/internal/config"
	"github.com/rohmanhakim/recipebox/internal/fetcher"
	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	summaryBaseURL string
	userAgent      string
	timeout        time.Duration
	baseDelay      time.Duration
	jitter         time.Duration
	randomSeed     int64
	maxAttempt     int
	logLevel       string
	metricsFile    string

	// swapped in by tests; nil means the real HTTP transport
	transportOverride fetcher.Transport
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recipebox",
	Short: "Fetch, cache and browse recipes.",
	Long: `recipebox fetches recipe collections from a remote JSON endpoint,
keeps them in a bounded in-memory cache, and looks up encyclopedia summaries
for dishes, retrying once with a shorter term when the full name is unknown.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if merr := writeMetricsFile(metricsFile); merr != nil {
		fmt.Fprintln(os.Stderr, merr)
		err = errors.Join(err, merr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// ExecuteArgs runs the command tree with explicit arguments and writers.
func ExecuteArgs(args []string, out io.Writer, errOut io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()
	err := rootCmd.Execute()
	if merr := writeMetricsFile(metricsFile); merr != nil {
		fmt.Fprintln(errOut, merr)
		return errors.Join(err, merr)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path, .json or .yaml (e.g., /home/myuser/recipebox.yaml)")
	rootCmd.PersistentFlags().StringVar(&summaryBaseURL, "summary-base-url", "", "summary API base URL")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "user agent string for HTTP requests")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "timeout for HTTP requests")
	rootCmd.PersistentFlags().DurationVar(&baseDelay, "base-delay", 0, "base delay between HTTP requests to the same host")
	rootCmd.PersistentFlags().DurationVar(&jitter, "jitter", 0, "random jitter added to delays")
	rootCmd.PersistentFlags().Int64Var(&randomSeed, "random-seed", 0, "seed for random number generation (0 for current time)")
	rootCmd.PersistentFlags().IntVar(&maxAttempt, "max-attempt", 0, "attempts per fetch for retryable failures (1 disables retry)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (defaults to LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write cache metrics in Prometheus text format to this file on exit")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(versionCmd)
}

// InitConfigWithError reads the config file when one is given, otherwise
// applies CLI flag values on top of the defaults.
func InitConfigWithError(errOut io.Writer) (config.Config, error) {
	if cfgFile != "" {
		fmt.Fprintf(errOut, "Initializing config from file: %s\n", cfgFile)
		cfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("error initializing config from file: %w", err)
		}
		return cfg, nil
	}

	configBuilder := config.WithDefault()

	if summaryBaseURL != "" {
		configBuilder = configBuilder.WithSummaryBaseURL(summaryBaseURL)
	}

	if userAgent != "" {
		configBuilder = configBuilder.WithUserAgent(userAgent)
	}

	if timeout > 0 {
		configBuilder = configBuilder.WithTimeout(timeout)
	}

	if baseDelay > 0 {
		configBuilder = configBuilder.WithBaseDelay(baseDelay)
	}

	if jitter > 0 {
		configBuilder = configBuilder.WithJitter(jitter)
	}

	if randomSeed != 0 {
		configBuilder = configBuilder.WithRandomSeed(randomSeed)
	}

	if maxAttempt > 0 {
		configBuilder = configBuilder.WithMaxAttempt(maxAttempt)
	}

	if logLevel != "" {
		configBuilder = configBuilder.WithLogLevel(logLevel)
	}

	cfg, err := configBuilder.Build()
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func ResetFlags() {
	cfgFile = ""
	summaryBaseURL = ""
	userAgent = ""
	timeout = 0
	baseDelay = 0
	jitter = 0
	randomSeed = 0
	maxAttempt = 0
	logLevel = ""
	metricsFile = ""
	transportOverride = nil

	endpointArgs = []string{}
	fetchAll = false
	concurrency = 0
	searchText = ""
	sortOrder = ""
	favoriteUUIDs = []string{}
	favoritesOnly = false
	outputPath = ""
	outputDir = ""
	useSample = false
}

// Test helper functions to set flag values from tests
func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetSummaryBaseURLForTest(baseURL string) {
	summaryBaseURL = baseURL
}

func SetUserAgentForTest(agent string) {
	userAgent = agent
}

func SetTimeoutForTest(t time.Duration) {
	timeout = t
}

func SetMaxAttemptForTest(attempts int) {
	maxAttempt = attempts
}

func SetRandomSeedForTest(seed int64) {
	randomSeed = seed
}

func SetLogLevelForTest(level string) {
	logLevel = level
}

func SetTransportForTest(transport fetcher.Transport) {
	transportOverride = transport
}
