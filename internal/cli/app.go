package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/rohmanhakim/recipebox/internal/build"
	"github.com/rohmanhakim/recipebox/internal/cache"
	"github.com/rohmanhakim/recipebox/internal/config"
	"github.com/rohmanhakim/recipebox/internal/fetcher"
	"github.com/rohmanhakim/recipebox/internal/metadata"
	"github.com/rohmanhakim/recipebox/internal/storage"
	"github.com/rohmanhakim/recipebox/pkg/failure"
	"github.com/rohmanhakim/recipebox/pkg/limiter"
	"github.com/rohmanhakim/recipebox/pkg/logging"
	"github.com/rohmanhakim/recipebox/pkg/retry"
	"github.com/rohmanhakim/recipebox/pkg/timeutil"
)

// app is the composition root of one command invocation. It owns the single
// cache Store that every service shares.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	store     *cache.Store
	recipes   *fetcher.RecipeFetcher
	summaries *fetcher.SummaryLookup
	snapshots storage.Sink
}

func newApp(cfg config.Config, logOut io.Writer) *app {
	logger := logging.NewStructuredLoggerWithWriter(logOut, "recipebox", build.FullVersion(), cfg.LogLevel())
	sink := metadata.NewRecorder(logger)

	store := cache.NewStore(cache.StoreLimits{
		Recipes: cache.Limits{
			CountLimit: cfg.RecipeCacheCountLimit(),
			CostLimit:  cfg.RecipeCacheCostLimit(),
		},
		Summaries: cache.Limits{
			CountLimit: cfg.SummaryCacheCountLimit(),
			CostLimit:  cfg.SummaryCacheCostLimit(),
		},
	})
	store.SetMetadataSink(sink)

	transport := transportOverride
	if transport == nil {
		transport = newHTTPTransport(cfg)
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		recipes:   fetcher.NewRecipeFetcher(transport, store.Recipes(), sink),
		summaries: fetcher.NewSummaryLookup(transport, cfg.SummaryBaseURL(), store.Summaries(), sink),
		snapshots: storage.NewLocalSink(sink),
	}
}

func newHTTPTransport(cfg config.Config) *fetcher.HTTPTransport {
	rateLimiter := limiter.NewConcurrentRateLimiter()
	rateLimiter.SetBaseDelay(cfg.BaseDelay())
	rateLimiter.SetJitter(cfg.Jitter())
	rateLimiter.SetRandomSeed(cfg.RandomSeed())
	rateLimiter.SetBackoffParam(backoffParam(cfg))

	return fetcher.NewHTTPTransport(cfg.Timeout(), cfg.UserAgent(), cfg.MaxBodyBytes(), rateLimiter)
}

func backoffParam(cfg config.Config) timeutil.BackoffParam {
	return timeutil.NewBackoffParam(
		cfg.BackoffInitialDuration(),
		cfg.BackoffMultiplier(),
		cfg.BackoffMaxDuration(),
	)
}

func (a *app) retryParam() retry.RetryParam {
	return retry.NewRetryParam(
		a.cfg.Jitter(),
		a.cfg.RandomSeed(),
		a.cfg.MaxAttempt(),
		backoffParam(a.cfg),
	).WithOnRetry(func(attempt int, delay time.Duration, err failure.ClassifiedError) {
		a.logger.Warn("retrying fetch", "attempt", attempt, "delay", delay, "error", err)
	})
}
