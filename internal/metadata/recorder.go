package metadata

import (
	"log/slog"
	"time"
)

/*
Metadata Collected
- Fetch URLs, status codes, durations
- Content digests of fetched payloads
- Cache hits and misses per namespace
- Classified failures

Metadata is write-only.
No component may read metadata to influence fetch or cache decisions.
*/

type MetadataSink interface {
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)

	RecordFetch(
		fetchUrl string,
		httpStatus int,
		duration time.Duration,
		contentDigest string,
	)

	RecordCacheLookup(namespace string, key string, hit bool)

	RecordArtifact(kind ArtifactKind, path string, attrs []Attribute)
}

// Recorder is the slog-backed MetadataSink.
// Events are emitted synchronously in the order they are received.
type Recorder struct {
	logger *slog.Logger
}

func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		logger: logger,
	}
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
	args := []any{
		slog.Time("observed_at", observedAt),
		slog.String("package", packageName),
		slog.String("action", action),
		slog.String("cause", cause.String()),
		slog.String("details", details),
	}
	for _, attr := range attrs {
		args = append(args, slog.String(string(attr.Key), attr.Value))
	}
	r.logger.Error("operation failed", args...)
}

func (r *Recorder) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentDigest string,
) {
	r.logger.Info("fetch",
		slog.String(string(AttrURL), fetchUrl),
		slog.Int(string(AttrHTTPStatus), httpStatus),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("digest", contentDigest),
	)
}

func (r *Recorder) RecordCacheLookup(namespace string, key string, hit bool) {
	msg := "cache miss"
	if hit {
		msg = "cache hit"
	}
	r.logger.Debug(msg,
		slog.String("namespace", namespace),
		slog.String(string(AttrCacheKey), key),
	)
}

func (r *Recorder) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {
	args := []any{
		slog.String("kind", string(kind)),
		slog.String("path", path),
	}
	for _, attr := range attrs {
		args = append(args, slog.String(string(attr.Key), attr.Value))
	}
	r.logger.Info("artifact written", args...)
}

// NoopSink implements MetadataSink but does nothing.
// Composition roots (or tests) decide whether to inject Recorder or NoopSink.
type NoopSink struct{}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentDigest string,
) {
}

func (n *NoopSink) RecordCacheLookup(namespace string, key string, hit bool) {}

func (n *NoopSink) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {}
