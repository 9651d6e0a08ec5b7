package fetcher

import (
	"context"
	"net/url"
	"strings"

	"github.com/rohmanhakim/recipebox/internal/cache"
	"github.com/rohmanhakim/recipebox/internal/metadata"
	"github.com/rohmanhakim/recipebox/internal/summary"
	"github.com/rohmanhakim/recipebox/pkg/failure"
)

const DefaultSummaryBaseURL = "https://en.wikipedia.org/api/rest_v1/page/summary/"

// SummaryLookup resolves display names to encyclopedia summaries.
type SummaryLookup struct {
	roundTripper
	baseURL string
	cache   cache.Cache[summary.Summary]
}

func NewSummaryLookup(
	transport Transport,
	baseURL string,
	summaryCache cache.Cache[summary.Summary],
	metadataSink metadata.MetadataSink,
) *SummaryLookup {
	if baseURL == "" {
		baseURL = DefaultSummaryBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &SummaryLookup{
		roundTripper: newRoundTripper(transport, metadataSink),
		baseURL:      baseURL,
		cache:        summaryCache,
	}
}

// NormalizeTerm turns a display name into the lookup key:
// spaces become underscores and everything is lowercased.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.ReplaceAll(term, " ", "_"))
}

// FallbackTerm is the last whitespace-delimited token of term, lowercased.
// "American Apple Pie" gives "pie".
func FallbackTerm(term string) string {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}

// Lookup fetches the summary for term, keyed by its normalized form.
// A blank term fails with ErrInvalidRequest before any network call.
func (s *SummaryLookup) Lookup(ctx context.Context, term string) (summary.Summary, failure.ClassifiedError) {
	callerMethod := "SummaryLookup.Lookup"
	key := NormalizeTerm(term)

	if strings.TrimSpace(term) == "" {
		ferr := invalidRequest("empty lookup term", nil)
		s.recordError(callerMethod, ferr, metadata.NewAttr(metadata.AttrTerm, term))
		return summary.Summary{}, ferr
	}

	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	target, ferr := parseTarget(s.baseURL + url.PathEscape(key))
	if ferr != nil {
		s.recordError(callerMethod, ferr, metadata.NewAttr(metadata.AttrTerm, key))
		return summary.Summary{}, ferr
	}

	body, ferr := s.get(ctx, target)
	if ferr != nil {
		s.recordError(callerMethod, ferr,
			metadata.NewAttr(metadata.AttrTerm, key),
			metadata.NewAttr(metadata.AttrURL, target.String()),
		)
		return summary.Summary{}, ferr
	}

	result, err := summary.Decode(body)
	if err != nil {
		ferr = decodeFailure(err)
		s.recordError(callerMethod, ferr,
			metadata.NewAttr(metadata.AttrTerm, key),
			metadata.NewAttr(metadata.AttrURL, target.String()),
		)
		return summary.Summary{}, ferr
	}

	s.cache.Put(key, result)
	return result, nil
}

// LookupWithFallback tries term, then on any failure tries FallbackTerm(term)
// exactly once. The second attempt's error is the one returned.
func (s *SummaryLookup) LookupWithFallback(ctx context.Context, term string) (summary.Summary, failure.ClassifiedError) {
	result, err := s.Lookup(ctx, term)
	if err == nil {
		return result, nil
	}
	return s.Lookup(ctx, FallbackTerm(term))
}
