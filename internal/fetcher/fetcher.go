package fetcher

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rohmanhakim/recipebox/internal/metadata"
	"github.com/rohmanhakim/recipebox/pkg/hashutil"
)

/*
Responsibilities

- Resolve a request locator
- Perform one GET through the Transport
- Classify the outcome into a FetchError
- Record every attempt and every failure as metadata

Neither service retries. The only second attempt is the summary fallback.
*/

// roundTripper is the part shared by RecipeFetcher and SummaryLookup:
// one GET plus status classification and metadata.
type roundTripper struct {
	transport    Transport
	metadataSink metadata.MetadataSink
}

func newRoundTripper(transport Transport, metadataSink metadata.MetadataSink) roundTripper {
	if metadataSink == nil {
		metadataSink = &metadata.NoopSink{}
	}
	return roundTripper{
		transport:    transport,
		metadataSink: metadataSink,
	}
}

// get returns the body of a 2xx response.
func (r *roundTripper) get(ctx context.Context, target *url.URL) ([]byte, *FetchError) {
	startTime := time.Now()
	resp, err := r.transport.Do(ctx, target)
	duration := time.Since(startTime)

	if err != nil {
		r.metadataSink.RecordFetch(target.String(), 0, duration, "")
		return nil, transportFailure(err)
	}

	r.metadataSink.RecordFetch(target.String(), resp.StatusCode, duration, hashutil.Digest(resp.Body))

	if resp.StatusCode < 100 || resp.StatusCode > 599 {
		return nil, invalidResponse(resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpStatus(resp.StatusCode)
	}
	return resp.Body, nil
}

func (r *roundTripper) recordError(callerMethod string, err *FetchError, attrs ...metadata.Attribute) {
	if err.StatusCode != 0 {
		attrs = append(attrs, metadata.NewAttr(metadata.AttrHTTPStatus, strconv.Itoa(err.StatusCode)))
	}
	r.metadataSink.RecordError(
		time.Now(),
		"fetcher",
		callerMethod,
		mapFetchErrorToMetadataCause(err),
		err.Error(),
		attrs,
	)
}

// parseTarget accepts absolute http(s) URLs only.
func parseTarget(raw string) (*url.URL, *FetchError) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, invalidRequest("unparseable locator", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, invalidRequest("locator must use http or https", nil)
	}
	if u.Host == "" {
		return nil, invalidRequest("locator has no host", nil)
	}
	return u, nil
}
