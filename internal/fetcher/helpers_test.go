package fetcher_test

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/rohmanhakim/recipebox/internal/fetcher"
	"github.com/rohmanhakim/recipebox/internal/metadata"
	"github.com/stretchr/testify/mock"
)

// mockTransport maps URLs to canned responses or errors.
type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) Do(ctx context.Context, target *url.URL) (fetcher.Response, error) {
	args := m.Called(ctx, target.String())
	return args.Get(0).(fetcher.Response), args.Error(1)
}

func (m *mockTransport) respond(target string, status int, body string) *mock.Call {
	return m.On("Do", mock.Anything, target).Return(fetcher.Response{
		StatusCode: status,
		Header:     map[string]string{"Content-Type": "application/json"},
		Body:       []byte(body),
	}, nil)
}

func (m *mockTransport) fail(target string, err error) *mock.Call {
	return m.On("Do", mock.Anything, target).Return(fetcher.Response{}, err)
}

type fetchEvent struct {
	fetchUrl      string
	httpStatus    int
	contentDigest string
}

type errorEvent struct {
	action string
	cause  metadata.ErrorCause
	attrs  []metadata.Attribute
}

// recordingSink is a test double for metadata.MetadataSink
type recordingSink struct {
	mu          sync.Mutex
	fetchEvents []fetchEvent
	errorEvents []errorEvent
}

func (s *recordingSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorEvents = append(s.errorEvents, errorEvent{action: action, cause: cause, attrs: attrs})
}

func (s *recordingSink) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentDigest string,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchEvents = append(s.fetchEvents, fetchEvent{fetchUrl, httpStatus, contentDigest})
}

func (s *recordingSink) RecordCacheLookup(namespace string, key string, hit bool) {}

func (s *recordingSink) RecordArtifact(kind metadata.ArtifactKind, path string, attrs []metadata.Attribute) {
}
