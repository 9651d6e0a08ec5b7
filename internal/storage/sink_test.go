package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rohmanhakim/recipebox/internal/metadata"
	"github.com/rohmanhakim/recipebox/internal/recipe"
	"github.com/rohmanhakim/recipebox/internal/storage"
	"github.com/rohmanhakim/recipebox/pkg/failure"
	"github.com/rohmanhakim/recipebox/pkg/hashutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type artifactRecord struct {
	kind  metadata.ArtifactKind
	path  string
	attrs []metadata.Attribute
}

type errorRecord struct {
	cause metadata.ErrorCause
	attrs []metadata.Attribute
}

type captureSink struct {
	metadata.NoopSink
	artifacts []artifactRecord
	errors    []errorRecord
}

func (c *captureSink) RecordArtifact(kind metadata.ArtifactKind, path string, attrs []metadata.Attribute) {
	c.artifacts = append(c.artifacts, artifactRecord{kind: kind, path: path, attrs: attrs})
}

func (c *captureSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	c.errors = append(c.errors, errorRecord{cause: cause, attrs: attrs})
}

const endpoint = "https://example.com/recipes.json"

func TestLocalSink_Write_PersistsSnapshot(t *testing.T) {
	dir := t.TempDir()
	sink := &captureSink{}
	s := storage.NewLocalSink(sink)

	collection := recipe.CompleteSample()
	result, err := s.Write(dir, endpoint, collection)
	require.Nil(t, err)

	expectedName := storage.SnapshotName(endpoint)
	assert.Equal(t, filepath.Join(dir, expectedName), result.Path())
	assert.Equal(t, strings.TrimSuffix(expectedName, ".json"), result.EndpointHash())
	assert.Len(t, result.EndpointHash(), 12)
	assert.Equal(t, collection.Len(), result.RecipeCount())

	data, readErr := os.ReadFile(result.Path())
	require.NoError(t, readErr)
	assert.Equal(t, hashutil.Digest(data), result.ContentHash())

	decoded, decodeErr := recipe.Decode(data)
	require.NoError(t, decodeErr)
	require.Equal(t, collection.Len(), decoded.Len())
	for i, r := range collection.Recipes() {
		assert.True(t, r.Equal(decoded.Recipes()[i]))
	}

	require.Len(t, sink.artifacts, 1)
	assert.Equal(t, metadata.ArtifactSnapshot, sink.artifacts[0].kind)
	assert.Equal(t, result.Path(), sink.artifacts[0].path)
	assert.Empty(t, sink.errors)
}

func TestLocalSink_Write_IsIdempotent(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewLocalSink(nil)

	first, err := s.Write(dir, endpoint, recipe.CompleteSample())
	require.Nil(t, err)
	second, err := s.Write(dir, endpoint, recipe.CompleteSample())
	require.Nil(t, err)

	assert.Equal(t, first.Path(), second.Path())
	assert.Equal(t, first.ContentHash(), second.ContentHash())

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}

func TestLocalSink_Write_DistinctEndpointsGetDistinctFiles(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewLocalSink(nil)

	a, err := s.Write(dir, endpoint, recipe.CompleteSample())
	require.Nil(t, err)
	b, err := s.Write(dir, "https://example.com/other.json", recipe.EmptySample())
	require.Nil(t, err)

	assert.NotEqual(t, a.Path(), b.Path())
	assert.Equal(t, 0, b.RecipeCount())
}

func TestSnapshotName_IsShortBlake3OfEndpoint(t *testing.T) {
	full := hashutil.Blake3Hex([]byte(endpoint))

	assert.Equal(t, full[:12]+".json", storage.SnapshotName(endpoint))
}

func TestSnapshotName_CanonicalizesEndpoint(t *testing.T) {
	assert.Equal(t, storage.SnapshotName(endpoint), storage.SnapshotName("HTTPS://Example.com:443/recipes.json/#top"))
	assert.NotEqual(t, storage.SnapshotName(endpoint), storage.SnapshotName(endpoint+"?page=2"))
}

func TestLocalSink_Write_NilCollectionWritesEmptyList(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewLocalSink(nil)

	result, err := s.Write(dir, endpoint, nil)
	require.Nil(t, err)

	data, readErr := os.ReadFile(result.Path())
	require.NoError(t, readErr)
	decoded, decodeErr := recipe.Decode(data)
	require.NoError(t, decodeErr)
	assert.True(t, decoded.IsEmpty())
}

func TestLocalSink_Write_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	sink := &captureSink{}
	s := storage.NewLocalSink(sink)

	_, err := s.Write(filepath.Join(blocker, "out"), endpoint, recipe.CompleteSample())
	require.NotNil(t, err)

	var storageErr *storage.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, storage.ErrCausePathError, storageErr.Cause)
	assert.Equal(t, failure.SeverityFatal, err.Severity())
	assert.Empty(t, sink.artifacts)
	require.Len(t, sink.errors, 1)
	assert.Equal(t, metadata.CauseStorageFailure, sink.errors[0].cause)
}

func TestStorageError_Message(t *testing.T) {
	err := &storage.StorageError{Cause: storage.ErrCauseDiskFull}
	assert.Equal(t, "storage error: disk is full", err.Error())

	err = &storage.StorageError{Cause: storage.ErrCauseWriteFailure, Message: "boom", Retryable: true}
	assert.Equal(t, "storage error: write failed: boom", err.Error())
	assert.Equal(t, failure.SeverityRecoverable, err.Severity())
}
