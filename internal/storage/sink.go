package storage

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rohmanhakim/recipebox/internal/metadata"
	"github.com/rohmanhakim/recipebox/internal/recipe"
	"github.com/rohmanhakim/recipebox/pkg/failure"
	"github.com/rohmanhakim/recipebox/pkg/fileutil"
	"github.com/rohmanhakim/recipebox/pkg/hashutil"
	"github.com/rohmanhakim/recipebox/pkg/urlutil"
)

/*
Responsibilities
- Persist fetched recipe collections as JSON snapshots
- Ensure deterministic filenames per endpoint

Output Characteristics
- One file per endpoint: <outputDir>/<first 12 hex of blake3(canonical endpoint)>.json
- Idempotent writes
- Overwrite-safe reruns
*/

const endpointHashLength = 12

type Sink interface {
	Write(
		outputDir string,
		endpoint string,
		collection *recipe.Collection,
	) (WriteResult, failure.ClassifiedError)
}

type LocalSink struct {
	metadataSink metadata.MetadataSink
}

func NewLocalSink(
	metadataSink metadata.MetadataSink,
) *LocalSink {
	if metadataSink == nil {
		metadataSink = &metadata.NoopSink{}
	}
	return &LocalSink{
		metadataSink: metadataSink,
	}
}

func (s *LocalSink) Write(
	outputDir string,
	endpoint string,
	collection *recipe.Collection,
) (WriteResult, failure.ClassifiedError) {
	writeResult, storageError := write(outputDir, endpoint, collection)
	if storageError != nil {
		s.metadataSink.RecordError(
			time.Now(),
			"storage",
			"LocalSink.Write",
			mapStorageErrorToMetadataCause(storageError),
			storageError.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, endpoint),
				metadata.NewAttr(metadata.AttrWritePath, storageError.Path),
			},
		)
		return WriteResult{}, storageError
	}
	s.metadataSink.RecordArtifact(
		metadata.ArtifactSnapshot,
		writeResult.Path(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrURL, endpoint),
			metadata.NewAttr(metadata.AttrCacheKey, writeResult.EndpointHash()),
			metadata.NewAttr(metadata.AttrDigest, writeResult.ContentHash()),
		},
	)
	return writeResult, nil
}

// SnapshotName returns the deterministic file name for an endpoint's snapshot.
// Equivalent spellings of one endpoint share a name.
func SnapshotName(endpoint string) string {
	full := hashutil.Blake3Hex([]byte(urlutil.CanonicalString(endpoint)))
	return full[:endpointHashLength] + ".json"
}

func write(
	outputDir string,
	endpoint string,
	collection *recipe.Collection,
) (WriteResult, *StorageError) {
	if collection == nil {
		collection = recipe.NewCollection(nil)
	}

	content, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return WriteResult{}, &StorageError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseEncodeFailure,
		}
	}
	content = append(content, '\n')

	filename := SnapshotName(endpoint)
	fullPath := filepath.Join(outputDir, filename)

	if ferr := fileutil.WriteFile(fullPath, content); ferr != nil {
		return WriteResult{}, classifyFileError(ferr, fullPath)
	}

	return NewWriteResult(
		filename[:endpointHashLength],
		fullPath,
		hashutil.Digest(content),
		collection.Len(),
	), nil
}

func classifyFileError(err error, path string) *StorageError {
	if errors.Is(err, syscall.ENOSPC) {
		return &StorageError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCauseDiskFull,
			Path:      path,
		}
	}
	cause := ErrCauseWriteFailure
	var fileErr *fileutil.FileError
	if errors.As(err, &fileErr) && fileErr.Cause == fileutil.ErrCausePathError {
		cause = ErrCausePathError
	}
	return &StorageError{
		Message:   err.Error(),
		Retryable: false,
		Cause:     cause,
		Path:      path,
	}
}
