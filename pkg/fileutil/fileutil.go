package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rohmanhakim/recipebox/pkg/failure"
)

// GetFileExtension extracts the file extension from a path, or empty string if none
func GetFileExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	// Remove the leading dot
	return strings.TrimPrefix(ext, ".")
}

// EnsureDir check if a given directory plus the following path exist, then create one if not
func EnsureDir(dir string, path ...string) failure.ClassifiedError {
	targetPath := []string{dir}
	targetPath = append(targetPath, path...)

	if err := os.MkdirAll(filepath.Join(targetPath...), 0755); err != nil {
		return &FileError{
			Message:   fmt.Sprintf("%v", err),
			Retryable: false,
			Cause:     ErrCausePathError,
			Err:       err,
		}
	}
	return nil
}

// WriteFile writes data to path, creating parent directories as needed.
// The content is written to a sibling temp file first and renamed into place,
// so readers never observe a partially written file.
func WriteFile(path string, data []byte) failure.ClassifiedError {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &FileError{
			Message:   fmt.Sprintf("create temp file: %v", err),
			Retryable: false,
			Cause:     ErrCauseWriteError,
			Err:       err,
		}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &FileError{
			Message:   fmt.Sprintf("write %s: %v", path, err),
			Retryable: false,
			Cause:     ErrCauseWriteError,
			Err:       err,
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &FileError{
			Message:   fmt.Sprintf("close %s: %v", path, err),
			Retryable: false,
			Cause:     ErrCauseWriteError,
			Err:       err,
		}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &FileError{
			Message:   fmt.Sprintf("rename into %s: %v", path, err),
			Retryable: false,
			Cause:     ErrCauseWriteError,
			Err:       err,
		}
	}
	return nil
}
