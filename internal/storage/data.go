package storage

// Persistence

type WriteResult struct {
	endpointHash string // identity (filename without extension)
	path         string
	contentHash  string
	recipeCount  int
}

func NewWriteResult(
	endpointHash string,
	path string,
	contentHash string,
	recipeCount int,
) WriteResult {
	return WriteResult{
		endpointHash: endpointHash,
		path:         path,
		contentHash:  contentHash,
		recipeCount:  recipeCount,
	}
}

func (w *WriteResult) EndpointHash() string {
	return w.endpointHash
}

func (w *WriteResult) Path() string {
	return w.path
}

func (w *WriteResult) ContentHash() string {
	return w.contentHash
}

func (w *WriteResult) RecipeCount() int {
	return w.recipeCount
}
