package fetcher

import (
	"context"

	"github.com/rohmanhakim/recipebox/internal/cache"
	"github.com/rohmanhakim/recipebox/internal/metadata"
	"github.com/rohmanhakim/recipebox/internal/recipe"
	"github.com/rohmanhakim/recipebox/pkg/failure"
)

// Public recipe endpoints.
const (
	CompleteEndpoint  = "https://d3jbb8n5wk0qxi.cloudfront.net/recipes.json"
	MalformedEndpoint = "https://d3jbb8n5wk0qxi.cloudfront.net/recipes-malformed.json"
	EmptyEndpoint     = "https://d3jbb8n5wk0qxi.cloudfront.net/recipes-empty.json"
)

// Presets maps the short endpoint names accepted on the command line.
var Presets = map[string]string{
	"complete":  CompleteEndpoint,
	"malformed": MalformedEndpoint,
	"empty":     EmptyEndpoint,
}

type RecipeFetcher struct {
	roundTripper
	cache cache.Cache[*recipe.Collection]
}

func NewRecipeFetcher(
	transport Transport,
	recipeCache cache.Cache[*recipe.Collection],
	metadataSink metadata.MetadataSink,
) *RecipeFetcher {
	return &RecipeFetcher{
		roundTripper: newRoundTripper(transport, metadataSink),
		cache:        recipeCache,
	}
}

// Fetch returns the collection served at endpoint. The endpoint string is
// also the cache key; a cached collection is returned without a network call.
// Only successful decodes are cached.
func (f *RecipeFetcher) Fetch(ctx context.Context, endpoint string) (*recipe.Collection, failure.ClassifiedError) {
	callerMethod := "RecipeFetcher.Fetch"

	if cached, ok := f.cache.Get(endpoint); ok {
		return cached, nil
	}

	target, ferr := parseTarget(endpoint)
	if ferr != nil {
		f.recordError(callerMethod, ferr, metadata.NewAttr(metadata.AttrURL, endpoint))
		return nil, ferr
	}

	body, ferr := f.get(ctx, target)
	if ferr != nil {
		f.recordError(callerMethod, ferr, metadata.NewAttr(metadata.AttrURL, endpoint))
		return nil, ferr
	}

	collection, err := recipe.Decode(body)
	if err != nil {
		ferr = decodeFailure(err)
		f.recordError(callerMethod, ferr, metadata.NewAttr(metadata.AttrURL, endpoint))
		return nil, ferr
	}

	f.cache.Put(endpoint, collection)
	return collection, nil
}
