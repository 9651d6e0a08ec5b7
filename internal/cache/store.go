package cache

import (
	"github.com/rohmanhakim/recipebox/internal/metadata"
	"github.com/rohmanhakim/recipebox/internal/recipe"
	"github.com/rohmanhakim/recipebox/internal/summary"
)

const (
	RecipesNamespace   = "recipes"
	SummariesNamespace = "summaries"
)

const mebibyte = 1024 * 1024

// StoreLimits bounds both namespaces of a Store.
type StoreLimits struct {
	Recipes   Limits
	Summaries Limits
}

func DefaultStoreLimits() StoreLimits {
	return StoreLimits{
		Recipes:   Limits{CountLimit: 100, CostLimit: 100 * mebibyte},
		Summaries: Limits{CountLimit: 75, CostLimit: 50 * mebibyte},
	}
}

// Store is the shared cache of the process: one namespace for recipe
// collections keyed by endpoint and one for summaries keyed by normalized
// term. Build it once at startup and hand it to every fetch service.
type Store struct {
	recipes   *Bounded[*recipe.Collection]
	summaries *Bounded[summary.Summary]
}

func NewStore(limits StoreLimits) *Store {
	return &Store{
		recipes:   NewBounded(RecipesNamespace, limits.Recipes, (*recipe.Collection).Cost),
		summaries: NewBounded(SummariesNamespace, limits.Summaries, summary.Summary.Cost),
	}
}

func (s *Store) Recipes() *Bounded[*recipe.Collection] {
	return s.recipes
}

func (s *Store) Summaries() *Bounded[summary.Summary] {
	return s.summaries
}

func (s *Store) SetMetadataSink(sink metadata.MetadataSink) {
	s.recipes.SetMetadataSink(sink)
	s.summaries.SetMetadataSink(sink)
}

// ClearAll empties both namespaces.
func (s *Store) ClearAll() {
	s.recipes.Clear()
	s.summaries.Clear()
}
