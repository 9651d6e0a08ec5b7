package recipe

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Sentinel defaults substituted for absent, null or empty fields.
const (
	NoCuisine       = "No Cuisine"
	NoName          = "No Name"
	NoPhotoURLLarge = "No Large Photo URL"
	NoPhotoURLSmall = "No Small Photo URL"
	NoSourceURL     = "No Source URL"
	NoYoutubeURL    = "No Youtube URL"
)

// entryOverhead approximates the fixed per-record memory cost in bytes.
const entryOverhead = 64

// Recipe is one dish. Every string field is non-empty once constructed and
// never changes afterwards; only the favorite flag is mutable.
//
// A Recipe must not be copied after construction; share it by pointer.
type Recipe struct {
	// process-local list identity, never serialized
	id string

	cuisine       string
	name          string
	photoURLLarge string
	photoURLSmall string
	sourceURL     string
	uuid          string
	youtubeURL    string

	favorite atomic.Bool
}

// Fields are the optional inputs of a Recipe. A nil field is absent.
type Fields struct {
	Cuisine       *string
	Name          *string
	PhotoURLLarge *string
	PhotoURLSmall *string
	SourceURL     *string
	UUID          *string
	YoutubeURL    *string
}

// String returns a pointer to s, for building Fields literals.
func String(s string) *string {
	return &s
}

// New builds a Recipe from optional fields, applying the same defaulting
// rules as JSON decoding.
func New(fields Fields) *Recipe {
	r := &Recipe{}
	r.apply(fields)
	return r
}

// apply is the single normalization path shared by New and UnmarshalJSON.
func (r *Recipe) apply(f Fields) {
	if r.id == "" {
		r.id = uuid.NewString()
	}
	r.cuisine = orDefault(f.Cuisine, NoCuisine)
	r.name = orDefault(f.Name, NoName)
	r.photoURLLarge = orDefault(f.PhotoURLLarge, NoPhotoURLLarge)
	r.photoURLSmall = orDefault(f.PhotoURLSmall, NoPhotoURLSmall)
	r.sourceURL = orDefault(f.SourceURL, NoSourceURL)
	r.youtubeURL = orDefault(f.YoutubeURL, NoYoutubeURL)

	// uuid doubles as a lookup key, so it is generated rather than defaulted
	if f.UUID != nil && *f.UUID != "" {
		r.uuid = *f.UUID
	} else {
		r.uuid = uuid.NewString()
	}
}

func orDefault(value *string, sentinel string) string {
	if value == nil || *value == "" {
		return sentinel
	}
	return *value
}

func (r *Recipe) ID() string {
	return r.id
}

func (r *Recipe) Cuisine() string {
	return r.cuisine
}

func (r *Recipe) Name() string {
	return r.name
}

func (r *Recipe) PhotoURLLarge() string {
	return r.photoURLLarge
}

func (r *Recipe) PhotoURLSmall() string {
	return r.photoURLSmall
}

func (r *Recipe) SourceURL() string {
	return r.sourceURL
}

func (r *Recipe) UUID() string {
	return r.uuid
}

func (r *Recipe) YoutubeURL() string {
	return r.youtubeURL
}

func (r *Recipe) IsFavorite() bool {
	return r.favorite.Load()
}

func (r *Recipe) SetFavorite(favorite bool) {
	r.favorite.Store(favorite)
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (r *Recipe) ToggleFavorite() bool {
	for {
		old := r.favorite.Load()
		if r.favorite.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Cost estimates the bytes held by the recipe.
func (r *Recipe) Cost() int {
	return entryOverhead +
		len(r.id) +
		len(r.cuisine) +
		len(r.name) +
		len(r.photoURLLarge) +
		len(r.photoURLSmall) +
		len(r.sourceURL) +
		len(r.uuid) +
		len(r.youtubeURL)
}

// Equal reports whether both recipes carry the same wire values.
// The process-local ID and the favorite flag are ignored.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.cuisine == other.cuisine &&
		r.name == other.name &&
		r.photoURLLarge == other.photoURLLarge &&
		r.photoURLSmall == other.photoURLSmall &&
		r.sourceURL == other.sourceURL &&
		r.uuid == other.uuid &&
		r.youtubeURL == other.youtubeURL
}
