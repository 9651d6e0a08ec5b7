package recipe_test

import (
	"encoding/json"
	"testing"

	"github.com/rohmanhakim/recipebox/internal/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_UnmarshalJSON_Defaults(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, r *recipe.Recipe)
	}{
		{
			name:    "all fields present",
			payload: `{"cuisine":"Malaysian","name":"Apam Balik","photo_url_large":"L","photo_url_small":"S","source_url":"src","uuid":"u-1","youtube_url":"yt"}`,
			check: func(t *testing.T, r *recipe.Recipe) {
				assert.Equal(t, "Malaysian", r.Cuisine())
				assert.Equal(t, "Apam Balik", r.Name())
				assert.Equal(t, "L", r.PhotoURLLarge())
				assert.Equal(t, "S", r.PhotoURLSmall())
				assert.Equal(t, "src", r.SourceURL())
				assert.Equal(t, "u-1", r.UUID())
				assert.Equal(t, "yt", r.YoutubeURL())
			},
		},
		{
			name:    "only uuid present",
			payload: `{"uuid":"abc"}`,
			check: func(t *testing.T, r *recipe.Recipe) {
				assert.Equal(t, recipe.NoCuisine, r.Cuisine())
				assert.Equal(t, recipe.NoName, r.Name())
				assert.Equal(t, recipe.NoPhotoURLLarge, r.PhotoURLLarge())
				assert.Equal(t, recipe.NoPhotoURLSmall, r.PhotoURLSmall())
				assert.Equal(t, recipe.NoSourceURL, r.SourceURL())
				assert.Equal(t, recipe.NoYoutubeURL, r.YoutubeURL())
				assert.Equal(t, "abc", r.UUID())
			},
		},
		{
			name:    "nulls become sentinels",
			payload: `{"cuisine":null,"name":null,"youtube_url":null,"uuid":"abc"}`,
			check: func(t *testing.T, r *recipe.Recipe) {
				assert.Equal(t, recipe.NoCuisine, r.Cuisine())
				assert.Equal(t, recipe.NoName, r.Name())
				assert.Equal(t, recipe.NoYoutubeURL, r.YoutubeURL())
			},
		},
		{
			name:    "empty strings become sentinels",
			payload: `{"cuisine":"","name":"","source_url":"","uuid":"abc"}`,
			check: func(t *testing.T, r *recipe.Recipe) {
				assert.Equal(t, recipe.NoCuisine, r.Cuisine())
				assert.Equal(t, recipe.NoName, r.Name())
				assert.Equal(t, recipe.NoSourceURL, r.SourceURL())
			},
		},
		{
			name:    "missing uuid is generated",
			payload: `{"name":"Pie"}`,
			check: func(t *testing.T, r *recipe.Recipe) {
				assert.NotEmpty(t, r.UUID())
				assert.Equal(t, "Pie", r.Name())
			},
		},
		{
			name:    "empty uuid is generated",
			payload: `{"uuid":""}`,
			check: func(t *testing.T, r *recipe.Recipe) {
				assert.NotEmpty(t, r.UUID())
			},
		},
		{
			name:    "unknown keys ignored",
			payload: `{"uuid":"abc","rating":5}`,
			check: func(t *testing.T, r *recipe.Recipe) {
				assert.Equal(t, "abc", r.UUID())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recipe.Recipe{}
			require.NoError(t, json.Unmarshal([]byte(tt.payload), r))
			assert.NotEmpty(t, r.ID())
			assert.False(t, r.IsFavorite())
			tt.check(t, r)
		})
	}
}

func TestRecipe_UnmarshalJSON_WrongType(t *testing.T) {
	r := &recipe.Recipe{}
	err := json.Unmarshal([]byte(`{"name":42}`), r)
	require.Error(t, err)
}

func TestRecipe_GeneratedUUIDsAreDistinct(t *testing.T) {
	c, err := recipe.Decode([]byte(`{"recipes":[{"name":"a"},{"name":"b"}]}`))
	require.NoError(t, err)

	recipes := c.Recipes()
	require.Len(t, recipes, 2)
	assert.NotEqual(t, recipes[0].UUID(), recipes[1].UUID())
	assert.NotEqual(t, recipes[0].ID(), recipes[1].ID())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantLen int
		wantErr error
		anyErr  bool
	}{
		{name: "empty array", payload: `{"recipes":[]}`, wantLen: 0},
		{name: "two recipes", payload: `{"recipes":[{"uuid":"a"},{"uuid":"b"}]}`, wantLen: 2},
		{name: "missing key", payload: `{}`, wantErr: recipe.ErrMissingRecipes},
		{name: "null recipes", payload: `{"recipes":null}`, wantErr: recipe.ErrMissingRecipes},
		{name: "null element", payload: `{"recipes":[null]}`, wantErr: recipe.ErrNullRecipe},
		{name: "element wrong type", payload: `{"recipes":[1]}`, anyErr: true},
		{name: "recipes wrong type", payload: `{"recipes":"x"}`, anyErr: true},
		{name: "not json", payload: `not json`, anyErr: true},
		{name: "field wrong type", payload: `{"recipes":[{"cuisine":7}]}`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := recipe.Decode([]byte(tt.payload))
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, c)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantLen, c.Len())
			}
		})
	}
}

func TestCollection_RoundTrip(t *testing.T) {
	original := recipe.MalformedSample()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := recipe.Decode(data)
	require.NoError(t, err)
	require.Equal(t, original.Len(), decoded.Len())

	want := original.Recipes()
	got := decoded.Recipes()
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "recipe %d differs", i)
		assert.NotEqual(t, want[i].ID(), got[i].ID())
	}
}

func TestCollection_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(recipe.EmptySample())
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipes":[]}`, string(data))
}
