package recipe

import (
	"encoding/json"
	"fmt"
)

// wire form, snake_case as served by the recipe endpoint
type recipeWire struct {
	Cuisine       *string `json:"cuisine"`
	Name          *string `json:"name"`
	PhotoURLLarge *string `json:"photo_url_large"`
	PhotoURLSmall *string `json:"photo_url_small"`
	SourceURL     *string `json:"source_url"`
	UUID          *string `json:"uuid"`
	YoutubeURL    *string `json:"youtube_url"`
}

type collectionWire struct {
	Recipes *[]*Recipe `json:"recipes"`
}

// UnmarshalJSON decodes a recipe object. Missing, null or empty fields are
// defaulted; only syntax errors and wrong field types fail.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var w recipeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.apply(Fields{
		Cuisine:       w.Cuisine,
		Name:          w.Name,
		PhotoURLLarge: w.PhotoURLLarge,
		PhotoURLSmall: w.PhotoURLSmall,
		SourceURL:     w.SourceURL,
		UUID:          w.UUID,
		YoutubeURL:    w.YoutubeURL,
	})
	return nil
}

func (r *Recipe) MarshalJSON() ([]byte, error) {
	return json.Marshal(recipeWire{
		Cuisine:       &r.cuisine,
		Name:          &r.name,
		PhotoURLLarge: &r.photoURLLarge,
		PhotoURLSmall: &r.photoURLSmall,
		SourceURL:     &r.sourceURL,
		UUID:          &r.uuid,
		YoutubeURL:    &r.youtubeURL,
	})
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	var w collectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Recipes == nil {
		return ErrMissingRecipes
	}
	for i, r := range *w.Recipes {
		if r == nil {
			return fmt.Errorf("%w: index %d", ErrNullRecipe, i)
		}
	}
	c.recipes = *w.Recipes
	return nil
}

func (c *Collection) MarshalJSON() ([]byte, error) {
	recipes := c.Recipes()
	if recipes == nil {
		recipes = []*Recipe{}
	}
	return json.Marshal(collectionWire{Recipes: &recipes})
}

// Decode parses a recipe list payload into a new Collection.
func Decode(data []byte) (*Collection, error) {
	c := &Collection{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
