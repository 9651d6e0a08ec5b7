package recipe

import "errors"

var ErrMissingRecipes = errors.New("payload has no recipes array")
var ErrNullRecipe = errors.New("recipes array contains null")
