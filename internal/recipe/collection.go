package recipe

// Collection is the top-level recipe list response. It is immutable once
// constructed; the recipes it holds only change through their favorite flag.
type Collection struct {
	recipes []*Recipe
}

// NewCollection copies the given recipes into a new Collection.
// Nil entries are dropped.
func NewCollection(recipes []*Recipe) *Collection {
	kept := make([]*Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r != nil {
			kept = append(kept, r)
		}
	}
	return &Collection{recipes: kept}
}

// Recipes returns the recipes in payload order. The slice is a copy.
func (c *Collection) Recipes() []*Recipe {
	if c == nil {
		return nil
	}
	out := make([]*Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.recipes)
}

func (c *Collection) IsEmpty() bool {
	return c.Len() == 0
}

// FindByUUID returns the recipe carrying the given payload uuid.
func (c *Collection) FindByUUID(id string) (*Recipe, bool) {
	if c == nil {
		return nil, false
	}
	for _, r := range c.recipes {
		if r.uuid == id {
			return r, true
		}
	}
	return nil, false
}

// Cost estimates the bytes held by the collection, used as its cache cost.
func (c *Collection) Cost() int {
	total := entryOverhead
	if c == nil {
		return total
	}
	for _, r := range c.recipes {
		total += r.Cost()
	}
	return total
}
