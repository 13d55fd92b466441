package catalogs

// Hook function types for movie events
type (
	// MovieAddedHook is called when a movie is added to the catalog
	MovieAddedHook func(movie Movie)

	// MovieRemovedHook is called when a movie is removed from the catalog
	MovieRemovedHook func(movie Movie)
)

// hooks manages event callbacks for catalog changes
type hooks struct {
	onMovieAdded   []MovieAddedHook
	onMovieRemoved []MovieRemovedHook
}

// OnMovieAdded registers a callback for when movies are added
func (c *Catalog) OnMovieAdded(fn MovieAddedHook) {
	if fn != nil {
		c.hooks.onMovieAdded = append(c.hooks.onMovieAdded, fn)
	}
}

// OnMovieRemoved registers a callback for when movies are removed
func (c *Catalog) OnMovieRemoved(fn MovieRemovedHook) {
	if fn != nil {
		c.hooks.onMovieRemoved = append(c.hooks.onMovieRemoved, fn)
	}
}

func (h *hooks) triggerAdded(m *Movie) {
	for _, fn := range h.onMovieAdded {
		fn(m.clone())
	}
}

func (h *hooks) triggerRemoved(m *Movie) {
	for _, fn := range h.onMovieRemoved {
		fn(m.clone())
	}
}
