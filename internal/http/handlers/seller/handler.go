package seller

import "github.com/savdo-next/internal/provider"

// Handler serves the seller-side API.
type Handler struct {
	*provider.Container
}

// New creates a seller handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
