package admin

import "github.com/savdo-next/internal/provider"

// Handler serves the admin-side API.
type Handler struct {
	*provider.Container
}

// New creates an admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
