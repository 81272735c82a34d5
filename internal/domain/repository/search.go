package repository

import "context"

// Search is the optional full-text search port. The backing index lives
// outside this service; the adapter is a thin boundary and the core never
// depends on its presence.
type Search[V any] interface {
	// Search runs a free-text query against the external index and returns
	// at most limit hits.
	Search(ctx context.Context, query string, limit int) ([]*V, error)
}
