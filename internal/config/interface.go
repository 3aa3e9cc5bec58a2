package config

import "context"

// Loader is the interface for a format-specific recipe table loader.
type Loader interface {
	// Load reads the table document at path and returns its records in
	// document order. A missing document or a wrong top-level shape is a
	// *recipe.MalformedTableError.
	Load(ctx context.Context, path string) (*Table, error)
}
