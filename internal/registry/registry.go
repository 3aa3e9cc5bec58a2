package registry

// Entry is one registered external resource.
type Entry struct {
	ID   int
	Kind string
	Path string
}

// Registry is an ordered, deduplicating table of external resources.
type Registry struct {
	ids     map[string]int
	entries []Entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{ids: make(map[string]int)}
}

// Register returns the handle of path, assigning the next one if path is new.
// A known path keeps the handle and kind it was first registered with.
func (r *Registry) Register(kind, path string) int {
	if id, ok := r.ids[path]; ok {
		return id
	}
	id := len(r.entries) + 1
	r.ids[path] = id
	r.entries = append(r.entries, Entry{ID: id, Kind: kind, Path: path})
	return id
}

// Entries returns the registered resources ordered by ascending handle.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of distinct registered paths.
func (r *Registry) Len() int {
	return len(r.entries)
}

// LoadSteps is the loader step count of a document referencing every entry:
// one step per external resource plus one for the resource itself.
func (r *Registry) LoadSteps() int {
	return len(r.entries) + 1
}
