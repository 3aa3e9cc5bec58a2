// Package resolver maps symbolic resource identifiers to res:// paths by
// probing an ordered list of asset folders.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/recipegen/internal/recipe"
)

// Extension is the file extension of every resolvable resource.
const Extension = ".tres"

// ItemsPrefix is the logical namespace ingredients must resolve into.
const ItemsPrefix = "res://resources/items/"

// Folder pairs an on-disk directory with the logical prefix of its resources.
type Folder struct {
	Dir    string
	Prefix string
}

// DefaultFolders returns the potions and items folders under root, in probe order.
func DefaultFolders(root string) []Folder {
	return []Folder{
		{Dir: filepath.Join(root, "resources", "potions"), Prefix: "res://resources/potions/"},
		{Dir: filepath.Join(root, "resources", "items"), Prefix: ItemsPrefix},
	}
}

// ResolutionError reports an identifier no folder could resolve.
type ResolutionError struct {
	ID       string
	Searched []string
	Reason   string
}

func (e *ResolutionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("resource %q cannot be resolved: %s", e.ID, e.Reason)
	}
	return fmt.Sprintf("resource %q not found in supported folders (%s)", e.ID, strings.Join(e.Searched, ", "))
}

// Resolver resolves identifiers against its folders and caches the answers.
// It is not safe for concurrent use.
type Resolver struct {
	folders []Folder
	cache   map[string]string
}

// New creates a Resolver probing folders in the given order.
func New(folders ...Folder) *Resolver {
	return &Resolver{
		folders: folders,
		cache:   make(map[string]string),
	}
}

// Resolve returns the logical path of the first folder holding `<id>.tres`.
func (r *Resolver) Resolve(id string) (string, error) {
	if path, ok := r.cache[id]; ok {
		return path, nil
	}
	if err := checkID(id); err != nil {
		return "", &ResolutionError{ID: id, Reason: err.Error()}
	}

	name := id + Extension
	searched := make([]string, 0, len(r.folders))
	for _, folder := range r.folders {
		candidate := filepath.Join(folder.Dir, name)
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			path := folder.Prefix + name
			r.cache[id] = path
			return path, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("error probing %s: %w", candidate, err)
		}
		searched = append(searched, folder.Prefix)
	}
	return "", &ResolutionError{ID: id, Searched: searched}
}

// RequireNamespace fails with a *recipe.RoleTypeError when path is not under prefix.
func RequireNamespace(path, prefix, recipeID, role string) error {
	if strings.HasPrefix(path, prefix) {
		return nil
	}
	return &recipe.RoleTypeError{Recipe: recipeID, Role: role, Path: path, Namespace: prefix}
}

func checkID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("identifier is empty")
	case strings.ContainsAny(id, `/\`):
		return fmt.Errorf("identifier must not contain path separators")
	case id == "." || id == "..":
		return fmt.Errorf("identifier must not be a relative path element")
	}
	return nil
}
