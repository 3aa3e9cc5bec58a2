package recipe

import "fmt"

// MissingFieldError reports a required key absent from a recipe or from one of
// its ingredient payloads.
type MissingFieldError struct {
	Recipe string
	Field  string
	// Role is set when the field belongs to an ingredient payload.
	Role string
}

func (e *MissingFieldError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("recipe %s: %s ingredient is missing %q", e.Recipe, e.Role, e.Field)
	}
	return fmt.Sprintf("recipe %s: missing required field %q", e.Recipe, e.Field)
}

// InvalidFieldError reports a field that is present but unusable.
type InvalidFieldError struct {
	Recipe string
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("recipe %s: invalid %q: %s", e.Recipe, e.Field, e.Reason)
}

// RoleTypeError reports an ingredient that resolved outside the namespace its
// role allows.
type RoleTypeError struct {
	Recipe    string
	Role      string
	Path      string
	Namespace string
}

func (e *RoleTypeError) Error() string {
	return fmt.Sprintf("recipe %s: invalid ingredient %q: %s (must be under %s)", e.Recipe, e.Role, e.Path, e.Namespace)
}

// EmptyIngredientsError reports a recipe with no ingredients at all.
type EmptyIngredientsError struct {
	Recipe string
}

func (e *EmptyIngredientsError) Error() string {
	return fmt.Sprintf("recipe %s has no ingredients defined", e.Recipe)
}

// MalformedTableError reports a recipe table that is missing or has the wrong
// top-level shape.
type MalformedTableError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedTableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed recipe table %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed recipe table %s: %s", e.Path, e.Reason)
}

func (e *MalformedTableError) Unwrap() error {
	return e.Err
}
