package config

import "github.com/zclconf/go-cty/cty"

// Table is the unified representation of a recipe table document.
type Table struct {
	// Source is the path the table was read from.
	Source  string
	Records []Record
}

// Record is one raw entry of the `recipes` list.
type Record struct {
	// Index is the zero-based position in the table.
	Index int
	// Value is an object (or map) valued cty.Value. Keys are kept exactly as
	// written so that presence checks see the raw document.
	Value cty.Value
}
