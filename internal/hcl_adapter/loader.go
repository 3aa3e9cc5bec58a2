package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/recipegen/internal/config"
	"github.com/specialistvlad/recipegen/internal/ctxlog"
	"github.com/specialistvlad/recipegen/internal/recipe"
	"github.com/zclconf/go-cty/cty"
)

// recipesAttr is the top-level attribute holding the recipe list.
const recipesAttr = "recipes"

// Loader is the HCL-backed implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new recipe table loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the table at path. The document must define a `recipes`
// attribute holding a list of objects.
func (l *Loader) Load(ctx context.Context, path string) (*config.Table, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Table loader started.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &recipe.MalformedTableError{Path: path, Reason: "recipe table not found"}
		}
		return nil, &recipe.MalformedTableError{Path: path, Reason: "cannot access recipe table", Err: err}
	}
	if info.IsDir() {
		return nil, &recipe.MalformedTableError{Path: path, Reason: "recipe table is a directory"}
	}

	file, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, &recipe.MalformedTableError{Path: path, Reason: "top level must be an object of attributes", Err: diags}
	}
	attr, ok := attrs[recipesAttr]
	if !ok {
		return nil, &recipe.MalformedTableError{Path: path, Reason: fmt.Sprintf("'%s' must be a list", recipesAttr)}
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, &recipe.MalformedTableError{Path: path, Reason: fmt.Sprintf("cannot evaluate '%s'", recipesAttr), Err: diags}
	}
	if val.IsNull() || !isList(val.Type()) {
		return nil, &recipe.MalformedTableError{Path: path, Reason: fmt.Sprintf("'%s' must be a list", recipesAttr)}
	}

	table := &config.Table{Source: path}
	for i, entry := range val.AsValueSlice() {
		if entry.IsNull() || !isObject(entry.Type()) {
			return nil, &recipe.MalformedTableError{Path: path, Reason: fmt.Sprintf("recipe entry #%d must be an object", i+1)}
		}
		table.Records = append(table.Records, config.Record{Index: i, Value: entry})
	}

	logger.Debug("Table loading complete.", "path", path, "recipes", len(table.Records))
	return table, nil
}

// parseFile picks the HCL syntax matching the file extension.
func parseFile(path string) (*hcl.File, error) {
	parser := hclparse.NewParser()

	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		file, diags = parser.ParseJSONFile(path)
	case ".hcl":
		file, diags = parser.ParseHCLFile(path)
	default:
		return nil, &recipe.MalformedTableError{Path: path, Reason: "unsupported table format, expected .json or .hcl"}
	}
	if diags.HasErrors() {
		return nil, &recipe.MalformedTableError{Path: path, Reason: "failed to parse recipe table", Err: diags}
	}
	return file, nil
}

func isList(ty cty.Type) bool {
	return ty.IsTupleType() || ty.IsListType()
}

func isObject(ty cty.Type) bool {
	return ty.IsObjectType() || ty.IsMapType()
}
