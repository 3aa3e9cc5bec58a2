package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/recipegen/internal/config"
	"github.com/specialistvlad/recipegen/internal/ctxlog"
	"github.com/specialistvlad/recipegen/internal/fsutil"
	"github.com/specialistvlad/recipegen/internal/recipe"
)

// artifact is one compiled recipe waiting to be written.
type artifact struct {
	recipeID string
	path     string
	text     string
}

// Run compiles every recipe of the table in table order and writes one
// resource per recipe.
//
// By default a failing recipe is reported and skipped, the remaining recipes
// are still written, and a *BatchError is returned at the end. With FailFast
// the first failure is returned before anything is written. A malformed
// table always aborts the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	table, err := a.loader.Load(ctx, a.config.Table())
	if err != nil {
		return err
	}
	if len(table.Records) == 0 {
		a.logger.Warn("Recipe table is empty, nothing to compile.", "table", table.Source)
		return nil
	}
	a.logger.Info("Recipe table loaded.", "table", table.Source, "recipes", len(table.Records))

	artifacts, failures, err := a.compileAll(ctx, table)
	if err != nil {
		return err
	}

	outDir := a.config.Output()
	if len(artifacts) > 0 {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
		}
	}
	for _, art := range artifacts {
		if err := fsutil.WriteFileAtomic(art.path, []byte(art.text), 0644); err != nil {
			return fmt.Errorf("recipe %s: %w", art.recipeID, err)
		}
		fmt.Fprintf(a.outW, "✓ Wrote %s\n", a.displayPath(art.path))
	}

	if len(failures) > 0 {
		return &BatchError{Total: len(table.Records), Failures: failures}
	}
	a.logger.Info("Compilation finished.", "written", len(artifacts))
	return nil
}

// compileAll renders every record in memory. In fail-fast mode the first
// error is returned; otherwise failures are collected.
func (a *App) compileAll(ctx context.Context, table *config.Table) ([]artifact, []Failure, error) {
	var (
		artifacts []artifact
		failures  []Failure
	)
	seen := make(map[string]int, len(table.Records))
	outDir := a.config.Output()

	for _, rec := range table.Records {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		label := recipe.Label(rec)
		logger := a.logger.With("recipe", label)

		text, def, err := a.compileRecord(ctx, rec, seen)
		if err != nil {
			if a.config.FailFast {
				return nil, nil, err
			}
			logger.Error("Recipe failed, skipping.", "error", err)
			failures = append(failures, Failure{Recipe: label, Err: err})
			continue
		}
		logger.Debug("Recipe compiled.")
		artifacts = append(artifacts, artifact{
			recipeID: def.ID,
			path:     filepath.Join(outDir, def.ID+".tres"),
			text:     text,
		})
	}
	return artifacts, failures, nil
}

func (a *App) compileRecord(ctx context.Context, rec config.Record, seen map[string]int) (string, *recipe.Definition, error) {
	def, err := recipe.Decode(rec)
	if err != nil {
		return "", nil, err
	}
	if first, dup := seen[def.ID]; dup {
		return "", nil, &recipe.InvalidFieldError{
			Recipe: def.ID,
			Field:  "recipe_id",
			Reason: fmt.Sprintf("duplicates entry #%d", first+1),
		}
	}
	seen[def.ID] = rec.Index

	text, err := a.compiler.Emit(ctx, def)
	if err != nil {
		return "", nil, err
	}
	return text, def, nil
}

// displayPath shows path relative to the project root when possible.
func (a *App) displayPath(path string) string {
	if rel, err := filepath.Rel(a.config.Root, path); err == nil && filepath.IsLocal(rel) {
		return rel
	}
	return path
}
