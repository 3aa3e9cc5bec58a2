package main

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/recipegen/internal/cli"
	"github.com/specialistvlad/recipegen/internal/recipe"
	"github.com/specialistvlad/recipegen/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_CompilesProject(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	p := testutil.NewProject(t)
	testutil.SeedHealingDraught(t, p)
	p.WriteTable(t, testutil.HealingDraughtJSON)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, []string{"-root", p.Root, "-log-level", "error"})

	// --- Assert ---
	require.NoError(t, err, logs.String())
	require.Contains(t, out.String(), "✓ Wrote")
	require.Equal(t, testutil.HealingDraughtTres, testutil.ReadRecipe(t, p, "healing_draught"))
}

func TestRun_MalformedTable(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	p := testutil.NewProject(t)
	p.WriteTable(t, `{"recipes": "none"}`)

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-root", p.Root})

	// --- Assert ---
	var malformed *recipe.MalformedTableError
	require.ErrorAs(t, err, &malformed, "run() should surface the malformed table")
	require.Contains(t, err.Error(), "'recipes' must be a list")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
