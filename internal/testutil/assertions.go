package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReadRecipe returns the compiled resource for id, failing the test if it
// was not written.
func ReadRecipe(t *testing.T, p *Project, id string) string {
	t.Helper()
	data, err := os.ReadFile(p.RecipePath(id))
	require.NoError(t, err, "expected compiled recipe %q", id)
	return string(data)
}

// AssertNoRecipe checks that no resource was written for id.
func AssertNoRecipe(t *testing.T, p *Project, id string) {
	t.Helper()
	_, err := os.Stat(p.RecipePath(id))
	require.True(t, os.IsNotExist(err), "expected no compiled recipe for %q", id)
}
