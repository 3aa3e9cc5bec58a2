package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/recipegen/internal/app"
	"github.com/specialistvlad/recipegen/internal/hcl_adapter"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Project is a temporary game project laid out the way the compiler expects:
// resources/potions, resources/items and data/.
type Project struct {
	Root string
}

// NewProject creates an empty project tree in a test-scoped temp dir.
func NewProject(t *testing.T) *Project {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"resources/potions", "resources/items", "data"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	return &Project{Root: root}
}

// AddPotions creates placeholder potion resources.
func (p *Project) AddPotions(t *testing.T, ids ...string) {
	t.Helper()
	p.addResources(t, "potions", ids)
}

// AddItems creates placeholder item resources.
func (p *Project) AddItems(t *testing.T, ids ...string) {
	t.Helper()
	p.addResources(t, "items", ids)
}

func (p *Project) addResources(t *testing.T, folder string, ids []string) {
	t.Helper()
	for _, id := range ids {
		path := filepath.Join(p.Root, "resources", folder, id+".tres")
		require.NoError(t, os.WriteFile(path, []byte("[gd_resource type=\"Resource\" format=3]\n"), 0644))
	}
}

// WriteFile writes content to a path relative to the project root and
// returns the absolute path.
func (p *Project) WriteFile(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(p.Root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteTable writes the default recipe table.
func (p *Project) WriteTable(t *testing.T, content string) string {
	t.Helper()
	return p.WriteFile(t, app.DefaultTablePath, content)
}

// RecipePath returns where the compiled resource for id is written.
func (p *Project) RecipePath(id string) string {
	return filepath.Join(p.Root, app.DefaultOutDir, id+".tres")
}

// HarnessResult holds the outcomes of an application run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunApp runs the compiler over the project with default paths.
func RunApp(t *testing.T, p *Project, failFast bool) *HarnessResult {
	t.Helper()
	return RunAppWithConfig(t, app.Config{Root: p.Root, FailFast: failFast})
}

// RunAppWithConfig runs the compiler with an explicit configuration. Debug
// logging is enabled unless the caller sets a level.
func RunAppWithConfig(t *testing.T, cfg app.Config) *HarnessResult {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	outBuf, logBuf := &SafeBuffer{}, &SafeBuffer{}
	a := app.NewApp(outBuf, logBuf, appConfig, hcl_adapter.NewLoader())
	runErr := a.Run(context.Background())

	return &HarnessResult{
		Output:    outBuf.String(),
		LogOutput: logBuf.String(),
		Err:       runErr,
	}
}
