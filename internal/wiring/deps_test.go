package wiring_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tfroot/internal/app"
	"go.trai.ch/tfroot/internal/core/domain"
	_ "go.trai.ch/tfroot/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of the
	// interface used in Dep[T], so every ports.* dependency is expected to be a node
	// named "ports". Nodes here depend on several distinct ports.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

// TestGraph_ResolvesComponents builds the full graph against a static workspace config.
func TestGraph_ResolvesComponents(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "ws")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))

	cfgPath := filepath.Join(dir, domain.ConfigFileName)
	cfg := "provider: static\n" +
		"log:\n  level: error\n" +
		"workspaces:\n" +
		"  - name: ws\n" +
		"    mappings:\n" +
		"      - server_path: $/Project\n" +
		"        local_path: ws\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	t.Setenv(domain.ConfigEnvVar, cfgPath)

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)

	results, err := components.App.Check(context.Background(), []string{root, filepath.Join(root, "src")})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Root)
	assert.False(t, results[1].Root)
	assert.Equal(t, domain.VCSKey, components.App.SupportedVCS())
}
