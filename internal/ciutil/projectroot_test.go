package ciutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearCIEnv unsets every variable that influences detection for the
// duration of the test.
func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		EnvCI, EnvGitHubActions, EnvGitHubWorkspace, EnvGitLabCI,
		EnvGitLabProjectDir, EnvJenkinsURL, EnvCircleCI, EnvProjectRoot,
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func makeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, GoModFile), []byte("module example.com/x\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "internal", "platform", "database", "migrations", "sqlite"), 0o755))
	return root
}

func TestFindProjectRoot_Override(t *testing.T) {
	clearCIEnv(t)
	root := makeProject(t)
	t.Setenv(EnvProjectRoot, root)

	got, err := FindProjectRoot(nil)

	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindProjectRoot_InvalidOverride(t *testing.T) {
	clearCIEnv(t)
	t.Setenv(EnvProjectRoot, t.TempDir())

	_, err := FindProjectRoot(nil)

	assert.ErrorIs(t, err, ErrInvalidProjectRoot)
}

func TestFindProjectRoot_GitHubWorkspace(t *testing.T) {
	clearCIEnv(t)
	root := makeProject(t)
	t.Setenv(EnvGitHubActions, "true")
	t.Setenv(EnvGitHubWorkspace, root)

	got, err := FindProjectRoot(nil)

	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindProjectRootByTraversal(t *testing.T) {
	root := makeProject(t)
	nested := filepath.Join(root, "internal", "platform", "database")

	got, err := findProjectRootByTraversal(nested, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, root, got)

	clearCIEnv(t)
	_, err = findProjectRootByTraversal(t.TempDir(), discardLogger())
	assert.ErrorIs(t, err, ErrProjectRootNotFound)
	assert.NotContains(t, err.Error(), EnvProjectRoot)

	t.Setenv(EnvCI, "true")
	_, err = findProjectRootByTraversal(t.TempDir(), discardLogger())
	assert.ErrorIs(t, err, ErrProjectRootNotFound)
	assert.Contains(t, err.Error(), EnvProjectRoot)
}

func TestFindMigrationsDir(t *testing.T) {
	clearCIEnv(t)
	root := makeProject(t)
	t.Setenv(EnvProjectRoot, root)

	got, err := FindMigrationsDir(filepath.Join("internal", "platform", "database", "migrations", "sqlite"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "internal", "platform", "database", "migrations", "sqlite"), got)

	_, err = FindMigrationsDir(filepath.Join("internal", "platform", "database", "migrations", "mysql"), nil)
	assert.Error(t, err)
}
