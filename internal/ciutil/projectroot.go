package ciutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// GoModFile marks the project root.
const GoModFile = "go.mod"

// maxTraversal bounds the upward directory walk.
const maxTraversal = 10

// Common errors for project root detection
var (
	ErrProjectRootNotFound = errors.New("unable to find project root")
	ErrInvalidProjectRoot  = errors.New("invalid project root: no go.mod file found")
)

// FindProjectRoot returns the absolute path to the project root directory.
// It checks, in order: PARKY_PROJECT_ROOT, the GitHub Actions workspace, the
// GitLab CI project directory, and finally the nearest ancestor of the
// working directory that contains go.mod.
func FindProjectRoot(logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	candidates := []struct {
		source string
		dir    string
		active bool
	}{
		{EnvProjectRoot, os.Getenv(EnvProjectRoot), os.Getenv(EnvProjectRoot) != ""},
		{EnvGitHubWorkspace, os.Getenv(EnvGitHubWorkspace), IsGitHubActions()},
		{EnvGitLabProjectDir, os.Getenv(EnvGitLabProjectDir), IsGitLabCI()},
	}
	for _, c := range candidates {
		if !c.active {
			continue
		}
		if !isValidProjectRoot(c.dir) {
			return "", fmt.Errorf("%w at %s", ErrInvalidProjectRoot, c.dir)
		}
		logger.Debug("using project root from environment",
			"source", c.source,
			"project_root", c.dir)
		return filepath.Abs(c.dir)
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return findProjectRootByTraversal(workingDir, logger)
}

// findProjectRootByTraversal walks up from startDir until it finds go.mod.
func findProjectRootByTraversal(startDir string, logger *slog.Logger) (string, error) {
	currentDir := startDir
	for i := 0; i < maxTraversal; i++ {
		if fileExists(filepath.Join(currentDir, GoModFile)) {
			logger.Debug("found project root", "project_root", currentDir)
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	logger.Error("failed to find project root by directory traversal",
		"start_dir", startDir,
		"max_iterations", maxTraversal,
		"ci", IsCI())
	if IsCI() {
		return "", fmt.Errorf("%w: set %s to the checkout directory", ErrProjectRootNotFound, EnvProjectRoot)
	}
	return "", ErrProjectRootNotFound
}

// FindMigrationsDir returns the absolute path of the migration sources for
// driver. relDir is the directory relative to the project root, as given by
// database.MigrationsSourceDir.
func FindMigrationsDir(relDir string, logger *slog.Logger) (string, error) {
	projectRoot, err := FindProjectRoot(logger)
	if err != nil {
		return "", fmt.Errorf("failed to find project root: %w", err)
	}

	migrationsPath := filepath.Join(projectRoot, relDir)
	if !dirExists(migrationsPath) {
		return "", fmt.Errorf("migrations directory not found at %s", migrationsPath)
	}
	return migrationsPath, nil
}

func isValidProjectRoot(dir string) bool {
	return dirExists(dir) && fileExists(filepath.Join(dir, GoModFile))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
