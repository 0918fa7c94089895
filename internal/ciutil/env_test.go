package ciutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsCI(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected bool
	}{
		{"No CI env vars", map[string]string{}, false},
		{"Generic CI", map[string]string{EnvCI: "true"}, true},
		{"GitHub Actions", map[string]string{EnvGitHubActions: "true"}, true},
		{"GitLab CI", map[string]string{EnvGitLabCI: "true"}, true},
		{"Jenkins", map[string]string{EnvJenkinsURL: "https://jenkins.example.com"}, true},
		{"CircleCI", map[string]string{EnvCircleCI: "true"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearCIEnv(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, IsCI())
		})
	}
}

func TestProviderDetectionNeedsWorkspace(t *testing.T) {
	clearCIEnv(t)
	t.Setenv(EnvGitHubActions, "true")
	assert.False(t, IsGitHubActions())
	t.Setenv(EnvGitHubWorkspace, "/work")
	assert.True(t, IsGitHubActions())

	t.Setenv(EnvGitLabCI, "true")
	assert.False(t, IsGitLabCI())
	t.Setenv(EnvGitLabProjectDir, "/builds/parky")
	assert.True(t, IsGitLabCI())
}
