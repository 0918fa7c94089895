package ciutil

import "os"

// Environment variables consulted by this package.
const (
	EnvCI               = "CI"
	EnvGitHubActions    = "GITHUB_ACTIONS"
	EnvGitHubWorkspace  = "GITHUB_WORKSPACE"
	EnvGitLabCI         = "GITLAB_CI"
	EnvGitLabProjectDir = "CI_PROJECT_DIR"
	EnvJenkinsURL       = "JENKINS_URL"
	EnvCircleCI         = "CIRCLECI"

	// EnvProjectRoot overrides project root detection.
	EnvProjectRoot = "PARKY_PROJECT_ROOT"
)

// IsCI returns true if the current environment is a CI environment.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvJenkinsURL) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// IsGitHubActions returns true if the current environment is GitHub Actions.
func IsGitHubActions() bool {
	return os.Getenv(EnvGitHubActions) != "" && os.Getenv(EnvGitHubWorkspace) != ""
}

// IsGitLabCI returns true if the current environment is GitLab CI.
func IsGitLabCI() bool {
	return os.Getenv(EnvGitLabCI) != "" && os.Getenv(EnvGitLabProjectDir) != ""
}
