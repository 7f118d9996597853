package ciutil

import "os"

// Environment variable names consulted for CI detection.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"
)

// IsCI returns true if the current environment is a CI environment.
// It checks for common CI environment variables across different CI providers.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvJenkinsURL) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// Provider names the CI system, or "" when none is recognized.
func Provider() string {
	switch {
	case os.Getenv(EnvGitHubActions) != "":
		return "github_actions"
	case os.Getenv(EnvGitLabCI) != "":
		return "gitlab_ci"
	case os.Getenv(EnvJenkinsURL) != "":
		return "jenkins"
	case os.Getenv(EnvCircleCI) != "":
		return "circleci"
	case os.Getenv(EnvCI) != "":
		return "generic"
	default:
		return ""
	}
}

// metadataVars maps log attribute names to the variables they are read from.
var metadataVars = map[string]string{
	"ci_run_id":     "GITHUB_RUN_ID",
	"ci_workflow":   "GITHUB_WORKFLOW",
	"ci_job":        "GITHUB_JOB",
	"ci_ref":        "GITHUB_REF",
	"ci_commit_sha": "GITHUB_SHA",
	"ci_pipeline":   "CI_PIPELINE_ID",
}

// Metadata returns the non-empty CI attributes for the current process.
func Metadata() map[string]string {
	md := make(map[string]string, len(metadataVars)+1)
	if p := Provider(); p != "" {
		md["ci_provider"] = p
	}
	for attr, env := range metadataVars {
		if v := os.Getenv(env); v != "" {
			md[attr] = v
		}
	}
	return md
}
