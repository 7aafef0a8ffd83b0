package utils

import (
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
)

func buildInfoWithVersion(version string) func() (*debug.BuildInfo, bool) {
	return func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: version}}, true
	}
}

func TestResolveVersion(t *testing.T) {
	t.Parallel()

	failingDescribe := func(arguments ...string) (string, error) {
		return "", errors.New("not a repository")
	}
	longOnlyDescribe := func(arguments ...string) (string, error) {
		if strings.Contains(strings.Join(arguments, " "), "--exact-match") {
			return "", errors.New("no exact tag")
		}
		return "v0.2.0-3-gabc1234", nil
	}

	testCases := []struct {
		name     string
		sources  versionSources
		expected string
	}{
		{
			name:     "linked_version_wins",
			sources:  versionSources{linked: "v1.0.0", buildInfo: buildInfoWithVersion("v0.9.0")},
			expected: "v1.0.0",
		},
		{
			name:     "module_version",
			sources:  versionSources{buildInfo: buildInfoWithVersion("v0.9.0"), gitDescribe: failingDescribe},
			expected: "v0.9.0",
		},
		{
			name:     "devel_falls_back_to_git",
			sources:  versionSources{buildInfo: buildInfoWithVersion("(devel)"), gitDescribe: longOnlyDescribe},
			expected: "v0.2.0-3-gabc1234",
		},
		{
			name:     "unknown_without_sources",
			sources:  versionSources{buildInfo: buildInfoWithVersion(""), gitDescribe: failingDescribe},
			expected: "unknown",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if actual := resolveVersion(testCase.sources); actual != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, actual)
			}
		})
	}
}

func TestFindGitDirectory(t *testing.T) {
	t.Parallel()

	repositoryRoot := t.TempDir()
	nestedDirectory := filepath.Join(repositoryRoot, "a", "b")
	if err := os.MkdirAll(filepath.Join(repositoryRoot, GitDirectoryName), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	if err := os.MkdirAll(nestedDirectory, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	found, err := findGitDirectory(nestedDirectory)
	if err != nil {
		t.Fatalf("findGitDirectory error: %v", err)
	}
	if found != repositoryRoot {
		t.Fatalf("expected %s, got %s", repositoryRoot, found)
	}
}
