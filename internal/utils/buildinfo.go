// Package utils holds logging, version lookup, and shared constants for the tree command.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion     = "unknown"
	developmentVersion = "(devel)"
)

// Version is set at link time with -ldflags "-X github.com/temirov/tree/internal/utils.Version=...".
var Version = EmptyString

// versionSources groups the lookups used to determine the application version.
type versionSources struct {
	linked      string
	buildInfo   func() (*debug.BuildInfo, bool)
	gitDescribe func(arguments ...string) (string, error)
}

// GetApplicationVersion reports the linked version, the module version from build info,
// or the result of git describe, in that order.
func GetApplicationVersion() string {
	return resolveVersion(versionSources{
		linked:      Version,
		buildInfo:   debug.ReadBuildInfo,
		gitDescribe: runGitDescribe,
	})
}

func resolveVersion(sources versionSources) string {
	if sources.linked != EmptyString {
		return sources.linked
	}
	if sources.buildInfo != nil {
		if buildInfo, available := sources.buildInfo(); available && buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != developmentVersion {
			return buildInfo.Main.Version
		}
	}
	if sources.gitDescribe == nil {
		return unknownVersion
	}
	if exactTag, exactErr := sources.gitDescribe("--tags", "--exact-match"); exactErr == nil && exactTag != EmptyString {
		return exactTag
	}
	if longTag, longErr := sources.gitDescribe("--tags", "--long", "--dirty"); longErr == nil && longTag != EmptyString {
		return longTag
	}
	return unknownVersion
}

func runGitDescribe(arguments ...string) (string, error) {
	repositoryDirectory, lookupError := findGitDirectory(".")
	if lookupError != nil {
		return EmptyString, lookupError
	}
	// #nosec G204
	describeCommand := exec.Command("git", append([]string{"describe"}, arguments...)...)
	describeCommand.Dir = repositoryDirectory
	describeOutput, describeError := describeCommand.Output()
	if describeError != nil {
		return EmptyString, describeError
	}
	return strings.TrimSpace(string(describeOutput)), nil
}

// findGitDirectory walks upward from startDirectory to the first directory containing .git.
func findGitDirectory(startDirectory string) (string, error) {
	absoluteStartDirectory, errorAbsolute := filepath.Abs(startDirectory)
	if errorAbsolute != nil {
		return EmptyString, fmt.Errorf("failed to get absolute path for %s: %w", startDirectory, errorAbsolute)
	}

	for currentDirectory := absoluteStartDirectory; ; {
		if fileInformation, errorStat := os.Stat(filepath.Join(currentDirectory, GitDirectoryName)); errorStat == nil && fileInformation.IsDir() {
			return currentDirectory, nil
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}

	return EmptyString, fmt.Errorf(".git directory not found in or above %s", absoluteStartDirectory)
}
