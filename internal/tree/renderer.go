// Package tree renders a directory subtree as indented text using box-drawing connectors.
package tree

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	connectorMiddle    = "├── "
	connectorLast      = "└── "
	continuationMiddle = "│   "
	continuationLast   = "    "
	directorySuffix    = "/"

	lineFormat = "%s%s%s\n"
)

// Renderer writes the tree rooted at a path to an output sink.
type Renderer struct {
	fileSystem    afero.Fs
	output        io.Writer
	configuration Configuration
}

// NewRenderer constructs a Renderer reading from fileSystem and writing lines to output.
func NewRenderer(fileSystem afero.Fs, output io.Writer, configuration Configuration) *Renderer {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	return &Renderer{
		fileSystem:    fileSystem,
		output:        output,
		configuration: configuration,
	}
}

// Render writes the tree rooted at rootPath on the operating system filesystem to output.
func Render(output io.Writer, rootPath string, configuration Configuration) error {
	return NewRenderer(afero.NewOsFs(), output, configuration).Render(rootPath)
}

// Render writes the root header followed by every eligible descendant of rootPath.
// The first directory listing failure aborts the render; lines already written are kept.
func (renderer *Renderer) Render(rootPath string) error {
	if _, statError := renderer.fileSystem.Stat(rootPath); statError != nil {
		return newPathNotFoundError(rootPath, statError)
	}
	if writeError := renderer.writeLine("", "", rootDisplayName(rootPath)+directorySuffix); writeError != nil {
		return writeError
	}
	return renderer.renderChildren(rootPath, "", 0)
}

func (renderer *Renderer) renderChildren(directoryPath string, prefix string, depth uint) error {
	if renderer.configuration.depthReached(depth) {
		return nil
	}

	entries, listError := listDirectory(renderer.fileSystem, directoryPath)
	if listError != nil {
		return listError
	}

	// The last connector is decided by position in the unfiltered listing.
	for index, entry := range entries {
		isLast := index == len(entries)-1
		if !renderer.configuration.shouldShow(entry) {
			continue
		}

		connector := connectorMiddle
		continuation := continuationMiddle
		if isLast {
			connector = connectorLast
			continuation = continuationLast
		}
		displayName := entry.Name
		if entry.IsDirectory {
			displayName += directorySuffix
		}
		if writeError := renderer.writeLine(prefix, connector, displayName); writeError != nil {
			return writeError
		}

		if entry.IsDirectory {
			if childError := renderer.renderChildren(entry.FullPath, prefix+continuation, depth+1); childError != nil {
				return childError
			}
		}
	}
	return nil
}

func (renderer *Renderer) writeLine(prefix string, connector string, name string) error {
	if _, writeError := fmt.Fprintf(renderer.output, lineFormat, prefix, connector, name); writeError != nil {
		return newOutputWriteError(writeError)
	}
	return nil
}

// rootDisplayName returns the last path element of rootPath, resolving relative
// references such as "." against the working directory. The filesystem root has no name.
func rootDisplayName(rootPath string) string {
	name := filepath.Base(rootPath)
	if name == "." || name == ".." {
		if absolutePath, absoluteError := filepath.Abs(rootPath); absoluteError == nil {
			name = filepath.Base(absolutePath)
		}
	}
	if name == string(filepath.Separator) || name == "." {
		return ""
	}
	return name
}
