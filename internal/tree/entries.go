package tree

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// DirectoryEntry is a single child of a listed directory.
type DirectoryEntry struct {
	Name        string
	IsDirectory bool
	FullPath    string
}

// listDirectory returns the immediate children of directoryPath ordered by raw byte order of their names.
// Symbolic links are resolved when deciding whether an entry is a directory.
func listDirectory(fileSystem afero.Fs, directoryPath string) ([]DirectoryEntry, error) {
	fileInfos, readDirectoryError := afero.ReadDir(fileSystem, directoryPath)
	if readDirectoryError != nil {
		return nil, newDirectoryReadError(directoryPath, readDirectoryError)
	}

	entries := make([]DirectoryEntry, 0, len(fileInfos))
	for _, fileInfo := range fileInfos {
		entryPath := filepath.Join(directoryPath, fileInfo.Name())
		entries = append(entries, DirectoryEntry{
			Name:        fileInfo.Name(),
			IsDirectory: isDirectory(fileSystem, entryPath, fileInfo),
			FullPath:    entryPath,
		})
	}
	sort.Slice(entries, func(left, right int) bool {
		return entries[left].Name < entries[right].Name
	})
	return entries, nil
}

func isDirectory(fileSystem afero.Fs, entryPath string, fileInfo os.FileInfo) bool {
	if fileInfo.Mode()&os.ModeSymlink == 0 {
		return fileInfo.IsDir()
	}
	targetInfo, statError := fileSystem.Stat(entryPath)
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}
