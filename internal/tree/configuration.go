package tree

// Configuration controls which entries are rendered and how deep the traversal goes.
// ShowFiles and ShowDirs set together, or both left unset, render every entry.
type Configuration struct {
	ShowFiles bool
	ShowDirs  bool
	// MaxDepth bounds the number of directory levels listed below the root; nil means unlimited.
	MaxDepth *uint
}

// DepthLimit returns a MaxDepth value for the provided level count.
func DepthLimit(levels uint) *uint {
	limit := levels
	return &limit
}

func (configuration Configuration) depthReached(depth uint) bool {
	return configuration.MaxDepth != nil && depth >= *configuration.MaxDepth
}

func (configuration Configuration) shouldShow(entry DirectoryEntry) bool {
	switch {
	case configuration.ShowFiles && !configuration.ShowDirs:
		return !entry.IsDirectory
	case configuration.ShowDirs && !configuration.ShowFiles:
		return entry.IsDirectory
	default:
		return true
	}
}
