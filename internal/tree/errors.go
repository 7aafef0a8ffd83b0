package tree

import "fmt"

// ErrorKind identifies the category of a rendering failure.
type ErrorKind int

const (
	// KindPathNotFound reports a root path that does not exist.
	KindPathNotFound ErrorKind = iota + 1
	// KindDirectoryRead reports a directory that could not be listed.
	KindDirectoryRead
	// KindInvalidConfiguration reports a malformed configuration value.
	KindInvalidConfiguration
	// KindOutputWrite reports a sink that rejected a line.
	KindOutputWrite
)

const (
	pathNotFoundMessageFormat  = "Path does not exist: %s"
	directoryReadMessageFormat = "reading directory %s: %v"
	outputWriteMessageFormat   = "writing output: %v"
)

var (
	// ErrPathNotFound matches errors of kind KindPathNotFound with errors.Is.
	ErrPathNotFound = &Error{Kind: KindPathNotFound}
	// ErrDirectoryRead matches errors of kind KindDirectoryRead with errors.Is.
	ErrDirectoryRead = &Error{Kind: KindDirectoryRead}
	// ErrInvalidConfiguration matches errors of kind KindInvalidConfiguration with errors.Is.
	ErrInvalidConfiguration = &Error{Kind: KindInvalidConfiguration}
	// ErrOutputWrite matches errors of kind KindOutputWrite with errors.Is.
	ErrOutputWrite = &Error{Kind: KindOutputWrite}
)

// Error is the single error type returned by the renderer.
type Error struct {
	Kind    ErrorKind
	Path    string
	Message string
	Err     error
}

// NewInvalidConfigurationError builds a KindInvalidConfiguration error with the given message.
func NewInvalidConfigurationError(message string, cause error) *Error {
	return &Error{Kind: KindInvalidConfiguration, Message: message, Err: cause}
}

func newPathNotFoundError(path string, cause error) *Error {
	return &Error{Kind: KindPathNotFound, Path: path, Err: cause}
}

func newDirectoryReadError(path string, cause error) *Error {
	return &Error{Kind: KindDirectoryRead, Path: path, Err: cause}
}

func newOutputWriteError(cause error) *Error {
	return &Error{Kind: KindOutputWrite, Err: cause}
}

func (renderError *Error) Error() string {
	switch renderError.Kind {
	case KindPathNotFound:
		return fmt.Sprintf(pathNotFoundMessageFormat, renderError.Path)
	case KindDirectoryRead:
		return fmt.Sprintf(directoryReadMessageFormat, renderError.Path, renderError.Err)
	case KindOutputWrite:
		return fmt.Sprintf(outputWriteMessageFormat, renderError.Err)
	}
	if renderError.Message != "" {
		return renderError.Message
	}
	if renderError.Err != nil {
		return renderError.Err.Error()
	}
	return renderError.Kind.String()
}

// Unwrap returns the underlying cause.
func (renderError *Error) Unwrap() error {
	return renderError.Err
}

// Is reports whether target is an *Error of the same kind.
func (renderError *Error) Is(target error) bool {
	targetError, isRenderError := target.(*Error)
	if !isRenderError || targetError == nil {
		return false
	}
	return targetError.Kind == renderError.Kind
}

func (kind ErrorKind) String() string {
	switch kind {
	case KindPathNotFound:
		return "PathNotFound"
	case KindDirectoryRead:
		return "DirectoryReadError"
	case KindInvalidConfiguration:
		return "InvalidConfiguration"
	case KindOutputWrite:
		return "OutputWriteError"
	default:
		return "Unknown"
	}
}
