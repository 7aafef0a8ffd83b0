// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/tree/internal/config"
	"github.com/temirov/tree/internal/services/clipboard"
	"github.com/temirov/tree/internal/tree"
	"github.com/temirov/tree/internal/utils"
)

const (
	depthFlagName      = "depth"
	depthFlagShorthand = "d"
	filesOnlyFlagName  = "files-only"
	filesOnlyFlagShort = "f"
	dirsOnlyFlagName   = "dirs-only"
	dirsOnlyFlagShort  = "D"
	copyFlagName       = "copy"
	configFlagName     = "config"
	versionFlagName    = "version"

	versionTemplate      = "tree version: %s\n"
	rootUse              = "tree [path]"
	rootShortDescription = "display a directory tree"

	// rootLongDescription provides detailed help for the tree command.
	rootLongDescription = `tree prints the directory hierarchy rooted at path using box-drawing connectors.
The path defaults to the current working directory. Use --depth to limit how many
levels are listed, --files-only or --dirs-only to filter entries, and --copy to also
place the rendered tree on the system clipboard.`

	// rootUsageExample demonstrates tree command usage.
	rootUsageExample = `  # Render the current directory
  tree

  # Show two levels of directories only
  tree -D -d 2 ./cmd

  # Render files only and copy the result
  tree --files-only --copy internal`

	depthFlagDescription     = "maximum depth to display"
	filesOnlyFlagDescription = "show files only"
	dirsOnlyFlagDescription  = "show directories only"
	copyFlagDescription      = "copy the rendered tree to the clipboard"
	configFlagDescription    = "configuration file to load instead of " + utils.LocalConfigFileName
	versionFlagDescription   = "display application version"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	clipboardCopyErrorFormat    = "copy output to clipboard: %w"
	negativeDepthMessageFormat  = "depth in configuration must be non-negative, got %d"
	clipboardMissingMessage     = "clipboard service is not configured"
)

// Dependencies carries the collaborators used by the root command.
type Dependencies struct {
	Stdout    io.Writer
	Clipboard clipboard.Copier
}

// Execute runs the tree application.
func Execute() error {
	rootCommand := NewRootCommand(Dependencies{
		Stdout:    os.Stdout,
		Clipboard: clipboard.NewService(),
	})
	return rootCommand.Execute()
}

// commandOptions stores values bound to command line flags.
type commandOptions struct {
	depth       *uint
	filesOnly   bool
	dirsOnly    bool
	copyEnabled bool
	configPath  string
	showVersion bool
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	var options commandOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			output := dependencies.Stdout
			if output == nil {
				output = command.OutOrStdout()
			}
			if options.showVersion {
				_, writeError := fmt.Fprintf(output, versionTemplate, utils.GetApplicationVersion())
				return writeError
			}
			rootPath, workingDirectory, pathError := resolveRootPath(arguments)
			if pathError != nil {
				return pathError
			}
			fileConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: options.configPath,
			})
			if loadError != nil {
				return loadError
			}
			if applyError := options.applyDefaults(command, fileConfiguration); applyError != nil {
				return applyError
			}
			return runTree(output, dependencies.Clipboard, rootPath, options)
		},
	}
	rootCommand.SetFlagErrorFunc(func(command *cobra.Command, flagError error) error {
		return tree.NewInvalidConfigurationError(flagError.Error(), flagError)
	})

	flagSet := rootCommand.Flags()
	registerDepthFlag(flagSet, &options.depth)
	flagSet.BoolVarP(&options.filesOnly, filesOnlyFlagName, filesOnlyFlagShort, false, filesOnlyFlagDescription)
	flagSet.BoolVarP(&options.dirsOnly, dirsOnlyFlagName, dirsOnlyFlagShort, false, dirsOnlyFlagDescription)
	registerCopyFlag(flagSet, &options.copyEnabled)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)
	return rootCommand
}

// applyDefaults fills options not set on the command line from the configuration files.
func (options *commandOptions) applyDefaults(command *cobra.Command, fileConfiguration config.ApplicationConfiguration) error {
	flagSet := command.Flags()
	if !flagSet.Changed(depthFlagName) && fileConfiguration.Depth != nil {
		if *fileConfiguration.Depth < 0 {
			return tree.NewInvalidConfigurationError(fmt.Sprintf(negativeDepthMessageFormat, *fileConfiguration.Depth), nil)
		}
		options.depth = tree.DepthLimit(uint(*fileConfiguration.Depth))
	}
	if !flagSet.Changed(filesOnlyFlagName) && fileConfiguration.FilesOnly != nil {
		options.filesOnly = *fileConfiguration.FilesOnly
	}
	if !flagSet.Changed(dirsOnlyFlagName) && fileConfiguration.DirsOnly != nil {
		options.dirsOnly = *fileConfiguration.DirsOnly
	}
	if !flagSet.Changed(copyFlagName) && fileConfiguration.Copy != nil {
		options.copyEnabled = *fileConfiguration.Copy
	}
	return nil
}

func (options commandOptions) treeConfiguration() tree.Configuration {
	return tree.Configuration{
		ShowFiles: options.filesOnly,
		ShowDirs:  options.dirsOnly,
		MaxDepth:  options.depth,
	}
}

// resolveRootPath returns the requested root, defaulting to the working directory.
func resolveRootPath(arguments []string) (string, string, error) {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return "", "", fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	if len(arguments) == 0 {
		return workingDirectory, workingDirectory, nil
	}
	return arguments[0], workingDirectory, nil
}

// runTree renders rootPath to output and, when requested, copies the rendered text to the clipboard.
func runTree(output io.Writer, copier clipboard.Copier, rootPath string, options commandOptions) error {
	var clipboardBuffer *bytes.Buffer
	if options.copyEnabled {
		if copier == nil {
			return errors.New(clipboardMissingMessage)
		}
		clipboardBuffer = &bytes.Buffer{}
		output = io.MultiWriter(output, clipboardBuffer)
	}
	if renderError := tree.Render(output, rootPath, options.treeConfiguration()); renderError != nil {
		return renderError
	}
	if clipboardBuffer != nil {
		if copyError := copier.Copy(clipboardBuffer.String()); copyError != nil {
			return fmt.Errorf(clipboardCopyErrorFormat, copyError)
		}
	}
	return nil
}
