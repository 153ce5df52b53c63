package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subsurface-io/resfilter/internal/config"
)

// ValidationResult holds manifest validation results.
type ValidationResult struct {
	Valid     bool `json:"valid"`
	Ensembles int  `json:"ensembles"`
	Presets   int  `json:"presets"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Validate an ensemble manifest without loading it",
		Long: `Validate an ensemble manifest without persisting anything.

A directory argument is loaded as a CUE package; a file argument is parsed
as YAML. Checks manifest structure, case UUIDs, realization universes,
parameter values, and preset references.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	m, err := loadManifest(path)
	if err != nil {
		var loadErr *config.LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
		}
		_ = formatter.Error(config.ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load manifest", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{
			Valid:     true,
			Ensembles: len(m.Ensembles),
			Presets:   len(m.Presets),
		})
	}

	fmt.Fprintf(formatter.Writer, "✓ Manifest valid: %d ensemble(s), %d preset(s)\n",
		len(m.Ensembles), len(m.Presets))
	return nil
}

// loadManifest loads a manifest from either a CUE package directory or a
// YAML file, chosen by what the path points at.
func loadManifest(path string) (*config.Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &config.LoadError{Code: config.ErrCodeNotFound, Message: fmt.Sprintf("manifest path not found: %s", path)}
	}
	if info.IsDir() {
		return config.LoadManifestCUE(path)
	}
	return config.LoadManifestYAML(path)
}
