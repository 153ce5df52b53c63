package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/subsurface-io/resfilter/internal/config"
	"github.com/subsurface-io/resfilter/internal/ensemble"
	"github.com/subsurface-io/resfilter/internal/filter"
	"github.com/subsurface-io/resfilter/internal/store"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Database     string
	ApplyPresets bool
}

// LoadResult summarizes what a load run persisted.
type LoadResult struct {
	Ensembles int `json:"ensembles"`
	Presets   int `json:"presets_applied"`
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <manifest>",
		Short: "Load an ensemble manifest into a database",
		Long: `Load an ensemble manifest and persist it to a SQLite database.

A directory argument is loaded as a CUE package; a file argument is parsed
as YAML. The database is created if it does not exist. Re-loading a
manifest replaces the stored ensembles and their realization universes.

Example:
  resfilter load --db ./session.db ./manifests
  resfilter load --db ./session.db ensembles.yaml --apply-presets`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().BoolVar(&opts.ApplyPresets, "apply-presets", false, "apply manifest presets and persist the resulting filter states")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLoad(opts *LoadOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	m, err := loadManifest(path)
	if err != nil {
		var loadErr *config.LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
		}
		return WrapExitError(ExitCommandError, "failed to load manifest", err)
	}
	logger.Debug("manifest loaded", "path", path, "ensembles", len(m.Ensembles), "presets", len(m.Presets))

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	set := m.BuildSet()
	if err := st.SaveSet(ctx, set); err != nil {
		return WrapExitError(ExitCommandError, "failed to persist ensembles", err)
	}
	logger.Info("ensembles persisted", "db", opts.Database, "count", set.Len())

	presetsApplied := 0
	if opts.ApplyPresets {
		filters := filter.NewFilterSet(set)
		for _, p := range m.Presets {
			if err := config.ApplyPreset(p, filters); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to apply preset %q", p.Name), err)
			}
			ident, parseErr := ensemble.ParseIdentString(p.Ensemble)
			if parseErr != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to apply preset %q", p.Name), parseErr)
			}
			if err := st.SaveFilterState(ctx, filters.FilterForEnsemble(ident)); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to persist preset %q", p.Name), err)
			}
			presetsApplied++
		}
		logger.Info("presets applied", "count", presetsApplied)
	}

	if formatter.Format == "json" {
		return formatter.Success(LoadResult{Ensembles: set.Len(), Presets: presetsApplied})
	}
	fmt.Fprintf(formatter.Writer, "Loaded %d ensemble(s) into %s\n", set.Len(), opts.Database)
	if opts.ApplyPresets {
		fmt.Fprintf(formatter.Writer, "Applied %d preset(s)\n", presetsApplied)
	}
	return nil
}
