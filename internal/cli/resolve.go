package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subsurface-io/resfilter/internal/filter"
	"github.com/subsurface-io/resfilter/internal/selection"
	"github.com/subsurface-io/resfilter/internal/store"
)

// ExitErrorCodeTag is the CLI error code for malformed picker tags.
const ExitErrorCodeTag = "T001"

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	*RootOptions
	Database string
	Tags     []string
	Mode     string
	Commit   bool
}

// ResolveResult is the filtering outcome for one ensemble.
type ResolveResult struct {
	Ensemble      string   `json:"ensemble"`
	InclusionMode string   `json:"inclusion_mode"`
	Filtered      []int    `json:"filtered"`
	Tags          []string `json:"tags"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resolve <case-uuid>::<ensemble-name>",
		Short: "Resolve the filtered realizations of an ensemble",
		Long: `Resolve the filtered realization list of a stored ensemble.

With --tags the given picker tags form the selection; --mode sets the
include/exclude polarity. Without --tags the stored filter state is
applied, or the full universe when none is stored. --commit persists the
resolved configuration as the ensemble's filter state.

Example:
  resfilter resolve --db ./session.db "2f9cbf08-...::iter-0" --tags 1-3,9
  resfilter resolve --db ./session.db "2f9cbf08-...::iter-0" --tags 4-8 --mode exclude --commit`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringSliceVar(&opts.Tags, "tags", nil, "picker tags forming the selection, e.g. 1-3,9")
	cmd.Flags().StringVar(&opts.Mode, "mode", "include", "selection polarity (include|exclude)")
	cmd.Flags().BoolVar(&opts.Commit, "commit", false, "persist the resolved configuration as the filter state")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runResolve(opts *ResolveOptions, identString string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	mode, err := parseInclusionMode(opts.Mode)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid mode", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	set, err := st.LoadSet(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load ensembles", err)
	}

	e := set.FindByIdentString(identString)
	if e == nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("ensemble %q not found in database", identString))
	}

	f := filter.New(e)
	if cmd.Flags().Changed("tags") {
		selections, parseErr := selection.ParsePickerTags(opts.Tags)
		if parseErr != nil {
			_ = formatter.Error(ExitErrorCodeTag, parseErr.Error(), nil)
			return WrapExitError(ExitFailure, "invalid picker tags", parseErr)
		}
		f.SetSelections(selections)
		f.SetInclusionMode(mode)
		formatter.VerboseLog("Resolving %s from %d tag(s), mode %s", e.Ident(), len(opts.Tags), mode)
	} else {
		state, loadErr := st.LoadFilterState(ctx, e.Ident())
		if loadErr != nil {
			return WrapExitError(ExitCommandError, "failed to load filter state", loadErr)
		}
		if state != nil {
			f.SetFilterType(state.FilterType)
			f.SetInclusionMode(state.InclusionMode)
			f.SetSelections(state.Selections)
			formatter.VerboseLog("Resolving %s from stored filter state", e.Ident())
		} else {
			formatter.VerboseLog("No stored filter state for %s, resolving full universe", e.Ident())
		}
	}
	f.RunFiltering()

	if opts.Commit {
		if err := st.SaveFilterState(ctx, f); err != nil {
			return WrapExitError(ExitCommandError, "failed to persist filter state", err)
		}
		formatter.VerboseLog("Committed filter state for %s", e.Ident())
	}

	filtered := f.FilteredRealizations()
	result := ResolveResult{
		Ensemble:      e.Ident().String(),
		InclusionMode: string(f.InclusionMode()),
		Filtered:      filtered,
		Tags:          selection.FormatPickerTags(selection.BestCompressed(filtered)),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%s: %d of %d realization(s)\n",
		result.Ensemble, len(filtered), e.RealizationCount())
	fmt.Fprintf(formatter.Writer, "  numbers: %s\n", formatNumbers(filtered))
	fmt.Fprintf(formatter.Writer, "  tags:    %s\n", strings.Join(result.Tags, ", "))
	return nil
}

// parseInclusionMode maps the --mode flag to a filter polarity.
func parseInclusionMode(mode string) (filter.InclusionMode, error) {
	switch mode {
	case "include":
		return filter.IncludeFilter, nil
	case "exclude":
		return filter.ExcludeFilter, nil
	default:
		return "", fmt.Errorf("unknown mode %q: must be include or exclude", mode)
	}
}

// formatNumbers renders a realization list for text output.
func formatNumbers(numbers []int) string {
	if len(numbers) == 0 {
		return "(none)"
	}
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
