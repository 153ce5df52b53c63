package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subsurface-io/resfilter/internal/store"
)

// EnsemblesOptions holds flags for the ensembles command.
type EnsemblesOptions struct {
	*RootOptions
	Database string
}

// EnsembleInfo is one ensemble row in the listing output.
type EnsembleInfo struct {
	Ident            string `json:"ident"`
	CaseName         string `json:"case_name,omitempty"`
	DisplayName      string `json:"display_name"`
	FieldIdentifier  string `json:"field,omitempty"`
	RealizationCount int    `json:"realization_count"`
}

// NewEnsemblesCommand creates the ensembles command.
func NewEnsemblesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EnsemblesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ensembles",
		Short: "List ensembles stored in a database",
		Long: `List the ensembles stored in a SQLite database, in load order.

Example:
  resfilter ensembles --db ./session.db
  resfilter ensembles --db ./session.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnsembles(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runEnsembles(opts *EnsemblesOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	set, err := st.LoadSet(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load ensembles", err)
	}

	infos := make([]EnsembleInfo, 0, set.Len())
	for _, e := range set.All() {
		infos = append(infos, EnsembleInfo{
			Ident:            e.Ident().String(),
			CaseName:         e.CaseName(),
			DisplayName:      e.DisplayName(),
			FieldIdentifier:  e.FieldIdentifier(),
			RealizationCount: e.RealizationCount(),
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	if len(infos) == 0 {
		fmt.Fprintln(formatter.Writer, "No ensembles stored.")
		return nil
	}
	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "%s\t%s\t%d realization(s)\n",
			info.Ident, info.DisplayName, info.RealizationCount)
	}
	return nil
}
