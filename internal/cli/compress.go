package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subsurface-io/resfilter/internal/selection"
)

// CompressResult holds the compressed tag rendering of a number list.
type CompressResult struct {
	Numbers []int    `json:"numbers"`
	Tags    []string `json:"tags"`
}

// NewCompressCommand creates the compress command.
func NewCompressCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress <number>...",
		Short: "Compress realization numbers into picker tags",
		Long: `Compress a list of realization numbers into the shortest picker tag
rendering. Adjacent numbers collapse into ranges; duplicates are ignored.

Example:
  resfilter compress 1 2 3 9 10 15
  resfilter compress --format json 0 1 2 5`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCompress(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return NewExitError(ExitCommandError, fmt.Sprintf("%q is not a realization number", arg))
		}
		if n < 0 {
			return NewExitError(ExitCommandError, fmt.Sprintf("realization numbers are non-negative, got %d", n))
		}
		numbers = append(numbers, n)
	}

	tags := selection.FormatPickerTags(selection.BestCompressed(numbers))

	if formatter.Format == "json" {
		return formatter.Success(CompressResult{Numbers: numbers, Tags: tags})
	}
	fmt.Fprintln(formatter.Writer, strings.Join(tags, ", "))
	return nil
}
