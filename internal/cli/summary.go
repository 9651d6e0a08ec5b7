package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rohmanhakim/recipebox/internal/summary"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <term...>",
	Short: "Look up the encyclopedia summary of a dish.",
	Long: `summary looks up a dish by name. When the full name is not found it
tries once more with the last word, so "American Apple Pie" falls back to "pie".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := InitConfigWithError(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		term := strings.Join(args, " ")

		if useSample {
			printSummary(cmd.OutOrStdout(), summary.Sample())
			return nil
		}

		a := newApp(cfg, cmd.ErrOrStderr())
		result, ferr := a.summaries.LookupWithFallback(cmd.Context(), term)
		if ferr != nil {
			a.logger.Error("summary lookup failed", "term", term, "error", ferr)
			return fmt.Errorf("looking up %q: %w", term, ferr)
		}
		printSummary(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&useSample, "sample", false, "print the built-in sample summary instead of using the network")
}

func printSummary(out io.Writer, s summary.Summary) {
	fmt.Fprintln(out, s.Title())
	fmt.Fprintln(out, s.Description())
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.Extract())
}
