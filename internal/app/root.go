// internal/app/root.go
package app

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seqstat/internal/version"
)

type app struct {
	stdout, stderr io.Writer

	// started flips once a subcommand's work begins; errors before that
	// are usage errors by definition.
	started bool

	verbose bool
	quiet   bool
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seqstat",
		Short: "Statistics and figures for DNA sequence datasets",
		Long: `seqstat computes palindrome, k-mer, GC, dinucleotide and invalid-base
statistics for a dataset of DNA sequences, writing one JSON document per
analysis plus two PNG figures.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.SetOutput(a.stderr)
			switch {
			case a.quiet:
				log.SetLevel(log.WarnLevel)
			case a.verbose:
				log.SetLevel(log.DebugLevel)
			default:
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "log warnings and errors only")

	root.AddCommand(a.analyzeCmd())
	root.AddCommand(a.versionCmd())
	return root
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seqstat version %s\n", version.Version)
		},
	}
}
