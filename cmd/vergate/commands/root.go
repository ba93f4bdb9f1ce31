// Package commands wires the vergate CLI: parse, bump, compare, check, and
// gates subcommands over the version core.
package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jimdowning-cyclops/vergate/internal/console"
)

const (
	shortDesc = "Semantic version parsing, bumping, and version-window gating"
	longDesc  = `vergate works with three-component semantic versions (major.minor.patch).

It parses and compares versions, advances them one component at a time the
way a changelog does (bumping a component resets everything below it), and
tests versions against inclusive version windows, either given inline or
loaded as named gates from a .vergate.yml config.`
)

// rootOptions carries flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	jsonOut bool
	plain   bool
}

// palette returns the output palette implied by the flags.
func (o *rootOptions) palette() console.Palette {
	if o.plain {
		return console.PlainPalette()
	}
	return console.DefaultPalette()
}

// exitCodeError carries a process exit code through cobra without printing
// an error message.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return ""
}

// Code returns the process exit code.
func (e exitCodeError) Code() int {
	return e.code
}

// NewRootCmd returns the vergate root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "vergate",
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Emit results as JSON")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "Disable colored output")

	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if opts.verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	cmd.AddCommand(
		newParseCmd(opts),
		newBumpCmd(opts),
		newCompareCmd(opts),
		newCheckCmd(opts),
		newGatesCmd(opts),
	)

	return cmd
}
