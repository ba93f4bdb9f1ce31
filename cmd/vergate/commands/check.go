package commands

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jimdowning-cyclops/vergate/internal/console"
	"github.com/jimdowning-cyclops/vergate/internal/gate"
	"github.com/jimdowning-cyclops/vergate/internal/version"
)

// Exit codes for check verdicts: any out-of-window gate beats any
// inconclusive one.
const (
	exitIn      = 0
	exitOut     = 1
	exitUnknown = 2
)

// checkDecision is one gate verdict in the JSON output of check.
type checkDecision struct {
	Gate   string `json:"gate,omitempty"`
	Min    string `json:"min,omitempty"`
	Max    string `json:"max,omitempty"`
	Result string `json:"result"`
}

// checkResult is the JSON output of the check command.
type checkResult struct {
	Version   string          `json:"version"`
	Decisions []checkDecision `json:"decisions"`
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var (
		minBound   string
		maxBound   string
		configPath string
		gatesGlob  string
	)

	cmd := &cobra.Command{
		Use:   "check VERSION",
		Short: "Test a version against inclusive version windows",
		Long: `Check tests a version either against an inline window (--min/--max) or
against named gates from a .vergate.yml config (--config, optionally
narrowed with a --gates glob over gate names).

Each verdict is tri-state: in, out, or unknown. A window with no usable
lower bound cannot decide, and a bound that fails to parse counts as
absent rather than as an error.

Exit status: 0 when every gate is in, 1 when any gate is out, 2 when the
worst verdict is unknown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidate, err := version.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse version: %w", err)
			}

			var decisions []gate.Decision
			if configPath != "" {
				cfg, err := gate.Load(configPath)
				if err != nil {
					return err
				}
				gates, err := cfg.Select(gatesGlob)
				if err != nil {
					return err
				}
				if len(gates) == 0 {
					return fmt.Errorf("no gates match pattern %q", gatesGlob)
				}
				log.Debug("evaluating gates", "count", len(gates), "pattern", gatesGlob)
				decisions = gate.Evaluate(candidate, gates)
			} else {
				decisions = gate.Evaluate(candidate, []gate.Gate{{Min: minBound, Max: maxBound}})
			}

			if err := printDecisions(cmd, opts, candidate, decisions); err != nil {
				return err
			}

			if code := exitCode(decisions); code != exitIn {
				return exitCodeError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&minBound, "min", "", "Inclusive lower bound version")
	cmd.Flags().StringVar(&maxBound, "max", "", "Inclusive upper bound version")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a .vergate.yml gate config")
	cmd.Flags().StringVarP(&gatesGlob, "gates", "g", "", "Glob pattern selecting gates by name")
	cmd.MarkFlagsMutuallyExclusive("min", "config")
	cmd.MarkFlagsMutuallyExclusive("max", "config")

	return cmd
}

// printDecisions renders the verdicts as JSON or colored text.
func printDecisions(cmd *cobra.Command, opts *rootOptions, candidate version.Version, decisions []gate.Decision) error {
	if opts.jsonOut {
		result := checkResult{Version: candidate.String()}
		for _, d := range decisions {
			result.Decisions = append(result.Decisions, checkDecision{
				Gate:   d.Gate,
				Min:    d.Min,
				Max:    d.Max,
				Result: d.Result.String(),
			})
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
	}

	p := console.NewPrinter(cmd.OutOrStdout(), opts.palette())
	for _, d := range decisions {
		label := d.Gate
		if label == "" {
			label = candidate.String()
		}
		p.Verdict(label, d.Result)
	}
	return nil
}

// exitCode folds per-gate verdicts into one process exit code.
func exitCode(decisions []gate.Decision) int {
	code := exitIn
	for _, d := range decisions {
		switch d.Result {
		case version.RangeOut:
			return exitOut
		case version.RangeUnknown:
			code = exitUnknown
		}
	}
	return code
}
