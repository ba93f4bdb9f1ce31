package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jimdowning-cyclops/vergate/internal/console"
	"github.com/jimdowning-cyclops/vergate/internal/version"
)

// compareResult is the JSON output of the compare command.
type compareResult struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Ordering int    `json:"ordering"`
	Relation string `json:"relation"`
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two versions by their scalar ordering",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := version.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse first version: %w", err)
			}
			b, err := version.Parse(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse second version: %w", err)
			}

			ordering := a.Compare(b)
			relation := "=="
			switch {
			case ordering < 0:
				relation = "<"
			case ordering > 0:
				relation = ">"
			}

			if opts.jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(compareResult{
					A:        a.String(),
					B:        b.String(),
					Ordering: ordering,
					Relation: relation,
				})
			}

			p := console.NewPrinter(cmd.OutOrStdout(), opts.palette())
			p.KeyValue("result", fmt.Sprintf("%s %s %s", a, relation, b))
			return nil
		},
	}
}
