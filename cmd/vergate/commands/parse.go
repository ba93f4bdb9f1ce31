package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jimdowning-cyclops/vergate/internal/console"
	"github.com/jimdowning-cyclops/vergate/internal/version"
)

// parseResult is the JSON output of the parse command.
type parseResult struct {
	Version string `json:"version"`
	Major   uint32 `json:"major"`
	Minor   uint32 `json:"minor"`
	Patch   uint32 `json:"patch"`
	Scalar  uint64 `json:"scalar"`
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse VERSION",
		Short: "Parse a version string and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := version.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse version: %w", err)
			}
			log.Debug("parsed version", "input", args[0], "canonical", v.String(), "scalar", v.Scalar())

			if opts.jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(parseResult{
					Version: v.String(),
					Major:   v.Major,
					Minor:   v.Minor,
					Patch:   v.Patch,
					Scalar:  v.Scalar(),
				})
			}

			p := console.NewPrinter(cmd.OutOrStdout(), opts.palette())
			p.KeyValue("version", v.String())
			p.KeyValue("major", strconv.FormatUint(uint64(v.Major), 10))
			p.KeyValue("minor", strconv.FormatUint(uint64(v.Minor), 10))
			p.KeyValue("patch", strconv.FormatUint(uint64(v.Patch), 10))
			p.KeyValue("scalar", strconv.FormatUint(v.Scalar(), 10))
			return nil
		},
	}
}
