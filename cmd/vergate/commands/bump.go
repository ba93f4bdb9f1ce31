package commands

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jimdowning-cyclops/vergate/internal/change"
	"github.com/jimdowning-cyclops/vergate/internal/console"
	"github.com/jimdowning-cyclops/vergate/internal/version"
)

// bumpResult is the JSON output of the bump command.
type bumpResult struct {
	Current   string `json:"current"`
	Next      string `json:"next"`
	Component string `json:"component"`
	Note      string `json:"note,omitempty"`
}

func newBumpCmd(opts *rootOptions) *cobra.Command {
	var (
		level   string
		message string
		note    string
	)

	cmd := &cobra.Command{
		Use:   "bump VERSION",
		Short: "Advance one version component, resetting everything below it",
		Long: `Bump advances the given version by one component. The component comes
either from --level (major, minor, patch) or is classified from a
conventional-commit style --message (feat -> minor, fix -> patch, a "!"
marker or BREAKING CHANGE footer -> major). A message that warrants no
release leaves the version unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := version.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse version: %w", err)
			}

			result := bumpResult{Current: current.String(), Note: note}
			next := current
			switch {
			case level != "" && message != "":
				return fmt.Errorf("--level and --message are mutually exclusive")
			case level != "":
				c, err := version.ParseComponent(level)
				if err != nil {
					return err
				}
				var entry change.Entry
				next, entry = change.Apply(current, c, note)
				result.Component = c.String()
				log.Debug("applied change", "component", entry.Component, "from", entry.From, "to", entry.To)
			case message != "":
				c, ok := change.Classify(message, "")
				if !ok {
					result.Component = "none"
					log.Debug("message warrants no release", "message", message)
					break
				}
				var entry change.Entry
				next, entry = change.Apply(current, c, note)
				result.Component = c.String()
				log.Debug("applied change", "component", entry.Component, "from", entry.From, "to", entry.To)
			default:
				return fmt.Errorf("either --level or --message is required")
			}
			result.Next = next.String()

			if opts.jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
			}

			p := console.NewPrinter(cmd.OutOrStdout(), opts.palette())
			p.KeyValue("current", result.Current)
			p.KeyValue("next", result.Next)
			p.KeyValue("component", result.Component)
			if note != "" {
				p.KeyValue("note", note)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "Component to bump (major, minor, or patch)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Conventional-commit style message to classify")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note for the caller's own audit trail")

	return cmd
}
