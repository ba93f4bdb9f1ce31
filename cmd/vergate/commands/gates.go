package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jimdowning-cyclops/vergate/internal/gate"
)

// gateInfo is one gate in the JSON output of the gates command.
type gateInfo struct {
	Name        string `json:"name"`
	Min         string `json:"min,omitempty"`
	Max         string `json:"max,omitempty"`
	Description string `json:"description,omitempty"`
}

func newGatesCmd(opts *rootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "gates",
		Short: "List the gates defined in a config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := gate.Load(configPath)
			if err != nil {
				return err
			}
			gates := cfg.All()

			if opts.jsonOut {
				infos := make([]gateInfo, 0, len(gates))
				for _, g := range gates {
					infos = append(infos, gateInfo{
						Name:        g.Name,
						Min:         g.Min,
						Max:         g.Max,
						Description: g.Description,
					})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(infos)
			}

			maxLen := 0
			for _, g := range gates {
				if len(g.Name) > maxLen {
					maxLen = len(g.Name)
				}
			}
			for _, g := range gates {
				fmt.Fprintf(cmd.OutOrStdout(), "%-*s  [%s, %s]  %s\n",
					maxLen, g.Name, orOpen(g.Min), orOpen(g.Max), g.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", ".vergate.yml", "Path to a .vergate.yml gate config")

	return cmd
}

// orOpen renders an absent bound as an open interval end.
func orOpen(bound string) string {
	if bound == "" {
		return "*"
	}
	return bound
}
