package cmd

import (
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/agent/frontier"
	"github.com/spf13/cobra"
)

func newPoliciesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the available frontier policies.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range frontier.Kinds() {
				marker := " "
				if string(k) == a.cfg.Solve.Policy {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, k)
			}
			return nil
		},
	}
}
