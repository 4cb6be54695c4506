package update

import (
	"tenantry/cmd/tenantry/update/org"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(org.Command)
}

var Command = &cobra.Command{
	Use:     "update",
	Aliases: []string{"u"},
	Short:   "Updates tenantry resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
