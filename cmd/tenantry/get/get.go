package get

import (
	"tenantry/cmd/tenantry/get/org"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(org.Command)
}

var Command = &cobra.Command{
	Use:     "get",
	Aliases: []string{"g"},
	Short:   "Retrieves tenantry resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
