package start

import (
	"tenantry/cmd/tenantry/start/controller"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(controller.Command)
}

var Command = &cobra.Command{
	Use:     "start",
	Aliases: []string{"s"},
	Short:   "Starts tenantry services",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
