package org

import (
	"encoding/json"
	"errors"
	"fmt"
	"tenantry/internal/cli"
	"tenantry/internal/config"
	"tenantry/internal/types"
	"tenantry/pkg/controller"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	config.GetControllerUrlFlags().AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "org <name>",
	Aliases: []string{"organization", "o"},
	Short:   "Retrieves an organization by its name",
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		config.GetControllerUrlFlags().BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: config.GetControllerUrl(),
			Id:            "tenantry/get-org",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		output, err := client.GetOrgV1(controller.GetOrgV1Input{Name: args[0]})
		if err != nil {
			if errors.Is(err, types.ErrorNotFound) {
				return fmt.Errorf("no organization named '%s' was found", args[0])
			}
			return fmt.Errorf("failed to retrieve organization: %w", err)
		}
		org := output.Data

		switch viper.GetString("output") {
		case "json":
			o, err := json.MarshalIndent(org, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal organization: %s", err)
			}
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			updatedAt := "-"
			if org.UpdatedAt != nil {
				updatedAt = org.UpdatedAt.Local().Format("2006-01-02 15:04:05")
			}
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"field", "value"},
				Rows: func(table *cli.Table) error {
					table.Append([]string{"id", org.OrganizationId})
					table.Append([]string{"name", org.OrganizationName})
					table.Append([]string{"partition", org.PartitionKey})
					table.Append([]string{"admin", org.AdminEmail})
					table.Append([]string{"created at", org.CreatedAt.Local().Format("2006-01-02 15:04:05")})
					table.Append([]string{"updated at", updatedAt})
					return nil
				},
			})
			table.Render().Print()
		}
		return nil
	},
}
