package org

import (
	"errors"
	"fmt"
	"tenantry/internal/cli"
	"tenantry/internal/config"
	"tenantry/internal/types"
	"tenantry/internal/validate"
	"tenantry/pkg/controller"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "new-name",
		DefaultValue: "",
		Usage:        "the new display name for the organization",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
	config.GetControllerUrlFlags().AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "org <name>",
	Aliases: []string{"organization", "o"},
	Short:   "Renames an organization, migrating its data partition to the new name",
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
		config.GetControllerUrlFlags().BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		newName := viper.GetString("new-name")
		if newName == "" {
			input, err := cli.PromptString("New organization name")
			if err != nil {
				return err
			}
			newName = input
		}
		if err := validate.OrgName(newName); err != nil {
			return fmt.Errorf("new organization name is invalid: %w", err)
		}

		sessionToken, _, err := controller.GetSessionToken()
		if err != nil {
			return fmt.Errorf("failed to retrieve session, run `tenantry login` first: %s", err)
		}
		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: config.GetControllerUrl(),
			BearerAuth: &controller.NewClientBearerAuthOpts{
				Token: sessionToken,
			},
			Id: "tenantry/update-org",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		output, err := client.UpdateOrgV1(controller.UpdateOrgV1Input{
			Name:    args[0],
			NewName: newName,
		})
		if err != nil {
			if errors.Is(err, types.ErrorAuthRequired) {
				controller.DeleteSessionToken()
				return fmt.Errorf("your session has expired, run `tenantry login` to start a new one")
			} else if errors.Is(err, types.ErrorInsufficientPermissions) {
				return fmt.Errorf("you are not an admin of org[%s]", args[0])
			} else if errors.Is(err, types.ErrorNotFound) {
				return fmt.Errorf("no organization named '%s' was found", args[0])
			} else if errors.Is(err, types.ErrorOrgExists) {
				return fmt.Errorf("an organization named '%s' already exists", newName)
			}
			return fmt.Errorf("failed to update organization: %w", err)
		}

		fmt.Printf(
			"Organization[%s] is now known as org[%s] with partition[%s]\n",
			args[0],
			output.Data.OrganizationName,
			output.Data.PartitionKey,
		)
		return nil
	},
}
