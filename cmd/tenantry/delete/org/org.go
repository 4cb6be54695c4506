package org

import (
	"errors"
	"fmt"
	"tenantry/internal/cli"
	"tenantry/internal/config"
	"tenantry/internal/types"
	"tenantry/pkg/controller"

	"github.com/spf13/cobra"
)

func init() {
	config.GetControllerUrlFlags().AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "org <name>",
	Aliases: []string{"organization", "o"},
	Short:   "Deletes an organization along with its data partition and admin account",
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		config.GetControllerUrlFlags().BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionToken, _, err := controller.GetSessionToken()
		if err != nil {
			return fmt.Errorf("failed to retrieve session, run `tenantry login` first: %s", err)
		}

		if err := cli.ShowConfirmation(cli.ShowConfirmationOpts{
			Title: "Delete organization?",
			Message: fmt.Sprintf(
				"This removes org[%s] together with its data partition and its "+
					"admin account. There is no way to recover the data afterwards.",
				args[0],
			),
			ConfirmLabel: "Delete",
		}); err != nil {
			if errors.Is(err, cli.ErrorUserCancelled) {
				fmt.Println("Nothing was deleted")
				return nil
			}
			return err
		}

		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: config.GetControllerUrl(),
			BearerAuth: &controller.NewClientBearerAuthOpts{
				Token: sessionToken,
			},
			Id: "tenantry/delete-org",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		output, err := client.DeleteOrgV1(controller.DeleteOrgV1Input{Name: args[0]})
		if err != nil {
			if errors.Is(err, types.ErrorAuthRequired) {
				controller.DeleteSessionToken()
				return fmt.Errorf("your session has expired, run `tenantry login` to start a new one")
			} else if errors.Is(err, types.ErrorInsufficientPermissions) {
				return fmt.Errorf("you are not an admin of org[%s]", args[0])
			} else if errors.Is(err, types.ErrorNotFound) {
				return fmt.Errorf("no organization named '%s' was found", args[0])
			}
			return fmt.Errorf("failed to delete organization: %w", err)
		}

		fmt.Printf("%s (org id was %s)\n", output.Data.Message, output.Data.OrganizationId)
		return nil
	},
}
