package register

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
		Name:         "org",
		DefaultValue: "",
		Usage:        "the display name of the organization to register",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "description",
		DefaultValue: "",
		Usage:        "an optional description of the organization",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "email",
		DefaultValue: "",
		Usage:        "the email address for the organization's admin account",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "password",
		DefaultValue: "",
		Usage:        "the password for the organization's admin account",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
	config.GetControllerUrlFlags().AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "register",
	Short: "Registers a new organization with its admin account",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
		config.GetControllerUrlFlags().BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName := viper.GetString("org")
		if orgName == "" {
			input, err := cli.PromptString("Organization name")
			if err != nil {
				return err
			}
			orgName = input
		}
		if err := validate.OrgName(orgName); err != nil {
			return fmt.Errorf("organization name is invalid: %w", err)
		}

		email := viper.GetString("email")
		if email == "" {
			input, err := cli.PromptString("Admin email")
			if err != nil {
				return err
			}
			email = input
		}
		if err := validate.Email(email); err != nil {
			return fmt.Errorf("email address is invalid: %w", err)
		}

		password := viper.GetString("password")
		if password == "" {
			input, err := cli.PromptPassword("Admin password")
			if err != nil {
				return err
			}
			password = input
		} else {
			fmt.Println(
				"⚠️ !!! WARNING !!! ⚠️\n" +
					"Using a password directly on the command line isn't generally recommended\n" +
					"since anyone can see it using the `history` command. Run `history -c` to\n" +
					"remove this from this shell if this is a shared shell")
		}
		if err := validate.Password(password); err != nil {
			return fmt.Errorf("password is invalid: %w", err)
		}

		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: config.GetControllerUrl(),
			Id:            "tenantry/register",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		output, err := client.CreateOrgV1(controller.CreateOrgV1Input{
			Name:        orgName,
			Description: viper.GetString("description"),
			Email:       email,
			Password:    password,
		})
		if err != nil {
			if errors.Is(err, types.ErrorOrgExists) {
				return fmt.Errorf("an organization with that name already exists")
			} else if errors.Is(err, types.ErrorEmailExists) {
				return fmt.Errorf("an admin with that email address already exists")
			}
			return fmt.Errorf("failed to register organization: %w", err)
		}

		fmt.Printf(
			"Organization[%s] is registered with partition[%s]\nLogin with `tenantry login --email %s`\n",
			output.Data.OrganizationName,
			output.Data.PartitionKey,
			output.Data.AdminEmail,
		)
		return nil
	},
}
