package login

import (
	"errors"
	"fmt"
	"tenantry/internal/cli"
	"tenantry/internal/config"
	"tenantry/internal/types"
	"tenantry/internal/validate"
	"tenantry/pkg/controller"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "email",
		DefaultValue: "",
		Usage:        "the email address of the admin account to login as",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "password",
		DefaultValue: "",
		Usage:        "the password of the admin account, prefer the interactive prompt over this",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
	config.GetControllerUrlFlags().AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "login",
	Short: "Starts an admin session with the controller",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
		config.GetControllerUrlFlags().BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, sessionFilePath, err := controller.GetSessionToken(); err == nil {
			logrus.Debugf("found existing session at path[%s]", sessionFilePath)
			return fmt.Errorf("you are already logged in, run `tenantry logout` first to start a new session")
		}

		email := viper.GetString("email")
		if email == "" {
			input, err := cli.PromptString("Email")
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
			input, err := cli.PromptPassword("Password")
			if err != nil {
				return err
			}
			password = input
		}

		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: config.GetControllerUrl(),
			Id:            "tenantry/login",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		output, err := client.CreateSessionV1(controller.CreateSessionV1Input{
			Email:    email,
			Password: password,
		})
		if err != nil {
			if errors.Is(err, types.ErrorInvalidCredentials) {
				return fmt.Errorf("the email address or password is incorrect")
			} else if errors.Is(err, types.ErrorAccountSuspended) {
				return fmt.Errorf("this account has been suspended, contact your administrator")
			}
			return fmt.Errorf("failed to login: %w", err)
		}

		sessionFilePath, err := controller.SaveSessionToken(output.Data.AccessToken)
		if err != nil {
			return fmt.Errorf("failed to save session: %s", err)
		}
		logrus.Debugf("saved session to path[%s]", sessionFilePath)
		fmt.Printf("Welcome to org[%s], you are logged in as %s\n", output.Data.OrganizationName, output.Data.AdminEmail)
		return nil
	},
}
