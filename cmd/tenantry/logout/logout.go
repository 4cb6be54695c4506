package logout

import (
	"fmt"
	"tenantry/pkg/controller"

	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "logout",
	Short: "Ends the current admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := controller.GetSessionToken(); err != nil {
			fmt.Println("You are not logged in")
			return nil
		}
		if err := controller.DeleteSessionToken(); err != nil {
			return fmt.Errorf("failed to remove session: %s", err)
		}
		fmt.Println("You have been logged out")
		return nil
	},
}
