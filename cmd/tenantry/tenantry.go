package tenantry

import (
	"fmt"
	"os"
	"strings"
	"tenantry/cmd/tenantry/delete"
	"tenantry/cmd/tenantry/get"
	"tenantry/cmd/tenantry/login"
	"tenantry/cmd/tenantry/logout"
	"tenantry/cmd/tenantry/register"
	"tenantry/cmd/tenantry/start"
	"tenantry/cmd/tenantry/update"
	"tenantry/internal/cli"
	"tenantry/internal/common"
	"tenantry/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var availableOutputs = []string{
	"text",
	"json",
}

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "config",
		Short:        'C',
		DefaultValue: "~/.tenantry/config",
		Usage:        "Defines the location of the global configuration used",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "output",
		Short:        'o',
		DefaultValue: "text",
		Usage:        fmt.Sprintf("Sets the output format where applicable (one of [%s])", strings.Join(availableOutputs, ", ")),
		Type:         cli.FlagTypeString,
	},
}

func init() {
	cobra.AddTemplateFunc("prependText", func() string {
		return cli.Logo + "\n"
	})
	Command.SetHelpTemplate(`{{ prependText }}` + Command.HelpTemplate())
	Command.SetVersionTemplate(cli.Logo + "\n" + `{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}`)

	Command.AddCommand(delete.Command)
	Command.AddCommand(get.Command)
	Command.AddCommand(login.Command)
	Command.AddCommand(logout.Command)
	Command.AddCommand(register.Command)
	Command.AddCommand(start.Command)
	Command.AddCommand(update.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		cli.InitLogging(viper.GetString("log-level"))
		configPath := viper.GetString("config")
		if strings.HasPrefix(configPath, "~/") {
			if userHomeDir, err := os.UserHomeDir(); err == nil {
				configPath = userHomeDir + configPath[1:]
			}
		}
		logrus.Debugf("using configuration at path[%s]", configPath)
		if err := config.LoadGlobal(configPath); err != nil {
			logrus.Warnf("failed to load global configuration: %s", err)
		}
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:     "tenantry",
	Short:   "Multi-tenant organization management for teams that need isolated data partitions",
	Version: config.GetVersion(),
	Long:    "Multi-tenant organization management for teams that need isolated data partitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
