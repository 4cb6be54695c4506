package controller

import (
	"fmt"
	"tenantry/internal/cli"
	"tenantry/internal/common"
	"tenantry/internal/config"
	"tenantry/internal/controller"
	"tenantry/internal/persistence"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = append(
	cli.Flags{
		{
			Name:         "listen-addr",
			DefaultValue: "0.0.0.0:54321",
			Usage:        "specifies the listen address of the server",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         "jwt-secret",
			DefaultValue: "super_secret_token_signing_key",
			Usage:        "specifies the secret used to sign bearer tokens, change this to invalidate all sessions",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         "jwt-issuer",
			DefaultValue: "tenantry/controller",
			Usage:        "specifies the issuer claim of signed bearer tokens",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         "token-ttl",
			DefaultValue: 30 * time.Minute,
			Usage:        "specifies how long an issued bearer token stays valid",
			Type:         cli.FlagTypeDuration,
		},
	},
	config.GetMongoFlags()...,
)

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "controller",
	Aliases: []string{"c"},
	Short:   "Starts the controller component",
	Long:    "Starts the controller component which serves the organization management API that clients connect to",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.Debugf("starting logging engine...")
		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)
		logrus.Debugf("started logging engine")

		logrus.Infof("establishing connection to database...")
		mongoHosts := viper.GetStringSlice(config.MongoHosts)
		if len(mongoHosts) == 0 {
			mongoHosts = []string{fmt.Sprintf(
				"%s:%s",
				viper.GetString(config.MongoHost),
				viper.GetString(config.MongoPort),
			)}
		}
		databaseConnection := persistence.NewMongo(
			persistence.MongoConnectionOpts{
				AppName: "tenantry/controller",
				Hosts:   mongoHosts,
			},
			persistence.MongoAuthOpts{
				Username: viper.GetString(config.MongoUsername),
				Password: viper.GetString(config.MongoPassword),
			},
			&serviceLogs,
		)
		if err := databaseConnection.Init(); err != nil {
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}
		defer databaseConnection.Shutdown()
		logrus.Debugf("established connection to database")

		logrus.Infof("initialising application...")
		controllerHandler, err := controller.GetHttpApplication(controller.HttpApplicationOpts{
			DatabaseConnection: databaseConnection,
			DatabaseName:       viper.GetString(config.MongoDatabase),
			JwtIssuer:          viper.GetString("jwt-issuer"),
			JwtSecret:          viper.GetString("jwt-secret"),
			TokenTtl:           viper.GetDuration("token-ttl"),
			ReadinessChecks: []func() error{
				func() error {
					if err := databaseConnection.GetStatus().GetError(); err != nil {
						return fmt.Errorf("database connection is pending restoration: %s", err)
					}
					return nil
				},
			},
			LivenessChecks: []func() error{
				func() error {
					status := databaseConnection.GetStatus()
					if status.GetError() != nil && status.GetLastUpdatedAt().Before(time.Now().Add(-30*time.Second)) {
						return fmt.Errorf("database connection is invalid")
					}
					return nil
				},
			},
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to initialise application: %w", err)
		}
		logrus.Debugf("initialised application")

		logrus.Infof("initialising application server...")
		httpServerDone := make(chan common.Done)
		listenAddress := viper.GetString("listen-addr")
		server, err := common.NewHttpServer(common.NewHttpServerOpts{
			Addr:        listenAddress,
			Done:        httpServerDone,
			Handler:     controllerHandler,
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to create new http server: %w", err)
		}
		logrus.Debugf("initialised server")
		logrus.Infof("starting server on addr[%s]...", listenAddress)
		if err := server.Start(); err != nil {
			return fmt.Errorf("failed to start http server: %w", err)
		}
		return nil
	},
}
