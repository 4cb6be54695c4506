package config

import (
	"tenantry/internal/cli"

	"github.com/spf13/viper"
)

const (
	ControllerUrl        = "controller-url"
	DefaultControllerUrl = "http://localhost:54321"
)

func GetControllerUrlFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         ControllerUrl,
			Short:        'u',
			DefaultValue: "",
			Usage:        "Defines the url where the controller service is accessible at",
			Type:         cli.FlagTypeString,
		},
	}
}

// GetControllerUrl resolves the controller url from the flag, then the
// global configuration file, then the built-in default
func GetControllerUrl() string {
	if url := viper.GetString(ControllerUrl); url != "" {
		return url
	}
	if Global.ControllerUrl != "" {
		return Global.ControllerUrl
	}
	return DefaultControllerUrl
}
