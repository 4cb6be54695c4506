package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var Global global

type global struct {
	ControllerUrl string  `json:"controllerUrl" yaml:"controllerUrl"`
	SourcePath    *string `json:"sourcePath" yaml:"sourcePath"`
}

func (g *global) IsGlobalConfigExists() bool {
	return g.SourcePath != nil
}

func LoadGlobal(from string) error {
	logrus.Debugf("loading global configuration from path[%s]...", from)

	fi, err := os.Stat(from)
	if errors.Is(err, os.ErrNotExist) {
		logrus.Debugf("config file not found at path[%s], defaults will be used", from)
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check configuration file: %s", err)
	} else if fi.IsDir() {
		logrus.Warnf("config file path[%s] led to a directory, defaults will be used", from)
		return nil
	}

	configData, err := os.ReadFile(from)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %s", err)
	}
	if err := yaml.Unmarshal(configData, &Global); err != nil {
		return fmt.Errorf("failed to parse configuration file: %s", err)
	}
	Global.SourcePath = &from

	return nil
}
