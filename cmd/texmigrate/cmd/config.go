package cmd

import (
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Source      string `json:"source" yaml:"source"`           // Java texture tree root
	Destination string `json:"destination" yaml:"destination"` // Bedrock pack texture tree root
	LogLevel    string `json:"loglevel" yaml:"loglevel"`       // Default log level
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// setMigrateParams fills flags the user left unset from the configuration.
func (c *CLIConfig) setMigrateParams(flags *flagsT) {
	if flags.migrate.source == "" {
		flags.migrate.source = c.Source
	}
	if flags.migrate.destination == "" {
		flags.migrate.destination = c.Destination
	}
	if c.LogLevel != "" && !rootCmd.PersistentFlags().Changed("log-level") {
		flags.root.logLevel = c.LogLevel
	}
}
