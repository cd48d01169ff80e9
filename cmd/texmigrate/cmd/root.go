package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "texmigrate",
	Short: "texmigrate moves mod textures from Java to Bedrock layouts",
	Long: `texmigrate copies and renames PNG textures from an IndustrialCraft 2
Java edition texture tree into a Bedrock resource pack texture tree.

A curated mapping table is honored first, with optional placeholder synthesis
for textures the source archive does not provide; a bulk mirroring pass then
picks up everything else. Re-running is always safe: an existing destination
file is never overwritten.`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	addLogLevelFlag(rootCmd)
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("source", ".")
	viper.SetDefault("destination", "resource_pack/textures")
	if os.Getenv("TEXMIGRATE_CONFIG") != "" {
		// Use config file from the environment.
		viper.SetConfigFile(os.Getenv("TEXMIGRATE_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.texmigrate")
		viper.SetConfigName("texmigrate")
	}

	viper.SetEnvPrefix("texmigrate")
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setMigrateParams(&texFlags)
}
