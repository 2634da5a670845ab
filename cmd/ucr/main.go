package main

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/ucr-client/cmd/ucr/commands"
	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ucr",
	Short: "FBI Uniform Crime Reporting API CLI",
	Long: `A command-line interface for the FBI Uniform Crime Reporting (UCR) API.

It covers agencies, states, regions, police employment, victim and offender
demographics, offense counts, arson, participation and crime estimates. An
api.data.gov key is required; store one with 'ucr configure' or set UCR_API_KEY.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/ucr/config.yml)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "api.data.gov API key")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (default "+constants.DefaultBaseURL+")")
	rootCmd.PersistentFlags().Bool("strict", true, "check argument counts before sending a request")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml, markdown)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Duration("timeout", constants.DefaultHTTPTimeout, "timeout for each request")

	// Bind flags to viper
	_ = viper.BindPFlag(commands.KeyConfig, rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(commands.KeyAPIKey, rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag(commands.KeyBaseURL, rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag(commands.KeyStrict, rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag(commands.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag(commands.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(commands.KeyTimeout, rootCmd.PersistentFlags().Lookup("timeout"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigureCommand())
	rootCmd.AddCommand(commands.NewCallCommand())
	rootCmd.AddCommand(commands.NewMethodsCommand())
	rootCmd.AddCommand(commands.NewRegionsTableCommand())
	rootCmd.AddCommand(commands.NewResourceCommands()...)
}

func initConfig() {
	cfgFile := viper.GetString(commands.KeyConfig)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in $XDG_CONFIG_HOME/ucr/config.yml
		viper.AddConfigPath(commands.ConfigDir())
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match, e.g. UCR_API_KEY
	viper.SetEnvPrefix(constants.AppName)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(commands.KeyVerbose) {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
