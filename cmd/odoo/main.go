package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fivetwenty-io/odoo-client/cmd/odoo/commands"
	"github.com/fivetwenty-io/odoo-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "odoo",
	Short: "Odoo external API CLI",
	Long: `A command-line interface for the Odoo external (XML-RPC) API.

Connection settings come from flags, ODOO_* environment variables or
$HOME/.odoo/config.yml. Arguments are passed as JSON, for example:

  odoo search res.partner '[[["is_company","=",true]]]'
  odoo search-read res.partner '[[]]' --kwargs '{"fields":["name"],"limit":5}'`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.odoo/config.yml)")
	rootCmd.PersistentFlags().String("base-url", "", "Odoo base URL, e.g. http://localhost:8069")
	rootCmd.PersistentFlags().String("db", "", "database name")
	rootCmd.PersistentFlags().String("uid", "", "user id")
	rootCmd.PersistentFlags().String("password", "", "password or API key")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().Bool("debug", false, "log every call")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("db_name", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("api_uid", rootCmd.PersistentFlags().Lookup("uid"))
	_ = viper.BindPFlag("api_password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewCallCommand())
	rootCmd.AddCommand(commands.NewOperationCommands()...)
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.odoo/config.yml
		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// ODOO_BASE_URL, ODOO_DB_NAME, ODOO_API_UID, ODOO_API_PASSWORD
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()
	_ = viper.BindEnv("log_level", constants.EnvPrefix+"_"+constants.EnvLogLevel, constants.EnvLogLevel)
	viper.SetDefault("log_level", constants.DefaultLogLevel)

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
