package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/odoo-client/internal/constants"
	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const passwordKey = "api_password"

// Config represents the CLI configuration.
type Config struct {
	BaseURL  string `json:"base_url"               yaml:"base_url,omitempty"`
	DBName   string `json:"db_name"                yaml:"db_name,omitempty"`
	UID      string `json:"api_uid"                yaml:"api_uid,omitempty"`
	Password string `json:"api_password,omitempty" yaml:"api_password,omitempty"`
	Output   string `json:"output"                 yaml:"output,omitempty"`
	LogLevel string `json:"log_level"              yaml:"log_level,omitempty"`
}

// configKeys lists the keys accepted by "config set" and "config unset".
var configKeys = []string{"base_url", "db_name", "api_uid", passwordKey, "output", "log_level"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the connection settings stored in $HOME/.odoo/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the password masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Password != "" {
				config.Password = constants.MaskedSecret
			}

			switch output := viper.GetString("output"); output {
			case constants.FormatJSON:
				return StandardJSONRenderer(cmd.OutOrStdout(), config)
			case constants.FormatYAML:
				return StandardYAMLRenderer(cmd.OutOrStdout(), config)
			default:
				return displayConfigTable(cmd.OutOrStdout(), config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY [VALUE]",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Valid keys are base_url, db_name, api_uid,
api_password, output and log_level. When api_password is set without a value
it is read from the terminal without echo.`,
		Args: cobra.RangeArgs(1, constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			var value string

			switch {
			case len(args) == constants.MinimumArgumentCount:
				value = args[1]
			case key == passwordKey:
				password, err := promptPassword(cmd.ErrOrStderr(), "Password: ")
				if err != nil {
					return err
				}

				value = password
			default:
				return fmt.Errorf("a value is required for %s", key)
			}

			err := updateConfigFile(key, value)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			err := updateConfigFile(key, "")
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		BaseURL:  strings.TrimSpace(viper.GetString("base_url")),
		DBName:   strings.TrimSpace(viper.GetString("db_name")),
		UID:      strings.TrimSpace(viper.GetString("api_uid")),
		Password: viper.GetString(passwordKey),
		Output:   viper.GetString("output"),
		LogLevel: viper.GetString("log_level"),
	}
}

// Validate reports every missing connection setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.BaseURL == "" {
		result = multierror.Append(result, fmt.Errorf("base_url (%s): %w", constants.EnvBaseURL, constants.ErrMissingBaseURL))
	}

	if c.DBName == "" {
		result = multierror.Append(result, fmt.Errorf("db_name (%s): %w", constants.EnvDBName, constants.ErrMissingDBName))
	}

	if c.UID == "" {
		result = multierror.Append(result, fmt.Errorf("api_uid (%s): %w", constants.EnvUID, constants.ErrMissingUID))
	}

	if c.Password == "" {
		result = multierror.Append(result, fmt.Errorf("api_password (%s): %w", constants.EnvPassword, constants.ErrMissingPassword))
	}

	return result.ErrorOrNil()
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "base_url":
		config.BaseURL = strings.TrimRight(value, "/")
	case "db_name":
		config.DBName = value
	case "api_uid":
		config.UID = value
	case passwordKey:
		config.Password = value
	case "output":
		switch value {
		case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, value)
		}

		config.Output = value
	case "log_level":
		config.LogLevel = strings.ToUpper(value)
	default:
		return fmt.Errorf("%w: %s (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys, ", "))
	}

	return nil
}

// configFilePath returns the file in use, or $HOME/.odoo/config.yml when none was read.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, constants.ConfigDirName)

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// readConfigFile loads only what is stored in the config file, so values from
// flags, environment or defaults are never written back.
func readConfigFile(configFile string) (*Config, error) {
	config := &Config{}

	// configFile comes from the --config flag or the user's home directory
	// #nosec G304
	data, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// updateConfigFile sets a single key in the config file. An empty value removes it.
func updateConfigFile(key, value string) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	config, err := readConfigFile(configFile)
	if err != nil {
		return err
	}

	err = setConfigValue(config, key, value)
	if err != nil {
		return err
	}

	err = saveConfigStruct(configFile, config)
	if err != nil {
		return err
	}

	viper.Set(key, configValue(config, key))

	return nil
}

func saveConfigStruct(configFile string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func configValue(config *Config, key string) string {
	switch key {
	case "base_url":
		return config.BaseURL
	case "db_name":
		return config.DBName
	case "api_uid":
		return config.UID
	case passwordKey:
		return config.Password
	case "output":
		return config.Output
	case "log_level":
		return config.LogLevel
	default:
		return ""
	}
}

func displayConfigTable(w io.Writer, config *Config) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("Base URL", valueOrNone(config.BaseURL))
	_ = table.Append("Database", valueOrNone(config.DBName))
	_ = table.Append("User ID", valueOrNone(config.UID))
	_ = table.Append("Password", valueOrNone(config.Password))
	_ = table.Append("Output", valueOrNone(config.Output))
	_ = table.Append("Log Level", valueOrNone(config.LogLevel))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func valueOrNone(value string) string {
	if value == "" {
		return constants.None
	}

	return value
}
