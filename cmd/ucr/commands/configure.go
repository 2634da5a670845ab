package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// FileConfig is the persisted CLI configuration.
type FileConfig struct {
	APIKey  string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
	Strict  *bool  `json:"strict,omitempty"   yaml:"strict,omitempty"`
}

// ConfigDir returns the XDG config directory of the CLI.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName)
}

// ConfigFilePath returns the config file in use: the --config flag, the
// file viper loaded, or the default under ConfigDir.
func ConfigFilePath() string {
	if path := viper.GetString(KeyConfig); path != "" {
		return path
	}

	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}

	return filepath.Join(ConfigDir(), constants.ConfigFileName)
}

// loadFileConfig reads the config file; a missing file is an empty config.
func loadFileConfig(path string) (*FileConfig, error) {
	// path comes from the --config flag or the XDG config dir
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &FileConfig{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config FileConfig

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

func saveFileConfig(path string, config *FileConfig) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NewConfigureCommand creates the configure command group.
func NewConfigureCommand() *cobra.Command {
	var apiKey, baseURL string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store the API key and defaults",
		Long: `Store the api.data.gov API key and defaults in the config file.

Without --api-key the key is read from the terminal without echo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				key, err := promptAPIKey(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				apiKey = key
			}

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			path := ConfigFilePath()

			config, err := loadFileConfig(path)
			if err != nil {
				return err
			}

			config.APIKey = apiKey
			if baseURL != "" {
				config.BaseURL = baseURL
			}

			err = saveFileConfig(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key to store (prompted when omitted)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL to store")

	cmd.AddCommand(newConfigureShowCommand())
	cmd.AddCommand(newConfigureSetCommand())

	return cmd
}

// promptAPIKey reads the key without echo from a terminal, or as a line
// from any other reader.
func promptAPIKey(in io.Reader, prompt io.Writer) (string, error) {
	_, _ = fmt.Fprint(prompt, "API key: ")

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		keyBytes, err := term.ReadPassword(int(file.Fd()))

		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return string(keyBytes), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func newConfigureShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored configuration",
		Long:  "Display the stored configuration with the API key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ConfigFilePath()

			config, err := loadFileConfig(path)
			if err != nil {
				return err
			}

			strict := constants.NotAvailable
			if config.Strict != nil {
				strict = strconv.FormatBool(*config.Strict)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")
			_ = table.Append("Config File", path)
			_ = table.Append("API Key", maskSecret(config.APIKey))
			_ = table.Append("Base URL", valueOrNA(config.BaseURL))
			_ = table.Append("Output", valueOrNA(config.Output))
			_ = table.Append("Strict", strict)

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigureSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of api_key, base_url, output or strict in the config file",
		Args:  cobra.ExactArgs(2), //nolint:mnd // KEY and VALUE
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ConfigFilePath()

			config, err := loadFileConfig(path)
			if err != nil {
				return err
			}

			err = setFileConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveFileConfig(path, config)
			if err != nil {
				return err
			}

			value := args[1]
			if args[0] == KeyAPIKey {
				value = maskSecret(value)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], value)

			return nil
		},
	}
}

func setFileConfigValue(config *FileConfig, key, value string) error {
	switch key {
	case KeyAPIKey:
		if strings.TrimSpace(value) == "" {
			return constants.ErrEmptyAPIKey
		}

		config.APIKey = strings.TrimSpace(value)
	case KeyBaseURL:
		config.BaseURL = value
	case KeyOutput:
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML, constants.FormatMarkdown:
			config.Output = value
		default:
			return &unsupportedFormatError{format: value}
		}
	case KeyStrict:
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for strict: %w", err)
		}

		config.Strict = &strict
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func maskSecret(secret string) string {
	if secret == "" {
		return constants.NotAvailable
	}

	return constants.MaskedSecret
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
