package app

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string `validate:"omitempty,oneof=table wide json yaml"`

	// Config file
	ConfigFile string

	// Catalog configuration
	DataFile    string `validate:"required"`
	ClearScreen bool

	// Logging configuration
	LogLevel  string
	LogFormat string `validate:"omitempty,oneof=auto json console pretty"`
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. CINEMAP_* environment variables
//  3. .env files
//  4. Config file (~/.cinemap.yaml or ./.cinemap.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile loads configuration like LoadConfig, reading configFile
// instead of searching the standard locations when it is not empty.
func LoadConfigFile(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_file", constants.DefaultDataFile)
	v.SetDefault("clear_screen", stdoutIsTerminal())
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:  strings.ToLower(v.GetString("format")),

		ConfigFile: v.ConfigFileUsed(),

		DataFile:    v.GetString("data_file"),
		ClearScreen: v.GetBool("clear_screen"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", v.GetString("log_format")),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", v.GetString("log_output")),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration and returns a ConfigError naming the
// first offending field.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errors.NewConfigError("config", err.Error(), err)
	}

	fe := validationErrs[0]
	msg := fe.Field() + ": failed on " + fe.Tag()
	if fe.Param() != "" {
		msg += " (" + fe.Param() + ")"
	}
	return errors.NewConfigError("config", msg, err)
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so that flag values take
// precedence over the config file and environment.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor, noClear bool, format, logLevel, dataFile string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if noClear {
		c.ClearScreen = false
	}
	if format != "" {
		c.Format = strings.ToLower(format)
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if dataFile != "" {
		c.DataFile = dataFile
	}
}

// readConfigFile reads the explicit config file, or searches the standard
// locations. Only a missing file in the search path is tolerated.
func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.NewConfigError("config", "failed to read "+configFile, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(constants.ConfigFileName)

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return errors.NewConfigError("config", "failed to read "+v.ConfigFileUsed(), err)
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local does not override values already set by .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
