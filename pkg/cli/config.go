package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bytelit/pkg/utils"
)

const envPrefix = "BYTELIT"

// Config holds the settings of one run, merged from flags, BYTELIT_*
// environment variables and an optional .bytelit.yaml.
type Config struct {
	Output      string
	StrictWords bool
	Listing     bool
	LogLevel    string
	LogFormat   string
}

func addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", utils.DefaultOutput, "output binary file path")
	f.Bool("strict-words", false, "reject 8-digit tokens with digits other than 0 and 1")
	f.BoolP("listing", "l", false, "print a token listing after assembling")
	f.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	f.String("log-format", "text", "log format: text or json")
	f.String("config", "", "config file (default .bytelit.yaml in the working directory)")
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".bytelit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return Config{
		Output:      v.GetString("output"),
		StrictWords: v.GetBool("strict-words"),
		Listing:     v.GetBool("listing"),
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
	}, nil
}
