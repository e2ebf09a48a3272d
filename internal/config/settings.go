package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/moasq/consolemenu/internal/terminal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CONSOLEMENU_SYMBOL.
const EnvPrefix = "consolemenu"

// Settings are CLI defaults read from $HOME/.consolemenu.yaml, ./.consolemenu.yaml
// or an explicit file, with environment overrides.
type Settings struct {
	v    *viper.Viper
	file string
}

// LoadSettings reads the settings file. An explicit cfgFile must exist; the
// default locations are optional.
func LoadSettings(cfgFile string) (*Settings, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".consolemenu")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}
	return &Settings{v: v, file: v.ConfigFileUsed()}, nil
}

// File returns the settings file that was read, or "".
func (s *Settings) File() string {
	return s.file
}

// BindFlags sets every flag not given on the command line from the settings,
// when they have a value for it. Hyphens are dropped from flag names, so
// --log-file reads the "logfile" key.
func (s *Settings) BindFlags(flags *pflag.FlagSet) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || f.Name == "help" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "")
		if !s.v.IsSet(key) {
			return
		}
		value := fmt.Sprintf("%v", s.v.Get(key))
		// pflag drops the error chain, so colors are checked here first.
		if _, ok := f.Value.(*terminal.Color); ok {
			if _, err := terminal.ParseColor(value); err != nil {
				errs = append(errs, fmt.Errorf("setting %q: %w", key, err))
				return
			}
		}
		if err := flags.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Errorf("setting %q: %w", key, err))
		}
	})
	return errors.Join(errs...)
}
