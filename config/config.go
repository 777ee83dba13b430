// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/cinemcp/cinemcp/constant"
	"github.com/cinemcp/cinemcp/key"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state: defaults and environment bindings.
// There is no configuration file; everything comes from the environment or command-line flags.
func Setup() error {
	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)

	for _, name := range EnvExposed {
		field := Default[name]
		if field.EnvName != "" {
			// Bare names take precedence over the prefixed form.
			if err := viper.BindEnv(name, field.EnvName, field.prefixedEnv()); err != nil {
				return err
			}
			continue
		}

		if err := viper.BindEnv(name); err != nil {
			return err
		}
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	return nil
}

// Upstream is the connection settings of a single metadata provider.
type Upstream struct {
	APIKey   string
	BaseURL  string
	Language string
}

// Settings is the immutable configuration snapshot handed to the upstream clients.
type Settings struct {
	OMDb Upstream
	TMDb Upstream
}

// Load reads the current configuration into a Settings value.
// It is called once at process start; nothing downstream reads viper directly.
func Load() Settings {
	return Settings{
		OMDb: Upstream{
			APIKey:  strings.TrimSpace(viper.GetString(key.OMDbAPIKey)),
			BaseURL: viper.GetString(key.OMDbBaseURL),
		},
		TMDb: Upstream{
			APIKey:   strings.TrimSpace(viper.GetString(key.TMDbAPIKey)),
			BaseURL:  viper.GetString(key.TMDbBaseURL),
			Language: viper.GetString(key.TMDbLanguage),
		},
	}
}
