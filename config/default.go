// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/cinemcp/cinemcp/color"
	"github.com/cinemcp/cinemcp/constant"
	"github.com/cinemcp/cinemcp/key"
	"github.com/cinemcp/cinemcp/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
	// EnvName overrides the prefixed environment variable name.
	EnvName string
	// Secret fields are masked when displayed.
	Secret bool
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	if f.EnvName != "" {
		return f.EnvName
	}
	return f.prefixedEnv()
}

func (f *Field) prefixedEnv() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Current returns the field's effective value, masked for secrets.
func (f *Field) Current() any {
	value := viper.Get(f.Key)
	if !f.Secret {
		return value
	}

	if s, ok := value.(string); ok && s != "" {
		return Mask(s)
	}
	return value
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       f.Current(),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.Env(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Mask hides all but the last four characters of a secret.
func Mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(f Field) {
		if _, exists := Default[f.Key]; exists {
			panic("Duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}

	register(Field{Key: key.OMDbAPIKey, Value: "", EnvName: "OMDB_API_KEY", Secret: true,
		Description: "OMDb API key (http://www.omdbapi.com/apikey.aspx)\nThe public \"demo\" key is used when unset"})
	register(Field{Key: key.OMDbBaseURL, Value: "http://www.omdbapi.com/",
		Description: "OMDb API endpoint"})
	register(Field{Key: key.TMDbAPIKey, Value: "", EnvName: "TMDB_API_KEY", Secret: true,
		Description: "TMDb API key (https://www.themoviedb.org/settings/api)\nTMDb search, recommendations and trending are disabled when unset"})
	register(Field{Key: key.TMDbBaseURL, Value: "https://api.themoviedb.org/3",
		Description: "TMDb API endpoint"})
	register(Field{Key: key.TMDbLanguage, Value: "en-US",
		Description: "Language requested from TMDb"})
	register(Field{Key: key.IconsVariant, Value: "emoji",
		Description: "Icons variant used in tool output.\nAvailable options are: emoji, plain"})
	register(Field{Key: key.LogsWrite, Value: false,
		Description: "Write logs to a daily file instead of stderr"})
	register(Field{Key: key.LogsLevel, Value: "warn",
		Description: "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"})
	register(Field{Key: key.LogsJson, Value: false,
		Description: "Use json format for logs"})
	register(Field{Key: key.CliColored, Value: true,
		Description: "Enable colored CLI output"})
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl .Current }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ typename .Value }}`))
