// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/huewheel/huewheel/color"
	"github.com/huewheel/huewheel/constant"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Huewheel + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes the current and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

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

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.WheelRadius, 180, "Radius of the rendered color wheel, in pixels")
	register(key.WheelInnerPercent, 25, "Radius of the inner grayscale disk as a percentage of the wheel radius.\nFrom 0 (no disk) to 99")
	register(key.HarmonyDefaultRule, "complementary", "Harmony rule preselected in prompts.\nAvailable options are: complementary, triadic, tetradic, analogous, split-complementary")
	register(key.RulesEnable, true, "Load custom harmony rules written in Lua.\nType \"huewheel where --rules\" to show their location")
	register(key.HistorySaveOnGenerate, true, "Remember generated palettes.\nType \"huewheel history\" to list them")
	register(key.HistoryLimit, 50, "How many palettes the history keeps. The oldest are dropped first")
	register(key.ExportDir, "", "Directory exported palettes and schemes are written to.\nThe working directory is used when empty")
	register(key.ClipboardOSC52, true, "Fall back to the OSC52 terminal escape sequence when the system clipboard is unavailable")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.SearchFuzzy, false, "Use fuzzy matching instead of substring matching when searching the library")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUIWheelRadius, 10, "Radius of the color wheel drawn in the TUI, in terminal rows")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
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
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
