// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Color wheel geometry.
const (
	WheelRadius       = "wheel.radius"
	WheelInnerPercent = "wheel.inner_percent"
)

// Palette generation.
const (
	HarmonyDefaultRule = "harmony.default_rule"
	RulesEnable        = "rules.enable"
)

// Palette history.
const (
	HistorySaveOnGenerate = "history.save_on_generate"
	HistoryLimit          = "history.limit"
)

// Export and clipboard collaborators.
const (
	ExportDir      = "export.dir"
	ClipboardOSC52 = "clipboard.osc52"
)

// Search interaction over the color library and scheme collections.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchFuzzy                = "search.fuzzy"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI).
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIWheelRadius        = "tui.wheel_radius"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI execution environment.
const (
	CliColored = "cli.colored"
)
