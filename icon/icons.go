package icon

type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Mark
	Link
	Search
	Lua
	Wheel
	Palette
	Clipboard
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "👻",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Mark: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "*",
		kaomoji: "(* ^ ω ^)",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(⌐■_■)",
		squares: "🟨",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⊙_⊙)",
		squares: "🟧",
	},
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(｡◕‿◕｡)",
		squares: "🟦",
	},
	Wheel: {
		emoji:   "🎡",
		nerd:    "",
		plain:   "O",
		kaomoji: "(◕‿◕)",
		squares: "⬛",
	},
	Palette: {
		emoji:   "🖌️",
		nerd:    "",
		plain:   "#",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟫",
	},
	Clipboard: {
		emoji:   "📋",
		nerd:    "",
		plain:   "[c]",
		kaomoji: "(っ˘ω˘ς)",
		squares: "⬜",
	},
}
