package library

// Categories are listed in display order.
var categoryOrder = []string{
	"Reds",
	"Blues",
	"Greens",
	"Yellows",
	"Oranges",
	"Purples",
	"Pinks",
	"Grays",
	"Browns",
}

var categories = map[string][]Entry{
	"Reds": {
		{Name: "Red", Hex: "#FF0000", RGB: "255, 0, 0"},
		{Name: "Dark Red", Hex: "#8B0000", RGB: "139, 0, 0"},
		{Name: "Light Pink", Hex: "#FFB6C1", RGB: "255, 182, 193"},
		{Name: "Crimson", Hex: "#DC143C", RGB: "220, 20, 60"},
		{Name: "Fire Brick", Hex: "#B22222", RGB: "178, 34, 34"},
		{Name: "Tomato", Hex: "#FF6347", RGB: "255, 99, 71"},
		{Name: "Coral", Hex: "#FF7F50", RGB: "255, 127, 80"},
		{Name: "Indian Red", Hex: "#CD5C5C", RGB: "205, 92, 92"},
	},
	"Blues": {
		{Name: "Blue", Hex: "#0000FF", RGB: "0, 0, 255"},
		{Name: "Sky Blue", Hex: "#87CEEB", RGB: "135, 206, 235"},
		{Name: "Navy", Hex: "#000080", RGB: "0, 0, 128"},
		{Name: "Royal Blue", Hex: "#4169E1", RGB: "65, 105, 225"},
		{Name: "Turquoise", Hex: "#40E0D0", RGB: "64, 224, 208"},
		{Name: "Deep Sky Blue", Hex: "#006994", RGB: "0, 105, 148"},
		{Name: "Powder Blue", Hex: "#B0E0E6", RGB: "176, 224, 230"},
		{Name: "Steel Blue", Hex: "#4682B4", RGB: "70, 130, 180"},
	},
	"Greens": {
		{Name: "Green", Hex: "#008000", RGB: "0, 128, 0"},
		{Name: "Light Green", Hex: "#90EE90", RGB: "144, 238, 144"},
		{Name: "Dark Green", Hex: "#006400", RGB: "0, 100, 0"},
		{Name: "Olive", Hex: "#808000", RGB: "128, 128, 0"},
		{Name: "Lime Green", Hex: "#32CD32", RGB: "50, 205, 50"},
		{Name: "Forest Green", Hex: "#228B22", RGB: "34, 139, 34"},
		{Name: "Sea Green", Hex: "#2E8B57", RGB: "46, 139, 87"},
		{Name: "Mint Green", Hex: "#98FB98", RGB: "152, 251, 152"},
	},
	"Yellows": {
		{Name: "Yellow", Hex: "#FFFF00", RGB: "255, 255, 0"},
		{Name: "Gold", Hex: "#FFD700", RGB: "255, 215, 0"},
		{Name: "Light Yellow", Hex: "#FFFFE0", RGB: "255, 255, 224"},
		{Name: "Lemon Chiffon", Hex: "#FFFACD", RGB: "255, 250, 205"},
		{Name: "Dark Orange", Hex: "#FF8C00", RGB: "255, 140, 0"},
		{Name: "Cornsilk", Hex: "#FFF8DC", RGB: "255, 248, 220"},
		{Name: "Banana Yellow", Hex: "#FFEF96", RGB: "255, 239, 150"},
		{Name: "Canary Yellow", Hex: "#FFFF99", RGB: "255, 255, 153"},
	},
	"Oranges": {
		{Name: "Orange", Hex: "#FFA500", RGB: "255, 165, 0"},
		{Name: "Dark Orange", Hex: "#FF8C00", RGB: "255, 140, 0"},
		{Name: "Orange Red", Hex: "#FF4500", RGB: "255, 69, 0"},
		{Name: "Peach Puff", Hex: "#FFE4B5", RGB: "255, 228, 181"},
		{Name: "Peach", Hex: "#FFCBA4", RGB: "255, 203, 164"},
		{Name: "Peru", Hex: "#B87333", RGB: "184, 115, 51"},
		{Name: "Coral", Hex: "#FF7F50", RGB: "255, 127, 80"},
		{Name: "Pumpkin", Hex: "#FF7518", RGB: "255, 117, 24"},
	},
	"Purples": {
		{Name: "Purple", Hex: "#800080", RGB: "128, 0, 128"},
		{Name: "Plum", Hex: "#DDA0DD", RGB: "221, 160, 221"},
		{Name: "Indigo", Hex: "#4B0082", RGB: "75, 0, 130"},
		{Name: "Dark Violet", Hex: "#4B0082", RGB: "75, 0, 130"},
		{Name: "Dark Magenta", Hex: "#8B008B", RGB: "139, 0, 139"},
		{Name: "Orchid", Hex: "#DA70D6", RGB: "218, 112, 214"},
		{Name: "Violet", Hex: "#DDA0DD", RGB: "221, 160, 221"},
		{Name: "Lavender", Hex: "#E6E6FA", RGB: "230, 230, 250"},
	},
	"Pinks": {
		{Name: "Pink", Hex: "#FFC0CB", RGB: "255, 192, 203"},
		{Name: "Deep Pink", Hex: "#FF1493", RGB: "255, 20, 147"},
		{Name: "Light Pink", Hex: "#FFB6C1", RGB: "255, 182, 193"},
		{Name: "Fuchsia", Hex: "#FF00FF", RGB: "255, 0, 255"},
		{Name: "Hot Pink", Hex: "#FF69B4", RGB: "255, 105, 180"},
		{Name: "Light Coral", Hex: "#F08080", RGB: "240, 128, 128"},
		{Name: "Medium Violet Red", Hex: "#C71585", RGB: "199, 21, 133"},
		{Name: "Bright Pink", Hex: "#FF1493", RGB: "255, 20, 147"},
	},
	"Grays": {
		{Name: "Gray", Hex: "#808080", RGB: "128, 128, 128"},
		{Name: "Light Gray", Hex: "#D3D3D3", RGB: "211, 211, 211"},
		{Name: "Dark Gray", Hex: "#A9A9A9", RGB: "169, 169, 169"},
		{Name: "Silver", Hex: "#C0C0C0", RGB: "192, 192, 192"},
		{Name: "Dim Gray", Hex: "#696969", RGB: "105, 105, 105"},
		{Name: "Dark Slate Gray", Hex: "#2F4F4F", RGB: "47, 79, 79"},
		{Name: "White Smoke", Hex: "#F5F5F5", RGB: "245, 245, 245"},
		{Name: "Charcoal", Hex: "#36454F", RGB: "54, 69, 79"},
	},
	"Browns": {
		{Name: "Brown", Hex: "#A52A2A", RGB: "165, 42, 42"},
		{Name: "Tan", Hex: "#D2B48C", RGB: "210, 180, 140"},
		{Name: "Dark Brown", Hex: "#654321", RGB: "101, 67, 33"},
		{Name: "Chocolate", Hex: "#D2691E", RGB: "210, 105, 30"},
		{Name: "Saddle Brown", Hex: "#8B4513", RGB: "139, 69, 19"},
		{Name: "Beige", Hex: "#F5F5DC", RGB: "245, 245, 220"},
		{Name: "Sandy Brown", Hex: "#F4A460", RGB: "244, 164, 96"},
		{Name: "Coffee", Hex: "#6F4E37", RGB: "111, 78, 55"},
	},
}

// Basic lists the primaries shown before any category.
var Basic = []Entry{
	{Name: "White", Hex: "#FFFFFF", RGB: "255, 255, 255"},
	{Name: "Black", Hex: "#000000", RGB: "0, 0, 0"},
	{Name: "Red", Hex: "#FF0000", RGB: "255, 0, 0"},
	{Name: "Green", Hex: "#00FF00", RGB: "0, 255, 0"},
	{Name: "Blue", Hex: "#0000FF", RGB: "0, 0, 255"},
	{Name: "Yellow", Hex: "#FFFF00", RGB: "255, 255, 0"},
	{Name: "Cyan", Hex: "#00FFFF", RGB: "0, 255, 255"},
	{Name: "Magenta", Hex: "#FF00FF", RGB: "255, 0, 255"},
}
