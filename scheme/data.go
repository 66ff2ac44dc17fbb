package scheme

var categoryOrder = []string{
	"Tailwind CSS",
	"Material Design",
	"Flat Design",
	"Web Safe",
	"Accessibility",
	"Trending 2024",
}

var schemes = map[string][]Scheme{
	"Tailwind CSS": {
		{
			Name:        "Tailwind Slate",
			Colors:      []string{"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
			Description: "Cool grays with a subtle blue tint",
			Category:    "Tailwind CSS",
		},
		{
			Name:        "Tailwind Gray",
			Colors:      []string{"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
			Description: "Pure neutral grays",
			Category:    "Tailwind CSS",
		},
		{
			Name:        "Tailwind Red",
			Colors:      []string{"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
			Description: "Vibrant reds for errors and attention",
			Category:    "Tailwind CSS",
		},
		{
			Name:        "Tailwind Blue",
			Colors:      []string{"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
			Description: "Clean blues for primary actions",
			Category:    "Tailwind CSS",
		},
		{
			Name:        "Tailwind Green",
			Colors:      []string{"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
			Description: "Fresh greens for success states",
			Category:    "Tailwind CSS",
		},
		{
			Name:        "Tailwind Purple",
			Colors:      []string{"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6d28d9", "#581c87"},
			Description: "Rich purples for brand colors",
			Category:    "Tailwind CSS",
		},
	},
	"Material Design": {
		{
			Name:        "Material Red",
			Colors:      []string{"#ffebee", "#ffcdd2", "#ef9a9a", "#e57373", "#ef5350", "#f44336", "#e53935", "#d32f2f", "#c62828", "#b71c1c"},
			Description: "Google's Material Design red palette",
			Category:    "Material Design",
		},
		{
			Name:        "Material Pink",
			Colors:      []string{"#fce4ec", "#f8bbd9", "#f48fb1", "#f06292", "#ec407a", "#e91e63", "#d81b60", "#c2185b", "#ad1457", "#880e4f"},
			Description: "Vibrant pink from Material Design",
			Category:    "Material Design",
		},
		{
			Name:        "Material Purple",
			Colors:      []string{"#f3e5f5", "#e1bee7", "#ce93d8", "#ba68c8", "#ab47bc", "#9c27b0", "#8e24aa", "#7b1fa2", "#6a1b9a", "#4a148c"},
			Description: "Rich purple palette",
			Category:    "Material Design",
		},
		{
			Name:        "Material Deep Purple",
			Colors:      []string{"#ede7f6", "#d1c4e9", "#b39ddb", "#9575cd", "#7e57c2", "#673ab7", "#5e35b1", "#512da8", "#4527a0", "#311b92"},
			Description: "Deep purple tones",
			Category:    "Material Design",
		},
		{
			Name:        "Material Indigo",
			Colors:      []string{"#e8eaf6", "#c5cae9", "#9fa8da", "#7986cb", "#5c6bc0", "#3f51b5", "#3949ab", "#303f9f", "#283593", "#1a237e"},
			Description: "Indigo blues for modern interfaces",
			Category:    "Material Design",
		},
		{
			Name:        "Material Blue",
			Colors:      []string{"#e3f2fd", "#bbdefb", "#90caf9", "#64b5f6", "#42a5f5", "#2196f3", "#1e88e5", "#1976d2", "#1565c0", "#0d47a1"},
			Description: "Classic Material blue",
			Category:    "Material Design",
		},
	},
	"Flat Design": {
		{
			Name:        "Flat UI Blues",
			Colors:      []string{"#ecf0f1", "#bdc3c7", "#3498db", "#2980b9", "#34495e", "#2c3e50"},
			Description: "Clean flat design blues and grays",
			Category:    "Flat Design",
		},
		{
			Name:        "Flat UI Greens",
			Colors:      []string{"#d5dbdb", "#a2d5ab", "#2ecc71", "#27ae60", "#16a085", "#1abc9c"},
			Description: "Natural flat design greens",
			Category:    "Flat Design",
		},
		{
			Name:        "Flat UI Reds",
			Colors:      []string{"#fadbd8", "#f1948a", "#e74c3c", "#c0392b", "#a93226", "#922b21"},
			Description: "Bold flat design reds",
			Category:    "Flat Design",
		},
		{
			Name:        "Flat UI Oranges",
			Colors:      []string{"#fdeaa7", "#fdcb6e", "#e17055", "#d63031", "#a29bfe", "#6c5ce7"},
			Description: "Warm flat design oranges and purples",
			Category:    "Flat Design",
		},
		{
			Name:        "Flat UI Yellows",
			Colors:      []string{"#fff9c4", "#fdcb6e", "#f39c12", "#e67e22", "#d35400", "#a04000"},
			Description: "Sunny flat design yellows and oranges",
			Category:    "Flat Design",
		},
	},
	"Web Safe": {
		{
			Name:        "Web Safe Grays",
			Colors:      []string{"#ffffff", "#cccccc", "#999999", "#666666", "#333333", "#000000"},
			Description: "Web-safe grayscale colors",
			Category:    "Web Safe",
		},
		{
			Name:        "Web Safe Blues",
			Colors:      []string{"#e6f3ff", "#cce7ff", "#99d6ff", "#66c2ff", "#3399ff", "#0066cc"},
			Description: "Web-safe blue palette",
			Category:    "Web Safe",
		},
		{
			Name:        "Web Safe Greens",
			Colors:      []string{"#e6ffe6", "#ccffcc", "#99ff99", "#66ff66", "#33cc33", "#009900"},
			Description: "Web-safe green colors",
			Category:    "Web Safe",
		},
		{
			Name:        "Web Safe Reds",
			Colors:      []string{"#ffe6e6", "#ffcccc", "#ff9999", "#ff6666", "#ff3333", "#cc0000"},
			Description: "Web-safe red palette",
			Category:    "Web Safe",
		},
		{
			Name:        "Primary Web Colors",
			Colors:      []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff", "#ffffff", "#000000"},
			Description: "Basic web-safe primary colors",
			Category:    "Web Safe",
		},
	},
	"Accessibility": {
		{
			Name:        "High Contrast",
			Colors:      []string{"#000000", "#ffffff", "#ffff00", "#0000ff", "#ff0000", "#00ff00"},
			Description: "High contrast colors for accessibility",
			Category:    "Accessibility",
		},
		{
			Name:        "Color Blind Safe",
			Colors:      []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f"},
			Description: "Colors distinguishable by color blind users",
			Category:    "Accessibility",
		},
		{
			Name:        "WCAG AA Compliant",
			Colors:      []string{"#ffffff", "#f8f9fa", "#e9ecef", "#6c757d", "#495057", "#343a40", "#212529", "#000000"},
			Description: "Colors meeting WCAG AA contrast standards",
			Category:    "Accessibility",
		},
	},
	"Trending 2024": {
		{
			Name:        "Digital Lavender",
			Colors:      []string{"#f8f6ff", "#e8e2ff", "#d4c5ff", "#c0a8ff", "#ac8bff", "#986eff", "#8451ff", "#7034ff"},
			Description: "Trending digital lavender tones",
			Category:    "Trending 2024",
		},
		{
			Name:        "Cyber Green",
			Colors:      []string{"#f0fff4", "#e6ffed", "#b3ffd1", "#80ffb5", "#4dff99", "#1aff7d", "#00e666", "#00cc55"},
			Description: "Futuristic cyber green palette",
			Category:    "Trending 2024",
		},
		{
			Name:        "Sunset Orange",
			Colors:      []string{"#fff8f0", "#fff0e6", "#ffdbcc", "#ffc6b3", "#ffb199", "#ff9c80", "#ff8766", "#ff724d"},
			Description: "Warm sunset orange gradients",
			Category:    "Trending 2024",
		},
		{
			Name:        "Ocean Blue",
			Colors:      []string{"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1"},
			Description: "Deep ocean blue tones",
			Category:    "Trending 2024",
		},
	},
}
