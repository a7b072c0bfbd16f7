package knowledge

// PaletteEntry is the semantic color set of one industry
type PaletteEntry struct {
	Primary   string
	Secondary string
	Accent    string
	Success   string
	Warning   string
	Error     string
	Info      string
}

// FontEntry is the font stack set of one industry
type FontEntry struct {
	Heading string
	Body    string
	Mono    string
}

const (
	systemSans = `"Inter", system-ui, -apple-system, "Segoe UI", sans-serif`
	monoStack  = `"JetBrains Mono", ui-monospace, "SFMono-Regular", monospace`
)

var palettes = map[string]PaletteEntry{
	"restaurant": {
		Primary: "#b4441f", Secondary: "#2f4f3a", Accent: "#e8b04b",
		Success: "#2e7d32", Warning: "#ed6c02", Error: "#c62828", Info: "#0277bd",
	},
	"e-commerce": {
		Primary: "#1a73e8", Secondary: "#111827", Accent: "#ff6f61",
		Success: "#16a34a", Warning: "#d97706", Error: "#dc2626", Info: "#2563eb",
	},
	"consulting": {
		Primary: "#1e3a5f", Secondary: "#475569", Accent: "#c9a227",
		Success: "#15803d", Warning: "#b45309", Error: "#b91c1c", Info: "#1d4ed8",
	},
	"fitness": {
		Primary: "#e53935", Secondary: "#212121", Accent: "#fdd835",
		Success: "#43a047", Warning: "#fb8c00", Error: "#d32f2f", Info: "#1e88e5",
	},
	"technology": {
		Primary: "#4f46e5", Secondary: "#0f172a", Accent: "#06b6d4",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444", Info: "#3b82f6",
	},
	DefaultIndustry: {
		Primary: "#2563eb", Secondary: "#374151", Accent: "#f59e0b",
		Success: "#16a34a", Warning: "#d97706", Error: "#dc2626", Info: "#0ea5e9",
	},
}

var fonts = map[string]FontEntry{
	"restaurant": {
		Heading: `"Playfair Display", Georgia, serif`,
		Body:    `"Lato", system-ui, sans-serif`,
		Mono:    monoStack,
	},
	"e-commerce": {
		Heading: `"Poppins", system-ui, sans-serif`,
		Body:    systemSans,
		Mono:    monoStack,
	},
	"consulting": {
		Heading: `"Merriweather", Georgia, serif`,
		Body:    `"Source Sans 3", system-ui, sans-serif`,
		Mono:    monoStack,
	},
	"fitness": {
		Heading: `"Montserrat", system-ui, sans-serif`,
		Body:    systemSans,
		Mono:    monoStack,
	},
	"technology": {
		Heading: systemSans,
		Body:    systemSans,
		Mono:    monoStack,
	},
	DefaultIndustry: {
		Heading: systemSans,
		Body:    systemSans,
		Mono:    monoStack,
	},
}

// Palette returns the color set for industry, or the default colors
func Palette(industry string) (PaletteEntry, string) {
	return lookup(palettes, industry)
}

// Fonts returns the font stacks for industry, or the default stacks
func Fonts(industry string) (FontEntry, string) {
	return lookup(fonts, industry)
}
