// Package icons maps the curriculum's icon names to terminal glyphs.
package icons

const (
	// Box is shown for modules whose icon name is unknown.
	Box = "📦"
	// Link is shown for resources whose icon name is unknown.
	Link = "🔗"
)

var glyphs = map[string]string{
	"Box":              Box,
	"Link":             Link,
	"Cloud":            "☁️",
	"Cpu":              "🖥️",
	"Server":           "🖥️",
	"HardDrive":        "💾",
	"Database":         "🗄️",
	"Table":            "📋",
	"Network":          "🌐",
	"Globe":            "🌍",
	"ShieldCheck":      "🛡️",
	"Key":              "🔑",
	"Lock":             "🔒",
	"Zap":              "⚡",
	"Code":             "💻",
	"Code2":            "👨‍💻",
	"Terminal":         "⌨️",
	"FileCode":         "📜",
	"FileText":         "📄",
	"Container":        "🚢",
	"GitMerge":         "🔀",
	"CircleDollarSign": "💰",
	"MessageCircle":    "💬",
	"Newspaper":        "📰",
	"Rss":              "📡",
	"Flag":             "🚩",
	"BookOpen":         "📖",
	"Layers":           "🧱",
}

// Module returns the glyph for a module icon name, falling back to Box.
func Module(name string) string {
	return lookup(name, Box)
}

// Resource returns the glyph for a resource icon name, falling back to Link.
func Resource(name string) string {
	return lookup(name, Link)
}

func lookup(name, fallback string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return fallback
}
