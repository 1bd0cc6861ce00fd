// ABOUTME: Built-in themes: default, gruvbox, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"gruvbox": {
		Name: "gruvbox",
		Palette: Palette{
			Primary:   NewColor("\x1b[38;5;223m"),
			Secondary: NewColor("\x1b[38;5;245m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[38;5;208m"),

			Success: NewColor("\x1b[38;5;142m"),
			Warning: NewColor("\x1b[38;5;214m"),
			Error:   NewColor("\x1b[38;5;167m"),
			Info:    NewColor("\x1b[38;5;109m"),

			Border:    NewColor("\x1b[38;5;241m"),
			Selection: NewColor("\x1b[48;5;237m"),
			Title:     NewColor("\x1b[1m\x1b[38;5;223m"),

			SourceApt:      NewColor("\x1b[38;5;142m"),
			SourceSnap:     NewColor("\x1b[38;5;214m"),
			SourceFlatpak:  NewColor("\x1b[38;5;109m"),
			SourceAppImage: NewColor("\x1b[38;5;175m"),
			SourceDeb:      NewColor("\x1b[38;5;66m"),

			FooterKeys:   NewColor("\x1b[1m\x1b[38;5;223m"),
			FooterStats:  NewColor("\x1b[38;5;109m"),
			FooterSearch: NewColor("\x1b[38;5;214m"),

			HighlightBg: NewColor("\x1b[48;5;237m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Primary:   NewColor("\x1b[30m"),
			Secondary: NewColor("\x1b[37m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[38;5;166m"),

			Success: NewColor("\x1b[38;5;28m"),
			Warning: NewColor("\x1b[38;5;130m"),
			Error:   NewColor("\x1b[38;5;160m"),
			Info:    NewColor("\x1b[38;5;25m"),

			Border:    NewColor("\x1b[38;5;249m"),
			Selection: NewColor("\x1b[48;5;254m"),
			Title:     NewColor("\x1b[1m\x1b[30m"),

			SourceApt:      NewColor("\x1b[38;5;28m"),
			SourceSnap:     NewColor("\x1b[38;5;130m"),
			SourceFlatpak:  NewColor("\x1b[38;5;25m"),
			SourceAppImage: NewColor("\x1b[38;5;91m"),
			SourceDeb:      NewColor("\x1b[38;5;24m"),

			FooterKeys:   NewColor("\x1b[1m\x1b[30m"),
			FooterStats:  NewColor("\x1b[38;5;25m"),
			FooterSearch: NewColor("\x1b[38;5;130m"),

			HighlightBg: NewColor("\x1b[48;5;254m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Primary:   NewColor("\x1b[0m"),
			Secondary: NewColor("\x1b[2m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[1m"),

			Success: NewColor("\x1b[1m"),
			Warning: NewColor("\x1b[1m"),
			Error:   NewColor("\x1b[1m\x1b[4m"),
			Info:    NewColor("\x1b[1m"),

			Border:    NewColor("\x1b[2m"),
			Selection: NewColor("\x1b[7m"),
			Title:     NewColor("\x1b[1m"),

			SourceApt:      NewColor("\x1b[1m"),
			SourceSnap:     NewColor("\x1b[1m"),
			SourceFlatpak:  NewColor("\x1b[1m"),
			SourceAppImage: NewColor("\x1b[2m"),
			SourceDeb:      NewColor("\x1b[2m"),

			FooterKeys:   NewColor("\x1b[1m"),
			FooterStats:  NewColor("\x1b[2m"),
			FooterSearch: NewColor("\x1b[2m"),

			HighlightBg: NewColor("\x1b[7m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "gruvbox", "light", "monochrome"}
}
