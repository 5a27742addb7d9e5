// Package icons maps button image names to terminal glyphs.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style. Glyphs carry a trailing
// space so they can sit directly before a button label.
type Icons struct {
	Action   string // fallback for unknown image names
	Keyboard string
	Gamepad  string
	Touch    string
	Bolt     string
	Star     string
	Heart    string
	Gear     string
	ArrowUp  string
	Shield   string
}

var (
	nerdIcons = Icons{
		Action:   " ", // nf-fa-dot_circle_o
		Keyboard: " ", // nf-fa-keyboard_o
		Gamepad:  " ", // nf-fa-gamepad
		Touch:    " ", // nf-fa-hand_pointer_o
		Bolt:     " ", // nf-fa-bolt
		Star:     " ", // nf-fa-star
		Heart:    "󰣐 ",      // nf-md-heart
		Gear:     " ", // nf-fa-gear
		ArrowUp:  " ", // nf-fa-arrow_up
		Shield:   " ", // nf-fa-shield
	}

	unicodeIcons = Icons{
		Action:   "◉ ",
		Keyboard: "⌨ ",
		Gamepad:  "🎮 ",
		Touch:    "👆 ",
		Bolt:     "⚡ ",
		Star:     "★ ",
		Heart:    "♥ ",
		Gear:     "⚙ ",
		ArrowUp:  "↑ ",
		Shield:   "🛡 ",
	}

	noneIcons = Icons{}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon set based on the style.
// Call this once at startup with the config value; unknown styles fall
// back to unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Glyph returns the prefix glyph for a button image name. An empty name
// yields no glyph, unknown names the generic action glyph, and the
// "none" style renders everything bare.
func Glyph(name string) string {
	switch name {
	case "":
		return ""
	case "keyboard":
		return current.Keyboard
	case "gamepad":
		return current.Gamepad
	case "touch":
		return current.Touch
	case "bolt":
		return current.Bolt
	case "star":
		return current.Star
	case "heart":
		return current.Heart
	case "gear":
		return current.Gear
	case "arrow-up":
		return current.ArrowUp
	case "shield":
		return current.Shield
	default:
		return current.Action
	}
}

// Keyboard returns the desktop trigger glyph for help text.
func Keyboard() string {
	return current.Keyboard
}

// Gamepad returns the alternate trigger glyph for help text.
func Gamepad() string {
	return current.Gamepad
}
