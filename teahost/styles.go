package teahost

import (
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/crest"
	"github.com/llehouerou/crest/internal/icons"
)

// maxLabelWidth caps button labels before truncation kicks in.
const maxLabelWidth = 16

// Styles renders touch buttons and implements crest.Appearance for the
// registry's styling requests.
type Styles struct {
	released lipgloss.Style
	pressed  lipgloss.Style
}

var _ crest.Appearance = (*Styles)(nil)

// DefaultStyles returns the stock button look: rounded dim border at
// rest, thick highlighted border while pressed.
func DefaultStyles() *Styles {
	return &Styles{
		released: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		pressed: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("229")).
			Bold(true).
			Padding(0, 1),
	}
}

// Update implements crest.Appearance.
func (s *Styles) Update(btn crest.Button, st crest.State) {
	if b, ok := btn.(*Button); ok {
		b.setState(st)
	}
}

// Normalize implements crest.Appearance: every button is padded to the
// widest label so a column of buttons lines up.
func (s *Styles) Normalize(btns []crest.Button) {
	widest := 0
	all := make([]*Button, 0, len(btns))
	for _, raw := range btns {
		b, ok := raw.(*Button)
		if !ok {
			continue
		}
		all = append(all, b)
		if w := runewidth.StringWidth(s.label(b)); w > widest {
			widest = w
		}
	}
	for _, b := range all {
		b.setLabelWidth(widest)
	}
}

// label is the glyph plus truncated title of one button.
func (s *Styles) label(b *Button) string {
	title := runewidth.Truncate(b.Title(), maxLabelWidth, "…")
	return icons.Glyph(string(b.Image())) + title
}

// render draws one button block for the state visible at now.
func (s *Styles) render(b *Button, now time.Time) string {
	style := s.released
	switch b.visualState(now) {
	case crest.StatePressed, crest.StateRepeated:
		style = s.pressed
	}

	label := s.label(b)
	if w := b.labelWidth(); w > runewidth.StringWidth(label) {
		label = runewidth.FillRight(label, w)
	}
	return style.Render(label)
}

// Banner renders text with a horizontal color gradient, blended in HCL
// space per grapheme cluster.
func Banner(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) < 2 {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	c1, _ := colorful.MakeColor(hexColor(from))
	c2, _ := colorful.MakeColor(hexColor(to))

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		blended := lipgloss.Color(c1.BlendHcl(c2, t).Hex())
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(blended).Render(cluster))
	}
	return b.String()
}

// hexColor converts a lipgloss hex color, falling back to neutral gray
// for ANSI palette values.
func hexColor(c lipgloss.Color) color.Color {
	if hex := string(c); len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
