package domain

import (
	"fmt"
	"strings"
)

// promptStyle is the fixed style clause appended to every illustration
// prompt, keeping the rendered deck visually consistent.
const promptStyle = "Ornate art-nouveau linework, muted gold accents, full-bleed borderless composition, no lettering."

// ComposePrompt renders the single illustration prompt for one card, for the
// image-rendering collaborator. Pure template fill; no side effects.
func ComposePrompt(name string, arcana Arcana, attrs CardAttributes, intention string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tarot card illustration: %s (%s arcana). ", name, arcana)
	fmt.Fprintf(&b, "Element %s, mood %s. ", attrs.Element, attrs.Tone)
	fmt.Fprintf(&b, "Palette hsl(%d, %d%%, %d%%). ", attrs.Hue, attrs.Saturation, attrs.Lightness)
	fmt.Fprintf(&b, "Woven sigils: %s. ", strings.Join(attrs.Sigils, ", "))
	fmt.Fprintf(&b, "Commissioned for the intention %q. ", intention)
	b.WriteString(promptStyle)
	return b.String()
}
