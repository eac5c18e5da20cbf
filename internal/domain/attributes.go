package domain

import "math"

// Element is the classical element assigned to a card's palette.
type Element string

const (
	ElementFire  Element = "fire"
	ElementWater Element = "water"
	ElementAir   Element = "air"
	ElementEarth Element = "earth"
)

var elements = []Element{ElementFire, ElementWater, ElementAir, ElementEarth}

// Tone is the personality-mood bucket of a card.
type Tone string

const (
	ToneNurturing  Tone = "nurturing"
	ToneAnalytical Tone = "analytical"
	ToneChaotic    Tone = "chaotic"
	ToneVisionary  Tone = "visionary"
)

// tones indexed by value/64: 0-63, 64-127, 128-191, 192-255.
var tones = []Tone{ToneNurturing, ToneAnalytical, ToneChaotic, ToneVisionary}

// sigilVocabulary is the fixed glyph set cards draw their sigils from. The
// length is a power of two so every odd probe step below is coprime with it.
var sigilVocabulary = []string{
	"crescent moon", "radiant sun", "eight-pointed star", "open eye",
	"serpent coil", "lotus bloom", "iron key", "twin pillars",
	"spiral shell", "burning branch", "still chalice", "crossed blades",
	"root and seed", "hourglass", "broken crown", "white feather",
}

// DeriveAttributes maps one byte value to a full attribute set. Total over
// the byte domain and idempotent: the same value always yields the same
// palette, element, tone, and sigils.
func DeriveAttributes(value byte) CardAttributes {
	v := float64(value)
	return CardAttributes{
		Hue:        int(math.Round(v/255*360)) % 360,
		Saturation: 55 + int(math.Round(v/255*20)),
		Lightness:  40 + int(math.Round(v/255*25)),
		Element:    elements[int(value)%len(elements)],
		Tone:       tones[int(value)/64],
		Sigils:     deriveSigils(value),
	}
}

// deriveSigils picks 3-5 distinct glyphs. The stride is always odd, hence
// coprime with the 16-glyph vocabulary, so picks never repeat.
func deriveSigils(value byte) []string {
	count := 3 + int(value)%3
	start := int(value) % len(sigilVocabulary)
	stride := 1 + 2*(int(value)%4)

	sigils := make([]string, count)
	for i := range sigils {
		sigils[i] = sigilVocabulary[(start+i*stride)%len(sigilVocabulary)]
	}
	return sigils
}
