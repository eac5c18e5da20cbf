package domain

import (
	"fmt"
	"strings"
)

// SynthesizedText is the client-specific text overlay for one card.
type SynthesizedText struct {
	Keywords []string
	Upright  string
	Reversed string
	Note     string
}

// toneClauses extend the canonical meanings with a mood reference. Keyed by
// tone so the same tone always appends the same clause.
var toneClauses = map[Tone]struct {
	upright  string
	reversed string
}{
	ToneNurturing: {
		upright:  "Here it arrives gently, asking to be tended rather than forced.",
		reversed: "Reversed, its gentleness turns to hesitation that wants naming.",
	},
	ToneAnalytical: {
		upright:  "Here it arrives precisely, rewarding a clear-eyed reading of the facts.",
		reversed: "Reversed, its precision hardens into doubt that over-measures everything.",
	},
	ToneChaotic: {
		upright:  "Here it arrives untamed, and the disruption it brings is the point.",
		reversed: "Reversed, its wildness scatters; gather what matters before it disperses.",
	},
	ToneVisionary: {
		upright:  "Here it arrives far-seeing, pulling attention toward what could be.",
		reversed: "Reversed, its vision drifts from the ground it must eventually stand on.",
	},
}

// intentionStopwords are skipped when lifting keywords out of the intention.
var intentionStopwords = map[string]bool{
	"the": true, "and": true, "with": true, "for": true, "from": true,
	"that": true, "this": true, "into": true, "want": true, "wish": true,
	"will": true, "would": true, "about": true, "more": true,
}

// SynthesizeText overlays a card's canonical meaning with the client's tone
// and intention. Pure: the same (base, tone, intention) triple always yields
// identical text.
func SynthesizeText(base BaseMeaning, tone Tone, intention string) SynthesizedText {
	clauses := toneClauses[tone]

	keywords := make([]string, 0, len(base.Keywords)+2)
	keywords = append(keywords, base.Keywords...)
	keywords = append(keywords, intentionKeywords(intention)...)

	return SynthesizedText{
		Keywords: keywords,
		Upright:  base.Upright + " " + clauses.upright,
		Reversed: base.Reversed + " " + clauses.reversed,
		Note:     fmt.Sprintf("Drawn for a seeker whose stated intention is to %s.", strings.ToLower(strings.TrimRight(intention, ".!?"))),
	}
}

// intentionKeywords lifts one or two meaningful tokens from the intention
// text: lowercase, punctuation-stripped, stopwords and short words skipped.
// When the filter rejects every token, the longest raw token stands in so
// the intention always contributes at least one keyword.
func intentionKeywords(intention string) []string {
	var out []string
	var longest string
	for _, raw := range strings.Fields(strings.ToLower(intention)) {
		token := strings.Trim(raw, ".,;:!?\"'()")
		if token == "" {
			continue
		}
		if len(token) > len(longest) {
			longest = token
		}
		if len(token) < 4 || intentionStopwords[token] {
			continue
		}
		out = append(out, token)
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 && longest != "" {
		out = append(out, longest)
	}
	return out
}
