package domain

import "fmt"

// GenerateDeck runs the whole derivation pipeline for one normalized intake
// record: digest, segmentation, allocation, and per-card attribute/text/
// prompt synthesis, assembled into one immutable DeckRecord. Pure function;
// the only failure modes are allocation exhaustion and a meaning table that
// does not cover the closed card-name set.
func GenerateDeck(rec IntakeRecord, meanings MeaningTable, layout Layout) (DeckRecord, error) {
	digest := ComputeDigest(rec)
	clientID := digest.Hex()
	seg := Segment(digest)

	minors, err := AllocateMinors(seg.MinorRaw[:])
	if err != nil {
		return DeckRecord{}, fmt.Errorf("client %s: allocate minors: %w", clientID, err)
	}

	cards := make([]CardRecord, 0, MajorCount+MinorCount)

	for i, name := range Majors {
		card, err := buildCard(clientID, len(cards), ArcanaMajor, i, name, "", "", seg.MajorValues[i], rec.Intention, meanings)
		if err != nil {
			return DeckRecord{}, err
		}
		cards = append(cards, card)
	}

	for i, m := range minors {
		name := MinorName(m.Rank, m.Suit)
		card, err := buildCard(clientID, len(cards), ArcanaMinor, i, name, m.Suit, m.Rank, m.Value, rec.Intention, meanings)
		if err != nil {
			return DeckRecord{}, err
		}
		cards = append(cards, card)
	}

	return DeckRecord{
		ClientID: clientID,
		Intake:   rec,
		Cards:    cards,
		Layout:   layout,
	}, nil
}

func buildCard(clientID string, position int, arcana Arcana, index int, name string, suit Suit, rank Rank, value byte, intention string, meanings MeaningTable) (CardRecord, error) {
	base, ok := meanings[name]
	if !ok {
		// Card names form a closed set; a miss means a corrupted table,
		// not bad user input.
		return CardRecord{}, fmt.Errorf("client %s: synthesize %q: %w", clientID, name, ErrUnknownCard)
	}

	attrs := DeriveAttributes(value)
	text := SynthesizeText(base, attrs.Tone, intention)

	return CardRecord{
		Arcana:        arcana,
		Index:         index,
		Name:          name,
		Suit:          suit,
		Rank:          rank,
		Attributes:    attrs,
		Keywords:      text.Keywords,
		Upright:       text.Upright,
		Reversed:      text.Reversed,
		Note:          text.Note,
		HashSignature: value,
		Prompt:        ComposePrompt(name, arcana, attrs, intention),
		ImagePath:     fmt.Sprintf("decks/%s/card_%02d.png", clientID, position),
	}, nil
}
