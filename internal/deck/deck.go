package deck

import "sort"

// Hero is a hero card and the turn it enters play.
type Hero struct {
	ID   uint32 `json:"id" yaml:"id"`
	Turn uint32 `json:"turn" yaml:"turn"`
}

// Card is a regular card and how many copies the deck runs.
type Card struct {
	ID    uint32 `json:"id" yaml:"id"`
	Count uint32 `json:"count" yaml:"count"`
}

// Deck is the structured form of a deck code. Hero and card order is
// significant: entries are delta-encoded against the previous ID in the
// same list.
type Deck struct {
	Name   string `json:"name" yaml:"name"`
	Heroes []Hero `json:"heroes" yaml:"heroes"`
	Cards  []Card `json:"cards" yaml:"cards"`
}

// Sorted returns a copy of d with heroes and cards in ascending ID order.
// Entries sharing an ID keep their relative order.
func (d Deck) Sorted() Deck {
	out := Deck{Name: d.Name}
	if d.Heroes != nil {
		out.Heroes = append([]Hero(nil), d.Heroes...)
		sort.SliceStable(out.Heroes, func(i, j int) bool { return out.Heroes[i].ID < out.Heroes[j].ID })
	}
	if d.Cards != nil {
		out.Cards = append([]Card(nil), d.Cards...)
		sort.SliceStable(out.Cards, func(i, j int) bool { return out.Cards[i].ID < out.Cards[j].ID })
	}
	return out
}

// Counts returns the number of heroes and the total number of card copies.
func (d Deck) Counts() (heroes int, cards int) {
	for _, c := range d.Cards {
		cards += int(c.Count)
	}
	return len(d.Heroes), cards
}
