package entity

import (
	"math/rand"
	"slices"
)

// Hand is the mixed bag of fight and wound cards held by one combatant.
type Hand struct {
	cards []Card
	rng   *rand.Rand
}

// NewHand creates an empty hand drawing randomness from rng.
func NewHand(rng *rand.Rand) *Hand {
	return &Hand{rng: rng}
}

// Count returns the number of held cards of any variant.
func (h *Hand) Count() int { return len(h.cards) }

// Fights returns the held fight cards in the order they were drawn.
func (h *Hand) Fights() []*FightCard {
	var out []*FightCard
	for _, c := range h.cards {
		if f, ok := c.(*FightCard); ok {
			out = append(out, f)
		}
	}
	return out
}

// FightsCount returns the number of held fight cards.
func (h *Hand) FightsCount() int { return len(h.Fights()) }

// Wounds returns the held wound and stun cards, most severe first.
func (h *Hand) Wounds() []*WoundCard {
	var out []*WoundCard
	for _, c := range h.cards {
		if w, ok := c.(*WoundCard); ok {
			out = append(out, w)
		}
	}
	slices.SortStableFunc(out, func(a, b *WoundCard) int {
		switch {
		case a.Kind.Weight() > b.Kind.Weight():
			return -1
		case a.Kind.Weight() < b.Kind.Weight():
			return 1
		default:
			return 0
		}
	})
	return out
}

// WoundsCount returns the number of held wound and stun cards.
func (h *Hand) WoundsCount() int { return len(h.Wounds()) }

// LightWound returns the light wound card, if any.
func (h *Hand) LightWound() *WoundCard { return h.find(LightWound) }

// Stun returns the stun card, if any.
func (h *Hand) Stun() *WoundCard { return h.find(Stun) }

func (h *Hand) find(kind WoundKind) *WoundCard {
	for _, c := range h.cards {
		if w, ok := c.(*WoundCard); ok && w.Kind == kind {
			return w
		}
	}
	return nil
}

// Draw appends up to n fight cards from the deck.
func (h *Hand) Draw(deck *Deck[*FightCard], n int) {
	for card := range deck.Draw(n) {
		h.cards = append(h.cards, card)
	}
}

// Discard removes the fight card from the hand and returns it to the deck.
// It reports false when the card was not held.
func (h *Hand) Discard(card *FightCard, deck *Deck[*FightCard]) bool {
	if !h.remove(card) {
		return false
	}
	deck.Discard(card)
	return true
}

// DiscardRandom discards up to n uniformly chosen fight cards, one at a time
// without replacement. Wound and stun cards are never discarded.
func (h *Hand) DiscardRandom(n int, deck *Deck[*FightCard]) {
	remaining := h.FightsCount()
	for i := 0; i < n && remaining > 0; i++ {
		card := h.Fights()[h.rng.Intn(remaining)]
		h.Discard(card, deck)
		remaining--
	}
}

// TryRemoveStun removes the stun card and reports whether one was held.
func (h *Hand) TryRemoveStun() bool {
	stun := h.Stun()
	if stun == nil {
		return false
	}
	return h.remove(stun)
}

// AddStun adds a stun card.
func (h *Hand) AddStun() {
	h.cards = append(h.cards, &WoundCard{Kind: Stun})
}

// AddSeriousWound adds a serious wound card.
func (h *Hand) AddSeriousWound() {
	h.cards = append(h.cards, &WoundCard{Kind: SeriousWound})
}

// AddLightWound adds a light wound card. A second light wound merges with the
// first into one serious wound.
func (h *Hand) AddLightWound() {
	if light := h.LightWound(); light != nil {
		h.remove(light)
		h.AddSeriousWound()
		return
	}
	h.cards = append(h.cards, &WoundCard{Kind: LightWound})
}

// Heal removes up to healing.SeriousWounds() of the most severe wound cards,
// then the light wound if healing has a light part and one is still held.
// It returns the amount actually healed.
func (h *Hand) Heal(healing Damage) Damage {
	healed := 0.0
	for _, wound := range h.Wounds() {
		if int(healed) >= healing.SeriousWounds() {
			break
		}
		h.remove(wound)
		healed++
	}

	if healing.LightWounds() > 0 {
		if light := h.LightWound(); light != nil {
			h.remove(light)
			healed += 0.5
		}
	}
	return Damage(healed)
}

func (h *Hand) remove(card Card) bool {
	i := slices.Index(h.cards, card)
	if i < 0 {
		return false
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	return true
}

// Clone returns an independent copy holding the same cards.
func (h *Hand) Clone() *Hand {
	return &Hand{cards: slices.Clone(h.cards), rng: h.rng}
}
