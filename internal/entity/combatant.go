// Package entity provides the duel model: equipment, cards, decks, hands and
// the combatants holding them.
package entity

import (
	"math"
	"math/rand"
)

// DefaultHandSize is the full-hand capacity of a combatant.
const DefaultHandSize = 4

// Role tells the player's combatant apart from the computer-controlled one.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Combatant is one side of a duel.
type Combatant struct {
	Name     string
	Role     Role
	HandSize int

	HasInitiative bool
	// Decaying buff counters, never negative.
	Strengthened            int
	CounterattackResistance int

	Gear Loadout
	Hand *Hand

	gold      float64
	goldIsSet bool
}

// NewCombatant creates a combatant with default gear and an empty hand.
func NewCombatant(name string, role Role, rng *rand.Rand) *Combatant {
	return &Combatant{
		Name:     name,
		Role:     role,
		HandSize: DefaultHandSize,
		Gear:     DefaultLoadout(),
		Hand:     NewHand(rng),
	}
}

// SetGold records the setup budget. Only the first call has an effect.
func (c *Combatant) SetGold(gold float64) {
	if c.goldIsSet {
		return
	}
	c.gold = gold
	c.goldIsSet = true
}

// Gold returns the setup budget and whether it has been set.
func (c *Combatant) Gold() (float64, bool) {
	return c.gold, c.goldIsSet
}

// MissingCards returns how many cards the hand lacks to be full.
func (c *Combatant) MissingCards() int {
	return c.HandSize - c.Hand.Count()
}

// IsStunned reports whether a stun card is held.
func (c *Combatant) IsStunned() bool {
	return c.Hand.Stun() != nil
}

// IsConscious reports whether wounds still leave room in the hand.
func (c *Combatant) IsConscious() bool {
	return c.Hand.WoundsCount() < c.HandSize
}

// Health is the hand capacity minus wounds, with half a point back for a
// light wound.
func (c *Combatant) Health() float64 {
	h := float64(c.HandSize - c.Hand.WoundsCount())
	if c.Hand.LightWound() != nil {
		h += 0.5
	}
	return math.Max(0, h)
}

// HealthPercent returns health as a rounded percentage of capacity.
func (c *Combatant) HealthPercent() int {
	if c.HandSize == 0 {
		return 0
	}
	return int(math.Round(100 * c.Health() / float64(c.HandSize)))
}

// DrawCards fills the hand up to capacity.
func (c *Combatant) DrawCards(deck *Deck[*FightCard]) {
	if missing := c.MissingCards(); missing > 0 {
		c.Hand.Draw(deck, missing)
	}
}

// Discard returns a held fight card to the deck.
func (c *Combatant) Discard(card *FightCard, deck *Deck[*FightCard]) bool {
	return c.Hand.Discard(card, deck)
}

// TakeDamage converts damage into wound cards and trims the hand back to
// capacity by discarding random fight cards.
func (c *Combatant) TakeDamage(damage Damage, deck *Deck[*FightCard]) {
	for i := 0; i < damage.SeriousWounds(); i++ {
		c.Hand.AddSeriousWound()
	}
	for i := 0; i < damage.LightWounds(); i++ {
		c.Hand.AddLightWound()
	}
	c.Hand.DiscardRandom(c.Hand.Count()-c.HandSize, deck)
}

// CommittedCard returns the fight card the combatant has already committed
// for the next exchange. Only the enemy commits ahead of time: it always
// plays the oldest fight card in its hand.
func CommittedCard(c *Combatant) *FightCard {
	switch c.Role {
	case RoleEnemy:
		if fights := c.Hand.Fights(); len(fights) > 0 {
			return fights[0]
		}
		return nil
	default:
		return nil
	}
}

// Clone returns a copy with an independent hand. Equipment is shared; it is
// never mutated after setup.
func (c *Combatant) Clone() *Combatant {
	clone := *c
	clone.Hand = c.Hand.Clone()
	return &clone
}
