package entity

// Card is anything that occupies a slot in a hand. The set of card variants is
// closed: *FightCard and *WoundCard.
type Card interface {
	CardName() string
	isCard()
}

// AttackFace is the offensive half of a fight card.
type AttackFace struct {
	Name           string
	Description    string
	HitDescription string
	Target         Target
	Advantage      Power
	Effectiveness  Effectiveness
	Damage         float64
	Stun           int
	// Grants applied to the attacker when the attack lands.
	CounterattackResistance int
	Strengthen              int
	Healing                 float64
}

// DefenseFace is the defensive half of a fight card.
type DefenseFace struct {
	Name          string
	Description   string
	Effectiveness Effectiveness
}

// FightCard carries one attack face and one defense face. Fight cards are the
// only cards that cycle through a deck.
type FightCard struct {
	Attack  AttackFace
	Defense DefenseFace
}

// CardName returns the attack name followed by the defense name.
func (c *FightCard) CardName() string {
	return c.Attack.Name + " / " + c.Defense.Name
}

func (*FightCard) isCard() {}

// WoundKind distinguishes wound cards.
type WoundKind int

const (
	LightWound WoundKind = iota
	SeriousWound
	Stun
)

// Weight orders wound cards by severity for deterministic selection.
func (k WoundKind) Weight() float64 {
	switch k {
	case LightWound:
		return 0.5
	case SeriousWound:
		return 1
	case Stun:
		return 1.46
	default:
		return 0
	}
}

// String returns the wound kind name.
func (k WoundKind) String() string {
	switch k {
	case LightWound:
		return "light wound"
	case SeriousWound:
		return "serious wound"
	case Stun:
		return "stun"
	default:
		return "unknown"
	}
}

// WoundCard represents accumulated harm or incapacitation. Wound cards never
// enter a deck.
type WoundCard struct {
	Kind WoundKind
}

// CardName returns the wound kind name.
func (c *WoundCard) CardName() string {
	return c.Kind.String()
}

func (*WoundCard) isCard() {}
