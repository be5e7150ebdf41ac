package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the equipment slot an item occupies.
type Kind int

const (
	KindWeapon Kind = iota
	KindShield
	KindArmor
	KindHelmet
	KindBracers
	KindGreaves
	KindConsumable
	KindTrinket
)

// String returns the kind identifier used in catalog files.
func (k Kind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindShield:
		return "shield"
	case KindArmor:
		return "armor"
	case KindHelmet:
		return "helmet"
	case KindBracers:
		return "bracers"
	case KindGreaves:
		return "greaves"
	case KindConsumable:
		return "consumable"
	case KindTrinket:
		return "trinket"
	default:
		return "unknown"
	}
}

// ParseKind decodes a catalog kind name. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weapon":
		return KindWeapon, nil
	case "shield":
		return KindShield, nil
	case "armor":
		return KindArmor, nil
	case "helmet":
		return KindHelmet, nil
	case "bracers":
		return KindBracers, nil
	case "greaves":
		return KindGreaves, nil
	case "consumable":
		return KindConsumable, nil
	case "trinket":
		return KindTrinket, nil
	default:
		return 0, fmt.Errorf("unknown equipment kind %q", s)
	}
}

// Target is the body location an attack aims at.
type Target int

const (
	TargetTorso Target = iota
	TargetHands
	TargetLegs
	TargetHead
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetTorso:
		return "torso"
	case TargetHands:
		return "hands"
	case TargetLegs:
		return "legs"
	case TargetHead:
		return "head"
	default:
		return "torso"
	}
}

// ParseTarget decodes a target name. English and Polish spreadsheet names are
// accepted; anything else aims at the torso.
func ParseTarget(s string) Target {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "head", "głowa":
		return TargetHead
	case "hands", "ręce":
		return TargetHands
	case "legs", "nogi":
		return TargetLegs
	default:
		return TargetTorso
	}
}

// Equipment is one catalog item.
type Equipment struct {
	Kind  Kind
	Name  string
	Hands int // weapons only; 0 for everything else
	Power Power
	Cost  float64
}

// TwoHanded reports whether the item occupies both hands.
func (e *Equipment) TwoHanded() bool {
	return e.Hands == 2
}

// Description renders "Name (min, advantages)".
func (e *Equipment) Description() string {
	desc := e.Name + " (" + strconv.FormatFloat(e.Power.Min(), 'f', -1, 64)
	if adv := e.Power.Advantages(); len(adv) > 0 {
		names := make([]string, len(adv))
		for i, a := range adv {
			names[i] = a.String()
		}
		desc += ", " + strings.Join(names, ", ")
	}
	return desc + ")"
}

// Default gear worn when a slot is left empty.
var (
	BareHands = &Equipment{Kind: KindWeapon, Name: "Bare hands", Hands: 1, Power: NewPower(0.5, 0, 0).WithCounterattack(0)}
	NoArmor   = &Equipment{Kind: KindArmor, Name: "Nothing"}
	NoHelmet  = &Equipment{Kind: KindHelmet, Name: "Nothing"}
	NoBracers = &Equipment{Kind: KindBracers, Name: "Nothing"}
	NoGreaves = &Equipment{Kind: KindGreaves, Name: "Nothing"}
)

// Loadout is the set of items a combatant wears, at most one per kind.
// Shield, Consumable and Trinket may be nil; the other slots always hold an
// item, falling back to the defaults above.
type Loadout struct {
	Weapon     *Equipment
	Shield     *Equipment
	Armor      *Equipment
	Helmet     *Equipment
	Bracers    *Equipment
	Greaves    *Equipment
	Consumable *Equipment
	Trinket    *Equipment
}

// DefaultLoadout returns bare hands and no protection.
func DefaultLoadout() Loadout {
	return Loadout{
		Weapon:  BareHands,
		Armor:   NoArmor,
		Helmet:  NoHelmet,
		Bracers: NoBracers,
		Greaves: NoGreaves,
	}
}

// Equip places each item in the slot of its kind, replacing what was there.
func (l *Loadout) Equip(items ...*Equipment) {
	for _, item := range items {
		if item == nil {
			continue
		}
		switch item.Kind {
		case KindWeapon:
			l.Weapon = item
		case KindShield:
			l.Shield = item
		case KindArmor:
			l.Armor = item
		case KindHelmet:
			l.Helmet = item
		case KindBracers:
			l.Bracers = item
		case KindGreaves:
			l.Greaves = item
		case KindConsumable:
			l.Consumable = item
		case KindTrinket:
			l.Trinket = item
		}
	}
}

// Items lists the equipped non-default items in slot order.
func (l *Loadout) Items() []*Equipment {
	candidates := []struct {
		item, def *Equipment
	}{
		{l.Weapon, BareHands},
		{l.Shield, nil},
		{l.Armor, NoArmor},
		{l.Helmet, NoHelmet},
		{l.Bracers, NoBracers},
		{l.Greaves, NoGreaves},
		{l.Consumable, nil},
		{l.Trinket, nil},
	}
	var out []*Equipment
	for _, c := range candidates {
		if c.item != nil && c.item != c.def {
			out = append(out, c.item)
		}
	}
	return out
}

// ArmorFor returns the piece protecting the given target.
func (l *Loadout) ArmorFor(target Target) *Equipment {
	switch target {
	case TargetHead:
		return l.Helmet
	case TargetHands:
		return l.Bracers
	case TargetLegs:
		return l.Greaves
	default:
		return l.Armor
	}
}

// TotalCost sums item costs.
func TotalCost(items []*Equipment) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Cost
	}
	return total
}

// DescribeItems joins item descriptions with commas.
func DescribeItems(items []*Equipment) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Description()
	}
	return strings.Join(parts, ", ")
}
