package gamedata

import (
	"github.com/samdwyer/keywordfight/internal/entity"
)

// PowerDef is the serialized form of entity.Power.
type PowerDef struct {
	Bludgeoning   float64  `json:"bludgeoning" yaml:"bludgeoning"`
	Piercing      float64  `json:"piercing" yaml:"piercing"`
	Slashing      float64  `json:"slashing" yaml:"slashing"`
	Counterattack *float64 `json:"counterattack,omitempty" yaml:"counterattack,omitempty"` // Omitted when the item has no distinct counter value
}

// Power converts the definition.
func (p PowerDef) Power() entity.Power {
	power := entity.NewPower(p.Bludgeoning, p.Piercing, p.Slashing)
	if p.Counterattack != nil {
		power = power.WithCounterattack(*p.Counterattack)
	}
	return power
}

// EquipmentDef defines a purchasable item loaded from a catalog file.
type EquipmentDef struct {
	Kind  string   `json:"kind" yaml:"kind"`                       // Slot name (e.g., "weapon", "helmet")
	Name  string   `json:"name" yaml:"name"`                       // Display name (e.g., "Spear")
	Hands int      `json:"hands,omitempty" yaml:"hands,omitempty"` // Weapons only: 1 or 2
	Power PowerDef `json:"power" yaml:"power"`
	Cost  float64  `json:"cost" yaml:"cost"` // Gold; 0 marks an item the generator never buys
}

// Equipment decodes the definition. The kind string is resolved here, once;
// an unknown kind is an error.
func (d EquipmentDef) Equipment() (*entity.Equipment, error) {
	kind, err := entity.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	hands := d.Hands
	if kind == entity.KindWeapon && hands == 0 {
		hands = 1
	}
	if kind != entity.KindWeapon {
		hands = 0
	}
	return &entity.Equipment{
		Kind:  kind,
		Name:  d.Name,
		Hands: hands,
		Power: d.Power.Power(),
		Cost:  d.Cost,
	}, nil
}
