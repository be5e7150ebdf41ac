package gamedata

import (
	"github.com/samdwyer/keywordfight/internal/entity"
)

// EquipmentRegistry holds decoded equipment and answers the queries the
// loadout generator needs.
type EquipmentRegistry struct {
	all    []*entity.Equipment
	byKind map[entity.Kind][]*entity.Equipment
}

// NewEquipmentRegistry creates a registry, keeping catalog order within each
// kind.
func NewEquipmentRegistry(items []*entity.Equipment) *EquipmentRegistry {
	registry := &EquipmentRegistry{
		all:    items,
		byKind: make(map[entity.Kind][]*entity.Equipment),
	}
	for _, item := range items {
		registry.byKind[item.Kind] = append(registry.byKind[item.Kind], item)
	}
	return registry
}

// Affordable returns the items of kind with 0 < cost <= maxCost. Free items
// are defaults and never bought.
func (r *EquipmentRegistry) Affordable(kind entity.Kind, maxCost float64) []*entity.Equipment {
	var out []*entity.Equipment
	for _, item := range r.byKind[kind] {
		if item.Cost > 0 && item.Cost <= maxCost {
			out = append(out, item)
		}
	}
	return out
}

// ByKind returns every item of kind.
func (r *EquipmentRegistry) ByKind(kind entity.Kind) []*entity.Equipment {
	return r.byKind[kind]
}

// GetByName returns the item with the given name, or nil if not found.
func (r *EquipmentRegistry) GetByName(name string) *entity.Equipment {
	for _, item := range r.all {
		if item.Name == name {
			return item
		}
	}
	return nil
}

// All returns every item in catalog order.
func (r *EquipmentRegistry) All() []*entity.Equipment {
	return r.all
}

// Count returns the number of items in the registry.
func (r *EquipmentRegistry) Count() int {
	return len(r.all)
}
