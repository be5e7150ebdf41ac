// Package loadout generates randomized equipment sets within a gold budget.
package loadout

import (
	"context"
	"math/rand"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/keywordfight/internal/entity"
	"github.com/samdwyer/keywordfight/internal/telemetry"
)

// Source lists purchasable equipment.
type Source interface {
	// Affordable returns the items of kind whose cost is positive and at most
	// maxCost, in catalog order.
	Affordable(kind entity.Kind, maxCost float64) []*entity.Equipment
}

// protection is the slot order before shuffling. The shield comes last so a
// two-handed weapon can cut it off.
var protection = []entity.Kind{
	entity.KindArmor,
	entity.KindHelmet,
	entity.KindBracers,
	entity.KindGreaves,
	entity.KindShield,
}

// Generator builds equipment sets from a Source.
type Generator struct {
	source Source
	rng    *rand.Rand
}

// NewGenerator creates a generator drawing randomness from rng.
func NewGenerator(source Source, rng *rand.Rand) *Generator {
	return &Generator{source: source, rng: rng}
}

// Generate spends budget on one random weapon, then walks the protective
// slots in a shuffled order buying a random affordable item for each. The
// last slot visited gets the most expensive item still affordable. Slots with
// nothing affordable are skipped. The total cost never exceeds budget.
func (g *Generator) Generate(ctx context.Context, budget float64) []*entity.Equipment {
	tracer := telemetry.Tracer("loadout")
	_, span := tracer.Start(ctx, "loadout.generate")
	defer span.End()

	gold := budget
	var items []*entity.Equipment

	hands := 1
	if weapon := g.random(entity.KindWeapon, gold); weapon != nil {
		gold -= weapon.Cost
		items = append(items, weapon)
		if weapon.TwoHanded() {
			hands = 2
		}
	}

	slots := slices.Clone(protection[:len(protection)+1-hands])
	g.rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	last := len(slots) - 1
	for i, kind := range slots {
		var item *entity.Equipment
		if i == last {
			item = Best(g.source.Affordable(kind, gold))
		} else {
			item = g.random(kind, gold)
		}
		if item == nil {
			continue
		}
		gold -= item.Cost
		items = append(items, item)
	}

	span.SetAttributes(
		attribute.Float64("budget", budget),
		attribute.Float64("spent", budget-gold),
		attribute.Int("items", len(items)),
	)
	return items
}

func (g *Generator) random(kind entity.Kind, gold float64) *entity.Equipment {
	affordable := g.source.Affordable(kind, gold)
	if len(affordable) == 0 {
		return nil
	}
	return affordable[g.rng.Intn(len(affordable))]
}

// Best returns the most expensive item, the first one on ties, or nil for an
// empty list.
func Best(items []*entity.Equipment) *entity.Equipment {
	var best *entity.Equipment
	for _, item := range items {
		if best == nil || item.Cost > best.Cost {
			best = item
		}
	}
	return best
}

// ByKind returns a copy of items ordered by slot kind.
func ByKind(items []*entity.Equipment) []*entity.Equipment {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b *entity.Equipment) int {
		return int(a.Kind) - int(b.Kind)
	})
	return sorted
}
