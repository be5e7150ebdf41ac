package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/keywordfight/internal/entity"
)

func TestLoadDefaultCatalog(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	if len(catalog.FightCards) != 12 {
		t.Errorf("Expected 12 fight cards, got %d", len(catalog.FightCards))
	}
	if len(catalog.Skipped) != 0 {
		t.Errorf("Expected nothing skipped, got %v", catalog.Skipped)
	}

	for _, kind := range []entity.Kind{entity.KindWeapon, entity.KindShield, entity.KindArmor, entity.KindHelmet, entity.KindBracers, entity.KindGreaves} {
		if len(catalog.Equipment.ByKind(kind)) == 0 {
			t.Errorf("No %v in the default catalog", kind)
		}
	}

	spear := catalog.Equipment.GetByName("Spear")
	if spear == nil {
		t.Fatal("Spear not found by name")
	}
	if !spear.TwoHanded() {
		t.Error("Spear should be two-handed")
	}
	if got := spear.Power.CounterattackOr(-1); got != 2 {
		t.Errorf("Spear counterattack = %v, want 2", got)
	}
}

func TestEquipmentRegistryAffordable(t *testing.T) {
	registry := NewEquipmentRegistry([]*entity.Equipment{
		{Kind: entity.KindHelmet, Name: "Free hood", Cost: 0},
		{Kind: entity.KindHelmet, Name: "Leather cap", Cost: 1},
		{Kind: entity.KindHelmet, Name: "Kettle hat", Cost: 4},
		{Kind: entity.KindArmor, Name: "Gambeson", Cost: 4},
	})

	got := registry.Affordable(entity.KindHelmet, 4)
	if len(got) != 2 || got[0].Name != "Leather cap" || got[1].Name != "Kettle hat" {
		t.Errorf("Affordable(helmet, 4) = %v, want [Leather cap, Kettle hat]", got)
	}
	if got := registry.Affordable(entity.KindHelmet, 0.5); len(got) != 0 {
		t.Errorf("Affordable(helmet, 0.5) = %v, want none", got)
	}
	if registry.Count() != 4 {
		t.Errorf("Count() = %d, want 4", registry.Count())
	}
	if registry.GetByName("Pavise") != nil {
		t.Error("GetByName() found a missing item")
	}
}

const yamlCatalog = `
fightCards:
  - attack:
      name: Thrust
      description: A straight stab
      target: głowa
      advantage: {bludgeoning: 0, piercing: 0.5, slashing: 0}
      effectiveness: {block: -1, repulse: 1}
      damage: 7
    defense:
      name: Parry
      description: Knock it aside
      effectiveness: {block: 1}
equipment:
  - kind: weapon
    name: Javelin
    hands: 2
    power: {bludgeoning: 1, piercing: 1.5, slashing: 1, counterattack: 2}
    cost: 5
  - kind: armor
    name: Brigandine
    power: {bludgeoning: 3, piercing: 3, slashing: 4}
    cost: 30
  - kind: wand
    name: Twig
    power: {bludgeoning: 0, piercing: 0, slashing: 0}
    cost: 1
`

func TestLoadYAMLCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(yamlCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	if len(catalog.FightCards) != 1 {
		t.Fatalf("Expected 1 fight card, got %d", len(catalog.FightCards))
	}
	attack := catalog.FightCards[0].Attack
	if attack.Target != entity.TargetHead {
		t.Errorf("Target = %v, want head", attack.Target)
	}
	if attack.Effectiveness != (entity.Effectiveness{Block: -1, Repulse: 1}) {
		t.Errorf("Effectiveness = %+v", attack.Effectiveness)
	}

	if catalog.Equipment.Count() != 2 {
		t.Errorf("Expected 2 items, got %d", catalog.Equipment.Count())
	}
	if len(catalog.Skipped) != 1 {
		t.Errorf("Expected the wand to be skipped, got %v", catalog.Skipped)
	}
	if armor := catalog.Equipment.GetByName("Brigandine"); armor == nil || armor.Hands != 0 {
		t.Errorf("Brigandine = %+v, want an armor piece without hands", armor)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(broken, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(empty, []byte(`{"fightCards": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.json"), broken, empty} {
		if _, err := LoadCatalog(path); err == nil {
			t.Errorf("LoadCatalog(%s) error = nil", filepath.Base(path))
		}
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"cards.json": FormatJSON,
		"cards.YAML": FormatYAML,
		"cards.yml":  FormatYAML,
		"cards":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestEquipmentDefDefaultsHands(t *testing.T) {
	weapon, err := EquipmentDef{Kind: "Weapon", Name: "Club"}.Equipment()
	if err != nil {
		t.Fatalf("Equipment() error = %v", err)
	}
	if weapon.Hands != 1 {
		t.Errorf("Hands = %d, want 1", weapon.Hands)
	}
	shield, err := EquipmentDef{Kind: "shield", Name: "Buckler", Hands: 1}.Equipment()
	if err != nil {
		t.Fatalf("Equipment() error = %v", err)
	}
	if shield.Hands != 0 {
		t.Errorf("Hands = %d, want 0 for a shield", shield.Hands)
	}
}
