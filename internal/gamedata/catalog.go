package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/keywordfight/internal/entity"
)

// DefaultCatalogFile is the embedded catalog.
const DefaultCatalogFile = "catalog.json"

// CatalogFile represents the structure of a catalog file.
type CatalogFile struct {
	FightCards []FightCardDef `json:"fightCards" yaml:"fightCards"`
	Equipment  []EquipmentDef `json:"equipment" yaml:"equipment"`
}

// Catalog is a decoded catalog ready for a match.
type Catalog struct {
	FightCards []*entity.FightCard
	Equipment  *EquipmentRegistry
	// Skipped lists equipment dropped while decoding, with the reason.
	Skipped []string
}

// NewCatalog decodes every definition. Equipment of an unknown kind is
// skipped and reported rather than failing the load.
func NewCatalog(file CatalogFile) *Catalog {
	cards := make([]*entity.FightCard, 0, len(file.FightCards))
	for _, def := range file.FightCards {
		cards = append(cards, def.FightCard())
	}

	var items []*entity.Equipment
	var skipped []string
	for _, def := range file.Equipment {
		item, err := def.Equipment()
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", def.Name, err))
			continue
		}
		items = append(items, item)
	}

	return &Catalog{
		FightCards: cards,
		Equipment:  NewEquipmentRegistry(items),
		Skipped:    skipped,
	}
}

// LoadCatalog loads the catalog at path, or the embedded default when path
// is empty.
func LoadCatalog(path string) (*Catalog, error) {
	var (
		file CatalogFile
		err  error
	)
	if path == "" {
		file, err = Load[CatalogFile](DefaultCatalogFile)
	} else {
		file, err = LoadFile[CatalogFile](path)
	}
	if err != nil {
		return nil, err
	}
	if len(file.FightCards) == 0 {
		return nil, errors.New("catalog has no fight cards")
	}
	return NewCatalog(file), nil
}

// MustLoadCatalog loads the embedded catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog("")
	if err != nil {
		panic(err)
	}
	return catalog
}
