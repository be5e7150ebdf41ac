// Command catalog-convert turns the spreadsheet exports of fight cards and
// equipment into a catalog file.
//
// Usage:
//
//	catalog-convert [fight-cards.csv [equipment.csv [catalog.json|catalog.yaml]]]
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/keywordfight/internal/gamedata"
)

const (
	defaultFightCards = "data/Keyword fighting - Close Combat.csv"
	defaultEquipment  = "data/Keyword fighting - Equipment.csv"
	defaultOutput     = "data/catalog.json"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("catalog-convert: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	paths := []string{defaultFightCards, defaultEquipment, defaultOutput}
	copy(paths, args)
	fightCardsPath, equipmentPath, outputPath := paths[0], paths[1], paths[2]

	fmt.Fprintf(stdout, "Loading fight cards from %s...\n", fightCardsPath)
	cards, err := readFile(fightCardsPath, readFightCards)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Loaded %d fight cards.\n", len(cards))

	fmt.Fprintf(stdout, "Loading equipment from %s...\n", equipmentPath)
	equipment, err := readFile(equipmentPath, readEquipment)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Loaded %d equipment cards.\n", len(equipment))

	content, err := gamedata.Encode(gamedata.CatalogFile{FightCards: cards, Equipment: equipment}, gamedata.FormatOf(outputPath))
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	fmt.Fprintf(stdout, "Catalog saved to %s.\n", outputPath)
	return nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// row looks cells up by column header.
type row struct {
	line    int
	columns map[string]int
	cells   []string
}

func (r row) text(header string) string {
	i, ok := r.columns[header]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// number parses a number cell; empty cells are zero. Decimal commas are
// accepted.
func (r row) number(header string) (float64, error) {
	s := strings.ReplaceAll(r.text(header), ",", ".")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d, column %q: %w", r.line, header, err)
	}
	return v, nil
}

func (r row) count(header string) (int, error) {
	v, err := r.number(header)
	return int(v), err
}

// optionalNumber is nil for an empty cell.
func (r row) optionalNumber(header string) (*float64, error) {
	if r.text(header) == "" {
		return nil, nil
	}
	v, err := r.number(header)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// readRows reads a CSV with a header line, skipping rows whose cells are all
// empty, and converts each remaining row with convert.
func readRows[T any](r io.Reader, required []string, convert func(row) (T, error)) ([]T, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var out []T
	for line := 2; ; line++ {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if isBlank(cells) {
			continue
		}
		record, err := convert(row{line: line, columns: columns, cells: cells})
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
}

func isBlank(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func readFightCards(r io.Reader) ([]gamedata.FightCardDef, error) {
	return readRows(r, []string{"atak", "obrona"}, fightCard)
}

func fightCard(r row) (gamedata.FightCardDef, error) {
	var errs []error
	num := func(header string) float64 {
		v, err := r.number(header)
		errs = append(errs, err)
		return v
	}
	whole := func(header string) int {
		v, err := r.count(header)
		errs = append(errs, err)
		return v
	}
	effectiveness := func(prefix string) gamedata.EffectivenessDef {
		return gamedata.EffectivenessDef{
			Block:         whole(prefix + "blok"),
			Repulse:       whole(prefix + "zbicie"),
			Dodge:         whole(prefix + "unik"),
			Capture:       whole(prefix + "związanie"),
			Counterattack: whole(prefix + "kontra"),
		}
	}

	def := gamedata.FightCardDef{
		Attack: gamedata.AttackDef{
			Name:           r.text("atak"),
			Description:    r.text("opis ataku"),
			HitDescription: r.text("efekt trafienia"),
			Target:         r.text("miejsce trafienia"),
			Advantage: gamedata.PowerDef{
				Bludgeoning: num("miażdżone"),
				Piercing:    num("kłute"),
				Slashing:    num("sieczne"),
			},
			Effectiveness:           effectiveness("atak: "),
			Damage:                  num("rany"),
			Stun:                    whole("ogłuszenie"),
			CounterattackResistance: whole("odporność na kontratak"),
			Strengthen:              whole("wzmocnienie x2"),
			Healing:                 num("leczenie"),
		},
		Defense: gamedata.DefenseDef{
			Name:          r.text("obrona"),
			Description:   r.text("opis obrony"),
			Effectiveness: effectiveness("obrona: "),
		},
	}
	return def, errors.Join(errs...)
}

func readEquipment(r io.Reader) ([]gamedata.EquipmentDef, error) {
	return readRows(r, []string{"typ", "nazwa", "koszt"}, equipment)
}

func equipment(r row) (gamedata.EquipmentDef, error) {
	hands, err := r.count("ręce")
	if err != nil {
		return gamedata.EquipmentDef{}, err
	}
	var power gamedata.PowerDef
	if power.Bludgeoning, err = r.number("miażdżone"); err != nil {
		return gamedata.EquipmentDef{}, err
	}
	if power.Piercing, err = r.number("kłute"); err != nil {
		return gamedata.EquipmentDef{}, err
	}
	if power.Slashing, err = r.number("sieczne"); err != nil {
		return gamedata.EquipmentDef{}, err
	}
	if power.Counterattack, err = r.optionalNumber("kontra"); err != nil {
		return gamedata.EquipmentDef{}, err
	}
	cost, err := r.number("koszt")
	if err != nil {
		return gamedata.EquipmentDef{}, err
	}
	return gamedata.EquipmentDef{
		Kind:  strings.ToLower(r.text("typ")),
		Name:  r.text("nazwa"),
		Hands: hands,
		Power: power,
		Cost:  cost,
	}, nil
}
