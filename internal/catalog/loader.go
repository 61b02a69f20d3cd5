package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/validation"
)

//go:embed content/catalog.yaml content/catalog.schema.json
var content embed.FS

const (
	defaultCatalogFile = "content/catalog.yaml"
	schemaFile         = "content/catalog.schema.json"
)

// ErrInvalidCatalog is returned when content fails schema or consistency checks.
var ErrInvalidCatalog = errors.New("invalid catalog")

var schemaValidator = validation.NewSchemaValidator(content)

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	data, err := content.ReadFile(defaultCatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}
	return Parse(data)
}

// MustDefault is Default for tests and static initialization.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog YAML file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes, schema-validates and consistency-checks catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalidCatalog, err)
	}

	// The schema validator works on JSON values, so round-trip through JSON.
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to convert to JSON: %v", ErrInvalidCatalog, err)
	}
	if err := schemaValidator.ValidateBytes(asJSON, schemaFile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog: %v", ErrInvalidCatalog, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks cross-references the schema cannot express.
func (c *Catalog) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidCatalog}, args...)...))
	}

	seenClass := make(map[domain.Class]bool)
	for _, cl := range c.Classes {
		if seenClass[cl.ID] {
			add("duplicate class %q", cl.ID)
		}
		seenClass[cl.ID] = true
	}

	seenZone := make(map[int]bool)
	for _, z := range c.Zones {
		if seenZone[z.ID] {
			add("duplicate zone %d", z.ID)
		}
		seenZone[z.ID] = true
	}

	for _, t := range domain.ItemTypes() {
		if len(c.ItemTemplates[t][domain.RarityCommon]) == 0 {
			add("item type %q has no common templates", t)
		}
	}

	for _, r := range domain.Rarities() {
		if _, ok := c.SellPrices[r]; !ok {
			add("missing sell price for %q", r)
		}
		if _, hasNext := r.Next(); hasNext {
			if _, ok := c.UpgradeCosts[r]; !ok {
				add("missing upgrade cost for %q", r)
			}
		}
	}

	seenExp := make(map[string]bool)
	for _, e := range c.Expeditions {
		if seenExp[e.ID] {
			add("duplicate expedition %q", e.ID)
		}
		seenExp[e.ID] = true
		for _, r := range [][]int{e.Gold, e.XP, e.Crystals} {
			if lo, hi := Bounds(r); lo > hi {
				add("expedition %q has an inverted range", e.ID)
			}
		}
	}

	wheelWeight := 0
	for _, p := range c.Wheel {
		wheelWeight += p.Weight
		if p.Kind == domain.PrizeItem && !p.Rarity.Valid() {
			add("wheel prize %q needs a rarity", p.ID)
		}
	}
	if wheelWeight == 0 {
		add("wheel has no weighted prizes")
	}

	questTypes := make(map[domain.QuestType]bool)
	for _, q := range c.Quests {
		questTypes[q.Type] = true
		if q.TargetMin > q.TargetMax {
			add("quest %q has an inverted target range", q.Type)
		}
	}
	if c.Rules.QuestsPerDay > len(questTypes) {
		add("quests_per_day %d exceeds distinct quest types %d", c.Rules.QuestsPerDay, len(questTypes))
	}

	if len(c.Tower.MonsterNames) == 0 || len(c.Tower.BossNames) == 0 {
		add("tower needs monster and boss names")
	}

	return errors.Join(errs...)
}
