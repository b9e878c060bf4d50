package item

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/validation"
)

//go:embed schemas/items.schema.json
var itemsSchema []byte

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")
)

// Config represents the JSON configuration for the item catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []domain.CanonicalItem `json:"items"`

	// Variants groups ids that render differently but are the same item.
	Variants [][]int `json:"variants,omitempty"`
}

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Config, error)
	LoadBytes(data []byte, origin string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	v := validation.NewSchemaValidator()
	if err := v.Register(SchemaName, itemsSchema); err != nil {
		// The schema is compiled into the binary.
		panic(fmt.Sprintf("item: embedded schema is invalid: %v", err))
	}
	return &itemLoader{schemaValidator: v}
}

// Load reads and parses an item catalog file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.LoadBytes(data, path)
}

// LoadBytes validates data against the catalog schema and decodes it.
func (l *itemLoader) LoadBytes(data []byte, origin string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, origin, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks the cross-item rules the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgNoItemsDefined)
	}

	byID := make(map[int]domain.CanonicalItem, len(config.Items))
	for i, it := range config.Items {
		if it.ID < 0 {
			return fmt.Errorf(ErrFmtItemNegativeID, domain.ErrInvalidCatalog, i)
		}
		if it.DisplayName == "" {
			return fmt.Errorf(ErrFmtItemEmptyName, domain.ErrInvalidCatalog, it.ID)
		}
		if _, dup := byID[it.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateItemID, it.ID)
		}
		byID[it.ID] = it
	}

	for _, it := range config.Items {
		if err := validateLink(it, byID); err != nil {
			return err
		}
	}

	return validateVariants(config.Variants, byID)
}

func validateLink(it domain.CanonicalItem, byID map[int]domain.CanonicalItem) error {
	if !it.IsNoted {
		return nil
	}
	if it.LinkedID == 0 {
		return fmt.Errorf(ErrFmtNotedWithoutLink, domain.ErrInvalidCatalog, it.ID)
	}
	linked, ok := byID[it.LinkedID]
	if !ok {
		return fmt.Errorf(ErrFmtLinkMissing, domain.ErrInvalidCatalog, it.ID, it.LinkedID)
	}
	if linked.IsNoted {
		return fmt.Errorf(ErrFmtLinkToNoted, domain.ErrInvalidCatalog, it.ID, it.LinkedID)
	}
	return nil
}

func validateVariants(groups [][]int, byID map[int]domain.CanonicalItem) error {
	seen := make(map[int]struct{})
	for g, group := range groups {
		if len(group) < 2 {
			return fmt.Errorf(ErrFmtVariantGroupTooSmall, domain.ErrInvalidCatalog, g)
		}
		for _, id := range group {
			if _, ok := byID[id]; !ok {
				return fmt.Errorf(ErrFmtVariantUnknown, domain.ErrInvalidCatalog, g, id)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf(ErrFmtVariantInTwoGroups, domain.ErrInvalidCatalog, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}
