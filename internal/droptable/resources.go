package droptable

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/utils"
)

//go:embed data/*.json
var bundled embed.FS

// Source supplies the raw bytes of a drop table resource.
type Source func() ([]byte, error)

// EmbeddedSource returns the bundled dataset for a drop domain.
func EmbeddedSource(d domain.DropDomain) (Source, error) {
	name, err := resourceName(d)
	if err != nil {
		return nil, err
	}
	return func() ([]byte, error) {
		data, err := bundled.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToReadDrops, name, err)
		}
		return data, nil
	}, nil
}

// FileSource reads a drop table from disk, for datasets shipped next to the binary.
// Unlike the bundled datasets, a file whose roll counts exceed utils.MaxRolls is
// rejected here instead of panicking during compilation.
func FileSource(path string) Source {
	return func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToReadDrops, path, err)
		}
		if err := checkRollBounds(data); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToReadDrops, path, err)
		}
		return data, nil
	}
}

// checkRollBounds finds records whose roll count the factorial table cannot expand.
// Unparsable input is left to the compiler, which degrades it record by record.
func checkRollBounds(data []byte) error {
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	for source, records := range raw {
		for i, msg := range records {
			var rec struct {
				Rolls *int `json:"r"`
			}
			if json.Unmarshal(msg, &rec) != nil || rec.Rolls == nil {
				continue
			}
			if *rec.Rolls > utils.MaxRolls {
				return fmt.Errorf("%w: %s[%d]: %s (got %d, max %d)",
					domain.ErrInvalidRecord, source, i, ErrContextTooManyRolls, *rec.Rolls, utils.MaxRolls)
			}
		}
	}
	return nil
}

// SourceFor returns a FileSource when path is set, otherwise the embedded dataset.
func SourceFor(d domain.DropDomain, path string) (Source, error) {
	if path != "" {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, d)
		}
		return FileSource(path), nil
	}
	return EmbeddedSource(d)
}

func resourceName(d domain.DropDomain) (string, error) {
	switch d {
	case domain.DomainNPC:
		return ResourceNPCDrops, nil
	case domain.DomainThieving:
		return ResourceThievingDrops, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownDomain, d)
	}
}

func expectedSources(d domain.DropDomain) int {
	if d == domain.DomainThieving {
		return expectedThievingSources
	}
	return expectedNPCSources
}
