// Package materials provides the static filament material catalog used to
// translate the GUIDs reported by the printer into readable names.
package materials

import (
	"errors"
	"fmt"

	uuid "github.com/satori/go.uuid"
)

// ErrUnknownMaterial is returned for a GUID the catalog does not know,
// including GUIDs that do not parse as a UUID at all.
var ErrUnknownMaterial = errors.New("unknown material guid")

// Material describes one filament profile.
type Material struct {
	GUID     string
	Brand    string
	Material string
	Color    string
	Version  int
	Density  float64
}

// DisplayName renders the material the way it is shown to the host,
// e.g. "PLA - Generic".
func (m Material) DisplayName() string {
	return m.Material + " - " + m.Color
}

// Catalog is an immutable GUID-indexed material table. Build it once at
// startup and share it freely; lookups are read-only.
type Catalog struct {
	byGUID map[string]Material
}

// NewCatalog builds the catalog from the built-in material table.
func NewCatalog() *Catalog {
	return newCatalog(materialList)
}

func newCatalog(list []Material) *Catalog {
	byGUID := make(map[string]Material, len(list))
	for _, m := range list {
		id, err := uuid.FromString(m.GUID)
		if err != nil {
			// A malformed table entry would be unreachable anyway.
			continue
		}
		byGUID[id.String()] = m
	}
	return &Catalog{byGUID: byGUID}
}

// Lookup resolves a material GUID, matching on the canonical lowercase UUID
// form. A miss is a defined error, never a panic.
func (c *Catalog) Lookup(guid string) (Material, error) {
	id, err := uuid.FromString(guid)
	if err != nil {
		return Material{}, fmt.Errorf("material %q: %w", guid, ErrUnknownMaterial)
	}
	m, ok := c.byGUID[id.String()]
	if !ok {
		return Material{}, fmt.Errorf("material %q: %w", guid, ErrUnknownMaterial)
	}
	return m, nil
}

// Len reports how many materials the catalog knows.
func (c *Catalog) Len() int {
	return len(c.byGUID)
}
