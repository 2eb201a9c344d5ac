package sensor

import (
	"log"
	"strconv"
	"strings"

	"github.com/Worfje/home-assistant-ultimaker/materials"
	"github.com/Worfje/home-assistant-ultimaker/ultimaker"
)

// UnknownMaterial is reported when a material GUID is not in the catalog.
const UnknownMaterial = "unknown material"

// Extractor derives a single sensor value from a snapshot. It is stateless:
// each extraction depends only on the snapshot and the sensor key.
type Extractor struct {
	catalog *materials.Catalog
}

// NewExtractor creates an extractor resolving material GUIDs through the
// given catalog.
func NewExtractor(catalog *materials.Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}

// Extract computes the current value for the given sensor key. It always
// returns a value: a missing field at any depth yields nil, never an error.
func (e *Extractor) Extract(snap *ultimaker.Snapshot, key string) interface{} {
	if snap == nil {
		if key == "status" {
			return ultimaker.StatusNotConnected
		}
		return nil
	}

	switch {
	case key == "status":
		if v, ok := snap.Field("status"); ok {
			return v
		}
		return ultimaker.StatusNotConnected

	case key == "state":
		state, ok := snap.String("state")
		if !ok {
			return nil
		}
		return strings.ReplaceAll(state, "_", " ")

	case key == "progress":
		// Reported as a 0-1 fraction, exposed as a percentage.
		if v, ok := snap.Float("progress"); ok {
			return v * 100
		}
		return float64(0)

	case strings.HasPrefix(key, "bed_"):
		return extractBed(snap, key)

	case strings.HasPrefix(key, "hotend_"):
		return extractHotend(snap, key)

	case strings.HasPrefix(key, "active_material_"):
		return e.extractMaterial(snap, key)
	}

	return nil
}

func extractBed(snap *ultimaker.Snapshot, key string) interface{} {
	switch key {
	case "bed_temperature":
		if v, ok := snap.Float("bed", "temperature", "current"); ok {
			return v
		}
	case "bed_temperature_target":
		if v, ok := snap.Float("bed", "temperature", "target"); ok {
			return v
		}
	case "bed_type":
		if v, ok := snap.Field("bed", "type"); ok {
			return v
		}
	}
	return nil
}

func extractHotend(snap *ultimaker.Snapshot, key string) interface{} {
	idx, field, ok := slot(key, "hotend_")
	if !ok {
		return nil
	}
	base := []interface{}{"heads", 0, "extruders", idx, "hotend"}

	switch field {
	case "temperature":
		if v, ok := snap.Float(append(base, "temperature", "current")...); ok {
			return v
		}
	case "temperature_target":
		if v, ok := snap.Float(append(base, "temperature", "target")...); ok {
			return v
		}
	case "id":
		if v, ok := snap.Field(append(base, "id")...); ok {
			return v
		}
	}
	return nil
}

func (e *Extractor) extractMaterial(snap *ultimaker.Snapshot, key string) interface{} {
	idx, field, ok := slot(key, "active_material_")
	if !ok {
		return nil
	}
	base := []interface{}{"heads", 0, "extruders", idx, "active_material"}

	switch field {
	case "guid":
		guid, ok := snap.String(append(base, "guid")...)
		if !ok {
			return nil
		}
		m, err := e.catalog.Lookup(guid)
		if err != nil {
			log.Printf("sensor: %v", err)
			return UnknownMaterial
		}
		return m.DisplayName()
	case "length_remaining":
		// Reported in millimetres, exposed in metres.
		if v, ok := snap.Float(append(base, "length_remaining")...); ok {
			return v / 1000
		}
	}
	return nil
}

// slot parses the 1-based slot number out of keys like "hotend_2_temperature"
// or "active_material_1_guid", returning the 0-based extruder index and the
// trailing field name.
func slot(key, prefix string) (int, string, bool) {
	parts := strings.SplitN(strings.TrimPrefix(key, prefix), "_", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 1 {
		return 0, "", false
	}
	return n - 1, parts[1], true
}
