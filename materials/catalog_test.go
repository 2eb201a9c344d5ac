package materials

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog()

	t.Run("known guid", func(t *testing.T) {
		m, err := catalog.Lookup("506c9f0d-e3aa-4bd4-b2d2-23e2425b1aa9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Material != "PLA" || m.Color != "Generic" || m.Brand != "Generic" {
			t.Errorf("got %+v, want Generic PLA", m)
		}
		if got := m.DisplayName(); got != "PLA - Generic" {
			t.Errorf("DisplayName = %q, want %q", got, "PLA - Generic")
		}
	})

	t.Run("uppercase guid canonicalized", func(t *testing.T) {
		m, err := catalog.Lookup(strings.ToUpper("3ee70a86-77d8-4b87-8005-e4a1bc57d2ce"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Material != "PLA" || m.Color != "Black" {
			t.Errorf("got %+v, want Ultimaker PLA Black", m)
		}
	})

	t.Run("unknown guid", func(t *testing.T) {
		_, err := catalog.Lookup("00000000-0000-0000-0000-000000000000")
		if !errors.Is(err, ErrUnknownMaterial) {
			t.Errorf("got %v, want ErrUnknownMaterial", err)
		}
	})

	t.Run("malformed guid", func(t *testing.T) {
		_, err := catalog.Lookup("definitely-not-a-uuid")
		if !errors.Is(err, ErrUnknownMaterial) {
			t.Errorf("got %v, want ErrUnknownMaterial", err)
		}
	})
}

func TestCatalogTable(t *testing.T) {
	catalog := NewCatalog()

	if catalog.Len() != len(materialList) {
		t.Errorf("catalog has %d entries for a %d entry table (duplicate or malformed GUIDs)",
			catalog.Len(), len(materialList))
	}

	for _, m := range materialList {
		if m.Material == "" || m.Color == "" || m.Brand == "" {
			t.Errorf("incomplete table entry %+v", m)
		}
		if m.Density <= 0 {
			t.Errorf("material %s has non-positive density %v", m.GUID, m.Density)
		}
	}
}
