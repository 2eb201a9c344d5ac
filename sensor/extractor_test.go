package sensor

import (
	"testing"
	"time"

	"github.com/Worfje/home-assistant-ultimaker/materials"
	"github.com/Worfje/home-assistant-ultimaker/ultimaker"
)

func testExtractor() *Extractor {
	return NewExtractor(materials.NewCatalog())
}

// fullSnapshot mimics a merged poll of a dual-extruder printer mid-print.
func fullSnapshot() *ultimaker.Snapshot {
	return ultimaker.NewSnapshot(time.Now(), map[string]interface{}{
		"status":   "printing",
		"state":    "pre_print",
		"progress": 0.37,
		"bed": map[string]interface{}{
			"type": "glass",
			"temperature": map[string]interface{}{
				"current": 59.7,
				"target":  60.0,
			},
		},
		"heads": []interface{}{
			map[string]interface{}{
				"extruders": []interface{}{
					map[string]interface{}{
						"hotend": map[string]interface{}{
							"id": "AA 0.4",
							"temperature": map[string]interface{}{
								"current": 209.8,
								"target":  210.0,
							},
						},
						"active_material": map[string]interface{}{
							"guid":             "3ee70a86-77d8-4b87-8005-e4a1bc57d2ce",
							"length_remaining": 12345.0,
						},
					},
					map[string]interface{}{
						"hotend": map[string]interface{}{
							"id": "BB 0.4",
							"temperature": map[string]interface{}{
								"current": 34.1,
								"target":  0.0,
							},
						},
						"active_material": map[string]interface{}{
							"guid":             "506c9f0d-e3aa-4bd4-b2d2-23e2425b1aa9",
							"length_remaining": 4500.0,
						},
					},
				},
			},
		},
	})
}

func TestExtract(t *testing.T) {
	e := testExtractor()
	snap := fullSnapshot()

	tests := []struct {
		key  string
		want interface{}
	}{
		{"status", "printing"},
		{"state", "pre print"},
		{"progress", 37.0},
		{"bed_temperature", 59.7},
		{"bed_temperature_target", 60.0},
		{"bed_type", "glass"},
		{"hotend_1_temperature", 209.8},
		{"hotend_1_temperature_target", 210.0},
		{"hotend_1_id", "AA 0.4"},
		{"hotend_2_temperature", 34.1},
		{"hotend_2_temperature_target", 0.0},
		{"hotend_2_id", "BB 0.4"},
		{"active_material_1_guid", "PLA - Black"},
		{"active_material_1_length_remaining", 12.345},
		{"active_material_2_guid", "PLA - Generic"},
		{"active_material_2_length_remaining", 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := e.Extract(snap, tt.key); got != tt.want {
				t.Errorf("Extract(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestExtractDefaults(t *testing.T) {
	e := testExtractor()
	empty := ultimaker.NewSnapshot(time.Now())

	t.Run("status defaults to not connected", func(t *testing.T) {
		if got := e.Extract(empty, "status"); got != ultimaker.StatusNotConnected {
			t.Errorf("got %v, want %q", got, ultimaker.StatusNotConnected)
		}
	})

	t.Run("state defaults to nil", func(t *testing.T) {
		if got := e.Extract(empty, "state"); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("progress defaults to zero", func(t *testing.T) {
		if got := e.Extract(empty, "progress"); got != 0.0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("nil snapshot", func(t *testing.T) {
		if got := e.Extract(nil, "status"); got != ultimaker.StatusNotConnected {
			t.Errorf("status on nil snapshot = %v, want %q", got, ultimaker.StatusNotConnected)
		}
		if got := e.Extract(nil, "bed_temperature"); got != nil {
			t.Errorf("bed_temperature on nil snapshot = %v, want nil", got)
		}
	})
}

func TestExtractMissingStructures(t *testing.T) {
	e := testExtractor()

	t.Run("missing bed", func(t *testing.T) {
		snap := ultimaker.NewSnapshot(time.Now(), map[string]interface{}{"status": "idle"})
		for _, key := range []string{"bed_temperature", "bed_temperature_target", "bed_type"} {
			if got := e.Extract(snap, key); got != nil {
				t.Errorf("Extract(%q) without bed = %v, want nil", key, got)
			}
		}
	})

	t.Run("missing extruder slot", func(t *testing.T) {
		// Single-extruder printer: slot 2 does not exist.
		snap := ultimaker.NewSnapshot(time.Now(), map[string]interface{}{
			"heads": []interface{}{
				map[string]interface{}{
					"extruders": []interface{}{
						map[string]interface{}{
							"hotend": map[string]interface{}{"id": "AA 0.4"},
						},
					},
				},
			},
		})
		for _, key := range []string{"hotend_2_temperature", "hotend_2_id", "active_material_2_guid", "active_material_2_length_remaining"} {
			if got := e.Extract(snap, key); got != nil {
				t.Errorf("Extract(%q) without second extruder = %v, want nil", key, got)
			}
		}
	})

	t.Run("missing heads", func(t *testing.T) {
		snap := ultimaker.NewSnapshot(time.Now(), map[string]interface{}{"status": "idle"})
		if got := e.Extract(snap, "hotend_1_temperature"); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

func TestExtractUnknownMaterial(t *testing.T) {
	e := testExtractor()
	snap := ultimaker.NewSnapshot(time.Now(), map[string]interface{}{
		"heads": []interface{}{
			map[string]interface{}{
				"extruders": []interface{}{
					map[string]interface{}{
						"active_material": map[string]interface{}{
							"guid": "11111111-2222-3333-4444-555555555555",
						},
					},
				},
			},
		},
	})

	if got := e.Extract(snap, "active_material_1_guid"); got != UnknownMaterial {
		t.Errorf("got %v, want %q", got, UnknownMaterial)
	}
}

func TestExtractNotConnectedSnapshot(t *testing.T) {
	e := testExtractor()
	snap := ultimaker.NotConnectedSnapshot(time.Now())

	if got := e.Extract(snap, "status"); got != ultimaker.StatusNotConnected {
		t.Errorf("status = %v, want %q", got, ultimaker.StatusNotConnected)
	}
	// Every other sensor degrades to its absent value without erroring.
	for _, key := range Keys() {
		if key == "status" || key == "progress" {
			continue
		}
		if got := e.Extract(snap, key); got != nil {
			t.Errorf("Extract(%q) on fallback snapshot = %v, want nil", key, got)
		}
	}
	if got := e.Extract(snap, "progress"); got != 0.0 {
		t.Errorf("progress on fallback snapshot = %v, want 0", got)
	}
}
