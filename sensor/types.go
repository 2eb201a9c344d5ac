// Package sensor derives typed sensor values from printer snapshots and owns
// the per-sensor presentation state the host reads back.
package sensor

// UnitCelsius is the temperature unit reported for bed and hotend sensors.
const UnitCelsius = "°C"

// Type is the static definition of one exposed sensor.
type Type struct {
	Label string
	Unit  string
	Icon  string
}

// Types maps each supported sensor key to its definition.
var Types = map[string]Type{
	"status":                             {Label: "Printer status", Unit: "", Icon: "mdi:printer-3d"},
	"state":                              {Label: "Print job state", Unit: "", Icon: "mdi:printer-3d-nozzle"},
	"progress":                           {Label: "Print job progress", Unit: "%", Icon: "mdi:progress-clock"},
	"bed_temperature":                    {Label: "Bed temperature", Unit: UnitCelsius, Icon: "mdi:thermometer"},
	"bed_temperature_target":             {Label: "Bed temperature target", Unit: UnitCelsius, Icon: "mdi:thermometer"},
	"bed_type":                           {Label: "Bed type", Unit: "", Icon: "mdi:layers"},
	"hotend_1_temperature":               {Label: "Hotend 1 temperature", Unit: UnitCelsius, Icon: "mdi:thermometer"},
	"hotend_1_temperature_target":        {Label: "Hotend 1 temperature target", Unit: UnitCelsius, Icon: "mdi:thermometer"},
	"hotend_1_id":                        {Label: "Hotend 1 id", Unit: "", Icon: "mdi:printer-3d-nozzle-outline"},
	"hotend_2_temperature":               {Label: "Hotend 2 temperature", Unit: UnitCelsius, Icon: "mdi:thermometer"},
	"hotend_2_temperature_target":        {Label: "Hotend 2 temperature target", Unit: UnitCelsius, Icon: "mdi:thermometer"},
	"hotend_2_id":                        {Label: "Hotend 2 id", Unit: "", Icon: "mdi:printer-3d-nozzle-outline"},
	"active_material_1_guid":             {Label: "Filament 1 type", Unit: "", Icon: "mdi:tape-drive"},
	"active_material_1_length_remaining": {Label: "Filament 1 length remaining", Unit: "m", Icon: "mdi:tape-drive"},
	"active_material_2_guid":             {Label: "Filament 2 type", Unit: "", Icon: "mdi:tape-drive"},
	"active_material_2_length_remaining": {Label: "Filament 2 length remaining", Unit: "m", Icon: "mdi:tape-drive"},
}

// orderedKeys fixes the order sensors are listed in (config defaults, API
// responses); map iteration order would jitter between runs.
var orderedKeys = []string{
	"status",
	"state",
	"progress",
	"bed_temperature",
	"bed_temperature_target",
	"bed_type",
	"hotend_1_temperature",
	"hotend_1_temperature_target",
	"hotend_1_id",
	"hotend_2_temperature",
	"hotend_2_temperature_target",
	"hotend_2_id",
	"active_material_1_guid",
	"active_material_1_length_remaining",
	"active_material_2_guid",
	"active_material_2_length_remaining",
}

// Keys returns all supported sensor keys in stable order.
func Keys() []string {
	return append([]string(nil), orderedKeys...)
}

// IsValid reports whether key names a supported sensor.
func IsValid(key string) bool {
	_, ok := Types[key]
	return ok
}
