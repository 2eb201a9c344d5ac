package sensor

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/Worfje/home-assistant-ultimaker/ultimaker"
)

// Sensor is one metric holder. It keeps the last derived value for a single
// sensor key and refreshes it on demand through the shared data source.
type Sensor struct {
	source    *ultimaker.DataSource
	extractor *Extractor

	name     string
	key      string
	unit     string
	icon     string
	decimals int

	mu          sync.RWMutex
	value       interface{}
	lastUpdated time.Time
}

// New creates a metric holder for the given sensor key. The display name is
// prefixed to the sensor label, matching how the host names entities.
func New(source *ultimaker.DataSource, extractor *Extractor, displayName, key string, decimals int) (*Sensor, error) {
	typ, ok := Types[key]
	if !ok {
		return nil, fmt.Errorf("unknown sensor key %q", key)
	}
	if decimals < 0 {
		return nil, fmt.Errorf("negative decimals %d for sensor %q", decimals, key)
	}
	return &Sensor{
		source:    source,
		extractor: extractor,
		name:      strings.TrimSpace(displayName + " " + typ.Label),
		key:       key,
		unit:      typ.Unit,
		icon:      typ.Icon,
		decimals:  decimals,
	}, nil
}

// Update is the host's update hook: it refreshes the data source (subject to
// its throttle) and re-derives this sensor's value from the latest snapshot.
// The last known value persists until a snapshot is available.
func (s *Sensor) Update(ctx context.Context) {
	s.source.Refresh(ctx)

	snap := s.source.Latest()
	if snap == nil {
		return
	}

	value := s.extractor.Extract(snap, s.key)

	s.mu.Lock()
	s.value = value
	s.lastUpdated = snap.SampleTime
	s.mu.Unlock()
}

// State returns the current value, rounding floats to the configured number
// of decimals. Non-numeric values pass through untouched. Internal state
// keeps full precision; rounding happens only here.
func (s *Sensor) State() interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f, ok := s.value.(float64); ok {
		return roundTo(f, s.decimals)
	}
	return s.value
}

// LastUpdated returns the capture time of the snapshot the current value was
// derived from, zero if the sensor has never updated.
func (s *Sensor) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Name returns the display name.
func (s *Sensor) Name() string { return s.name }

// Key returns the sensor key.
func (s *Sensor) Key() string { return s.key }

// Unit returns the unit of measurement, empty for unitless sensors.
func (s *Sensor) Unit() string { return s.unit }

// Icon returns the icon hint.
func (s *Sensor) Icon() string { return s.icon }

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
