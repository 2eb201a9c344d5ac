package ultimaker

import (
	"time"
)

// StatusNotConnected is the status value published when the printer is
// unreachable.
const StatusNotConnected = "not connected"

// Snapshot is the merged result of one polling cycle across the printer,
// print_job and system endpoints. A snapshot is published once and never
// mutated afterwards; callers may hold on to it across cycles.
type Snapshot struct {
	data map[string]interface{}

	// SampleTime is when the poll that produced this snapshot completed.
	SampleTime time.Time
}

// NewSnapshot merges the given payloads into a snapshot. Payloads are applied
// in order with a full-map overwrite, so on a key collision the last payload
// that defines the key wins (printer, then print_job, then system). Nil
// payloads contribute no keys.
func NewSnapshot(at time.Time, payloads ...map[string]interface{}) *Snapshot {
	data := make(map[string]interface{})
	for _, p := range payloads {
		for k, v := range p {
			data[k] = v
		}
	}
	return &Snapshot{data: data, SampleTime: at}
}

// NotConnectedSnapshot is the fallback published when the printer cannot be
// reached at all.
func NotConnectedSnapshot(at time.Time) *Snapshot {
	return NewSnapshot(at, map[string]interface{}{"status": StatusNotConnected})
}

// Field walks a path of map keys (string) and list indexes (int) into the
// snapshot. It returns false at the first missing key, out-of-range index,
// null value or type mismatch, so callers never have to guard the traversal
// themselves.
func (s *Snapshot) Field(path ...interface{}) (interface{}, bool) {
	var cur interface{} = s.data
	for _, step := range path {
		switch step := step.(type) {
		case string:
			m, ok := cur.(map[string]interface{})
			if !ok {
				return nil, false
			}
			cur, ok = m[step]
			if !ok {
				return nil, false
			}
		case int:
			list, ok := cur.([]interface{})
			if !ok || step < 0 || step >= len(list) {
				return nil, false
			}
			cur = list[step]
		default:
			return nil, false
		}
		if cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Float is Field for numeric values, accepting the numeric types a JSON
// decode can produce.
func (s *Snapshot) Float(path ...interface{}) (float64, bool) {
	v, ok := s.Field(path...)
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	}
	return 0, false
}

// String is Field for string values.
func (s *Snapshot) String(path ...interface{}) (string, bool) {
	v, ok := s.Field(path...)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}
