package server

import (
	"net/http"
	"time"

	"github.com/Worfje/home-assistant-ultimaker/sensor"
	"github.com/Worfje/home-assistant-ultimaker/ultimaker"
)

func (s *Server) handleSensors(w http.ResponseWriter, r *http.Request) {
	items := make([]map[string]interface{}, 0, len(s.sensors))
	for _, sn := range s.sensors {
		sn.Update(r.Context())
		items = append(items, sensorJSON(sn))
	}

	writeJSON(w, map[string]interface{}{
		"result": items,
	})
}

func (s *Server) handleSensor(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	for _, sn := range s.sensors {
		if sn.Key() != key {
			continue
		}
		sn.Update(r.Context())
		writeJSON(w, map[string]interface{}{
			"result": sensorJSON(sn),
		})
		return
	}

	writeJSONError(w, http.StatusNotFound, "unknown sensor: "+key)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := ultimaker.StatusNotConnected
	var sampleTime interface{}

	if snap := s.source.Latest(); snap != nil {
		if v, ok := snap.String("status"); ok {
			status = v
		}
		sampleTime = snap.SampleTime.Format(time.RFC3339)
	}

	writeJSON(w, map[string]interface{}{
		"result": map[string]interface{}{
			"printer":     s.printer,
			"status":      status,
			"sample_time": sampleTime,
			"sensors":     len(s.sensors),
		},
	})
}

func sensorJSON(sn *sensor.Sensor) map[string]interface{} {
	attributes := map[string]interface{}{}
	if t := sn.LastUpdated(); !t.IsZero() {
		attributes["last_updated"] = t.Format(time.RFC3339)
	}

	return map[string]interface{}{
		"name":       sn.Name(),
		"key":        sn.Key(),
		"value":      sn.State(),
		"unit":       sn.Unit(),
		"icon":       sn.Icon(),
		"attributes": attributes,
	}
}
