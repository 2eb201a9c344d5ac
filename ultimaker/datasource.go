package ultimaker

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// DefaultMinInterval is the default minimum time between two poll attempts.
const DefaultMinInterval = 10 * time.Second

// DataSource maintains the most recent printer snapshot, refreshed no more
// often than the configured minimum interval. Any number of sensors may share
// one data source; concurrent refresh triggers inside an interval window
// collapse into a single network cycle.
type DataSource struct {
	client      *Client
	minInterval time.Duration

	mu          sync.Mutex
	lastAttempt time.Time
	current     *Snapshot
}

// NewDataSource creates a data source polling through the given client.
// A non-positive interval falls back to the default.
func NewDataSource(client *Client, minInterval time.Duration) *DataSource {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return &DataSource{
		client:      client,
		minInterval: minInterval,
	}
}

// Refresh polls the printer unless a poll was already attempted within the
// minimum interval, in which case the stale snapshot is retained and the call
// returns immediately. Network and parse failures never propagate: the
// printer being unreachable publishes the not-connected fallback, a slow or
// malformed endpoint simply contributes no keys this cycle.
func (ds *DataSource) Refresh(ctx context.Context) {
	ds.mu.Lock()
	if !ds.lastAttempt.IsZero() && time.Since(ds.lastAttempt) < ds.minInterval {
		ds.mu.Unlock()
		return
	}
	// Stamp the attempt before fetching so concurrent callers short-circuit
	// instead of issuing duplicate requests.
	ds.lastAttempt = time.Now()
	ds.mu.Unlock()

	snap := ds.poll(ctx)

	ds.mu.Lock()
	ds.current = snap
	ds.mu.Unlock()
}

// Latest returns the current snapshot without touching the network. It is nil
// until the first refresh and may be arbitrarily stale if failures persist.
func (ds *DataSource) Latest() *Snapshot {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.current
}

type fetchResult struct {
	data map[string]interface{}
	err  error
}

// poll fetches the three endpoints concurrently and merges them in
// printer, print_job, system order.
func (ds *DataSource) poll(ctx context.Context) *Snapshot {
	fetches := []func(context.Context) (map[string]interface{}, error){
		ds.client.FetchPrinter,
		ds.client.FetchPrintJob,
		ds.client.FetchSystem,
	}

	results := make([]fetchResult, len(fetches))
	var wg sync.WaitGroup
	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func(context.Context) (map[string]interface{}, error)) {
			defer wg.Done()
			data, err := fetch(ctx)
			results[i] = fetchResult{data: data, err: err}
		}(i, fetch)
	}
	wg.Wait()

	now := time.Now()
	payloads := make([]map[string]interface{}, 0, len(results))
	for _, res := range results {
		if res.err == nil {
			payloads = append(payloads, res.data)
			continue
		}
		if errors.Is(res.err, ErrTimeout) || errors.Is(res.err, ErrBadResponse) {
			// Endpoint contributes nothing this cycle; keep merging the rest.
			log.Printf("ultimaker: %v", res.err)
			continue
		}
		log.Printf("ultimaker: printer %s is offline: %v", ds.client.Host(), res.err)
		return NotConnectedSnapshot(now)
	}

	return NewSnapshot(now, payloads...)
}
