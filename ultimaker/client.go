package ultimaker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// DefaultRequestTimeout bounds each individual endpoint request.
const DefaultRequestTimeout = 5 * time.Second

var (
	// ErrNotConnected indicates the printer could not be reached at all.
	ErrNotConnected = errors.New("printer not reachable")
	// ErrTimeout indicates a single endpoint did not answer in time.
	ErrTimeout = errors.New("request timed out")
	// ErrBadResponse indicates a response body that is not valid JSON.
	ErrBadResponse = errors.New("unparseable response body")
)

// Client fetches status payloads from an Ultimaker printer's HTTP API.
type Client struct {
	host       string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the printer at the given host (IP or
// hostname, optionally with port).
func NewClient(host string) *Client {
	return &Client{
		host:       host,
		baseURL:    fmt.Sprintf("http://%s/api/v1", host),
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
	}
}

// Host returns the configured printer host.
func (c *Client) Host() string {
	return c.host
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// FetchPrinter fetches the printer status payload (temperatures, bed, heads).
func (c *Client) FetchPrinter(ctx context.Context) (map[string]interface{}, error) {
	return c.fetch(ctx, "printer")
}

// FetchPrintJob fetches the active print job payload (state, progress).
func (c *Client) FetchPrintJob(ctx context.Context) (map[string]interface{}, error) {
	return c.fetch(ctx, "print_job")
}

// FetchSystem fetches the system info payload.
func (c *Client) FetchSystem(ctx context.Context) (map[string]interface{}, error) {
	return c.fetch(ctx, "system")
}

func (c *Client) fetch(ctx context.Context, endpoint string) (map[string]interface{}, error) {
	u := c.baseURL + "/" + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", endpoint, ErrBadResponse)
	}

	return result, nil
}

// classifyTransportError maps a transport failure onto the error taxonomy:
// a timeout is a per-endpoint condition, anything else means the printer is
// unreachable.
func classifyTransportError(endpoint string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("fetching %s: %w", endpoint, ErrTimeout)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("fetching %s: %w", endpoint, ErrTimeout)
	}
	return fmt.Errorf("fetching %s: %w", endpoint, ErrNotConnected)
}
