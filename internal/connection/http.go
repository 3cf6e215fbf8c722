package connection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

const (
	// defaultTimeout bounds a single status fetch
	defaultTimeout = 10 * time.Second

	// overlayPortOffset maps a game port to its overlay game id. Games
	// hosted on the overlay's infrastructure listen on basePort+gameID.
	overlayPortOffset = 30000
)

// Config holds configuration for the HTTP connection client
type Config struct {
	// HTTPClient is the client used for all requests; a default is
	// created when nil
	HTTPClient *http.Client

	// OverlayHost is the hostname whose game addresses the overlay
	// service covers
	OverlayHost string

	// OverlayAPIBase is the base URL of the overlay API
	OverlayAPIBase string
}

// httpClient implements the Client interface over HTTP
type httpClient struct {
	client         *http.Client
	overlayHost    string
	overlayAPIBase string
}

// NewHTTP creates a new HTTP-backed connection client
func NewHTTP(cfg *Config) (*httpClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &httpClient{
		client:         client,
		overlayHost:    cfg.OverlayHost,
		overlayAPIBase: cfg.OverlayAPIBase,
	}, nil
}

// GetGameData fetches the current game snapshot from a remote address
func (c *httpClient) GetGameData(ctx context.Context, address string) (*GameData, error) {
	url := fmt.Sprintf("http://%s/status", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach game server %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("game server %s returned status %d", address, resp.StatusCode)
	}

	var data GameData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode game status from %s: %w", address, err)
	}

	return &data, nil
}

// overlayGameResponse is the wire shape of the overlay API
type overlayGameResponse struct {
	Nations []OverlayNation `json:"nations"`
}

// GetOverlayStatus fetches overlay data for the game at the address.
// Addresses not hosted on the overlay host yield (nil, nil).
func (c *httpClient) GetOverlayStatus(ctx context.Context, address string) (*OverlayStatus, error) {
	gameID, ok := c.overlayGameID(address)
	if !ok {
		return nil, nil
	}

	url := fmt.Sprintf("%s/games/%d", c.overlayAPIBase, gameID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build overlay request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach overlay service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overlay service returned status %d", resp.StatusCode)
	}

	var game overlayGameResponse
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		return nil, fmt.Errorf("failed to decode overlay response: %w", err)
	}

	status := &OverlayStatus{
		Nations: make(map[uint32]OverlayNation, len(game.Nations)),
	}
	for _, nation := range game.Nations {
		status.Nations[nation.NationID] = nation
	}

	return status, nil
}

// overlayGameID derives the overlay game id from a game address. Only
// addresses on the overlay host carry one.
func (c *httpClient) overlayGameID(address string) (int, bool) {
	if c.overlayHost == "" {
		return 0, false
	}

	host, portStr, err := net.SplitHostPort(address)
	if err != nil || host != c.overlayHost {
		return 0, false
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= overlayPortOffset {
		return 0, false
	}

	return port - overlayPortOffset, true
}
