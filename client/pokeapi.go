package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pokespeare/pokespeare"
)

const pokeAPIService = "pokeapi"

// PokeAPIClient fetches Pokemon species descriptions from the PokeAPI.
type PokeAPIClient struct {
	httpClient *http.Client
	baseURL    string
	onRequest  func()
}

// PokeAPIConfig holds configuration for the PokeAPI client.
type PokeAPIConfig struct {
	BaseURL     string        // API base URL (e.g., "https://pokeapi.co/api/v2")
	HTTPClient  *http.Client  // Custom HTTP client (optional)
	Timeout     time.Duration // Request timeout when no custom client is given (default: 10s)
	RequestHook func()        // Invoked before every outgoing request (optional)
}

// NewPokeAPIClient creates a new PokeAPI client.
func NewPokeAPIClient(cfg PokeAPIConfig) *PokeAPIClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &PokeAPIClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		onRequest:  cfg.RequestHook,
	}
}

// pokemonSpecies is the subset of the PokeAPI species payload we read.
type pokemonSpecies struct {
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
}

type flavorTextEntry struct {
	FlavorText string `json:"flavor_text"`
	Language   struct {
		Name string `json:"name"`
	} `json:"language"`
}

// Fetch retrieves the English description of the named Pokemon.
//
// A missing Pokemon is reported as an error matching pokespeare.ErrNotFound.
// A Pokemon without an English flavor text yields KindNoUsableContent.
func (c *PokeAPIClient) Fetch(ctx context.Context, name string) (string, error) {
	name = strings.ToLower(name)

	endpoint, err := url.JoinPath(c.baseURL, "pokemon-species", name)
	if err != nil {
		return "", &pokespeare.UpstreamError{
			Service: pokeAPIService,
			Kind:    pokespeare.KindDataError,
			Message: "invalid species URL",
			Cause:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &pokespeare.UpstreamError{
			Service: pokeAPIService,
			Kind:    pokespeare.KindDataError,
			Message: "cannot build request",
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", pokespeare.UserAgent())

	if c.onRequest != nil {
		c.onRequest()
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", &pokespeare.UpstreamError{
			Service: pokeAPIService,
			Kind:    pokespeare.KindUnavailable,
			Message: "cannot send request",
			Cause:   err,
		}
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("species %q: %w", name, pokespeare.ErrNotFound)
	case res.StatusCode >= 500:
		return "", &pokespeare.UpstreamError{
			Service: pokeAPIService,
			Kind:    pokespeare.KindServerError,
			Message: fmt.Sprintf("HTTP error: %d", res.StatusCode),
		}
	case res.StatusCode != http.StatusOK:
		// Other 4xx bodies are not species payloads; don't try to decode them.
		return "", &pokespeare.UpstreamError{
			Service: pokeAPIService,
			Kind:    pokespeare.KindUnexpectedStatus,
			Message: fmt.Sprintf("unexpected status: %d", res.StatusCode),
		}
	}

	var species pokemonSpecies
	if err := json.NewDecoder(res.Body).Decode(&species); err != nil {
		return "", &pokespeare.UpstreamError{
			Service: pokeAPIService,
			Kind:    pokespeare.KindDataError,
			Message: "cannot parse species response",
			Cause:   err,
		}
	}

	// Select the first English flavor text available.
	for _, entry := range species.FlavorTextEntries {
		if entry.Language.Name == "en" {
			return entry.FlavorText, nil
		}
	}

	return "", &pokespeare.UpstreamError{
		Service: pokeAPIService,
		Kind:    pokespeare.KindNoUsableContent,
		Message: "no description available",
	}
}

// Verify PokeAPIClient implements DescriptionClient
var _ DescriptionClient = (*PokeAPIClient)(nil)
