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

const shakespeareService = "shakespeare"

// ShakespeareClient translates text through the Funtranslations
// Shakespeare API.
type ShakespeareClient struct {
	httpClient *http.Client
	endpoint   string
	onRequest  func()
}

// ShakespeareConfig holds configuration for the Shakespeare client.
type ShakespeareConfig struct {
	BaseURL     string        // API base URL (e.g., "https://api.funtranslations.com")
	HTTPClient  *http.Client  // Custom HTTP client (optional)
	Timeout     time.Duration // Request timeout when no custom client is given (default: 10s)
	RequestHook func()        // Invoked before every outgoing request (optional)
}

// NewShakespeareClient creates a new Shakespeare translator client.
// Requests are performed against <base_url>/translate/shakespeare.json.
func NewShakespeareClient(cfg ShakespeareConfig) *ShakespeareClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &ShakespeareClient{
		httpClient: httpClient,
		endpoint:   strings.TrimSuffix(cfg.BaseURL, "/") + "/translate/shakespeare.json",
		onRequest:  cfg.RequestHook,
	}
}

// translatorResponse covers both shapes the translator returns: a success
// body carries "contents", a domain error carries "error". The two are
// decoded together and branched on explicitly.
type translatorResponse struct {
	Contents *translatorContents `json:"contents"`
	Error    *translatorError    `json:"error"`
}

type translatorContents struct {
	Translated string `json:"translated"`
	Text       string `json:"text"`
}

type translatorError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Translate requests the Shakespearean rendition of the given text.
func (c *ShakespeareClient) Translate(ctx context.Context, text string) (string, error) {
	form := url.Values{}
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &pokespeare.UpstreamError{
			Service: shakespeareService,
			Kind:    pokespeare.KindDataError,
			Message: "cannot build request",
			Cause:   err,
		}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", pokespeare.UserAgent())

	if c.onRequest != nil {
		c.onRequest()
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", &pokespeare.UpstreamError{
			Service: shakespeareService,
			Kind:    pokespeare.KindUnavailable,
			Message: "cannot send request",
			Cause:   err,
		}
	}
	defer res.Body.Close()

	if res.StatusCode >= 500 {
		return "", &pokespeare.UpstreamError{
			Service: shakespeareService,
			Kind:    pokespeare.KindServerError,
			Message: fmt.Sprintf("HTTP error: %d", res.StatusCode),
		}
	}

	// Domain errors (e.g. rate limits) arrive as 4xx with an error body,
	// so any non-5xx body is parsed.
	var body translatorResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", &pokespeare.UpstreamError{
			Service: shakespeareService,
			Kind:    pokespeare.KindDataError,
			Message: "cannot parse translator response",
			Cause:   err,
		}
	}

	switch {
	case body.Contents != nil:
		return body.Contents.Translated, nil
	case body.Error != nil:
		return "", &pokespeare.UpstreamError{
			Service: shakespeareService,
			Kind:    pokespeare.KindTranslationRejected,
			Message: body.Error.Message,
		}
	default:
		return "", &pokespeare.UpstreamError{
			Service: shakespeareService,
			Kind:    pokespeare.KindDataError,
			Message: "response carries neither contents nor error",
		}
	}
}

// Verify ShakespeareClient implements TranslationClient
var _ TranslationClient = (*ShakespeareClient)(nil)
