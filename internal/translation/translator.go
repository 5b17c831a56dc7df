package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"codeberg.org/snonux/linguist/internal/language"
)

// DefaultEndpoint is the Google Cloud Translation v2 endpoint
const DefaultEndpoint = "https://translation.googleapis.com/language/translate/v2"

// ErrTranslationFailed is matched by every error returned from Translate
var ErrTranslationFailed = errors.New("translation failed")

// Translator translates a text between two languages
type Translator interface {
	Translate(ctx context.Context, text string, source, target language.Code) (string, error)
}

// Client talks to the Google Cloud Translation v2 HTTP API
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithEndpoint overrides the API endpoint
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new client holding apiKey
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Q      string `json:"q"`
	Source string `json:"source,omitempty"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type response struct {
	Data *struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate translates text from source into target. A source of
// language.Auto lets the service detect the language.
func (c *Client) Translate(ctx context.Context, text string, source, target language.Code) (string, error) {
	if c.apiKey == "" {
		return "", fail(errors.New("API key not configured"))
	}

	body := request{
		Q:      text,
		Target: string(target),
		Format: "text",
	}
	if source != language.Auto {
		body.Source = string(source)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fail(fmt.Errorf("encode request: %w", err))
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fail(fmt.Errorf("parse endpoint: %w", err))
	}
	query := u.Query()
	query.Set("key", c.apiKey)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return "", fail(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fail(fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fail(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(detail)))
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fail(fmt.Errorf("decode response: %w", err))
	}
	if decoded.Data == nil || len(decoded.Data.Translations) == 0 {
		return "", fail(errors.New("response contains no translations"))
	}

	return decoded.Data.Translations[0].TranslatedText, nil
}

func fail(err error) error {
	return fmt.Errorf("%w: %w", ErrTranslationFailed, err)
}
