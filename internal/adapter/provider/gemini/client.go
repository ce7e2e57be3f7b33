// Package gemini calls the Google Generative Language REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/heartmarshall/ainotes/internal/config"
	"github.com/heartmarshall/ainotes/internal/domain"
)

// DefaultBaseURL is the public v1beta endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// maxErrorBody bounds how much of a failed response is read for the message.
const maxErrorBody = 64 << 10

// ErrNoAPIKey is returned when no API key is configured.
var ErrNoAPIKey = errors.New("GEMINI_API_KEY is not set")

// Client is a thin Gemini REST client. It applies no timeout of its own:
// the caller's context bounds every request.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.GeminiConfig, logger *slog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    base,
		httpClient: &http.Client{},
		log:        logger.With("adapter", "gemini"),
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

// CheckConfigured reports ErrNoAPIKey when no key is set. It makes no
// network call, so it is cheap enough for health probes.
func (c *Client) CheckConfigured(context.Context) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}
	return nil
}

// GenerateText sends a single-turn prompt and returns the text of the first
// candidate. Every failure wraps domain.ErrExternalService.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrExternalService, ErrNoAPIKey)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []apiContent{{Role: "user", Parts: []apiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	reqURL := c.baseURL + "/" + modelPath(c.model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	c.log.DebugContext(ctx, "gemini request", slog.String("model", c.model), slog.Int("prompt_len", len(prompt)))

	var out generateResponse
	if err := c.do(req, &out); err != nil {
		c.log.WarnContext(ctx, "gemini request failed", slog.String("model", c.model), slog.String("error", err.Error()))
		return "", err
	}

	if len(out.Candidates) == 0 {
		if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked: %s", domain.ErrExternalService, out.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: response has no candidates", domain.ErrExternalService)
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response (finish reason %s)", domain.ErrExternalService, out.Candidates[0].FinishReason)
	}

	c.log.DebugContext(ctx, "gemini response", slog.String("model", c.model), slog.Int("text_len", len(text)))
	return text, nil
}

// ListModels returns the names of models that support generateContent,
// following pagination until exhausted. A page token seen before ends the
// listing with an error.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrExternalService, ErrNoAPIKey)
	}

	names := make([]string, 0)
	seen := make(map[string]struct{})
	pageToken := ""
	for {
		q := url.Values{}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		reqURL := c.baseURL + "/models"
		if len(q) > 0 {
			reqURL += "?" + q.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("gemini: create request: %w", err)
		}
		req.Header.Set("x-goog-api-key", c.apiKey)

		var page listModelsResponse
		if err := c.do(req, &page); err != nil {
			return nil, err
		}

		for _, m := range page.Models {
			if slices.Contains(m.SupportedGenerationMethods, "generateContent") {
				names = append(names, m.Name)
			}
		}

		if page.NextPageToken == "" {
			return names, nil
		}
		if _, ok := seen[page.NextPageToken]; ok {
			return nil, fmt.Errorf("%w: list models: page token %q repeated", domain.ErrExternalService, page.NextPageToken)
		}
		seen[page.NextPageToken] = struct{}{}
		pageToken = page.NextPageToken
	}
}

// do executes req and decodes a 2xx JSON body into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s", domain.ErrExternalService, errorMessage(resp.StatusCode, raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode json: %w", domain.ErrExternalService, err)
	}
	return nil
}

func errorMessage(status int, body []byte) string {
	var env apiErrorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		if env.Error.Status != "" {
			return fmt.Sprintf("%d %s: %s", status, env.Error.Status, env.Error.Message)
		}
		return fmt.Sprintf("%d: %s", status, env.Error.Message)
	}
	return fmt.Sprintf("unexpected status %d", status)
}

func modelPath(model string) string {
	if strings.HasPrefix(model, "models/") || strings.HasPrefix(model, "tunedModels/") {
		return model
	}
	return "models/" + model
}
