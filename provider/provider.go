// Package provider implements the boundary to the external text-generation
// service: an OpenAI-compatible chat-completions API consumed in streaming
// mode. OpenRouter, Groq, Ollama, and any custom OpenAI-compatible endpoint
// share the same wire format.
package provider

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// Provider IDs
// ---------------------------------------------------------------------------

const (
	ProviderOpenRouter   = "openrouter"
	ProviderGroq         = "groq"
	ProviderOllama       = "ollama"
	ProviderCustomOpenAI = "custom-openai"
)

// Error classification for the translation pipeline. A failure before any
// stream event is delivered wraps ErrConnect; a failure while consuming
// events wraps ErrStream. The caller distinguishes them with errors.Is.
var (
	ErrConnect = errors.New("provider connection failed")
	ErrStream  = errors.New("provider stream failed")
)

// Provider holds the configuration for a translation service endpoint.
type Provider struct {
	// ID is the provider identifier (openrouter, groq, ollama, custom-openai).
	ID string
	// Name is the display name.
	Name string
	// BaseURL is the API base URL.
	BaseURL string
	// APIKey is the authentication key (empty for local services).
	APIKey string
	// Model is the model identifier.
	Model string
	// Proxy is an optional HTTP/HTTPS proxy URL.
	Proxy string
	// Timeout is the request timeout; it bounds the whole streamed exchange.
	Timeout time.Duration
}

// DefaultProviders returns the pre-configured provider definitions.
func DefaultProviders() map[string]Provider {
	return map[string]Provider{
		ProviderOpenRouter: {
			ID:      ProviderOpenRouter,
			Name:    "OpenRouter",
			BaseURL: "https://openrouter.ai/api/v1",
			Model:   "google/gemini-2.5-flash-lite-preview-09-2025",
			Timeout: 300 * time.Second,
		},
		ProviderGroq: {
			ID:      ProviderGroq,
			Name:    "Groq",
			BaseURL: "https://api.groq.com/openai/v1",
			Timeout: 120 * time.Second,
		},
		ProviderOllama: {
			ID:      ProviderOllama,
			Name:    "Ollama",
			BaseURL: "http://localhost:11434/v1",
			Timeout: 300 * time.Second,
		},
		ProviderCustomOpenAI: {
			ID:      ProviderCustomOpenAI,
			Name:    "Custom OpenAI",
			Timeout: 120 * time.Second,
		},
	}
}

// Default returns the provider definition for id. Unknown IDs report
// ok=false; callers decide how to surface that.
func Default(id string) (Provider, bool) {
	p, ok := DefaultProviders()[id]
	return p, ok
}

// ---------------------------------------------------------------------------
// HTTP client with real proxy support
// ---------------------------------------------------------------------------

func makeHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	// Support both --proxy flag and HTTP_PROXY/HTTPS_PROXY env vars
	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err == nil {
			transport.Proxy = http.ProxyURL(parsed)
		}
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// ---------------------------------------------------------------------------
// Streaming chat completion
// ---------------------------------------------------------------------------

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// chatDelta is the subset of a streamed chat-completion event we consume.
type chatDelta struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// StreamChat sends a system+user message pair and consumes the streamed
// response, invoking onDelta for every non-empty content token. It returns
// the full accumulated text.
//
// There is no retry: a failed exchange is reported once and classified via
// ErrConnect or ErrStream.
func StreamChat(ctx context.Context, prov Provider, systemPrompt, userPrompt string, onDelta func(string)) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: prov.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", ErrConnect, err)
	}

	endpoint := strings.TrimRight(prov.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", ErrConnect, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("X-Title", "locflow")
	if prov.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+prov.APIKey)
	}

	client := makeHTTPClient(prov.Proxy, prov.Timeout)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnect, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("%w: status %d: %s", ErrConnect, resp.StatusCode, truncate(strings.TrimSpace(string(slurp)), 300))
	}

	return consumeStream(resp.Body, onDelta)
}

// consumeStream reads server-sent events and accumulates delta content
// until the [DONE] terminator or EOF.
func consumeStream(r io.Reader, onDelta func(string)) (string, error) {
	var acc strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" {
			continue
		}
		if payload == "[DONE]" {
			return acc.String(), nil
		}

		var ev chatDelta
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return acc.String(), fmt.Errorf("%w: malformed event: %v", ErrStream, err)
		}
		if ev.Error != nil {
			return acc.String(), fmt.Errorf("%w: %s", ErrStream, ev.Error.Message)
		}
		if len(ev.Choices) == 0 {
			continue
		}
		content := ev.Choices[0].Delta.Content
		if content == "" {
			continue
		}
		acc.WriteString(content)
		if onDelta != nil {
			onDelta(content)
		}
	}
	if err := scanner.Err(); err != nil {
		return acc.String(), fmt.Errorf("%w: %v", ErrStream, err)
	}

	return acc.String(), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	// Back up to a rune boundary so the preview stays valid UTF-8.
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
