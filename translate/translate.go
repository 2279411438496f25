// Package translate implements the core translation pipeline for one
// localization dataset: splitting it into provider-safe chunks, driving the
// streamed provider exchange per chunk, extracting the structured payload
// from the noisy response, and merging chunk results back into one dataset.
package translate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/locflow/locflow/chunker"
	"github.com/locflow/locflow/langmeta"
	"github.com/locflow/locflow/provider"
	"github.com/locflow/locflow/store"
)

// DefaultSystemPrompt is the fixed directive sent with every chunk. The
// {{sourceLang}} and {{targetLang}} placeholders are substituted with
// English language names before use.
const DefaultSystemPrompt = `You are a professional game localization translator. You master {{sourceLang}} and {{targetLang}}.
Translate all {{sourceLang}} text values in the following JSON object to {{targetLang}} accurately, not missing any {{sourceLang}} word, maintaining the game's tone and context.
Preserve every key exactly as given. Respond with only the JSON object, do not add any extra explanation or markdown fences.`

// rawPreviewLen bounds how much raw response text a decode failure carries.
const rawPreviewLen = 200

// progressTailLen bounds the streamed-text tail surfaced to OnProgress.
const progressTailLen = 30

// Options controls the translation behavior.
type Options struct {
	// Provider is the translation service configuration.
	Provider provider.Provider
	// SourceLang and TargetLang are language codes (e.g. "zh", "vi").
	SourceLang string
	TargetLang string
	// ChunkBudget is the maximum serialized chunk size in bytes
	// (0 = chunker.DefaultBudget).
	ChunkBudget int
	// SystemPrompt overrides the default directive. The same placeholders
	// are substituted.
	SystemPrompt string
	// OnProgress is called with the current chunk, chunk count, and the
	// tail of the accumulated streamed text. Observability only.
	OnProgress func(chunk, total int, tail string)
	// OnLog emits informational messages during translation.
	OnLog func(format string, args ...any)
	// OnError emits error messages during translation.
	OnError func(format string, args ...any)
}

func (o *Options) log(format string, args ...any) {
	if o.OnLog != nil {
		o.OnLog(format, args...)
	}
}

func (o *Options) logError(format string, args ...any) {
	if o.OnError != nil {
		o.OnError(format, args...)
	} else if o.OnLog != nil {
		o.OnLog(format, args...)
	}
}

func (o *Options) progress(chunk, total int, tail string) {
	if o.OnProgress != nil {
		o.OnProgress(chunk, total, tail)
	}
}

func (o *Options) effectiveBudget() int {
	if o.ChunkBudget > 0 {
		return o.ChunkBudget
	}
	return chunker.DefaultBudget
}

// resolvedPrompt returns the system prompt with language placeholders
// replaced.
func (o *Options) resolvedPrompt() string {
	prompt := o.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}
	prompt = strings.ReplaceAll(prompt, "{{sourceLang}}", langmeta.PromptName(o.SourceLang))
	prompt = strings.ReplaceAll(prompt, "{{targetLang}}", langmeta.PromptName(o.TargetLang))
	return prompt
}

// ---------------------------------------------------------------------------
// Response extraction
// ---------------------------------------------------------------------------

// Extract isolates the structured payload embedded in a raw streamed
// response and parses it into a dataset. Providers routinely wrap the JSON
// object in prose or markdown fences; the substring between the first '{'
// and the last '}' is taken as the candidate payload.
//
// Extract never panics on malformed input: every unusable response becomes
// a *DecodeError.
func Extract(raw string) (*store.Store, error) {
	text := strings.TrimSpace(raw)
	i1 := strings.Index(text, "{")
	i2 := strings.LastIndex(text, "}")
	if i1 == -1 || i2 == -1 || i2 < i1 {
		return nil, &DecodeError{
			Raw: truncate(text, rawPreviewLen),
			Err: errors.New("no JSON object found in response"),
		}
	}

	s, err := store.Parse([]byte(text[i1 : i2+1]))
	if err != nil {
		return nil, &DecodeError{Raw: truncate(text, rawPreviewLen), Err: err}
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Chunk translation
// ---------------------------------------------------------------------------

// translateChunk sends one chunk to the provider and reassembles the
// streamed response into a translated dataset. The chunk index and total
// feed progress reporting only. All failures come back as *ChunkError.
func translateChunk(ctx context.Context, chunk *store.Store, chunkNum, totalChunks int, opts Options) (*store.Store, error) {
	payload, err := chunk.Marshal()
	if err != nil {
		return nil, &ChunkError{Chunk: chunkNum, Total: totalChunks, Kind: FailDecode, Err: err}
	}

	opts.log("Chunk %d/%d (%.2fMB, %d entries)...", chunkNum, totalChunks, float64(len(payload))/(1024*1024), chunk.Len())

	text, err := provider.StreamChat(ctx, opts.Provider, opts.resolvedPrompt(), string(payload), func(delta string) {
		opts.progress(chunkNum, totalChunks, tail(delta))
	})
	if err != nil {
		kind := FailNetwork
		if errors.Is(err, provider.ErrStream) {
			kind = FailStream
		}
		return nil, &ChunkError{Chunk: chunkNum, Total: totalChunks, Kind: kind, Err: err}
	}

	result, err := Extract(text)
	if err != nil {
		return nil, &ChunkError{Chunk: chunkNum, Total: totalChunks, Kind: FailDecode, Err: err}
	}

	// The provider must echo the key set it was sent. A renamed, dropped,
	// or invented key makes the whole chunk unusable.
	if err := verifyKeySet(chunk, result); err != nil {
		return nil, &ChunkError{Chunk: chunkNum, Total: totalChunks, Kind: FailDecode, Err: err}
	}

	return result, nil
}

// verifyKeySet checks that the translated dataset covers exactly the keys
// that were sent.
func verifyKeySet(sent, got *store.Store) error {
	for _, k := range sent.Keys() {
		if _, ok := got.Get(k); !ok {
			return fmt.Errorf("response is missing key %q", truncate(k, 50))
		}
	}
	if got.Len() != sent.Len() {
		for _, k := range got.Keys() {
			if _, ok := sent.Get(k); !ok {
				return fmt.Errorf("response contains unexpected key %q", truncate(k, 50))
			}
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Per-file orchestration
// ---------------------------------------------------------------------------

// TranslateFile translates one dataset file end to end: read, size, split
// if needed, translate each chunk strictly in order, and merge the results.
//
// The file attempt is all-or-nothing: the first chunk failure aborts the
// remaining chunks and discards results already merged. On success the
// merged dataset and the elapsed wall time are returned.
func TranslateFile(ctx context.Context, path string, opts Options) (*store.Store, time.Duration, error) {
	startedAt := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &InputError{Path: path, Err: err}
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, 0, &InputError{Path: path, Err: errors.New("file is empty")}
	}

	src, err := store.Parse(data)
	if err != nil {
		return nil, 0, &InputError{Path: path, Err: err}
	}

	budget := opts.effectiveBudget()
	totalSize := src.Size()
	opts.log("File size: %.2fMB, %d entries", float64(totalSize)/(1024*1024), src.Len())

	var chunks []*store.Store
	if totalSize > budget {
		opts.log("File too large, splitting into chunks (max %.2fMB each)...", float64(budget)/(1024*1024))
		chunks = chunker.Split(src, budget, func(key string, size int) {
			opts.logError("Warning: entry %q is too large (%.2fMB), skipping", truncate(key, 50), float64(size)/(1024*1024))
		})
		opts.log("Split into %d chunks", len(chunks))
	} else {
		chunks = []*store.Store{src}
	}

	translated := store.New()
	for i, chunk := range chunks {
		opts.progress(i+1, len(chunks), "")
		result, err := translateChunk(ctx, chunk, i+1, len(chunks), opts)
		if err != nil {
			// Discard prior chunk results: this file's attempt is
			// all-or-nothing.
			return nil, 0, err
		}
		translated.Merge(result)
		opts.log("Chunk %d/%d completed (%d entries)", i+1, len(chunks), result.Len())
	}

	return translated, time.Since(startedAt), nil
}

// tail returns a single-line preview of a streamed delta.
func tail(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", ""))
	return truncate(s, progressTailLen)
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
