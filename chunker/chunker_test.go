package chunker

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/locflow/locflow/store"
)

func storeOf(t *testing.T, pairs ...string) *store.Store {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatal("pairs must be key/value")
	}
	s := store.New()
	for i := 0; i < len(pairs); i += 2 {
		s.Set(pairs[i], json.RawMessage(`"`+pairs[i+1]+`"`))
	}
	return s
}

func TestSplit_SingleChunkWhenUnderBudget(t *testing.T) {
	s := storeOf(t, "a", "1", "b", "2", "c", "3")

	chunks := Split(s, DefaultBudget, nil)

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0].Len() != 3 {
		t.Errorf("chunk has %d entries, want 3", chunks[0].Len())
	}
}

func TestSplit_RespectsBudget(t *testing.T) {
	s := store.New()
	for i := 0; i < 10; i++ {
		s.Set(fmt.Sprintf("key%02d", i), json.RawMessage(`"`+strings.Repeat("x", 40)+`"`))
	}

	// Each entry is roughly 54 bytes; force ~3 entries per chunk.
	budget := 170
	chunks := Split(s, budget, nil)

	if len(chunks) < 3 {
		t.Fatalf("got %d chunks, want at least 3", len(chunks))
	}

	total := 0
	for i, c := range chunks {
		size := 0
		for _, k := range c.Keys() {
			v, _ := c.Get(k)
			size += store.EntrySize(k, v)
		}
		if size > budget {
			t.Errorf("chunk %d estimated size %d exceeds budget %d", i, size, budget)
		}
		total += c.Len()
	}
	if total != 10 {
		t.Errorf("chunks cover %d entries, want 10", total)
	}
}

func TestSplit_UnionEqualsInput(t *testing.T) {
	s := store.New()
	for i := 0; i < 25; i++ {
		s.Set(fmt.Sprintf("k%d", i), json.RawMessage(fmt.Sprintf(`"value %d"`, i)))
	}

	chunks := Split(s, 60, nil)

	merged := store.New()
	for _, c := range chunks {
		merged.Merge(c)
	}
	if merged.Len() != s.Len() {
		t.Fatalf("union has %d entries, want %d", merged.Len(), s.Len())
	}
	for i, k := range s.Keys() {
		if merged.Keys()[i] != k {
			t.Errorf("keys[%d] = %q, want %q (order must survive splitting)", i, merged.Keys()[i], k)
		}
	}
}

func TestSplit_SkipsOversizedEntry(t *testing.T) {
	s := store.New()
	s.Set("small", json.RawMessage(`"ok"`))
	s.Set("huge", json.RawMessage(`"`+strings.Repeat("z", 500)+`"`))
	s.Set("small2", json.RawMessage(`"ok2"`))

	var skippedKey string
	var skippedSize int
	chunks := Split(s, 100, func(key string, size int) {
		skippedKey = key
		skippedSize = size
	})

	if skippedKey != "huge" {
		t.Fatalf("skipped key = %q, want huge", skippedKey)
	}
	if skippedSize <= 100 {
		t.Errorf("skipped size = %d, should exceed budget", skippedSize)
	}
	for _, c := range chunks {
		if _, ok := c.Get("huge"); ok {
			t.Error("oversized entry leaked into a chunk")
		}
	}
	merged := store.New()
	for _, c := range chunks {
		merged.Merge(c)
	}
	if merged.Len() != 2 {
		t.Errorf("union has %d entries, want 2", merged.Len())
	}
}

func TestSplit_EmptyStore(t *testing.T) {
	if chunks := Split(store.New(), 100, nil); len(chunks) != 0 {
		t.Errorf("got %d chunks for empty store, want 0", len(chunks))
	}
}

func TestSplit_ZeroBudgetFallsBackToDefault(t *testing.T) {
	s := storeOf(t, "a", "1")
	chunks := Split(s, 0, nil)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
}
