package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	data := []byte(`{"zz": "1", "aa": "2", "mm": "3"}`)

	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []string{"zz", "aa", "mm"}
	got := s.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_NestedValuesCarriedThrough(t *testing.T) {
	data := []byte(`{"a": {"inner": ["x", "y"]}, "b": "plain"}`)

	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	v, ok := s.Get("a")
	if !ok {
		t.Fatal("key a missing")
	}
	if string(v) != `{"inner":["x","y"]}` {
		t.Errorf("nested value = %s", v)
	}
}

func TestParse_RejectsNonObject(t *testing.T) {
	for _, data := range []string{`["a", "b"]`, `"just a string"`, `42`, ``} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("Parse(%q) should have failed", data)
		}
	}
}

func TestSet_OverwriteKeepsPosition(t *testing.T) {
	s := New()
	s.Set("a", json.RawMessage(`"1"`))
	s.Set("b", json.RawMessage(`"2"`))
	s.Set("a", json.RawMessage(`"3"`))

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Keys()[0] != "a" {
		t.Errorf("keys[0] = %q, want a", s.Keys()[0])
	}
	v, _ := s.Get("a")
	if string(v) != `"3"` {
		t.Errorf("a = %s, want \"3\"", v)
	}
}

func TestMerge(t *testing.T) {
	a, _ := Parse([]byte(`{"k1": "v1"}`))
	b, _ := Parse([]byte(`{"k2": "v2", "k3": "v3"}`))

	a.Merge(b)

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	want := []string{"k1", "k2", "k3"}
	for i, k := range a.Keys() {
		if k != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, k, want[i])
		}
	}
}

func TestEntrySize_MatchesWrappedEncoding(t *testing.T) {
	key := "greeting"
	value := json.RawMessage(`"hello"`)

	// {"greeting":"hello"} is 20 bytes.
	if got := EntrySize(key, value); got != 20 {
		t.Errorf("EntrySize = %d, want 20", got)
	}
}

func TestEntrySize_UTF8Bytes(t *testing.T) {
	// 你好 is 6 UTF-8 bytes; {"你好":"你好"} is 6+6+2+2+3 = 19 bytes.
	got := EntrySize("你好", json.RawMessage(`"你好"`))
	if got != 19 {
		t.Errorf("EntrySize = %d, want 19", got)
	}
}

func TestSize_MatchesCompactForm(t *testing.T) {
	data := `{"a":"1","b":"2"}`
	s, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := s.Size(); got != len(data) {
		t.Errorf("Size() = %d, want %d", got, len(data))
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	s, err := Parse([]byte(`{"你好": "xin chào", "nested": {"a": "b"}}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	out, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	// Non-ASCII text must stay unescaped.
	if !strings.Contains(string(out), "你好") {
		t.Errorf("output escaped non-ASCII text:\n%s", out)
	}

	back, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse() error: %v\noutput:\n%s", err, out)
	}
	if back.Len() != s.Len() {
		t.Errorf("round trip lost entries: %d != %d", back.Len(), s.Len())
	}
	for _, k := range s.Keys() {
		a, _ := s.Get(k)
		b, _ := back.Get(k)
		if string(a) != string(b) {
			t.Errorf("key %q: %s != %s", k, a, b)
		}
	}
}

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "deep", "result.json")

	s, _ := Parse([]byte(`{"a": "b"}`))
	if err := s.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if !strings.Contains(string(data), `"a": "b"`) {
		t.Errorf("unexpected file content:\n%s", data)
	}
}

func TestMarshal_ControlCharacterKeyStaysValidJSON(t *testing.T) {
	// BEL and vertical tab are legal inside a JSON string via \uXXXX
	// escapes; the output must use those, not Go-style \a or \v.
	src, err := Parse([]byte(`{"ab": "v", "cd": "w"}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	out, err := src.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !json.Valid(out) {
		t.Fatalf("Marshal produced invalid JSON:\n%s", out)
	}

	back, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse() error: %v\noutput:\n%s", err, out)
	}
	if v, ok := back.Get("a\x07b"); !ok || string(v) != `"v"` {
		t.Errorf("a\\x07b = %s (ok=%v)", v, ok)
	}
	if v, ok := back.Get("c\x0bd"); !ok || string(v) != `"w"` {
		t.Errorf("c\\x0bd = %s (ok=%v)", v, ok)
	}
}

func TestEntrySize_ControlCharacterKey(t *testing.T) {
	// The key encodes to "ab" (10 bytes), the value to "v" (3),
	// plus braces and colon.
	got := EntrySize("a\x07b", json.RawMessage(`"v"`))
	if got != 10+3+3 {
		t.Errorf("EntrySize() = %d, want 16", got)
	}
}
