package langmeta

import "testing"

func TestResolve_Exact(t *testing.T) {
	m := Resolve("vi")
	if m.English != "Vietnamese" {
		t.Errorf("English = %q, want Vietnamese", m.English)
	}
	if m.Native != "Tiếng Việt" {
		t.Errorf("Native = %q", m.Native)
	}
}

func TestResolve_Variants(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zh_CN", "Simplified Chinese"},
		{"zh-cn", "Simplified Chinese"},
		{"ZH-TW", "Traditional Chinese"},
		{"pt_br", "Brazilian Portuguese"},
		{"pt-PT", "Portuguese"}, // region fallback to base
		{"de_AT", "German"},
	}
	for _, tc := range tests {
		if got := Resolve(tc.in).English; got != tc.want {
			t.Errorf("Resolve(%q).English = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	m := Resolve("xx-YY")
	if m.English != "xx-YY" {
		t.Errorf("unknown code should resolve to itself, got %q", m.English)
	}
}

func TestPromptName(t *testing.T) {
	if got := PromptName("zh"); got != "Chinese" {
		t.Errorf("PromptName(zh) = %q", got)
	}
}
