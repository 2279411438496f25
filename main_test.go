package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/locflow/locflow/config"
	"github.com/locflow/locflow/provider"
	"github.com/locflow/locflow/settings"
)

func isolateCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv(settings.EnvAPIKey, "")
}

func TestPick(t *testing.T) {
	if got := pick("flag", "cfg", "def"); got != "flag" {
		t.Errorf("pick() = %q, want flag value", got)
	}
	if got := pick("", "cfg", "def"); got != "cfg" {
		t.Errorf("pick() = %q, want config value", got)
	}
	if got := pick("", "", "def"); got != "def" {
		t.Errorf("pick() = %q, want default", got)
	}
}

func TestResolveOptions_Defaults(t *testing.T) {
	isolateCredentials(t)
	t.Setenv(settings.EnvAPIKey, "sk-test")

	opts, err := resolveOptions(translateArgs{}, &config.File{})
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	if opts.Provider.ID != provider.ProviderOpenRouter {
		t.Errorf("provider = %q, want openrouter", opts.Provider.ID)
	}
	if opts.Provider.Model == "" {
		t.Error("default provider should carry a default model")
	}
	if opts.Provider.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want env key", opts.Provider.APIKey)
	}
	if opts.SourceLang != "zh" || opts.TargetLang != "vi" {
		t.Errorf("languages = %s→%s, want zh→vi", opts.SourceLang, opts.TargetLang)
	}
}

func TestResolveOptions_FlagsBeatConfig(t *testing.T) {
	isolateCredentials(t)

	cfg := &config.File{
		Provider:   "groq",
		Model:      "cfg-model",
		SourceLang: "ja",
		TargetLang: "ko",
	}
	a := translateArgs{
		provider:   "ollama",
		model:      "flag-model",
		targetLang: "en",
		timeout:    7 * time.Second,
	}

	opts, err := resolveOptions(a, cfg)
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	if opts.Provider.ID != provider.ProviderOllama {
		t.Errorf("provider = %q, want ollama", opts.Provider.ID)
	}
	if opts.Provider.Model != "flag-model" {
		t.Errorf("model = %q, want flag-model", opts.Provider.Model)
	}
	if opts.Provider.Timeout != 7*time.Second {
		t.Errorf("timeout = %v", opts.Provider.Timeout)
	}
	if opts.SourceLang != "ja" {
		t.Errorf("source = %q, want config value", opts.SourceLang)
	}
	if opts.TargetLang != "en" {
		t.Errorf("target = %q, want flag value", opts.TargetLang)
	}
}

func TestResolveOptions_UnknownProvider(t *testing.T) {
	isolateCredentials(t)

	_, err := resolveOptions(translateArgs{provider: "copilot"}, &config.File{})
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("err = %v, want unknown provider", err)
	}
}

func TestResolveOptions_MissingCredentialFailsFast(t *testing.T) {
	isolateCredentials(t)

	_, err := resolveOptions(translateArgs{}, &config.File{})
	if !errors.Is(err, settings.ErrNoCredential) {
		t.Fatalf("err = %v, want ErrNoCredential", err)
	}
}

func TestResolveOptions_OllamaNeedsNoKey(t *testing.T) {
	isolateCredentials(t)

	opts, err := resolveOptions(translateArgs{provider: "ollama", model: "llama3.2"}, &config.File{})
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	if opts.Provider.APIKey != "" {
		t.Errorf("APIKey = %q, want empty for ollama", opts.Provider.APIKey)
	}
}

func TestResolveOptions_ChunkBudgetFromConfig(t *testing.T) {
	isolateCredentials(t)

	opts, err := resolveOptions(translateArgs{provider: "ollama", model: "m"}, &config.File{ChunkBudgetMB: 2})
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	if opts.ChunkBudget != 2*1024*1024 {
		t.Errorf("ChunkBudget = %d, want 2MiB", opts.ChunkBudget)
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"translate", "auth", "version"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not wired: %v", name, err)
		}
	}
}
