// Package config — .locflow.yaml configuration file support.
//
// When a .locflow.yaml file exists in the working directory (or is named
// explicitly with --config), its values act as defaults for the translate
// command. Command-line flags always win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = ".locflow.yaml"

// File is the top-level .locflow.yaml structure.
type File struct {
	// Provider is the provider ID (openrouter, groq, ollama, custom-openai).
	Provider string `yaml:"provider,omitempty"`
	// Model is the model identifier.
	Model string `yaml:"model,omitempty"`
	// BaseURL overrides the provider's API base URL.
	BaseURL string `yaml:"base_url,omitempty"`
	// SourceLang is the source language code (default "zh").
	SourceLang string `yaml:"source_lang,omitempty"`
	// TargetLang is the target language code (default "vi").
	TargetLang string `yaml:"target_lang,omitempty"`
	// ChunkBudgetMB is the maximum request payload size in MiB (default 4).
	ChunkBudgetMB int `yaml:"chunk_budget_mb,omitempty"`
	// Prompt overrides the built-in system prompt. The placeholders
	// {{sourceLang}} and {{targetLang}} are substituted before use.
	Prompt string `yaml:"prompt,omitempty"`
	// Proxy is an optional HTTP/HTTPS proxy URL.
	Proxy string `yaml:"proxy,omitempty"`
}

// Exists reports whether a .locflow.yaml is present in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// Load reads and validates the configuration file at path. A missing file
// is not an error: it yields an empty File so flags alone drive the run.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// LoadDir loads .locflow.yaml from dir (missing file yields defaults).
func LoadDir(dir string) (*File, error) {
	return Load(filepath.Join(dir, FileName))
}

func (f *File) validate() error {
	if f.ChunkBudgetMB < 0 {
		return fmt.Errorf("chunk_budget_mb must not be negative, got %d", f.ChunkBudgetMB)
	}
	return nil
}
