// locflow — batch translation pipeline for JSON localization datasets.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/locflow/locflow/batch"
	"github.com/locflow/locflow/config"
	"github.com/locflow/locflow/i18n"
	"github.com/locflow/locflow/provider"
	"github.com/locflow/locflow/settings"
	"github.com/locflow/locflow/translate"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "locflow",
		Short: "Batch translation of JSON localization datasets using AI",
		Long: `locflow — batch translation pipeline for JSON localization datasets.

Takes a folder of key→value JSON files, translates the values with a
streaming AI provider, and writes the results to an output folder with
run-stamped filenames. Oversized files are split into chunks that fit the
provider's request limit; each file either translates completely or fails
as a whole.

Commands:
  translate   Translate a folder (or single file) of JSON datasets
  auth        Manage provider API keys
  version     Show version information

AI Providers:
  openrouter     OpenRouter — API key required (default)
  groq           Groq — API key required
  ollama         Ollama local server — no key needed
  custom-openai  Custom OpenAI-compatible endpoint`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTranslateCmd(),
		newAuthCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")

	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("locflow version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// translate (the pipeline: folder → folder, or single file)
// ---------------------------------------------------------------------------

func newTranslateCmd() *cobra.Command {
	var (
		// Provider selection
		providerID string
		apiKey     string
		model      string
		baseURL    string

		// Languages
		sourceLang string
		targetLang string

		// Translation behavior
		chunkBudgetMB int
		prompt        string
		verbose       bool

		// Single-file mode
		singleFile string
		outFile    string

		// Network
		timeout time.Duration
		proxy   string

		// Config
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "translate [SOURCE_DIR DEST_DIR]",
		Short: "Translate JSON datasets using AI",
		Long: `Translate key→value JSON datasets using a streaming AI provider.

The default invocation takes a source folder and a destination folder and
translates every *.json file found. A file that fails keeps the run going;
the final exit status is non-zero if any file failed.

Numbered inputs keep their numeric suffix in the output name
(terms_001.json → p<run>_001.json); other inputs keep their full name
behind a t prefix (notes.json → t<run>_notes.json).

Flags override the .locflow.yaml config file, which overrides built-in
defaults.

Examples:
  # Translate a folder with the default provider (OpenRouter)
  locflow translate ./missing ./out

  # Translate with Groq
  locflow translate ./missing ./out --provider groq --model llama-3.3-70b-versatile

  # Translate a single file
  locflow translate --file terms_001.json --out translated.json

  # Local Ollama, custom languages
  locflow translate ./in ./out --provider ollama --model qwen2.5 --source-lang ja --target-lang en`,
		Args: cobra.RangeArgs(0, 2),
		Run: func(cmd *cobra.Command, args []string) {
			runTranslate(translateArgs{
				positional: args,
				provider:   providerID, apiKey: apiKey, model: model, baseURL: baseURL,
				sourceLang: sourceLang, targetLang: targetLang,
				chunkBudgetMB: chunkBudgetMB, prompt: prompt, verbose: verbose,
				singleFile: singleFile, outFile: outFile,
				timeout: timeout, proxy: proxy, configPath: configPath,
			})
		},
	}

	// Provider selection
	cmd.Flags().StringVar(&providerID, "provider", "", "AI provider: openrouter, groq, ollama, custom-openai (default openrouter)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (default: provider's default model)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (or LOCFLOW_API_KEY env var, or 'locflow auth login')")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Custom API base URL")

	// Languages
	cmd.Flags().StringVar(&sourceLang, "source-lang", "", "Source language code (default zh)")
	cmd.Flags().StringVar(&targetLang, "target-lang", "", "Target language code (default vi)")

	// Translation behavior
	cmd.Flags().IntVar(&chunkBudgetMB, "chunk-budget-mb", 0, "Maximum request payload size in MiB (default 4)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Custom system prompt ({{sourceLang}}/{{targetLang}} placeholders)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show streamed response progress")

	// Single-file mode
	cmd.Flags().StringVar(&singleFile, "file", "", "Translate a single file instead of a folder")
	cmd.Flags().StringVar(&outFile, "out", "", "Output path for --file mode")

	// Network
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Request timeout (0 = provider default)")
	cmd.Flags().StringVar(&proxy, "proxy", "", "HTTP/HTTPS proxy URL")

	// Config
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ./"+config.FileName+")")

	// Provider completion
	_ = cmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{
			"openrouter\tOpenRouter — API key required",
			"groq\tGroq — API key required",
			"ollama\tOllama local server",
			"custom-openai\tCustom OpenAI-compatible endpoint",
		}, cobra.ShellCompDirectiveNoFileComp
	})

	// Model completion (provider-aware)
	_ = cmd.RegisterFlagCompletionFunc("model", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		p, _ := cmd.Flags().GetString("provider")
		switch p {
		case "", "openrouter":
			return []string{"google/gemini-2.5-flash-lite-preview-09-2025", "google/gemini-2.5-flash", "deepseek/deepseek-chat"}, cobra.ShellCompDirectiveNoFileComp
		case "groq":
			return []string{"llama-3.3-70b-versatile", "mixtral-8x7b-32768"}, cobra.ShellCompDirectiveNoFileComp
		case "ollama":
			return []string{"llama3.2", "qwen2.5", "mistral", "phi3"}, cobra.ShellCompDirectiveNoFileComp
		default:
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	})

	return cmd
}

type translateArgs struct {
	positional                       []string
	provider, apiKey, model, baseURL string
	sourceLang, targetLang           string
	chunkBudgetMB                    int
	prompt                           string
	verbose                          bool
	singleFile, outFile              string
	timeout                          time.Duration
	proxy                            string
	configPath                       string
}

// pick returns the first non-empty value: flag over config over default.
func pick(flag, fromCfg, def string) string {
	if flag != "" {
		return flag
	}
	if fromCfg != "" {
		return fromCfg
	}
	return def
}

// resolveOptions layers flags over the config file over built-in defaults
// and resolves the provider credential.
func resolveOptions(a translateArgs, cfg *config.File) (translate.Options, error) {
	providerID := pick(a.provider, cfg.Provider, provider.ProviderOpenRouter)
	prov, ok := provider.Default(providerID)
	if !ok {
		return translate.Options{}, fmt.Errorf("unknown provider %q (valid: openrouter, groq, ollama, custom-openai)", providerID)
	}
	if m := pick(a.model, cfg.Model, ""); m != "" {
		prov.Model = m
	}
	if u := pick(a.baseURL, cfg.BaseURL, ""); u != "" {
		prov.BaseURL = u
	}
	if p := pick(a.proxy, cfg.Proxy, ""); p != "" {
		prov.Proxy = p
	}
	if a.timeout > 0 {
		prov.Timeout = a.timeout
	}
	if prov.Model == "" {
		return translate.Options{}, fmt.Errorf("no model configured: use --model or set one in %s", config.FileName)
	}

	// Ollama runs locally without a key; everyone else must have one.
	if providerID != provider.ProviderOllama {
		key, err := settings.ResolveAPIKey(a.apiKey, providerID)
		if err != nil {
			return translate.Options{}, err
		}
		prov.APIKey = key
		// A stored endpoint (custom-openai) applies unless flag or config
		// already set one.
		if a.baseURL == "" && cfg.BaseURL == "" {
			if u := settings.GetBaseURL(providerID); u != "" {
				prov.BaseURL = u
			}
		}
	}

	chunkBudgetMB := a.chunkBudgetMB
	if chunkBudgetMB == 0 {
		chunkBudgetMB = cfg.ChunkBudgetMB
	}

	return translate.Options{
		Provider:     prov,
		SourceLang:   pick(a.sourceLang, cfg.SourceLang, "zh"),
		TargetLang:   pick(a.targetLang, cfg.TargetLang, "vi"),
		ChunkBudget:  chunkBudgetMB * 1024 * 1024,
		SystemPrompt: pick(a.prompt, cfg.Prompt, ""),
	}, nil
}

func runTranslate(a translateArgs) {
	opts, err := resolveOptions(a, loadConfig(a.configPath))
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	opts.OnLog = logInfo
	opts.OnError = logWarning
	if a.verbose {
		opts.OnProgress = func(chunk, total int, tail string) {
			if tail != "" {
				fmt.Fprintf(os.Stderr, "\r\033[K  [%d/%d] %s", chunk, total, tail)
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	logInfo("Provider: %s, model: %s", opts.Provider.Name, opts.Provider.Model)
	logInfo("Translating %s → %s", opts.SourceLang, opts.TargetLang)

	if a.singleFile != "" {
		runTranslateSingle(ctx, a, opts)
		return
	}

	if len(a.positional) != 2 {
		logError("Expected SOURCE_DIR and DEST_DIR arguments (or --file). See 'locflow translate --help'.")
		os.Exit(1)
	}
	runTranslateBatch(ctx, a.positional[0], a.positional[1], opts, a.verbose)
}

func runTranslateSingle(ctx context.Context, a translateArgs, opts translate.Options) {
	outPath := a.outFile
	if outPath == "" {
		runID := batch.RunID(time.Now())
		outPath = filepath.Join(filepath.Dir(a.singleFile), batch.OutputName(filepath.Base(a.singleFile), runID))
	}

	logInfo("%s → %s", a.singleFile, outPath)
	elapsed, err := batch.TranslateSingle(ctx, a.singleFile, outPath, opts)
	if err != nil {
		logError(i18n.T("Translation FAILED for %s"), a.singleFile)
		logError("%v", err)
		os.Exit(1)
	}
	logSuccess(i18n.T("Translation completed in %.2f seconds."), elapsed.Seconds())
}

func runTranslateBatch(ctx context.Context, srcDir, dstDir string, opts translate.Options, verbose bool) {
	sum, err := batch.Run(ctx, srcDir, dstDir, batch.Options{
		Translate: opts,
		OnFileStart: func(index, total int, name string) {
			logInfo("[%d/%d] "+i18n.T("Translating %s"), index, total, name)
		},
		OnFileDone: func(index, total int, name string, elapsed time.Duration) {
			if verbose {
				fmt.Fprint(os.Stderr, "\r\033[K")
			}
			logSuccess("[%d/%d] "+i18n.T("Translation completed in %.2f seconds."), index, total, elapsed.Seconds())
		},
		OnFileFail: func(index, total int, name string, err error) {
			if verbose {
				fmt.Fprint(os.Stderr, "\r\033[K")
			}
			logError("[%d/%d] "+i18n.T("Translation FAILED for %s"), index, total, name)
			logError("%v", err)
		},
	})
	if errors.Is(err, batch.ErrNoInputFiles) {
		logError(i18n.T("No JSON files found in input folder!"))
		os.Exit(1)
	}
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	// Summary
	fmt.Fprintln(os.Stderr, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(os.Stderr, i18n.T("Translation Summary:"))
	fmt.Fprintf(os.Stderr, "  ✅ %s: %d/%d\n", i18n.T("Success"), sum.Succeeded, sum.Total)
	fmt.Fprintf(os.Stderr, "  ❌ %s:  %d/%d\n", i18n.T("Failed"), sum.Failed, sum.Total)
	fmt.Fprintln(os.Stderr, strings.Repeat("=", 60))

	if sum.Failed > 0 {
		os.Exit(1)
	}
}

// loadConfig loads the config file, tolerating its absence but not its
// corruption.
func loadConfig(path string) *config.File {
	var (
		cfg *config.File
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDir(".")
	}
	if err != nil {
		logError("Config: %v", err)
		os.Exit(1)
	}
	return cfg
}

// ---------------------------------------------------------------------------
// auth (API key management)
// ---------------------------------------------------------------------------

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage provider API keys",
		Long: `Manage stored API keys for translation providers.

API key providers:
  openrouter     OpenRouter (https://openrouter.ai/keys)
  groq           Groq Cloud (https://console.groq.com/keys)
  custom-openai  Custom OpenAI-compatible endpoint (key + URL)

No auth required:
  ollama         Local Ollama server

Keys are stored in ` + settings.FilePath() + ` (mode 0600).
A key passed via --api-key or LOCFLOW_API_KEY takes precedence over the
stored one.

Examples:
  locflow auth login                          Interactive provider selection
  locflow auth login --provider openrouter    Store an OpenRouter key
  locflow auth status                         Show stored keys (masked)
  locflow auth logout --provider groq         Remove the Groq key
  locflow auth logout                         Remove all keys`,
	}

	cmd.AddCommand(
		newAuthLoginCmd(),
		newAuthStatusCmd(),
		newAuthLogoutCmd(),
	)

	return cmd
}

// keyProviders is the ordered list of providers for the interactive menu.
var keyProviders = []struct {
	id   string
	name string
	desc string
}{
	{provider.ProviderOpenRouter, "OpenRouter", "many models behind one key, https://openrouter.ai/keys"},
	{provider.ProviderGroq, "Groq Cloud", "fast inference, free tier available"},
	{provider.ProviderCustomOpenAI, "Custom OpenAI", "any OpenAI-compatible endpoint"},
}

func newAuthLoginCmd() *cobra.Command {
	var providerID string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key for a provider",
		Long: `Store an API key for a translation provider.

If --provider is not specified, you will be prompted to choose.`,
		Run: func(cmd *cobra.Command, args []string) {
			if providerID == "" {
				fmt.Fprintln(os.Stderr, "")
				fmt.Fprintf(os.Stderr, "%sSelect provider to authenticate:%s\n\n", colorBlue, colorReset)
				for i, p := range keyProviders {
					fmt.Fprintf(os.Stderr, "  %d. %s%-13s%s %s\n", i+1, colorYellow, p.id, colorReset, p.desc)
				}
				fmt.Fprintln(os.Stderr)
				fmt.Fprintf(os.Stderr, "Enter choice (number or name): ")

				scanner := bufio.NewScanner(os.Stdin)
				if !scanner.Scan() {
					logError("No input received")
					os.Exit(1)
				}
				choice := strings.TrimSpace(scanner.Text())

				found := false
				for i, p := range keyProviders {
					if choice == fmt.Sprintf("%d", i+1) || choice == p.id {
						providerID = p.id
						found = true
						break
					}
				}
				if !found {
					logError("Invalid choice. Use: locflow auth login --provider PROVIDER")
					os.Exit(1)
				}
			}

			switch providerID {
			case provider.ProviderOpenRouter, provider.ProviderGroq:
				authLoginAPIKey(providerID)
			case provider.ProviderCustomOpenAI:
				authLoginCustomOpenAI()
			case provider.ProviderOllama:
				logInfo("Ollama is a local server and needs no API key.")
			default:
				logError("Unknown provider '%s'. Run 'locflow auth login' for options.", providerID)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "Provider to authenticate")
	_ = cmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		completions := make([]string, 0, len(keyProviders))
		for _, p := range keyProviders {
			completions = append(completions, fmt.Sprintf("%s\t%s", p.id, p.name))
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func authLoginAPIKey(providerID string) {
	providerInfo := map[string]struct {
		name    string
		helpURL string
		example string
	}{
		provider.ProviderOpenRouter: {
			name:    "OpenRouter",
			helpURL: "https://openrouter.ai/keys",
			example: "locflow translate ./missing ./out",
		},
		provider.ProviderGroq: {
			name:    "Groq Cloud",
			helpURL: "https://console.groq.com/keys",
			example: "locflow translate ./missing ./out --provider groq --model llama-3.3-70b-versatile",
		},
	}

	info := providerInfo[providerID]

	fmt.Fprintf(os.Stderr, "\n%s%s — API Key Setup%s\n", colorBlue, info.name, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintln(os.Stderr)

	if info.helpURL != "" {
		fmt.Fprintf(os.Stderr, "  Get your API key from: %s%s%s\n\n", colorGreen, info.helpURL, colorReset)
	}

	// Check if already configured
	existing := settings.GetAPIKey(providerID)
	if existing != "" {
		fmt.Fprintf(os.Stderr, "  Current key: %s%s%s\n", colorYellow, settings.MaskKey(existing), colorReset)
		fmt.Fprintf(os.Stderr, "  Enter new key to replace, or press Enter to keep: ")
	} else {
		fmt.Fprintf(os.Stderr, "  Enter API key: ")
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		logError("No input received")
		os.Exit(1)
	}
	key := strings.TrimSpace(scanner.Text())

	if key == "" {
		if existing != "" {
			logInfo("Keeping existing key")
			return
		}
		logError("No API key provided")
		os.Exit(1)
	}

	if err := settings.SetAPIKey(providerID, key); err != nil {
		logError("Failed to save API key: %v", err)
		os.Exit(1)
	}

	logSuccess("%s "+i18n.T("API key saved."), info.name)
	fmt.Fprintf(os.Stderr, "\n  You can now use: %s\n\n", info.example)
}

func authLoginCustomOpenAI() {
	fmt.Fprintf(os.Stderr, "\n%sCustom OpenAI-Compatible Endpoint%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintln(os.Stderr)

	scanner := bufio.NewScanner(os.Stdin)

	// Base URL
	existingURL := settings.GetBaseURL(provider.ProviderCustomOpenAI)
	if existingURL != "" {
		fmt.Fprintf(os.Stderr, "  Current endpoint: %s%s%s\n", colorYellow, existingURL, colorReset)
		fmt.Fprintf(os.Stderr, "  Enter new endpoint URL, or press Enter to keep: ")
	} else {
		fmt.Fprintf(os.Stderr, "  Enter endpoint URL (e.g., https://api.example.com/v1): ")
	}

	if !scanner.Scan() {
		logError("No input received")
		os.Exit(1)
	}
	baseURL := strings.TrimSpace(scanner.Text())

	if baseURL == "" {
		baseURL = existingURL
	}
	if baseURL == "" {
		logError("Endpoint URL is required")
		os.Exit(1)
	}

	// API key (optional for some endpoints)
	existingKey := settings.GetAPIKey(provider.ProviderCustomOpenAI)
	if existingKey != "" {
		fmt.Fprintf(os.Stderr, "  Current key: %s%s%s\n", colorYellow, settings.MaskKey(existingKey), colorReset)
		fmt.Fprintf(os.Stderr, "  Enter new API key, or press Enter to keep: ")
	} else {
		fmt.Fprintf(os.Stderr, "  Enter API key (or press Enter if not required): ")
	}

	if !scanner.Scan() {
		logError("No input received")
		os.Exit(1)
	}
	apiKey := strings.TrimSpace(scanner.Text())

	if apiKey == "" {
		apiKey = existingKey
	}

	if err := settings.SetAPIKeyWithBaseURL(provider.ProviderCustomOpenAI, apiKey, baseURL); err != nil {
		logError("Failed to save credentials: %v", err)
		os.Exit(1)
	}

	logSuccess("Custom OpenAI endpoint saved!")
	fmt.Fprintf(os.Stderr, "\n  You can now use: locflow translate ./in ./out --provider custom-openai --model MODEL_NAME\n\n")
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored credentials",
		Long:  `Show stored API keys (masked) for all providers.`,
		Run: func(cmd *cobra.Command, args []string) {
			stored := settings.Load()
			if len(stored) == 0 {
				logInfo(i18n.T("No API key stored."))
				fmt.Fprintf(os.Stderr, "  Run 'locflow auth login' to add one.\n")
				return
			}

			fmt.Fprintf(os.Stderr, "\n%sStored credentials%s (%s)\n\n", colorBlue, colorReset, settings.FilePath())
			for _, p := range keyProviders {
				info, ok := stored[p.id]
				if !ok || info.Key == "" {
					continue
				}
				line := fmt.Sprintf("  %-13s %s", p.id, settings.MaskKey(info.Key))
				if info.BaseURL != "" {
					line += "  (" + info.BaseURL + ")"
				}
				fmt.Fprintln(os.Stderr, line)
			}
			fmt.Fprintln(os.Stderr)
		},
	}
}

func newAuthLogoutCmd() *cobra.Command {
	var providerID string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long: `Remove stored API keys for one or all providers.

If --provider is not specified, keys for ALL providers are removed.`,
		Run: func(cmd *cobra.Command, args []string) {
			if providerID != "" {
				if err := settings.Remove(providerID); err != nil {
					logError("Failed to remove %s credentials: %v", providerID, err)
					os.Exit(1)
				}
				logSuccess("%s "+i18n.T("API key removed."), providerID)
				return
			}

			for _, p := range keyProviders {
				if settings.GetAPIKey(p.id) == "" {
					continue
				}
				if err := settings.Remove(p.id); err != nil {
					logError("Failed to remove %s credentials: %v", p.id, err)
					os.Exit(1)
				}
				logSuccess("%s "+i18n.T("API key removed."), p.id)
			}
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "Provider to remove credentials for")

	return cmd
}
