package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zalando/go-keyring"
	"golang.org/x/term"

	"github.com/ridhoarazzak/Clipper/shared/ai"
	"github.com/ridhoarazzak/Clipper/shared/config"
	"github.com/ridhoarazzak/Clipper/shared/monitoring"
	"github.com/ridhoarazzak/Clipper/shared/youtube"
	"github.com/ridhoarazzak/Clipper/tui"
)

const keyringService = "clipper"

func main() {
	flag.Usage = func() {
		fmt.Println("Usage: clipper [video-file | youtube-url]")
		fmt.Println()
		fmt.Println("Analyzes a video with Gemini and suggests viral clips.")
		fmt.Println("Set GEMINI_API_KEY or enter a key when prompted.")
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// All diagnostics go to the log file; the terminal belongs to the UI.
	logFile, err := tea.LogToFile(cfg.LogFile, "clipper")
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	apiKey, err := resolveAPIKey(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()

	analyzer, err := ai.NewAnalyzer(ctx, apiKey, cfg.AI.Model, cfg.Clips.Count)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}

	var lookup tui.MetadataLookup
	if cfg.YouTube.APIKey != "" {
		metaClient, err := youtube.NewMetadataClient(ctx, cfg.YouTube.APIKey)
		if err != nil {
			log.Printf("Warning: YouTube metadata disabled: %v", err)
		} else {
			lookup = metaClient.Lookup
		}
	}

	var seed string
	if args := flag.Args(); len(args) > 0 {
		seed = args[0]
	}

	model := tui.NewModel(tui.Deps{
		Analyzer:      analyzer,
		Lookup:        lookup,
		Monitor:       monitoring.NewMonitor(),
		PlayerCommand: cfg.Player.Command,
		Seed:          seed,
	})

	if _, err := tea.NewProgram(model).Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}

// resolveAPIKey finds the Gemini key: config/env first, then the OS
// keyring, then a one-time hidden prompt. A prompted key is stored in the
// keyring only when the config opts in; by default it lives for this
// session only.
func resolveAPIKey(cfg *config.Config) (string, error) {
	if key := strings.TrimSpace(cfg.AI.GeminiAPIKey); key != "" && !isPlaceholder(key) {
		return key, nil
	}

	username := systemUser()
	if key, err := keyring.Get(keyringService, username); err == nil && key != "" {
		return key, nil
	} else if err != nil && err != keyring.ErrNotFound {
		log.Printf("Warning: keyring lookup failed: %v", err)
	}

	fmt.Print("GEMINI_API_KEY not found, enter one: ")
	byteKey, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("error reading API key: %w", err)
	}

	key := strings.TrimSpace(string(byteKey))
	if key == "" {
		return "", fmt.Errorf("a Gemini API key is required to proceed")
	}

	if cfg.AI.SaveKeyToKeyring {
		if err := keyring.Set(keyringService, username, key); err != nil {
			log.Printf("Warning: failed to save API key to keyring: %v", err)
		}
	}

	return key, nil
}

// isPlaceholder rejects obvious template values left in config files.
func isPlaceholder(key string) bool {
	switch strings.ToLower(key) {
	case "your-api-key", "your_api_key", "changeme", "placeholder", "api-key-here":
		return true
	}
	return false
}

func systemUser() string {
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME")
	}
	if username == "" {
		username = "anon"
	}
	return username
}
