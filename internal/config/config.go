// Package config loads settings from the environment, with an optional
// .env file.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/amanlall/QuickTranscipt/internal/session"
	"github.com/amanlall/QuickTranscipt/internal/speech"
	"github.com/amanlall/QuickTranscipt/internal/store"
)

// Config carries everything the program needs at startup.
type Config struct {
	// Locale is the initial recognition locale.
	Locale string
	// Engine selects the helper's recognition engine (web or azure).
	Engine string
	// SocketPath is the capture helper's Unix socket.
	SocketPath string
	// Backend selects note persistence: "file" or "sqlite".
	Backend string
	// NotesPath is the file backend's JSON path.
	NotesPath string
	// DBPath is the sqlite backend's database path.
	DBPath string
	// GeminiAPIKey enables the Gemini enhancer when set; the offline
	// enhancer is used otherwise.
	GeminiAPIKey string
	// AutosaveInterval is the segment flush period.
	AutosaveInterval time.Duration
}

// Load reads configuration from a .env file (if present) and the process
// environment, falling back to defaults.
func Load() Config {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		Locale:           getenv("QT_LOCALE", "en-US"),
		Engine:           getenv("QT_ENGINE", speech.EngineWeb),
		SocketPath:       getenv("QT_SOCKET", speech.SocketPath()),
		Backend:          getenv("QT_BACKEND", "file"),
		NotesPath:        getenv("QT_NOTES_PATH", store.DefaultNotesPath()),
		DBPath:           getenv("QT_DB_PATH", store.DefaultDBPath()),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		AutosaveInterval: session.AutosaveInterval,
	}

	if v := os.Getenv("QT_AUTOSAVE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.AutosaveInterval = d
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
