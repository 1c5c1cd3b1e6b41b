package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amanlall/QuickTranscipt/internal/app"
	"github.com/amanlall/QuickTranscipt/internal/config"
	"github.com/amanlall/QuickTranscipt/internal/enhance"
	"github.com/amanlall/QuickTranscipt/internal/speech"
	"github.com/amanlall/QuickTranscipt/internal/store"
)

func main() {
	replayPath := flag.String("replay", "", "play back an NDJSON event file instead of the live helper")
	listNotes := flag.Bool("list", false, "print saved notes as plain text and exit")
	flag.Parse()

	cfg := config.Load()

	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("open note storage: %v", err)
	}
	defer closeBackend()

	st := store.New(backend)
	if err := st.Load(); err != nil {
		// Corrupt storage is recovered by starting empty, never fatal.
		log.Printf("warning: %v (starting with an empty note list)", err)
	}

	if *listNotes {
		printNotes(st)
		return
	}

	var enhancer enhance.Enhancer
	if cfg.GeminiAPIKey != "" {
		enhancer, err = enhance.NewGemini(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("warning: %v (falling back to offline enhancement)", err)
			enhancer = enhance.Offline{}
		}
	}

	var m app.Model
	if *replayPath != "" {
		src, err := speech.OpenReplay(*replayPath)
		if err != nil {
			log.Fatalf("open replay: %v", err)
		}
		defer src.Close()
		m = app.NewReplay(cfg, st, enhancer, src)
	} else {
		m = app.New(cfg, st, enhancer)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openBackend(cfg config.Config) (store.Backend, func(), error) {
	if cfg.Backend == "sqlite" {
		b, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { b.Close() }, nil
	}
	return store.NewFileBackend(cfg.NotesPath), func() {}, nil
}

func printNotes(st *store.Store) {
	notes := st.Notes()
	if len(notes) == 0 {
		fmt.Println("No saved notes.")
		return
	}
	for _, n := range notes {
		fmt.Printf("%-10s │ %s │ %s │ %s\n",
			n.Language, n.Time().Format("01-02 15:04"), n.DisplayTitle(), firstLine(n.Content, 60))
	}
}

func firstLine(s string, limit int) string {
	for i, r := range s {
		if r == '\n' || i >= limit {
			return s[:i] + "…"
		}
	}
	return s
}
