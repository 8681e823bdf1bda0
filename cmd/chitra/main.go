package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/chitra/internal/app"
	"github.com/ayusman/chitra/internal/server"
	"github.com/ayusman/chitra/internal/store"
	"github.com/ayusman/chitra/internal/tray"
)

func main() {
	fmt.Println("Chitra - Hand Gesture Air Painter")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".chitra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "chitra.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Find asset directories
	webDir := findDir("web")
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}
	headerDir := findDir("headers")
	if headerDir != "" {
		fmt.Printf("Loading toolbar images from: %s\n", headerDir)
	}

	tr := tray.New()
	display := app.NewWindowDisplay("Chitra")

	application := app.New(app.Config{
		Store:     st,
		HeaderDir: headerDir,
		Display:   display,
		OnQuit:    tr.Quit,
	})
	if err := application.LoadSettings(); err != nil {
		log.Printf("Failed to load settings: %v", err)
	}

	// Configure and start server
	cfg := server.Config{
		StaticDir: webDir,
		Store:     st,
		Session:   application.Session(),
		Frames:    application,
		State:     application,
	}
	srv := server.New(cfg)

	addr := ":8080"
	fmt.Printf("Starting server on %s\n", addr)
	go func() {
		if err := srv.ListenAndServe(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}

	tr.OnToggle(application.SetEnabled)
	tr.OnClear(application.Session().Clear)
	tr.OnSettings(func() {
		log.Printf("Dashboard available at http://localhost%s", addr)
	})

	// Blocks until the tray quit item or the preview window requests exit
	tr.Run()

	application.Stop()
	application.CloseAssets()
	if err := display.Close(); err != nil {
		log.Printf("Error closing display: %v", err)
	}
}

// findDir searches for an asset directory in common locations.
// It checks relative paths and ~/.chitra/<name>, returning the first
// existing directory or empty string if none found.
func findDir(name string) string {
	relativePaths := []string{name, "../" + name, "../../" + name}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeDirPath := filepath.Join(homeDir, ".chitra", name)
	if info, err := os.Stat(homeDirPath); err == nil && info.IsDir() {
		return homeDirPath
	}

	return ""
}
