package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/micromedics/internal/core/progress"
	"chosenoffset.com/micromedics/internal/game"
	ebitenrender "chosenoffset.com/micromedics/internal/render/ebiten"
	"chosenoffset.com/micromedics/internal/simulation"
)

func main() {
	configPath := flag.String("config", "data/micromedics.yaml", "game data file (levels, systems, story)")
	savePath := flag.String("save", defaultSavePath(), "progress save file")
	variant := flag.String("variant", "", "story variant to play (clinic, cinematic, express)")
	screenWidth := flag.Int("width", 960, "window width")
	screenHeight := flag.Int("height", 540, "window height")
	flag.Parse()

	log.Printf("Loading game data: %s", *configPath)
	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	log.Printf("Loading progress: %s", *savePath)
	store := progress.Open(progress.NewFileBackend(*savePath))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	gameManager, err := game.NewManager(cfg, *variant, store, renderer, inputMgr, *screenWidth, *screenHeight)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(*screenWidth, *screenHeight)
	engine.SetWindowTitle("MicroMedics")
	engine.SetWindowResizable(true)
	engine.SetTPS(game.TPS)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}

// defaultSavePath puts the save under the user config directory, falling
// back to the working directory.
func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "micromedics-progress.json"
	}
	return filepath.Join(dir, "micromedics", "progress.json")
}
