package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
)

const (
	CellSize     = 24
	BoardOffsetX = 20
	BoardOffsetY = 20
	SidebarX     = BoardOffsetX + tetris.Cols*CellSize + 20

	ScreenWidth  = SidebarX + 6*CellSize
	ScreenHeight = BoardOffsetY*2 + tetris.Rows*CellSize
)

func main() {
	gravity := flag.Duration("gravity", tetris.GravityPeriod, "Interval between gravity ticks.")
	seed := flag.Uint64("seed", 0, "Seed for piece selection. Zero draws from the global source.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui engine inspector.")
	flag.Parse()

	opts := []tetris.Option{
		tetris.WithGravityPeriod(*gravity),
		tetris.WithListener(func(prev, next tetris.Snapshot) {
			if prev.Lifecycle == tetris.Running && next.Lifecycle == tetris.GameOver {
				log.Printf("game over: session %d, score %d, lines %d", next.Session, next.Score, next.Lines)
			}
		}),
	}
	if *seed != 0 {
		opts = append(opts, tetris.WithRand(tetris.NewRand(*seed)))
	}

	engine := tetris.NewEngine(opts...)
	defer engine.Close()

	game := &Game{engine: engine}

	if *debug {
		game.backend = debugui_ebiten.NewImguiBackend("Blockfall", 1280, 720)
		game.inspector = debugui.NewInspector(engine, 120)
		game.timer = debugui.NewFrameTimer()
	} else {
		ebiten.SetWindowSize(ScreenWidth*2, ScreenHeight*2)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	start := time.Now()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("blockfall: %v", err)
	}

	stats := engine.Stats()
	log.Printf("played %d games in %s, best score %d", stats.GamesStarted, time.Since(start).Round(time.Second), stats.BestScore)
}
