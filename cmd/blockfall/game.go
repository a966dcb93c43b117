package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	wellColor       = color.RGBA{40, 40, 52, 255}
	gridColor       = color.RGBA{55, 55, 70, 255}
)

type binding struct {
	keys   []ebiten.Key
	action tetris.Action
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, tetris.MoveLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, tetris.MoveRight},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, tetris.SoftDrop},
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, tetris.Rotate},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, tetris.StartOrRestart},
}

// queueInput queues one action per binding whose key was pressed this frame.
func queueInput(cmds *tetris.Commands, justPressed func(ebiten.Key) bool) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if justPressed(k) {
				cmds.Queue(b.action)
				break
			}
		}
	}
}

type Game struct {
	engine   *tetris.Engine
	commands tetris.Commands
	snapshot tetris.Snapshot

	backend   *debugui_ebiten.ImguiBackend
	inspector *debugui.Inspector
	timer     *debugui.FrameTimer
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.backend != nil {
		g.backend.BeginFrame()
		defer g.backend.EndFrame()
		g.inspector.Render(g.timer.DeltaTime())
	}

	justPressed := inpututil.IsKeyJustPressed
	if g.backend != nil && debugui.WantsKeyboard() {
		justPressed = func(ebiten.Key) bool { return false }
	}
	g.applyInput(justPressed)
	return nil
}

// applyInput flushes this frame's key presses into the engine and refreshes
// the snapshot drawn next. The refresh runs even without input so gravity
// moves show up.
func (g *Game) applyInput(justPressed func(ebiten.Key) bool) {
	queueInput(&g.commands, justPressed)
	g.commands.Defer(func() {
		g.snapshot = g.engine.Snapshot()
	})
	g.commands.Flush(g.engine)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawBoard(screen, g.snapshot)
	drawSidebar(screen, g.snapshot)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}

func drawCell(screen *ebiten.Image, originX, originY float32, x, y int, c color.Color) {
	sx := originX + float32(x*CellSize)
	sy := originY + float32(y*CellSize)
	vector.DrawFilledRect(screen, sx+1, sy+1, CellSize-2, CellSize-2, c, false)
}

func drawBoard(screen *ebiten.Image, snap tetris.Snapshot) {
	vector.DrawFilledRect(screen, BoardOffsetX, BoardOffsetY, tetris.Cols*CellSize, tetris.Rows*CellSize, wellColor, false)

	cells := snap.Cells()
	for y := range tetris.Rows {
		for x := range tetris.Cols {
			if cell := cells[y][x]; cell.Filled() {
				drawCell(screen, BoardOffsetX, BoardOffsetY, x, y, cell.Kind.Color())
			} else {
				drawCell(screen, BoardOffsetX, BoardOffsetY, x, y, gridColor)
			}
		}
	}
}

func drawSidebar(screen *ebiten.Image, snap tetris.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), SidebarX, BoardOffsetY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Lines), SidebarX, BoardOffsetY+16)
	ebitenutil.DebugPrintAt(screen, "NEXT", SidebarX, BoardOffsetY+48)

	if snap.Next != nil {
		for p := range snap.Next.Shape.Cells() {
			drawCell(screen, SidebarX, BoardOffsetY+68, p.X, p.Y, snap.Next.Kind.Color())
		}
	}

	var status string
	switch snap.Lifecycle {
	case tetris.Idle:
		status = "PRESS ENTER"
	case tetris.GameOver:
		status = "GAME OVER\nENTER TO RESTART"
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, SidebarX, BoardOffsetY+180)
	}
}
