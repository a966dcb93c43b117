// Package debugui provides Dear ImGui inspector windows for a running blockfall
// engine: the live game state, gravity timing and session statistics.
package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// WantsKeyboard reports whether ImGui is consuming keyboard input this frame.
// Hosts skip their own key mapping while it returns true.
func WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

// Inspector renders the engine windows. Call Render once per frame between
// the backend's BeginFrame and EndFrame.
type Inspector struct {
	engine *tetris.Engine

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewInspector creates an inspector keeping historyFrames frame times for the graph.
func NewInspector(engine *tetris.Engine, historyFrames int) *Inspector {
	if historyFrames <= 0 {
		historyFrames = 1
	}
	return &Inspector{
		engine:        engine,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws the state and statistics windows. deltaTime is in seconds.
func (in *Inspector) Render(deltaTime float32) {
	in.renderState()
	in.renderStats(deltaTime)
}

func (in *Inspector) renderState() {
	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := in.engine.Snapshot()

	imgui.Text(fmt.Sprintf("Lifecycle: %s", snap.Lifecycle))
	imgui.Text(fmt.Sprintf("Session: %d", snap.Session))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))

	imgui.Separator()
	if snap.Active != nil {
		imgui.Text(fmt.Sprintf("Active: %v at %v", snap.Active.Kind, snap.Active.Pos))
	} else {
		imgui.Text("Active: none")
	}
	if snap.Next != nil {
		imgui.Text(fmt.Sprintf("Next: %v", snap.Next.Kind))
	} else {
		imgui.Text("Next: none")
	}
	imgui.Text(fmt.Sprintf("Locked cells: %d", snap.Board.Filled()))

	if imgui.Button("Restart") {
		in.engine.Dispatch(tetris.StartOrRestart)
	}

	if imgui.TreeNodeStr("Board") {
		imgui.Text(snap.Cells().String())
		imgui.TreePop()
	}

	imgui.End()
}

func (in *Inspector) renderStats(deltaTime float32) {
	if !imgui.BeginV("Engine Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	in.frameHistory[in.frameIndex] = deltaTime * 1000.0
	in.frameIndex = (in.frameIndex + 1) % in.historyFrames

	stats := in.engine.Stats()
	gravity := in.engine.Gravity().Stats()

	imgui.Text(fmt.Sprintf("Games: %d started, %d over", stats.GamesStarted, stats.GamesOver))
	imgui.Text(fmt.Sprintf("Actions: %d  Ticks: %d  Stale ticks: %d", stats.Actions, stats.Ticks, stats.StaleTicks))
	imgui.Text(fmt.Sprintf("Locks: %d  Lines: %d  Best: %d", stats.Locks, stats.Lines, stats.BestScore))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Gravity: armed=%t epoch=%d period=%s", gravity.Armed, gravity.Epoch, in.engine.Gravity().Period()))
	imgui.Text(fmt.Sprintf("Ticks fired: %d  avg %s  min %s  max %s",
		gravity.Fires, round(gravity.AvgInterval), round(gravity.MinInterval), round(gravity.MaxInterval)))

	var avgFrameTime float32
	for _, ft := range in.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(in.historyFrames)

	imgui.Separator()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}
	imgui.PlotLinesFloatPtr("##frametime", &in.frameHistory[0], int32(len(in.frameHistory)))

	if imgui.TreeNodeStr("Line Clears") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ClearsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows at once")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for rows := 1; rows <= 4; rows++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", rows))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Clears(rows)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawns") {
		for _, k := range tetris.Kinds {
			imgui.BulletText(fmt.Sprintf("%v: %d", k, stats.Spawns(k)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func round(d time.Duration) time.Duration {
	return d.Round(time.Millisecond)
}

// FrameTimer measures the time between consecutive frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// DeltaTime returns the seconds elapsed since the previous call.
func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
