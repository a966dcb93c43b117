package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptMoveLateralRejectedAtWall(t *testing.T) {
	s := running(tetris.Board{}, tetris.KindO, tetris.Position{X: 0, Y: 5}, tetris.KindT)
	f := tetris.NewFactory(kinds(tetris.KindI))

	next := tetris.AttemptMove(s, f, -1, 0, false)

	assert.Equal(t, s, next)
	assert.Equal(t, tetris.Position{X: 0, Y: 5}, next.Active.Pos)
	assert.Equal(t, tetris.Running, next.Lifecycle)
}

func TestAttemptMoveCommits(t *testing.T) {
	s := running(tetris.Board{}, tetris.KindT, tetris.Position{X: 3, Y: 0}, tetris.KindO)
	f := tetris.NewFactory(kinds(tetris.KindI))

	moved := tetris.AttemptMove(s, f, 1, 0, false)
	assert.Equal(t, tetris.Position{X: 4, Y: 0}, moved.Active.Pos)
	assert.Equal(t, tetris.Position{X: 3, Y: 0}, s.Active.Pos, "the previous state is not modified")

	rotated := tetris.AttemptMove(moved, f, 0, 0, true)
	assert.Equal(t, tetris.KindT.Shape().Rotate(), rotated.Active.Shape)
	assert.Equal(t, moved.Active.Pos, rotated.Active.Pos)
	assert.Equal(t, tetris.KindT.Shape(), moved.Active.Shape)
}

func TestAttemptMoveBlockedNonDownwardIsNoop(t *testing.T) {
	t.Run("diagonal into the floor does not lock", func(t *testing.T) {
		s := running(tetris.Board{}, tetris.KindO, tetris.Position{X: 4, Y: 18}, tetris.KindT)
		next := tetris.AttemptMove(s, tetris.NewFactory(kinds(tetris.KindI)), 1, 1, false)
		assert.Equal(t, s, next)
	})

	t.Run("rotation at the floor", func(t *testing.T) {
		s := running(tetris.Board{}, tetris.KindI, tetris.Position{X: 3, Y: 19}, tetris.KindT)
		next := tetris.AttemptMove(s, tetris.NewFactory(kinds(tetris.KindI)), 0, 0, true)
		assert.Equal(t, s, next)
		assert.Equal(t, 0, next.Locked)
	})

	t.Run("rotation at the wall has no kick", func(t *testing.T) {
		f := tetris.NewFactory(kinds(tetris.KindI))
		s := running(tetris.Board{}, tetris.KindI, tetris.Position{X: 3, Y: 0}, tetris.KindT)

		s = tetris.AttemptMove(s, f, 0, 0, true)
		require.Equal(t, 1, s.Active.Shape.Width())
		for range 6 {
			s = tetris.AttemptMove(s, f, 1, 0, false)
		}
		require.Equal(t, 9, s.Active.Pos.X)

		next := tetris.AttemptMove(s, f, 0, 0, true)
		assert.Equal(t, s, next)
	})
}

func TestAttemptMoveOutsideRunningIsNoop(t *testing.T) {
	f := tetris.NewFactory(kinds(tetris.KindI))

	idle := running(tetris.Board{}, tetris.KindO, tetris.Position{X: 4, Y: 0}, tetris.KindT)
	idle.Lifecycle = tetris.Idle
	assert.Equal(t, idle, tetris.AttemptMove(idle, f, 0, 1, false))

	over := tetris.State{Lifecycle: tetris.GameOver, Score: 30}
	assert.Equal(t, over, tetris.AttemptMove(over, f, 0, 1, false))

	noPiece := tetris.State{Lifecycle: tetris.Running}
	assert.Equal(t, noPiece, tetris.AttemptMove(noPiece, f, 0, 1, false))
}

func TestSoftDropLocksOPieceOnFloor(t *testing.T) {
	rng := kinds(tetris.KindZ)
	f := tetris.NewFactory(rng)
	s := running(tetris.Board{}, tetris.KindO, tetris.Position{X: 4, Y: 0}, tetris.KindT)

	for range 18 {
		s = tetris.Apply(s, tetris.SoftDrop, f)
	}
	require.Equal(t, tetris.Position{X: 4, Y: 18}, s.Active.Pos)
	require.Equal(t, 0, s.Locked)

	s = tetris.Apply(s, tetris.SoftDrop, f)

	assert.Equal(t, 1, s.Locked)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 4, s.Board.Filled())
	for _, p := range []tetris.Position{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		assert.Equal(t, tetris.KindO, s.Board[p.Y][p.X].Kind, "cell %v", p)
	}

	require.NotNil(t, s.Active)
	assert.Equal(t, tetris.KindT, s.Active.Kind, "the preview becomes active")
	assert.Equal(t, tetris.Position{X: 3, Y: 0}, s.Active.Pos)
	require.NotNil(t, s.Next)
	assert.Equal(t, tetris.KindZ, s.Next.Kind, "a fresh preview is drawn")
	assert.Equal(t, 1, rng.draws())
	assert.Equal(t, tetris.Running, s.Lifecycle)
}

func TestLockClearsLine(t *testing.T) {
	t.Run("horizontal I fills a four cell gap", func(t *testing.T) {
		f := tetris.NewFactory(kinds(tetris.KindT))
		board := mustBoard(t, "OOO....OOO")
		s := running(board, tetris.KindI, tetris.Position{X: 3, Y: 0}, tetris.KindO)

		s, drops := dropUntilLocked(t, s, f)

		assert.Equal(t, 19, drops)
		assert.Equal(t, 1, s.Lines)
		assert.Equal(t, 10, s.Score)
		assert.Equal(t, 0, s.Board.Filled(), "the bottom row is refilled from the empty row above")
		assert.Equal(t, tetris.KindO, s.Active.Kind)
		assert.Equal(t, tetris.KindT, s.Next.Kind)
	})

	t.Run("vertical I fills a one cell gap", func(t *testing.T) {
		f := tetris.NewFactory(kinds(tetris.KindT))
		board := mustBoard(t, "OOOOOOOOO.")
		s := running(board, tetris.KindI, tetris.Position{X: 3, Y: 0}, tetris.KindO)

		s = tetris.Apply(s, tetris.Rotate, f)
		for range 6 {
			s = tetris.Apply(s, tetris.MoveRight, f)
		}
		require.Equal(t, tetris.Position{X: 9, Y: 0}, s.Active.Pos)

		s, _ = dropUntilLocked(t, s, f)

		assert.Equal(t, 10, s.Score)
		assert.Equal(t, 3, s.Board.Filled())
		for y := tetris.Rows - 3; y < tetris.Rows; y++ {
			assert.Equal(t, tetris.KindI, s.Board[y][9].Kind, "row %d", y)
		}
		assert.False(t, s.Board[tetris.Rows-1][0].Filled())
	})

	t.Run("two rows score flat", func(t *testing.T) {
		f := tetris.NewFactory(kinds(tetris.KindT))
		board := mustBoard(t, "OOOO..OOOO\nOOOO..OOOO")
		s := running(board, tetris.KindO, tetris.Position{X: 4, Y: 0}, tetris.KindI)

		s, _ = dropUntilLocked(t, s, f)

		assert.Equal(t, 2, s.Lines)
		assert.Equal(t, 2*tetris.PointsPerLine, s.Score)
		assert.Equal(t, 0, s.Board.Filled())
	})
}

func TestLockIntoBlockedSpawnEndsGame(t *testing.T) {
	var board tetris.Board
	for _, y := range []int{0, 1, 3} {
		for x := 1; x < tetris.Cols; x++ {
			board[y][x] = tetris.Cell{Kind: tetris.KindZ}
		}
	}
	rng := kinds(tetris.KindI)
	f := tetris.NewFactory(rng)
	s := running(board, tetris.KindI, tetris.Position{X: 3, Y: 2}, tetris.KindO)
	require.True(t, s.Active.Fits(s.Board))

	s = tetris.Apply(s, tetris.Tick, f)

	assert.Equal(t, tetris.GameOver, s.Lifecycle)
	assert.Nil(t, s.Active)
	assert.Nil(t, s.Next)
	assert.Equal(t, 1, s.Locked)
	assert.Equal(t, tetris.KindI, s.Board[2][3].Kind, "the last piece stays on the board")
	assert.Equal(t, 0, rng.draws(), "no preview is drawn once the game is over")

	assert.Equal(t, s, tetris.Apply(s, tetris.SoftDrop, f))
}

func TestLockWithoutPreviewSpawns(t *testing.T) {
	rng := kinds(tetris.KindT, tetris.KindS)
	f := tetris.NewFactory(rng)
	s := running(tetris.Board{}, tetris.KindO, tetris.Position{X: 4, Y: 18}, tetris.KindI)
	s.Next = nil

	s = tetris.Apply(s, tetris.SoftDrop, f)

	require.NotNil(t, s.Active)
	assert.Equal(t, tetris.KindT, s.Active.Kind)
	assert.Equal(t, tetris.KindS, s.Next.Kind)
	assert.Equal(t, 2, rng.draws())
}
