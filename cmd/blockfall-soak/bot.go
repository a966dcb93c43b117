package main

import "github.com/plus3/blockfall/tetris"

var botActions = []tetris.Action{
	tetris.MoveLeft,
	tetris.MoveRight,
	tetris.SoftDrop,
	tetris.SoftDrop,
	tetris.Rotate,
}

// Bot picks random input, restarting whenever the game is not running.
type Bot struct {
	rng tetris.Rand
}

func NewBot(rng tetris.Rand) *Bot {
	return &Bot{rng: rng}
}

func (b *Bot) Next(snap tetris.Snapshot) tetris.Action {
	if snap.Lifecycle != tetris.Running {
		return tetris.StartOrRestart
	}
	return botActions[b.rng.IntN(len(botActions))]
}
