package tetris

import "github.com/kamstrup/intmap"

// maxClear is the most rows a single lock can clear (an I piece standing up).
const maxClear = 4

// Stats counts what an Engine has done since it was created.
type Stats struct {
	Actions      int64
	Ticks        int64
	StaleTicks   int64
	GamesStarted int64
	GamesOver    int64
	Locks        int64
	Lines        int64
	BestScore    int

	clears *intmap.Map[int, int64]
	spawns *intmap.Map[Kind, int64]
}

func newStats() *Stats {
	return &Stats{
		clears: intmap.New[int, int64](maxClear),
		spawns: intmap.New[Kind, int64](len(Kinds)),
	}
}

// Clears returns how many locks cleared exactly rows rows at once.
func (s *Stats) Clears(rows int) int64 {
	n, _ := s.clears.Get(rows)
	return n
}

// Spawns returns how many pieces of kind k became active.
func (s *Stats) Spawns(k Kind) int64 {
	n, _ := s.spawns.Get(k)
	return n
}

func (s *Stats) clone() *Stats {
	c := *s
	c.clears = intmap.New[int, int64](maxClear)
	c.spawns = intmap.New[Kind, int64](len(Kinds))
	for rows := 1; rows <= maxClear; rows++ {
		if n, ok := s.clears.Get(rows); ok {
			c.clears.Put(rows, n)
		}
	}
	for _, k := range Kinds {
		if n, ok := s.spawns.Get(k); ok {
			c.spawns.Put(k, n)
		}
	}
	return &c
}

func (s *Stats) addSpawn(k Kind) {
	n, _ := s.spawns.Get(k)
	s.spawns.Put(k, n+1)
}

func (s *Stats) addClear(rows int) {
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
}

// observe records the transition prev -> next caused by action a.
func (s *Stats) observe(prev, next State, a Action) {
	if a == Tick {
		s.Ticks++
	} else {
		s.Actions++
	}

	restarted := next.Session != prev.Session
	if restarted {
		s.GamesStarted++
	}

	if next.Lifecycle == GameOver && (restarted || prev.Lifecycle != GameOver) {
		s.GamesOver++
	}

	if !restarted && next.Locked > prev.Locked {
		s.Locks++
		if lines := next.Lines - prev.Lines; lines > 0 {
			s.Lines += int64(lines)
			s.addClear(lines)
		}
	}

	if next.Active != nil && (prev.Active == nil || restarted || next.Locked != prev.Locked) {
		s.addSpawn(next.Active.Kind)
	}

	if next.Score > s.BestScore {
		s.BestScore = next.Score
	}
}
