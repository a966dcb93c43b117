package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Seed     uint64
	Gravity  time.Duration

	// Results
	TotalTime    time.Duration
	DispatchTime Stats
	Engine       *tetris.Stats
	GravityStats tetris.GravityStats
	Violations   []string
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min, s.Max = s.Samples[0], s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Game Limit:** {{if .Games}}{{.Games}}{{else}}none{{end}}
- **Seed:** {{.Seed}}
- **Gravity Period:** {{.Gravity}}

## Play
- **Total Time:** {{.TotalTime}}
- **Games:** {{.Engine.GamesStarted}} started, {{.Engine.GamesOver}} over
- **Actions:** {{.Engine.Actions}}
- **Gravity Ticks:** {{.Engine.Ticks}} applied, {{.Engine.StaleTicks}} stale
- **Locks:** {{.Engine.Locks}}
- **Lines:** {{.Engine.Lines}}
- **Best Score:** {{.Engine.BestScore}}

## Line Clears
{{range $rows := rows}}- {{$rows}} at once: {{$.Engine.Clears $rows}}
{{end}}
## Spawns
{{range $k := kinds}}- {{$k}}: {{$.Engine.Spawns $k}}
{{end}}
## Timing
- **Dispatch:** avg {{.DispatchTime.Avg}}, min {{.DispatchTime.Min}}, max {{.DispatchTime.Max}}
- **Gravity Interval:** avg {{.GravityStats.AvgInterval}}, min {{.GravityStats.MinInterval}}, max {{.GravityStats.MaxInterval}} over {{.GravityStats.Fires}} fires

## Invariants
{{if .Violations}}{{range .Violations}}- {{.}}
{{end}}{{else}}- no violations
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"rows":  func() []int { return []int{1, 2, 3, 4} },
		"kinds": func() []tetris.Kind { return tetris.Kinds },
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
