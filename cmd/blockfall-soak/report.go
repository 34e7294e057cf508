package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/plus3/blockfall/game"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Rate     float64
	DT       float64

	// Results
	TotalTime      time.Duration
	TickTime       Stats
	Scheduler      *game.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	Games     int
	BestScore int
	MaxLevel  int
	Lines     int
	Events    map[string]int
}

// HandleEvent tallies game events and finished games.
func (r *Report) HandleEvent(e game.Event) {
	r.Events[e.Kind.String()]++
	switch e.Kind {
	case game.EventLinesCleared:
		r.Lines += e.Lines
	case game.EventGameOver:
		r.Games++
		r.BestScore = max(r.BestScore, e.Result.Score)
		r.MaxLevel = max(r.MaxLevel, e.Result.Level)
	}
}

// TicksPerSecond is the measured throughput.
func (r *Report) TicksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(len(r.TickTime.Samples)) / r.TotalTime.Seconds()
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
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

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
- **Seed:** {{.Seed}}
- **Command Rate:** {{printf "%.2f" .Rate}} per tick
- **Tick Delta:** {{printf "%.4f" .DT}}s

## Games
- **Finished:** {{comma .Games}}
- **Best Score:** {{comma .BestScore}}
- **Highest Level:** {{.MaxLevel}}
- **Lines Cleared:** {{comma .Lines}}
{{- range $kind, $n := .Events}}
- {{$kind}}: {{comma $n}}
{{- end}}

## Performance
- **Total Ticks:** {{len .TickTime.Samples | comma}}
- **Total Time:** {{.TotalTime}}
- **Throughput:** {{printf "%.0f" .TicksPerSecond}} ticks/s
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
{{with .Scheduler}}
## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}
{{end}}
## Memory Usage
- Heap Alloc:     {{bytes .MemStatsStart.HeapAlloc}} (start) -> {{bytes .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{bytes .MemStatsStart.TotalAlloc}} (start) -> {{bytes .MemStatsEnd.TotalAlloc}} (end)
- Sys Memory:     {{bytes .MemStatsStart.Sys}} (start) -> {{bytes .MemStatsEnd.Sys}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

var reportFuncs = template.FuncMap{
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"bytes": humanize.Bytes,
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
