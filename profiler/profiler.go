// Package profiler times the stages of an import run for performance
// monitoring. Timings are collected per stage and written to the log in a
// single summary line.
package profiler

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Stage records the elapsed duration of one named pipeline stage.
type Stage struct {
	Name     string
	Duration time.Duration
}

// Profiler tracks per-stage timings of a single import run.
// A nil Profiler is valid and records nothing, so callers can mark stages
// unconditionally.
type Profiler struct {
	label  string
	start  time.Time
	mark   time.Time
	stages []Stage
}

// New creates a profiler for one import run.
//
// Parameters:
//   - label: identifies the run in log output, usually the file path
//
// Returns:
//   - *Profiler: the newly created profiler instance
func New(label string) *Profiler {
	now := time.Now()
	return &Profiler{label: label, start: now, mark: now}
}

// Mark records the time spent since the previous mark (or since creation)
// under the given stage name.
//
// Parameters:
//   - name: the stage name
func (p *Profiler) Mark(name string) {
	if p == nil {
		return
	}
	now := time.Now()
	p.stages = append(p.stages, Stage{Name: name, Duration: now.Sub(p.mark)})
	p.mark = now
}

// Stages returns the stages recorded so far.
//
// Returns:
//   - []Stage: the recorded stages in order
func (p *Profiler) Stages() []Stage {
	if p == nil {
		return nil
	}
	return p.stages
}

// Total returns the time elapsed since the profiler was created.
//
// Returns:
//   - time.Duration: the total elapsed time
func (p *Profiler) Total() time.Duration {
	if p == nil {
		return 0
	}
	return time.Since(p.start)
}

// Done writes one summary line with every recorded stage and the total
// elapsed time.
func (p *Profiler) Done() {
	if p == nil {
		return
	}

	parts := make([]string, 0, len(p.stages)+1)
	for _, s := range p.stages {
		parts = append(parts, fmt.Sprintf("%s: %s", s.Name, s.Duration))
	}
	parts = append(parts, fmt.Sprintf("total: %s", p.Total()))

	log.Printf("[Profiler] %s | %s", p.label, strings.Join(parts, " | "))
}
