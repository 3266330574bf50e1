package build

import (
	"github.com/lua-bridge/build-addon/src/internal/artifact"
	"github.com/lua-bridge/build-addon/src/internal/platform"
	"github.com/lua-bridge/build-addon/src/internal/tui"
)

// Stage is how far a pair got
type Stage int

const (
	StageBuild Stage = iota // SCons failed
	StageCopy               // built, but the copy failed
	StageDone               // built and copied
)

func (s Stage) String() string {
	switch s {
	case StageDone:
		return "completed"
	case StageCopy:
		return "copy failed"
	default:
		return "build failed"
	}
}

// PairResult is the outcome of building and copying one platform/configuration
type PairResult struct {
	Platform      platform.Platform
	Configuration artifact.Configuration
	Stage         Stage
	Path          string // destination, set when Stage is StageDone
	Err           error
}

// Succeeded reports whether the pair was built and copied
func (r PairResult) Succeeded() bool {
	return r.Stage == StageDone && r.Err == nil
}

// Summary collects the results of a BuildAll run
type Summary struct {
	Results []PairResult

	// Total is the number of pairs a full run attempts
	Total int
}

// NewSummary returns an empty summary sized for every known platform and configuration
func NewSummary() *Summary {
	return &Summary{
		Total: len(platform.Known()) * len(artifact.Configurations()),
	}
}

// Add records a pair result
func (s *Summary) Add(result PairResult) {
	s.Results = append(s.Results, result)
}

// Attempted returns how many pairs were tried
func (s *Summary) Attempted() int {
	return len(s.Results)
}

// Succeeded returns how many pairs were built and copied
func (s *Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Succeeded() {
			n++
		}
	}
	return n
}

// Failed returns the results that did not succeed
func (s *Summary) Failed() []PairResult {
	var failed []PairResult
	for _, r := range s.Results {
		if !r.Succeeded() {
			failed = append(failed, r)
		}
	}
	return failed
}

// OK reports whether at least one pair succeeded
func (s *Summary) OK() bool {
	return s.Succeeded() > 0
}

// Render returns the results as a table
func (s *Summary) Render() string {
	table := tui.NewTable("Platform", "Configuration", "Result", "File")
	table.SetTitle("Build Summary")

	for _, r := range s.Results {
		if r.Succeeded() {
			table.AddActiveRow(tui.RenderPlatform(r.Platform.String()), r.Configuration.String(),
				tui.GetCheckMark()+" "+r.Stage.String(), targetName(r.Platform, r.Configuration))
			continue
		}
		table.AddRow(r.Platform.String(), r.Configuration.String(),
			tui.GetCrossMark()+" "+r.Stage.String(), tui.RenderMuted("-"))
	}

	return table.Render()
}
