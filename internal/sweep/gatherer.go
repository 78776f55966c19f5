package sweep

import "github.com/programme-lv/speedup/internal/timing"

// Gatherer receives progress events from a sweep, in order.
type Gatherer interface {
	StartSweep(maxCores int, repeat int)

	StartCores(cores int)
	FinishRun(sample timing.Sample)
	FinishCores(summary timing.Summary)

	FinishSweep(summaries []timing.Summary)
}

// NopGatherer ignores all events.
type NopGatherer struct{}

func (NopGatherer) StartSweep(int, int)          {}
func (NopGatherer) StartCores(int)               {}
func (NopGatherer) FinishRun(timing.Sample)      {}
func (NopGatherer) FinishCores(timing.Summary)   {}
func (NopGatherer) FinishSweep([]timing.Summary) {}
