package printqueue

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidConstraints is returned when the printer limits cannot hold any job.
	ErrInvalidConstraints = errors.New("invalid printer constraints")
	// ErrInvalidJob is returned for malformed jobs.
	ErrInvalidJob = errors.New("invalid print job")
)

// Job is a single model waiting to be printed.
// Priority 1 is the most urgent.
type Job struct {
	ID        string  `json:"id"`
	Volume    float64 `json:"volume"`
	Priority  int     `json:"priority"`
	PrintTime int     `json:"printTime"`
}

// Constraints describes what the printer can run at once.
type Constraints struct {
	MaxVolume float64 `json:"maxVolume"`
	MaxItems  int     `json:"maxItems"`
}

// Result is the print order and the total time it takes.
type Result struct {
	PrintOrder []string
	TotalTime  int
}

// group is a set of jobs printed simultaneously
type group struct {
	ids    []string
	volume float64
	time   int
}

// Optimize orders jobs by priority and groups them greedily for simultaneous
// printing.
//
// Jobs are taken in priority order (stable for equal priorities) and added to
// the current group while it has fewer than MaxItems jobs and the combined
// volume stays within MaxVolume. Otherwise the group is closed and a new one
// starts with the job. A group takes as long as its slowest job, and the
// total time is the sum over all groups.
func Optimize(jobs []Job, constraints Constraints) (Result, error) {
	if err := validate(jobs, constraints); err != nil {
		return Result{}, err
	}

	sorted := make([]Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	result := Result{PrintOrder: make([]string, 0, len(jobs))}
	var current group

	flush := func() {
		if len(current.ids) == 0 {
			return
		}
		result.PrintOrder = append(result.PrintOrder, current.ids...)
		result.TotalTime += current.time
	}

	for _, job := range sorted {
		if len(current.ids) < constraints.MaxItems && current.volume+job.Volume <= constraints.MaxVolume {
			current.ids = append(current.ids, job.ID)
			current.volume += job.Volume
			current.time = max(current.time, job.PrintTime)
			continue
		}

		// Oversized jobs still get printed, alone.
		flush()
		current = group{ids: []string{job.ID}, volume: job.Volume, time: job.PrintTime}
	}
	flush()

	return result, nil
}

func validate(jobs []Job, c Constraints) error {
	if c.MaxItems <= 0 {
		return fmt.Errorf("%w: max items must be positive, got %d", ErrInvalidConstraints, c.MaxItems)
	}
	if c.MaxVolume <= 0 {
		return fmt.Errorf("%w: max volume must be positive, got %g", ErrInvalidConstraints, c.MaxVolume)
	}

	seen := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		switch {
		case j.ID == "":
			return fmt.Errorf("%w: missing id", ErrInvalidJob)
		case seen[j.ID]:
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidJob, j.ID)
		case j.Volume < 0:
			return fmt.Errorf("%w: job %q has negative volume", ErrInvalidJob, j.ID)
		case j.PrintTime < 0:
			return fmt.Errorf("%w: job %q has negative print time", ErrInvalidJob, j.ID)
		}
		seen[j.ID] = true
	}

	return nil
}
