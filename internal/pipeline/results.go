package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/blurhash-tools/internal/imaging"
	"github.com/ironsheep/blurhash-tools/internal/logging"
)

// Status is the terminal state of one item.
type Status int

const (
	StatusEncoded Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusEncoded:
		return "encoded"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome records what happened to one input path.
type Outcome struct {
	Path     string
	Artifact string
	Status   Status
	Hash     string // Set when Status is StatusEncoded.
	Reason   string // Set when Status is StatusSkipped.
	Err      error  // Set when Status is StatusFailed.
}

// skipReason is recorded for images whose artifact already exists.
const skipReason = "BlurHash file already exists"

// SkippedOutcome returns the outcome for an image whose artifact already exists.
func SkippedOutcome(path string) Outcome {
	return Outcome{
		Path:     path,
		Artifact: imaging.ArtifactPath(path),
		Status:   StatusSkipped,
		Reason:   skipReason,
	}
}

// Stats counts outcomes by status.
type Stats struct {
	Total   int `json:"total"`
	Encoded int `json:"encoded"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Results is an append-only, concurrency-safe collection of outcomes.
// The zero value is ready to use.
type Results struct {
	mu       sync.Mutex
	outcomes []Outcome
}

// Add appends one outcome.
func (r *Results) Add(o Outcome) {
	r.mu.Lock()
	r.outcomes = append(r.outcomes, o)
	r.mu.Unlock()
}

// Outcomes returns a copy of the outcomes sorted by path.
func (r *Results) Outcomes() []Outcome {
	r.mu.Lock()
	out := make([]Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

// Stats tallies the outcomes.
func (r *Results) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Stats{Total: len(r.outcomes)}
	for _, o := range r.outcomes {
		switch o.Status {
		case StatusEncoded:
			s.Encoded++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// HasFailures reports whether any item failed.
func (r *Results) HasFailures() bool {
	return r.Stats().Failed > 0
}

// Err joins the errors of all failed items, or returns nil.
func (r *Results) Err() error {
	var errs []error
	for _, o := range r.Outcomes() {
		if o.Status == StatusFailed {
			errs = append(errs, fmt.Errorf("%s: %w", o.Path, o.Err))
		}
	}
	return errors.Join(errs...)
}

// LogSummary writes the closing "Done" line for a batch.
func LogSummary(log *logging.Logger, s Stats) {
	log.Info("==============================")
	if s.Failed > 0 {
		log.Warn("Done: %d encoded, %d skipped, %d failed", s.Encoded, s.Skipped, s.Failed)
		return
	}
	log.Success("Done: %d encoded, %d skipped, %d failed", s.Encoded, s.Skipped, s.Failed)
}
