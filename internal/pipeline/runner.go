package pipeline

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/ironsheep/blurhash-tools/internal/blurhash"
	"github.com/ironsheep/blurhash-tools/internal/imaging"
	"github.com/ironsheep/blurhash-tools/internal/logging"
)

// DecodeFunc turns an image file into pixels.
type DecodeFunc func(path string) (*imaging.PixelBuffer, error)

// WriteFunc stores an artifact, creating or replacing the whole file.
type WriteFunc func(path string, data []byte) error

// Processor computes BlurHash artifacts for a list of image paths.
type Processor struct {
	// Grid is the component grid passed to the encoder.
	Grid blurhash.Grid

	// Workers caps the number of items in flight. Zero or negative means
	// one per CPU.
	Workers int

	// Decode defaults to imaging.Loader{}.Load.
	Decode DecodeFunc

	// Write defaults to os.WriteFile with mode 0644.
	Write WriteFunc

	// DryRun computes hashes without writing artifacts.
	DryRun bool

	// Log defaults to a discarding logger.
	Log *logging.Logger
}

// NewProcessor returns a Processor decoding with loader.
func NewProcessor(grid blurhash.Grid, workers int, loader imaging.Loader, log *logging.Logger) *Processor {
	return &Processor{
		Grid:    grid,
		Workers: workers,
		Decode:  loader.Load,
		Log:     log,
	}
}

// PoolSize returns the effective number of workers.
func (p *Processor) PoolSize() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}

// Run processes every path and returns one outcome per path.
//
// A slot is taken before an item starts and released only after its outcome
// has been recorded, so at most PoolSize items decode, encode or write at the
// same time. Waiting for a slot never times out. If ctx is cancelled while
// waiting, items that have not started are recorded as failed; items already
// running finish normally.
func (p *Processor) Run(ctx context.Context, paths []string) *Results {
	res := &Results{}
	sem := semaphore.NewWeighted(int64(p.PoolSize()))
	var wg sync.WaitGroup

	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			for _, rest := range paths[i:] {
				res.Add(Outcome{
					Path:     rest,
					Artifact: imaging.ArtifactPath(rest),
					Status:   StatusFailed,
					Err:      fmt.Errorf("not started: %w", err),
				})
			}
			p.log().Warn("Interrupted, %d files not processed", len(paths)-i)
			break
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)
			res.Add(p.processSafely(path))
		}(path)
	}

	wg.Wait()
	return res
}

// RunDiscovery processes d.Pending and records every path in d.Skipped as a
// skipped outcome, so the results cover the whole discovered set.
func (p *Processor) RunDiscovery(ctx context.Context, d *Discovery) *Results {
	res := p.Run(ctx, d.Pending)
	for _, path := range d.Skipped {
		res.Add(SkippedOutcome(path))
	}
	return res
}

// Item stages, used to classify a recovered panic.
const (
	stageCheck  = "checking"
	stageDecode = "decoding"
	stageEncode = "encoding"
	stageWrite  = "writing"
)

// processSafely turns a panic into a failed outcome so one bad file cannot
// take down the batch.
func (p *Processor) processSafely(path string) (o Outcome) {
	stage := stageCheck
	defer func() {
		if r := recover(); r != nil {
			o = p.fail(path, panicError(stage, r))
		}
	}()
	return p.process(path, &stage)
}

// panicError wraps a recovered value with the error kind of the stage it
// escaped from.
func panicError(stage string, r interface{}) error {
	err := fmt.Errorf("panic while %s: %v", stage, r)
	switch stage {
	case stageDecode:
		return fmt.Errorf("%w: %w", ErrDecode, err)
	case stageWrite:
		return fmt.Errorf("%w: %w", ErrIO, err)
	default:
		return err
	}
}

// process handles one image: skip check → decode → encode → write. It keeps
// *stage current for processSafely.
func (p *Processor) process(path string, stage *string) Outcome {
	artifact := imaging.ArtifactPath(path)

	// Checked again here: another run may have written it since discovery.
	if imaging.ArtifactExists(path) {
		p.log().Info("Skipping %s: %s", path, skipReason)
		return SkippedOutcome(path)
	}

	start := time.Now()
	decode := p.Decode
	if decode == nil {
		decode = imaging.Loader{}.Load
	}
	*stage = stageDecode
	pb, err := decode(path)
	if err != nil {
		return p.fail(path, classifyLoadError(err))
	}

	*stage = stageEncode
	hash, err := blurhash.Encode(pb.Pix, pb.Width, pb.Height, p.Grid)
	if err != nil {
		return p.fail(path, fmt.Errorf("failed to encode %s: %w", path, err))
	}

	if p.DryRun {
		p.log().Info("BlurHash for %s: %s", path, hash)
	} else {
		*stage = stageWrite
		write := p.Write
		if write == nil {
			write = writeArtifact
		}
		if err := write(artifact, []byte(hash)); err != nil {
			return p.fail(path, fmt.Errorf("%w: failed to write %s: %w", ErrIO, artifact, err))
		}
		p.log().Success("BlurHash saved to: %s", artifact)
	}
	p.log().Debug("  %s: %dx%d, %s grid, %s", path, pb.Width, pb.Height, p.Grid, time.Since(start).Round(time.Millisecond))

	return Outcome{
		Path:     path,
		Artifact: artifact,
		Status:   StatusEncoded,
		Hash:     hash,
	}
}

func (p *Processor) fail(path string, err error) Outcome {
	p.log().Error("Error processing image %s: %v", path, err)
	return Outcome{
		Path:     path,
		Artifact: imaging.ArtifactPath(path),
		Status:   StatusFailed,
		Err:      err,
	}
}

func (p *Processor) log() *logging.Logger {
	if p.Log == nil {
		return logging.Discard()
	}
	return p.Log
}

func writeArtifact(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
