package pipeline

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/ironsheep/blurhash-tools/internal/imaging"
	"github.com/ironsheep/blurhash-tools/internal/logging"
)

// Discovery is the result of scanning the inputs.
type Discovery struct {
	// Pending are image paths without a BlurHash artifact.
	Pending []string

	// Skipped are image paths whose artifact already exists.
	Skipped []string
}

// Walk yields candidate image paths for each root in turn.
//
// An empty root or "." stands for the current working directory. Directories
// are walked recursively in lexical order. Any other root is yielded as-is if
// it has an image extension, even when it does not exist, so the failure is
// reported against that path later. Walk stops at the first directory that
// cannot be read and yields the error.
func Walk(roots []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, root := range roots {
			if root == "" || root == "." {
				wd, err := os.Getwd()
				if err != nil {
					yield("", fmt.Errorf("failed to resolve working directory: %w", err))
					return
				}
				root = wd
			}

			fi, err := os.Stat(root)
			if err != nil || !fi.IsDir() {
				if imaging.IsImageFile(root) && !yield(root, nil) {
					return
				}
				continue
			}

			stopped := false
			err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() || !imaging.IsImageFile(path) {
					return nil
				}
				if !yield(path, nil) {
					stopped = true
					return fs.SkipAll
				}
				return nil
			})
			if stopped {
				return
			}
			if err != nil {
				yield("", fmt.Errorf("failed to walk %s: %w", root, err))
				return
			}
		}
	}
}

// Discover collects Walk(roots), dropping duplicates and setting aside images
// that already have an artifact. Each skip is logged.
func Discover(roots []string, log *logging.Logger) (*Discovery, error) {
	if log == nil {
		log = logging.Discard()
	}

	d := &Discovery{}
	seen := make(map[string]bool)
	for path, err := range Walk(roots) {
		if err != nil {
			return nil, err
		}
		key, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		if imaging.ArtifactExists(path) {
			log.Info("Skipping %s: %s", path, skipReason)
			d.Skipped = append(d.Skipped, path)
			continue
		}
		d.Pending = append(d.Pending, path)
	}
	return d, nil
}
