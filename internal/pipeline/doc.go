// Package pipeline discovers image files and computes their BlurHash
// artifacts in parallel.
//
// Discovery walks the inputs lazily (Walk) and splits the candidates into
// pending and already-done files (Discover). A Processor then runs every
// pending path through decode → encode → write with at most Workers items in
// flight. Items never abort each other: every path ends in exactly one
// Outcome (encoded, skipped or failed) collected in a Results sink that is
// safe for concurrent use. With DryRun set, hashes are computed and logged but
// no artifact is written.
//
// Error kinds carried by failed outcomes:
//   - ErrDecode: the file could not be decoded as an image
//   - ErrIO: the file could not be read or the artifact could not be written
//   - blurhash.ErrInvalidGrid, blurhash.ErrEmptyImage: encoder rejections
//   - context.Canceled: the batch was interrupted before the item started
package pipeline
