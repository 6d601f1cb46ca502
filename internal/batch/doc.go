// Package batch runs outline inference over a directory of PDF files
// with bounded concurrency and writes one JSON record per input.
//
// The runner never aborts a run because one document fails: a failed
// document yields a fallback record, everything else proceeds. Only
// context cancellation stops a run early.
//
// The batch runner supports concurrency control using errgroup.
package batch
