// Package export writes sampled point clouds as CSV, JSON or YAML, with
// optional zstd compression.
package export
