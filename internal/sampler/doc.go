// Package sampler evaluates a complex function over a square grid and
// returns the point cloud the grapher plots.
//
// Each cell z = x + yi is bound as the variable z and the equation is
// evaluated once. Cells that fail (poles, domain errors) are dropped rather
// than reported. Heights are the result's modulus clamped to MaxHeight.
//
// A Sampler caches recent point sets keyed by an xxhash of the resolved
// equation and the grid, so toggling back to a previous parameter value does
// not re-evaluate the grid.
package sampler
