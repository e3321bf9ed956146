// Package stridebench measures what memory layout costs: it walks the same
// flat int32 matrix in row-major and in column-major order and reports how
// much slower the strided walk is.
//
// 🚀 What is stridebench?
//
//	A small, single-threaded harness that brings together:
//		• Matrix buffer: one contiguous slice, manual i*cols+j addressing,
//		  cache-line placement with an optional misaligned start
//		• Traversal kernels: row-major (unit stride) and column-major (stride = cols)
//		• Timing: a monotonic stopwatch with an injectable clock
//		• Reporting: a fixed-width ASCII table per test case
//
// ✨ Why stridebench?
//
//   - Honest loops – no nested slices, no bounds-check tricks, just strides
//   - Deterministic data – element (i, j) always holds i*cols + j
//   - Optimizer-proof – every fold is published through a noinline sink
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	config/    — flag presence → matrix dimensions, with defaults and conflicts
//	matrix/    — Spec, Buffer, cache-line aligned allocation
//	traverse/  — RowMajor, ColMajor, Visit and the optimizer sink
//	timer/     — Stopwatch on the monotonic clock
//	report/    — Result, ratio and the ASCII table
//	bench/     — TestCase, Suite and the sequential Runner
//	cmd/stridebench/ — the command-line entry point
//
// Quick ASCII picture of a 2 x 3 matrix and both visit orders:
//
//	  0 1 2        row-major:    0 1 2 3 4 5   (stride 1)
//	  3 4 5        column-major: 0 3 1 4 2 5   (stride 3)
//
//	go install github.com/katalvlaran/stridebench/cmd/stridebench@latest
package stridebench
