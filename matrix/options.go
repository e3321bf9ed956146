// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Buffer allocation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants and the detected cache line),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

const (
	// DefaultAlign places the first slice element on a cache-line boundary.
	DefaultAlign = true

	// DefaultCacheLine is the cache line size in bytes for the target architecture,
	// taken from the padding type x/sys/cpu uses against false sharing.
	DefaultCacheLine = int(unsafe.Sizeof(cpu.CacheLinePad{}))
)

const panicCacheLineInvalid = "matrix: WithCacheLine: bytes must be a power of two >= element size"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	cacheLine int  // bytes; power of two; DefaultCacheLine
	align     bool // DefaultAlign
}

// WithCacheLine overrides the detected cache line size.
//
// Panics when bytes is not a power of two or is smaller than ElemSize.
// Complexity: O(1).
func WithCacheLine(bytes int) Option {
	if bytes < ElemSize || bytes&(bytes-1) != 0 {
		panic(panicCacheLineInvalid)
	}

	return func(o *Options) { o.cacheLine = bytes }
}

// WithoutAlignment allocates with a plain make; the slice start is wherever
// the allocator put it. Misalignment still reports the real displacement.
func WithoutAlignment() Option {
	return func(o *Options) { o.align = false }
}

// CacheLine returns the effective cache line size.
func (o Options) CacheLine() int { return o.cacheLine }

// Aligned reports whether cache-line placement is enabled.
func (o Options) Aligned() bool { return o.align }

// NewOptions resolves user setters on top of defaults. Exposed so callers
// (and tests) can inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		cacheLine: DefaultCacheLine,
		align:     DefaultAlign,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
