// /home/krylon/go/src/github.com/blicero/movierental/objects/registry.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 12:14:56 krylon>

package objects

import "sync/atomic"

// Registry keeps count of the Movies created through it.
//
// The count goes up by one for every Movie created and down by one for every
// call to Decrement. The two are not connected in any way, Decrement does
// not refer to any specific Movie, and the count may well drop below zero.
type Registry struct {
	live  int64
	scale float32 // nolint: structcheck,unused
}

// NewRegistry returns a Registry with a count of zero.
func NewRegistry() *Registry {
	return &Registry{scale: 1}
} // func NewRegistry() *Registry

// Count returns the number of Movies created minus the number of calls to
// Decrement.
func (r *Registry) Count() int64 {
	return atomic.LoadInt64(&r.live)
} // func (r *Registry) Count() int64

// Decrement subtracts one from the count, unconditionally.
func (r *Registry) Decrement() {
	atomic.AddInt64(&r.live, -1)
} // func (r *Registry) Decrement()

func (r *Registry) increment() {
	atomic.AddInt64(&r.live, 1)
} // func (r *Registry) increment()
