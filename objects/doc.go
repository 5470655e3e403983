// /home/krylon/go/src/github.com/blicero/movierental/objects/doc.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 10:20:44 krylon>

// Package objects provides the data types that represent the things we
// rent out. For now, that is Movies, which carry a title, a genre from a
// small, fixed list, a year, up to five actors, and a count of how many times
// they have been rented.
//
// Movies are created through a Registry, which keeps track of how many of
// them are around.
package objects
