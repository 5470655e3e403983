// /home/krylon/go/src/github.com/blicero/movierental/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 15:02:17 krylon>

//go:generate stringer -type=ID

// Package query provides symbolic constants for the various queries we are
// going to run on the database.
package query

// ID represents a specific database query.
type ID uint8

const (
	MovieAdd ID = iota
	MovieUpdate
	MovieRemove
	MovieGetAll
	MovieGetByID
	MovieGetByTitle
	MovieGetBlockbusters
	ActorAdd
	ActorGetByMovie
)
