// /home/krylon/go/src/github.com/blicero/movierental/objects/genre.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 10:31:09 krylon>

package objects

import "strings"

// DefaultGenre is used when a Movie is created without a genre, or with one
// we do not recognize.
const DefaultGenre = "comedy"

var genres = []string{
	"drama",
	"horror",
	"comedy",
	"biography",
	"sci-fi",
	"action",
	"romance",
	"kids",
}

// Genres returns the list of genres a Movie can have.
func Genres() []string {
	var list = make([]string, len(genres))
	copy(list, genres)
	return list
} // func Genres() []string

// ValidGenre returns true if g is one of the known genres, ignoring case.
func ValidGenre(g string) bool {
	for _, known := range genres {
		if strings.EqualFold(g, known) {
			return true
		}
	}

	return false
} // func ValidGenre(g string) bool
