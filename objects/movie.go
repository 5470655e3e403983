// /home/krylon/go/src/github.com/blicero/movierental/objects/movie.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 13:05:37 krylon>

package objects

import (
	"fmt"

	"github.com/odeke-em/go-uuid"
)

const (
	// DefaultYear is the year a Movie gets if none is given.
	DefaultYear = 2020
	// ActorSlots is the maximum number of actors per Movie.
	ActorSlots = 5
	// BlockbusterThreshold is the number of rentals that make a Movie a
	// blockbuster.
	BlockbusterThreshold = 10000
)

// Movie is a movie that can be rented.
type Movie struct {
	id      string
	title   string
	genre   string
	year    int
	actors  []string
	rentals int
}

type movieConfig struct {
	genre string
	year  int
	actor *string
}

// Option sets one of the optional properties of a new Movie.
type Option func(*movieConfig)

// WithGenre sets the genre. Unknown genres are replaced by DefaultGenre.
func WithGenre(g string) Option {
	return func(c *movieConfig) { c.genre = g }
}

// WithYear sets the year.
func WithYear(y int) Option {
	return func(c *movieConfig) { c.year = y }
}

// WithActor puts an actor in the first slot of the roster.
func WithActor(a string) Option {
	return func(c *movieConfig) { c.actor = &a }
}

// NewMovie creates a Movie with the given title and adds one to the
// Registry's count. Without options, the Movie is a comedy from 2020 with no
// actors.
func (r *Registry) NewMovie(title string, opts ...Option) *Movie {
	var cfg = movieConfig{
		genre: DefaultGenre,
		year:  DefaultYear,
	}

	for _, o := range opts {
		o(&cfg)
	}

	var m = &Movie{
		id:     uuid.New(),
		title:  title,
		genre:  DefaultGenre,
		year:   cfg.year,
		actors: make([]string, 0, ActorSlots),
	}

	m.SetGenre(cfg.genre)

	if cfg.actor != nil {
		m.actors = append(m.actors, *cfg.actor)
	}

	r.increment()
	return m
} // func (r *Registry) NewMovie(title string, opts ...Option) *Movie

// ID returns the Movie's unique ID.
func (m *Movie) ID() string { return m.id }

// Title returns the Movie's title.
func (m *Movie) Title() string { return m.title }

// Genre returns the Movie's genre.
func (m *Movie) Genre() string { return m.genre }

// Year returns the year the Movie was released.
func (m *Movie) Year() int { return m.year }

// Rentals returns the number of times the Movie has been rented.
func (m *Movie) Rentals() int { return m.rentals }

// Actors returns a copy of the Movie's actors, in the order they were added.
func (m *Movie) Actors() []string {
	var list = make([]string, len(m.actors))
	copy(list, m.actors)
	return list
} // func (m *Movie) Actors() []string

// SetGenre sets the Movie's genre if g is a known genre, keeping the casing
// as given. Otherwise the genre remains unchanged.
// The return value tells the caller which of the two happened.
func (m *Movie) SetGenre(g string) bool {
	if !ValidGenre(g) {
		return false
	}

	m.genre = g
	return true
} // func (m *Movie) SetGenre(g string) bool

// SetYear sets the year. Any value is accepted.
func (m *Movie) SetYear(y int) {
	m.year = y
} // func (m *Movie) SetYear(y int)

// AddActor adds an actor to the roster. If all slots are taken, it does
// nothing and returns false.
func (m *Movie) AddActor(a string) bool {
	if len(m.actors) >= ActorSlots {
		return false
	}

	m.actors = append(m.actors, a)
	return true
} // func (m *Movie) AddActor(a string) bool

// Rent records one rental of the Movie.
func (m *Movie) Rent() {
	m.rentals++
} // func (m *Movie) Rent()

// IsBlockbuster returns true if the Movie has been rented at least
// BlockbusterThreshold times.
func (m *Movie) IsBlockbuster() bool {
	return m.rentals >= BlockbusterThreshold
} // func (m *Movie) IsBlockbuster() bool

func (m *Movie) String() string {
	return fmt.Sprintf("%s - %d (%s)",
		m.title,
		m.year,
		m.genre)
} // func (m *Movie) String() string

// Equal returns true if both Movies have the same title, year, and genre.
// Actors and rentals are not considered. Two nil Movies are equal, a nil
// Movie is not equal to a non-nil one.
func (m *Movie) Equal(other *Movie) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.title == other.title &&
		m.year == other.year &&
		m.genre == other.genre
} // func (m *Movie) Equal(other *Movie) bool

// Snapshot is a plain copy of a Movie's state, used for storage and display.
type Snapshot struct {
	ID      string
	Title   string
	Genre   string
	Year    int
	Actors  []string
	Rentals int
}

// Snapshot returns a copy of the Movie's current state.
func (m *Movie) Snapshot() Snapshot {
	return Snapshot{
		ID:      m.id,
		Title:   m.title,
		Genre:   m.genre,
		Year:    m.year,
		Actors:  m.Actors(),
		Rentals: m.rentals,
	}
} // func (m *Movie) Snapshot() Snapshot

func (s *Snapshot) String() string {
	return fmt.Sprintf("%s - %d (%s)",
		s.Title,
		s.Year,
		s.Genre)
} // func (s *Snapshot) String() string
