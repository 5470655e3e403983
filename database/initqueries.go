// /home/krylon/go/src/github.com/blicero/movierental/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 15:08:12 krylon>

package database

var initQueries = []string{
	`
CREATE TABLE movie (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    genre TEXT NOT NULL,
    year INTEGER NOT NULL,
    rentals INTEGER NOT NULL DEFAULT 0,
    CHECK (rentals >= 0)
)`,

	"CREATE INDEX movie_title_idx ON movie (title)",
	"CREATE INDEX movie_rentals_idx ON movie (rentals)",

	`
CREATE TABLE actor (
    id INTEGER PRIMARY KEY,
    movie_id TEXT NOT NULL,
    slot INTEGER NOT NULL,
    name TEXT NOT NULL,
    FOREIGN KEY (movie_id) REFERENCES movie (id)
        ON UPDATE RESTRICT
        ON DELETE CASCADE,
    UNIQUE (movie_id, slot),
    CHECK (slot BETWEEN 0 AND 4)
)`,
}
