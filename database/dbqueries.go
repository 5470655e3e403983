// /home/krylon/go/src/github.com/blicero/movierental/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 15:20:41 krylon>

package database

import "github.com/blicero/movierental/database/query"

var dbQueries = map[query.ID]string{
	query.MovieAdd: `
INSERT INTO movie (id, title, genre, year, rentals)
VALUES            ( ?,     ?,     ?,    ?,       ?)
`,
	query.MovieUpdate: "UPDATE movie SET genre = ?, year = ?, rentals = ? WHERE id = ?",
	query.MovieRemove: "DELETE FROM movie WHERE id = ?",
	query.MovieGetAll: `
SELECT
    id,
    title,
    genre,
    year,
    rentals
FROM movie
ORDER BY rowid
`,
	query.MovieGetByID: "SELECT title, genre, year, rentals FROM movie WHERE id = ?",
	query.MovieGetByTitle: `
SELECT
    id,
    genre,
    year,
    rentals
FROM movie
WHERE title = ?
ORDER BY rowid
`,
	query.MovieGetBlockbusters: `
SELECT
    id,
    title,
    genre,
    year,
    rentals
FROM movie
WHERE rentals >= ?
ORDER BY rentals DESC, rowid
`,
	query.ActorAdd:        "INSERT OR IGNORE INTO actor (movie_id, slot, name) VALUES (?, ?, ?)",
	query.ActorGetByMovie: "SELECT name FROM actor WHERE movie_id = ? ORDER BY slot",
}
