// /home/krylon/go/src/github.com/blicero/movierental/shell/shell.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 21:47:20 krylon>

// Package shell provides a simple, line-oriented command interpreter to
// manage the movie catalog.
//
// Movies are referred to by their position in the order they were added,
// starting at 1. Every change to a Movie is written to the Database as well.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/blicero/movierental/common"
	"github.com/blicero/movierental/database"
	"github.com/blicero/movierental/logdomain"
	"github.com/blicero/movierental/objects"
	"github.com/blicero/movierental/tree"
)

// ErrQuit is returned by Exec when the user asks to leave.
var ErrQuit = errors.New("quit")

// ErrUnknownCommand means the first word of a line is not a command we know.
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidIndex means a command referred to a Movie that does not exist.
var ErrInvalidIndex = errors.New("no movie with that number")

// ErrUsage means a command was given the wrong number or kind of arguments.
var ErrUsage = errors.New("invalid arguments")

type handler func(sh *Shell, args []string) error

type command struct {
	usage string
	help  string
	fn    handler
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"add": {
			usage: "add title=TITLE [genre=GENRE] [year=YEAR] [actor=NAME...]",
			help:  "Add a movie to the catalog",
			fn:    (*Shell).cmdAdd,
		},
		"genre": {
			usage: "genre N GENRE",
			help:  "Change the genre of a movie",
			fn:    (*Shell).cmdGenre,
		},
		"year": {
			usage: "year N YEAR",
			help:  "Change the year of a movie",
			fn:    (*Shell).cmdYear,
		},
		"actor": {
			usage: "actor N NAME",
			help:  "Add an actor to a movie",
			fn:    (*Shell).cmdActor,
		},
		"rent": {
			usage: "rent N [COUNT]",
			help:  "Rent out a movie, COUNT times",
			fn:    (*Shell).cmdRent,
		},
		"show": {
			usage: "show N",
			help:  "Display all details of a movie",
			fn:    (*Shell).cmdShow,
		},
		"list": {
			usage: "list",
			help:  "List all movies in the catalog",
			fn:    (*Shell).cmdList,
		},
		"blockbusters": {
			usage: "blockbusters",
			help:  "List all blockbusters, most popular first",
			fn:    (*Shell).cmdBlockbusters,
		},
		"equal": {
			usage: "equal N M",
			help:  "Check if two movies are the same",
			fn:    (*Shell).cmdEqual,
		},
		"remove": {
			usage: "remove N",
			help:  "Remove a movie from the catalog",
			fn:    (*Shell).cmdRemove,
		},
		"find": {
			usage: "find TITLE",
			help:  "List all movies with the given title",
			fn:    (*Shell).cmdFind,
		},
		"vacuum": {
			usage: "vacuum",
			help:  "Tidy up the catalog database",
			fn:    (*Shell).cmdVacuum,
		},
		"count": {
			usage: "count",
			help:  "Display the number of live movies",
			fn:    (*Shell).cmdCount,
		},
		"decrement": {
			usage: "decrement",
			help:  "Subtract one from the number of live movies",
			fn:    (*Shell).cmdDecrement,
		},
		"import": {
			usage: "import DIR...",
			help:  "Add all video files below the given directories",
			fn:    (*Shell).cmdImport,
		},
		"help": {
			usage: "help",
			help:  "Display this list",
			fn:    (*Shell).cmdHelp,
		},
		"quit": {
			usage: "quit",
			help:  "Leave the shell",
			fn:    func(*Shell, []string) error { return ErrQuit },
		},
	}
} // func init()

// Shell reads commands and applies them to the catalog.
type Shell struct {
	reg     *objects.Registry
	db      *database.Database
	log     *log.Logger
	out     io.Writer
	movies  []*objects.Movie
	scanner *tree.Scanner
	// Prompt is written before reading each line in Run.
	Prompt string
	// MinSize is the minimum file size for the import command.
	MinSize int64
}

// New creates a Shell that creates Movies through reg, stores them in db and
// writes its output to out.
func New(reg *objects.Registry, db *database.Database, out io.Writer) (*Shell, error) {
	var (
		err error
		sh  = &Shell{
			reg:     reg,
			db:      db,
			out:     out,
			movies:  make([]*objects.Movie, 0, 16),
			MinSize: tree.DefaultMinSize,
		}
	)

	if sh.log, err = common.GetLogger(logdomain.Shell); err != nil {
		return nil, err
	}

	return sh, nil
} // func New(reg *objects.Registry, db *database.Database, out io.Writer) (*Shell, error)

// Run reads commands from in until it is exhausted or the user quits.
// Errors from individual commands are reported to the user, but do not end
// the loop.
func (sh *Shell) Run(in io.Reader) error {
	var lines = bufio.NewScanner(in)

	for {
		if sh.Prompt != "" {
			fmt.Fprint(sh.out, sh.Prompt)
		}

		if !lines.Scan() {
			break
		}

		if err := sh.Exec(lines.Text()); err == ErrQuit {
			return nil
		} else if err != nil {
			fmt.Fprintf(sh.out, "Error: %s\n", err.Error())
		}
	}

	return lines.Err()
} // func (sh *Shell) Run(in io.Reader) error

// Exec executes a single command line. Empty lines and lines starting with
// # are ignored.
func (sh *Shell) Exec(line string) error {
	var (
		err   error
		words []string
		cmd   command
		ok    bool
	)

	if words, err = shlex.Split(line, true); err != nil {
		sh.log.Printf("[ERROR] Cannot parse command line %q: %s\n",
			line,
			err.Error())
		return fmt.Errorf("Cannot parse %q: %w", line, err)
	} else if len(words) == 0 || strings.HasPrefix(words[0], "#") {
		return nil
	} else if cmd, ok = commands[strings.ToLower(words[0])]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, words[0])
	}

	sh.log.Printf("[TRACE] Exec %q\n", words)

	if err = cmd.fn(sh, words[1:]); errors.Is(err, ErrUsage) {
		return fmt.Errorf("%w, usage: %s", err, cmd.usage)
	}

	return err
} // func (sh *Shell) Exec(line string) error

// Movies returns the Movies in the order they were added.
func (sh *Shell) Movies() []*objects.Movie {
	var list = make([]*objects.Movie, len(sh.movies))
	copy(list, sh.movies)
	return list
} // func (sh *Shell) Movies() []*objects.Movie

func (sh *Shell) movie(arg string) (*objects.Movie, error) {
	var (
		err error
		idx int
	)

	if idx, err = strconv.Atoi(arg); err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrUsage, arg)
	} else if idx < 1 || idx > len(sh.movies) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, idx)
	}

	return sh.movies[idx-1], nil
} // func (sh *Shell) movie(arg string) (*objects.Movie, error)

func (sh *Shell) store(m *objects.Movie) error {
	var snap = m.Snapshot()

	if err := sh.db.MovieAdd(&snap); err != nil {
		return err
	}

	sh.movies = append(sh.movies, m)
	return nil
} // func (sh *Shell) store(m *objects.Movie) error

func (sh *Shell) update(m *objects.Movie) error {
	var snap = m.Snapshot()

	return sh.db.MovieUpdate(&snap)
} // func (sh *Shell) update(m *objects.Movie) error

func (sh *Shell) cmdAdd(args []string) error {
	var (
		title    string
		hasTitle bool
		actors   []string
		opts     []objects.Option
	)

	for _, arg := range args {
		var key, val, ok = strings.Cut(arg, "=")

		if !ok {
			return fmt.Errorf("%w: expected key=value, got %q", ErrUsage, arg)
		}

		switch strings.ToLower(key) {
		case "title":
			title, hasTitle = val, true
		case "genre":
			if !objects.ValidGenre(val) {
				fmt.Fprintf(sh.out, "Unknown genre %q, using %s\n",
					val,
					objects.DefaultGenre)
			}
			opts = append(opts, objects.WithGenre(val))
		case "year":
			var year, err = strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("%w: invalid year %q", ErrUsage, val)
			}
			opts = append(opts, objects.WithYear(year))
		case "actor":
			actors = append(actors, val)
		default:
			return fmt.Errorf("%w: unknown key %q", ErrUsage, key)
		}
	}

	if !hasTitle {
		return fmt.Errorf("%w: title is missing", ErrUsage)
	}

	if len(actors) > 0 {
		opts = append(opts, objects.WithActor(actors[0]))
		actors = actors[1:]
	}

	var m = sh.reg.NewMovie(title, opts...)

	for _, name := range actors {
		if !m.AddActor(name) {
			fmt.Fprintf(sh.out, "%s already has %d actors, %q was not added\n",
				m,
				objects.ActorSlots,
				name)
		}
	}

	if err := sh.store(m); err != nil {
		return err
	}

	fmt.Fprintf(sh.out, "#%d %s\n", len(sh.movies), m)
	return nil
} // func (sh *Shell) cmdAdd(args []string) error

func (sh *Shell) cmdGenre(args []string) error {
	var (
		err error
		m   *objects.Movie
	)

	if len(args) != 2 {
		return ErrUsage
	} else if m, err = sh.movie(args[0]); err != nil {
		return err
	} else if !m.SetGenre(args[1]) {
		fmt.Fprintf(sh.out, "Unknown genre %q, keeping %s\n",
			args[1],
			m.Genre())
		return nil
	}

	return sh.update(m)
} // func (sh *Shell) cmdGenre(args []string) error

func (sh *Shell) cmdYear(args []string) error {
	var (
		err  error
		year int
		m    *objects.Movie
	)

	if len(args) != 2 {
		return ErrUsage
	} else if m, err = sh.movie(args[0]); err != nil {
		return err
	} else if year, err = strconv.Atoi(args[1]); err != nil {
		return fmt.Errorf("%w: invalid year %q", ErrUsage, args[1])
	}

	m.SetYear(year)
	return sh.update(m)
} // func (sh *Shell) cmdYear(args []string) error

func (sh *Shell) cmdActor(args []string) error {
	var (
		err error
		m   *objects.Movie
	)

	if len(args) != 2 {
		return ErrUsage
	} else if m, err = sh.movie(args[0]); err != nil {
		return err
	} else if !m.AddActor(args[1]) {
		fmt.Fprintf(sh.out, "%s already has %d actors, %q was not added\n",
			m,
			objects.ActorSlots,
			args[1])
		return nil
	}

	return sh.update(m)
} // func (sh *Shell) cmdActor(args []string) error

func (sh *Shell) cmdRent(args []string) error {
	var (
		err error
		cnt = 1
		m   *objects.Movie
	)

	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	} else if m, err = sh.movie(args[0]); err != nil {
		return err
	} else if len(args) == 2 {
		if cnt, err = strconv.Atoi(args[1]); err != nil || cnt < 1 {
			return fmt.Errorf("%w: invalid count %q", ErrUsage, args[1])
		}
	}

	var wasHit = m.IsBlockbuster()

	for i := 0; i < cnt; i++ {
		m.Rent()
	}

	if !wasHit && m.IsBlockbuster() {
		fmt.Fprintf(sh.out, "%s is now a blockbuster!\n", m)
	}

	return sh.update(m)
} // func (sh *Shell) cmdRent(args []string) error

func (sh *Shell) cmdShow(args []string) error {
	var (
		err error
		m   *objects.Movie
	)

	if len(args) != 1 {
		return ErrUsage
	} else if m, err = sh.movie(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(sh.out, "%s\n  ID:          %s\n  Actors:      %s\n  Rentals:     %d\n  Blockbuster: %t\n",
		m,
		m.ID(),
		strings.Join(m.Actors(), ", "),
		m.Rentals(),
		m.IsBlockbuster())
	return nil
} // func (sh *Shell) cmdShow(args []string) error

func (sh *Shell) printSnapshots(list []objects.Snapshot) {
	var pos = make(map[string]int, len(sh.movies))

	for i, m := range sh.movies {
		pos[m.ID()] = i + 1
	}

	for _, s := range list {
		fmt.Fprintf(sh.out, "#%d %s [%d rentals]\n",
			pos[s.ID],
			s.String(),
			s.Rentals)
	}
} // func (sh *Shell) printSnapshots(list []objects.Snapshot)

func (sh *Shell) cmdList(args []string) error {
	var (
		err  error
		list []objects.Snapshot
	)

	if len(args) != 0 {
		return ErrUsage
	} else if list, err = sh.db.MovieGetAll(); err != nil {
		return err
	}

	sh.printSnapshots(list)
	return nil
} // func (sh *Shell) cmdList(args []string) error

func (sh *Shell) cmdBlockbusters(args []string) error {
	var (
		err  error
		list []objects.Snapshot
	)

	if len(args) != 0 {
		return ErrUsage
	} else if list, err = sh.db.MovieGetBlockbusters(); err != nil {
		return err
	} else if len(list) == 0 {
		fmt.Fprintln(sh.out, "No blockbusters, yet.")
		return nil
	}

	sh.printSnapshots(list)
	return nil
} // func (sh *Shell) cmdBlockbusters(args []string) error

func (sh *Shell) cmdEqual(args []string) error {
	var (
		err    error
		m1, m2 *objects.Movie
	)

	if len(args) != 2 {
		return ErrUsage
	} else if m1, err = sh.movie(args[0]); err != nil {
		return err
	} else if m2, err = sh.movie(args[1]); err != nil {
		return err
	}

	if m1.Equal(m2) {
		fmt.Fprintln(sh.out, "equal")
	} else {
		fmt.Fprintln(sh.out, "not equal")
	}

	return nil
} // func (sh *Shell) cmdEqual(args []string) error

func (sh *Shell) cmdRemove(args []string) error {
	var (
		err error
		m   *objects.Movie
	)

	if len(args) != 1 {
		return ErrUsage
	} else if m, err = sh.movie(args[0]); err != nil {
		return err
	} else if err = sh.db.MovieRemove(m.ID()); err != nil {
		return err
	}

	for i, other := range sh.movies {
		if other == m {
			sh.movies = append(sh.movies[:i], sh.movies[i+1:]...)
			break
		}
	}

	sh.reg.Decrement()
	fmt.Fprintf(sh.out, "Removed %s, %d movies left\n",
		m,
		sh.reg.Count())
	return nil
} // func (sh *Shell) cmdRemove(args []string) error

func (sh *Shell) cmdFind(args []string) error {
	var (
		err  error
		list []objects.Snapshot
	)

	if len(args) != 1 {
		return ErrUsage
	} else if list, err = sh.db.MovieGetByTitle(args[0]); err != nil {
		return err
	} else if len(list) == 0 {
		fmt.Fprintf(sh.out, "No movie titled %q\n", args[0])
		return nil
	}

	sh.printSnapshots(list)
	return nil
} // func (sh *Shell) cmdFind(args []string) error

func (sh *Shell) cmdVacuum(args []string) error {
	if len(args) != 0 {
		return ErrUsage
	} else if err := sh.db.PerformMaintenance(); err != nil {
		return err
	}

	fmt.Fprintln(sh.out, "Catalog database tidied up.")
	return nil
} // func (sh *Shell) cmdVacuum(args []string) error

func (sh *Shell) cmdCount(args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	fmt.Fprintf(sh.out, "%d\n", sh.reg.Count())
	return nil
} // func (sh *Shell) cmdCount(args []string) error

func (sh *Shell) cmdDecrement(args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	sh.reg.Decrement()
	fmt.Fprintf(sh.out, "%d\n", sh.reg.Count())
	return nil
} // func (sh *Shell) cmdDecrement(args []string) error

func (sh *Shell) cmdImport(args []string) error {
	var err error

	if len(args) == 0 {
		return ErrUsage
	} else if sh.scanner == nil {
		if sh.scanner, err = tree.NewScanner(sh.reg, 0); err != nil {
			return err
		}
	}

	sh.scanner.MinSize = sh.MinSize

	var (
		skipped  map[string]error
		movies   = sh.scanner.Scan(args...)
		snaps    = make([]objects.Snapshot, len(movies))
		imported = 0
	)

	for i, m := range movies {
		snaps[i] = m.Snapshot()
	}

	if skipped, err = sh.db.MovieAddAll(snaps); err != nil {
		return err
	}

	for _, m := range movies {
		if reason, ok := skipped[m.ID()]; ok {
			fmt.Fprintf(sh.out, "Skipped %s: %s\n", m, reason.Error())
			continue
		}

		sh.movies = append(sh.movies, m)
		imported++
		fmt.Fprintf(sh.out, "#%d %s\n", len(sh.movies), m)
	}

	fmt.Fprintf(sh.out, "Imported %d movies\n", imported)
	return nil
} // func (sh *Shell) cmdImport(args []string) error

func (sh *Shell) cmdHelp(args []string) error {
	var names = make([]string, 0, len(commands))

	for name := range commands {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		var c = commands[name]
		fmt.Fprintf(sh.out, "%-60s %s\n", c.usage, c.help)
	}

	fmt.Fprintf(sh.out, "\nKnown genres: %s\n",
		strings.Join(objects.Genres(), ", "))
	return nil
} // func (sh *Shell) cmdHelp(args []string) error
