// /home/krylon/go/src/github.com/blicero/movierental/shell/shell_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 22:30:18 krylon>

package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blicero/movierental/common"
	"github.com/blicero/movierental/database"
	"github.com/blicero/movierental/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T) (*Shell, *objects.Registry, *bytes.Buffer) {
	t.Helper()

	require.NoError(t, common.SetBaseDir(filepath.Join(t.TempDir(), "base")))

	var (
		err error
		db  *database.Database
		sh  *Shell
		reg = objects.NewRegistry()
		out = new(bytes.Buffer)
	)

	db, err = database.Open(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() }) // nolint: errcheck

	sh, err = New(reg, db, out)
	require.NoError(t, err)

	return sh, reg, out
} // func newTestShell(t *testing.T) (*Shell, *objects.Registry, *bytes.Buffer)

func TestAdd(t *testing.T) {
	var sh, reg, out = newTestShell(t)

	require.NoError(t, sh.Exec(`add title="Inception" genre=sci-fi year=2010`))
	require.NoError(t, sh.Exec(`add title='The Thing' genre=HORROR actor="Kurt Russell"`))
	require.NoError(t, sh.Exec(`add title=Airplane year=1980`))
	require.NoError(t, sh.Exec(`add title=Nobody genre=western`))

	assert.Equal(t, int64(4), reg.Count())
	assert.Equal(t,
		"#1 Inception - 2010 (sci-fi)\n"+
			"#2 The Thing - 2020 (HORROR)\n"+
			"#3 Airplane - 1980 (comedy)\n"+
			"Unknown genre \"western\", using comedy\n"+
			"#4 Nobody - 2020 (comedy)\n",
		out.String())

	var movies = sh.Movies()
	require.Len(t, movies, 4)
	assert.Equal(t, []string{"Kurt Russell"}, movies[1].Actors())
} // func TestAdd(t *testing.T)

func TestAddErrors(t *testing.T) {
	var sh, reg, _ = newTestShell(t)

	assert.ErrorIs(t, sh.Exec("add genre=drama"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("add title=X year=soon"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("add title=X rating=5"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("add Inception"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("frobnicate 1"), ErrUnknownCommand)
	assert.Equal(t, int64(0), reg.Count())
} // func TestAddErrors(t *testing.T)

func TestAddSeveralActors(t *testing.T) {
	var sh, _, out = newTestShell(t)

	require.NoError(t, sh.Exec("add title=Heat actor=Pacino actor=DeNiro"))
	assert.Equal(t, []string{"Pacino", "DeNiro"}, sh.Movies()[0].Actors())

	out.Reset()
	require.NoError(t, sh.Exec("add title=Crowd actor=A actor=B actor=C actor=D actor=E actor=F"))
	assert.Equal(t,
		"Crowd - 2020 (comedy) already has 5 actors, \"F\" was not added\n"+
			"#2 Crowd - 2020 (comedy)\n",
		out.String())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, sh.Movies()[1].Actors())

	var actors, err = sh.db.ActorGetByMovie(sh.Movies()[0].ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"Pacino", "DeNiro"}, actors)
} // func TestAddSeveralActors(t *testing.T)

func TestMutations(t *testing.T) {
	var sh, _, out = newTestShell(t)

	require.NoError(t, sh.Exec("add title=Heat genre=action year=1995"))
	out.Reset()

	require.NoError(t, sh.Exec("genre 1 Drama"))
	require.NoError(t, sh.Exec("genre 1 noir"))
	require.NoError(t, sh.Exec("year 1 -5"))
	require.NoError(t, sh.Exec("rent 1 3"))

	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		require.NoError(t, sh.Exec("actor 1 "+name))
	}

	assert.Equal(t,
		"Unknown genre \"noir\", keeping Drama\n"+
			"Heat - -5 (Drama) already has 5 actors, \"F\" was not added\n",
		out.String())

	var m = sh.Movies()[0]
	assert.Equal(t, "Drama", m.Genre())
	assert.Equal(t, -5, m.Year())
	assert.Equal(t, 3, m.Rentals())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, m.Actors())

	var snap, err = sh.db.MovieGetByID(m.ID())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, m.Snapshot(), *snap)

	assert.ErrorIs(t, sh.Exec("rent 2"), ErrInvalidIndex)
	assert.ErrorIs(t, sh.Exec("rent 0"), ErrInvalidIndex)
	assert.ErrorIs(t, sh.Exec("rent one"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("rent 1 -3"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("year 1"), ErrUsage)
} // func TestMutations(t *testing.T)

func TestBlockbusters(t *testing.T) {
	var sh, _, out = newTestShell(t)

	require.NoError(t, sh.Exec("add title=Titanic genre=romance year=1997"))
	require.NoError(t, sh.Exec("add title=Flop genre=drama year=2003"))
	require.NoError(t, sh.Exec("blockbusters"))
	require.NoError(t, sh.Exec("rent 1 9999"))
	out.Reset()

	require.NoError(t, sh.Exec("rent 1"))
	require.NoError(t, sh.Exec("rent 1"))
	require.NoError(t, sh.Exec("blockbusters"))

	assert.Equal(t,
		"Titanic - 1997 (romance) is now a blockbuster!\n"+
			"#1 Titanic - 1997 (romance) [10001 rentals]\n",
		out.String())
} // func TestBlockbusters(t *testing.T)

func TestListEqualCount(t *testing.T) {
	var sh, _, out = newTestShell(t)

	require.NoError(t, sh.Exec("add title=Heat genre=action year=1995 actor='Al Pacino'"))
	require.NoError(t, sh.Exec("add title=Heat genre=action year=1995"))
	require.NoError(t, sh.Exec("add title=Heat genre=action year=1986"))
	out.Reset()

	require.NoError(t, sh.Exec("list"))
	require.NoError(t, sh.Exec("equal 1 2"))
	require.NoError(t, sh.Exec("equal 1 3"))
	require.NoError(t, sh.Exec("count"))
	require.NoError(t, sh.Exec("decrement"))
	require.NoError(t, sh.Exec("decrement"))
	require.NoError(t, sh.Exec("decrement"))
	require.NoError(t, sh.Exec("decrement"))

	assert.Equal(t,
		"#1 Heat - 1995 (action) [0 rentals]\n"+
			"#2 Heat - 1995 (action) [0 rentals]\n"+
			"#3 Heat - 1986 (action) [0 rentals]\n"+
			"equal\n"+
			"not equal\n"+
			"3\n"+
			"2\n"+
			"1\n"+
			"0\n"+
			"-1\n",
		out.String())
} // func TestListEqualCount(t *testing.T)

func TestShow(t *testing.T) {
	var sh, _, out = newTestShell(t)

	require.NoError(t, sh.Exec("add title=Up genre=kids year=2009 actor='Ed Asner'"))
	require.NoError(t, sh.Exec("actor 1 'Jordan Nagai'"))
	out.Reset()

	require.NoError(t, sh.Exec("show 1"))

	var text = out.String()
	assert.True(t, strings.HasPrefix(text, "Up - 2009 (kids)\n"))
	assert.Contains(t, text, "Actors:      Ed Asner, Jordan Nagai\n")
	assert.Contains(t, text, "Rentals:     0\n")
	assert.Contains(t, text, "Blockbuster: false\n")
	assert.Contains(t, text, sh.Movies()[0].ID())
} // func TestShow(t *testing.T)

func TestImport(t *testing.T) {
	var (
		sh, reg, out = newTestShell(t)
		lib          = t.TempDir()
	)

	require.NoError(t, os.MkdirAll(filepath.Join(lib, "Drama"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "Drama", "Ray (2004).mkv"), []byte("video"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "Up.2009.mp4"), []byte("video"), 0644))

	sh.MinSize = 0
	require.NoError(t, sh.Exec("add title=Heat"))
	out.Reset()

	require.NoError(t, sh.Exec("import "+lib))

	assert.Equal(t,
		"#2 Ray - 2004 (Drama)\n"+
			"#3 Up - 2009 (comedy)\n"+
			"Imported 2 movies\n",
		out.String())
	assert.Equal(t, int64(3), reg.Count())

	var list, err = sh.db.MovieGetAll()
	require.NoError(t, err)
	assert.Len(t, list, 3)
} // func TestImport(t *testing.T)

func TestRun(t *testing.T) {
	var (
		sh, reg, out = newTestShell(t)
		input        = strings.NewReader(`
# a comment
add title=Alien genre=horror year=1979
bogus
rent 1
quit
add title="Never Added"
`)
	)

	require.NoError(t, sh.Run(input))
	assert.Equal(t, int64(1), reg.Count())
	assert.Equal(t, 1, sh.Movies()[0].Rentals())
	assert.Contains(t, out.String(), "Error: unknown command: bogus\n")
} // func TestRun(t *testing.T)

func TestHelp(t *testing.T) {
	var sh, _, out = newTestShell(t)

	require.NoError(t, sh.Exec("help"))

	for name, c := range commands {
		assert.Contains(t, out.String(), c.usage, name)
	}

	assert.Contains(t, out.String(), "sci-fi")
} // func TestHelp(t *testing.T)

func TestRemove(t *testing.T) {
	var sh, reg, out = newTestShell(t)

	require.NoError(t, sh.Exec("add title=Heat genre=action year=1995"))
	require.NoError(t, sh.Exec("add title=Up genre=kids year=2009"))
	require.NoError(t, sh.Exec("add title=Ray genre=drama year=2004"))

	var gone = sh.Movies()[1]

	out.Reset()
	require.NoError(t, sh.Exec("remove 2"))
	assert.Equal(t, "Removed Up - 2009 (kids), 2 movies left\n", out.String())
	assert.Equal(t, int64(2), reg.Count())

	require.Len(t, sh.Movies(), 2)
	assert.Equal(t, "Heat", sh.Movies()[0].Title())
	assert.Equal(t, "Ray", sh.Movies()[1].Title())

	var snap, err = sh.db.MovieGetByID(gone.ID())
	require.NoError(t, err)
	assert.Nil(t, snap)

	var list []objects.Snapshot
	list, err = sh.db.MovieGetAll()
	require.NoError(t, err)
	assert.Len(t, list, 2)

	assert.ErrorIs(t, sh.Exec("remove 3"), ErrInvalidIndex)
	assert.ErrorIs(t, sh.Exec("remove"), ErrUsage)
} // func TestRemove(t *testing.T)

func TestFind(t *testing.T) {
	var sh, _, out = newTestShell(t)

	require.NoError(t, sh.Exec("add title=Heat genre=action year=1995"))
	require.NoError(t, sh.Exec("add title=Up genre=kids year=2009"))
	require.NoError(t, sh.Exec("add title=Heat genre=drama year=1986"))
	require.NoError(t, sh.Exec("rent 3 2"))

	out.Reset()
	require.NoError(t, sh.Exec("find Heat"))
	require.NoError(t, sh.Exec("find 'The Thing'"))

	assert.Equal(t,
		"#1 Heat - 1995 (action) [0 rentals]\n"+
			"#3 Heat - 1986 (drama) [2 rentals]\n"+
			"No movie titled \"The Thing\"\n",
		out.String())

	assert.ErrorIs(t, sh.Exec("find"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("find Heat Up"), ErrUsage)
} // func TestFind(t *testing.T)

func TestVacuum(t *testing.T) {
	var sh, _, out = newTestShell(t)

	require.NoError(t, sh.Exec("add title=Heat genre=action year=1995 actor=Pacino"))

	out.Reset()
	require.NoError(t, sh.Exec("vacuum"))
	assert.Equal(t, "Catalog database tidied up.\n", out.String())
	assert.ErrorIs(t, sh.Exec("vacuum now"), ErrUsage)

	var snap, err = sh.db.MovieGetByID(sh.Movies()[0].ID())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, sh.Movies()[0].Snapshot(), *snap)
} // func TestVacuum(t *testing.T)
