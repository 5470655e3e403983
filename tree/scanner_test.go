// /home/krylon/go/src/github.com/blicero/movierental/tree/scanner_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 20:05:44 krylon>

package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blicero/movierental/common"
	"github.com/blicero/movierental/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	type testCase struct {
		path    string
		title   string
		year    int
		hasYear bool
	}

	var cases = []testCase{
		{"/videos/Inception (2010).mp4", "Inception", 2010, true},
		{"The.Thing.1982.1080p.BluRay.mkv", "The Thing", 1982, true},
		{"Blade_Runner_2049_[2017].mkv", "Blade Runner 2049", 2017, true},
		{"2001 A Space Odyssey.avi", "2001 A Space Odyssey", 0, false},
		{"Metropolis - 1927.webm", "Metropolis", 1927, true},
		{"home_movie.mov", "home movie", 0, false},
	}

	for _, c := range cases {
		var title, year, hasYear = ParseName(c.path)

		assert.Equal(t, c.title, title, c.path)
		assert.Equal(t, c.year, year, c.path)
		assert.Equal(t, c.hasYear, hasYear, c.path)
	}
} // func TestParseName(t *testing.T)

func touch(t *testing.T, path string, size int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
} // func touch(t *testing.T, path string, size int)

func TestScan(t *testing.T) {
	var root = t.TempDir()

	require.NoError(t, common.SetBaseDir(filepath.Join(root, "base")))

	var lib1, lib2 = filepath.Join(root, "lib1"), filepath.Join(root, "lib2")

	touch(t, filepath.Join(lib1, "Horror", "The.Thing.1982.mkv"), 64)
	touch(t, filepath.Join(lib1, "Inception (2010).mp4"), 64)
	touch(t, filepath.Join(lib1, "notes.txt"), 64)
	touch(t, filepath.Join(lib2, "Westerns", "Unforgiven (1992).avi"), 64)
	touch(t, filepath.Join(lib2, "kids", "Up.mkv"), 64)
	touch(t, filepath.Join(lib2, "tiny (2000).mkv"), 8)

	var (
		err     error
		reg     = objects.NewRegistry()
		scanner *Scanner
	)

	scanner, err = NewScanner(reg, 2)
	require.NoError(t, err)
	scanner.MinSize = 16

	var movies = scanner.Scan(lib1, lib2)

	var titles = make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.String()
	}

	assert.Equal(t,
		[]string{
			"The Thing - 1982 (Horror)",
			"Inception - 2010 (comedy)",
			"Unforgiven - 1992 (comedy)",
			"Up - 2020 (kids)",
		},
		titles)
	assert.Equal(t, int64(len(movies)), reg.Count())
} // func TestScan(t *testing.T)

func TestScanMissingFolder(t *testing.T) {
	var root = t.TempDir()

	require.NoError(t, common.SetBaseDir(filepath.Join(root, "base")))

	var reg = objects.NewRegistry()
	var scanner, err = NewScanner(reg, 0)
	require.NoError(t, err)

	assert.Empty(t, scanner.Scan(filepath.Join(root, "does-not-exist")))
	assert.Equal(t, int64(0), reg.Count())
} // func TestScanMissingFolder(t *testing.T)
