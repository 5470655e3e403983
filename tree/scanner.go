// /home/krylon/go/src/github.com/blicero/movierental/tree/scanner.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 19:31:12 krylon>

// Package tree implements scanning directory trees for video files and
// turning them into Movies.
package tree

import (
	"io/fs"
	"log"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/blicero/krylib"
	"github.com/blicero/movierental/common"
	"github.com/blicero/movierental/logdomain"
	"github.com/blicero/movierental/objects"
)

const (
	// DefaultMinSize is the minimum size for files to consider.
	DefaultMinSize = 1024 * 1024 * 32 // 32 MB
	qSize          = 256              // ??? How do I determine what is a good size?
	suffixPattern  = "(?i)[.](?:avi|mp4|mpg|asf|flv|m4v|mkv|mov|ogm|ogv|webm|wmv)$"
)

var (
	suffixRe = regexp.MustCompile(suffixPattern)
	nameRe   = regexp.MustCompile(`^(.+)[\s-]+[(\[]?((?:18|19|20)\d{2})[)\]]?(?:[\s-].*)?$`)
	spaceRe  = regexp.MustCompile(`[._]+`)
)

// ParseName extracts the title and the year from the name of a video file,
// e.g. "The.Thing.1982.1080p.mkv" or "Inception (2010).mp4".
// If the name contains no year, the year is 0 and hasYear is false.
func ParseName(path string) (title string, year int, hasYear bool) {
	var base = filepath.Base(path)

	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSpace(spaceRe.ReplaceAllString(base, " "))

	var match = nameRe.FindStringSubmatch(base)

	if match == nil {
		return base, 0, false
	}

	// The pattern only matches four digits, so this cannot fail.
	year, _ = strconv.Atoi(match[2])
	title = strings.TrimRight(match[1], " -")
	return title, year, true
} // func ParseName(path string) (string, int, bool)

type found struct {
	path  string
	movie *objects.Movie
}

// Scanner walks directory trees looking for video files and creates a Movie
// for each of them.
type Scanner struct {
	reg       *objects.Registry
	log       *log.Logger
	workerCnt int
	// MinSize is the minimum size a file must have to be considered.
	MinSize int64
}

// NewScanner creates a new Scanner that creates Movies through the given
// Registry. cnt is the number of goroutines to allocate for walking the
// directory trees in parallel.
func NewScanner(reg *objects.Registry, cnt int) (*Scanner, error) {
	var (
		err error
		s   = &Scanner{
			reg:     reg,
			MinSize: DefaultMinSize,
		}
	)

	if cnt <= 0 {
		s.workerCnt = runtime.NumCPU()
	} else {
		s.workerCnt = cnt
	}

	if s.log, err = common.GetLogger(logdomain.Scanner); err != nil {
		return nil, err
	}

	return s, nil
} // func NewScanner(reg *objects.Registry, cnt int) (*Scanner, error)

// Scan walks the given directory trees and returns a Movie for every video
// file it finds, sorted by path.
func (s *Scanner) Scan(paths ...string) []*objects.Movie {
	var (
		wg      sync.WaitGroup
		scanQ   = make(chan string, qSize)
		resQ    = make(chan found, qSize)
		results = make([]found, 0, qSize)
		done    = make(chan struct{})
	)

	s.log.Printf("[INFO] Starting Scanner with %d workers.\n",
		s.workerCnt)

	go func() {
		for f := range resQ {
			results = append(results, f)
		}
		close(done)
	}()

	for i := 0; i < s.workerCnt; i++ {
		wg.Add(1)
		go s.worker(i+1, scanQ, resQ, &wg)
	}

	for _, p := range paths {
		scanQ <- p
	}

	close(scanQ)
	wg.Wait()
	close(resQ)
	<-done

	sort.Slice(results, func(i, j int) bool {
		return results[i].path < results[j].path
	})

	var movies = make([]*objects.Movie, len(results))
	for i, f := range results {
		movies[i] = f.movie
	}

	s.log.Printf("[INFO] Scanner found %d movies in %d folders.\n",
		len(movies),
		len(paths))

	return movies
} // func (s *Scanner) Scan(paths ...string) []*objects.Movie

func (s *Scanner) worker(id int, scanQ <-chan string, resQ chan<- found, wg *sync.WaitGroup) {
	defer wg.Done()

	s.log.Printf("[DEBUG] Starting Scanner worker %02d.\n",
		id)

	defer s.log.Printf("[DEBUG] Scanner worker %02d is quitting.\n",
		id)

	for path := range scanQ {
		s.log.Printf("[INFO] Scan path %s.\n",
			path)
		s.scanFolder(path, resQ)
	}
} // func (s *Scanner) worker(id int, ...)

func (s *Scanner) scanFolder(root string, resQ chan<- found) {
	var visit = func(path string, d fs.DirEntry, e error) error {
		if e != nil {
			s.log.Printf("[ERROR] Incoming error when visiting %s: %s\n",
				path,
				e.Error())
			return fs.SkipDir
		} else if !suffixRe.MatchString(path) {
			s.log.Printf("[TRACE] Skip %q -- suffix\n", path)
			return nil
		} else if !d.Type().IsRegular() {
			s.log.Printf("[TRACE] Skip %q -- not a regular file.\n", path)
			return nil
		}

		var (
			err  error
			info fs.FileInfo
		)

		if info, err = d.Info(); err != nil {
			s.log.Printf("[ERROR] Cannot read Info for %s: %s\n",
				path,
				err.Error())
			return err
		} else if info.Size() < s.MinSize {
			s.log.Printf("[TRACE] Skip %q -- too small (%s)\n",
				path,
				krylib.FmtBytes(info.Size()))
			return nil
		}

		resQ <- found{path: path, movie: s.movieFromPath(path)}
		return nil
	}

	if err := filepath.WalkDir(root, visit); err != nil {
		s.log.Printf("[ERROR] Error walking %s: %s\n",
			root,
			err.Error())
	}
} // func (s *Scanner) scanFolder(root string, resQ chan<- found)

// movieFromPath creates a Movie from the file name. If the file sits in a
// directory named after a genre, the Movie gets that genre.
func (s *Scanner) movieFromPath(path string) *objects.Movie {
	var (
		opts                 []objects.Option
		title, year, hasYear = ParseName(path)
		dir                  = filepath.Base(filepath.Dir(path))
	)

	if hasYear {
		opts = append(opts, objects.WithYear(year))
	}

	if objects.ValidGenre(dir) {
		opts = append(opts, objects.WithGenre(dir))
	}

	var m = s.reg.NewMovie(title, opts...)

	s.log.Printf("[DEBUG] Found %s in %s\n",
		m,
		path)

	return m
} // func (s *Scanner) movieFromPath(path string) *objects.Movie
