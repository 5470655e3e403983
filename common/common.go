// /home/krylon/go/src/github.com/blicero/movierental/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 11:40:02 krylon>

// Package common contains settings and helpers that are used
// throughout the application.
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/blicero/krylib"
	"github.com/hashicorp/logutils"
	"github.com/joho/godotenv"
)

// Debug, if true, causes the application to log more verbosely.
var Debug = false

// AppName is the name of the application.
const AppName = "MovieRental"

// Version is the version number.
const Version = "0.1.0"

// EnvFileName is the name of the optional settings file in BaseDir.
const EnvFileName = "movierental.env"

// Names of the environment variables we look at.
const (
	EnvDebug    = "MOVIERENTAL_DEBUG"
	EnvLogLevel = "MOVIERENTAL_LOGLEVEL"
)

var pathLock sync.RWMutex

// BaseDir is the directory where all application specific files
// (log file, settings) live.
var BaseDir = filepath.Join(
	os.Getenv("HOME"),
	fmt.Sprintf(".%s.d", strings.ToLower(AppName)))

// LogPath is the path of the log file.
var LogPath = filepath.Join(BaseDir, fmt.Sprintf("%s.log", strings.ToLower(AppName)))

// DbPath is the path of the catalog database. We do not keep anything
// across runs, so it lives in memory.
var DbPath = ":memory:"

// SetBaseDir sets the BaseDir and the paths derived from it.
// A log file that is already open is closed, the next call to GetLogger
// opens the one in the new location.
func SetBaseDir(path string) error {
	pathLock.Lock()
	BaseDir = path
	LogPath = filepath.Join(BaseDir, fmt.Sprintf("%s.log", strings.ToLower(AppName)))
	var err = initDir()
	pathLock.Unlock()

	if err != nil {
		return err
	}

	closeLogFile()
	return nil
} // func SetBaseDir(path string) error

func initDir() error {
	var (
		err    error
		exists bool
	)

	if exists, err = krylib.Fexists(BaseDir); err != nil {
		return fmt.Errorf("Cannot check if %s exists: %s",
			BaseDir,
			err.Error())
	} else if !exists {
		if err = os.MkdirAll(BaseDir, 0755); err != nil {
			return fmt.Errorf("Cannot create base directory %s: %s",
				BaseDir,
				err.Error())
		}
	}

	return nil
} // func initDir() error

// InitApp makes sure the base directory exists and loads the settings
// file, if there is one.
func InitApp() error {
	var (
		err     error
		exists  bool
		envPath string
	)

	pathLock.RLock()
	defer pathLock.RUnlock()

	if err = initDir(); err != nil {
		return err
	}

	envPath = filepath.Join(BaseDir, EnvFileName)

	if exists, err = krylib.Fexists(envPath); err != nil {
		return fmt.Errorf("Cannot check if %s exists: %s",
			envPath,
			err.Error())
	} else if exists {
		if err = godotenv.Load(envPath); err != nil {
			return fmt.Errorf("Cannot load settings from %s: %s",
				envPath,
				err.Error())
		}
	}

	return applyEnv()
} // func InitApp() error

func applyEnv() error {
	if s, ok := os.LookupEnv(EnvDebug); ok {
		var (
			err error
			val bool
		)

		if val, err = strconv.ParseBool(s); err != nil {
			return fmt.Errorf("Invalid value for %s: %q",
				EnvDebug,
				s)
		}

		Debug = val
	}

	if s, ok := os.LookupEnv(EnvLogLevel); ok {
		var lvl = logutils.LogLevel(strings.ToUpper(s))

		if !validLevel(lvl) {
			return fmt.Errorf("Invalid value for %s: %q",
				EnvLogLevel,
				s)
		}

		MinLogLevel = lvl
	}

	return nil
} // func applyEnv() error
