// /home/krylon/go/src/github.com/blicero/movierental/common/logger.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 11:02:48 krylon>

package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/blicero/movierental/logdomain"
	"github.com/hashicorp/logutils"
)

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// MinLogLevel is the minimum level a log message must have to be written
// out to the log.
var MinLogLevel logutils.LogLevel = "INFO"

var (
	logLock sync.Mutex
	logfile *os.File
)

func validLevel(lvl logutils.LogLevel) bool {
	for _, l := range LogLevels {
		if l == lvl {
			return true
		}
	}

	return false
} // func validLevel(lvl logutils.LogLevel) bool

// GetLogger tries to create a named logger instance and return it.
// If the directory to hold the log file does not exist, try to create it.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err     error
		name    = fmt.Sprintf("%s.%s ", AppName, dom)
		minimum = MinLogLevel
	)

	if Debug {
		minimum = "TRACE"
	}

	pathLock.RLock()
	var path = LogPath
	err = initDir()
	pathLock.RUnlock()

	if err != nil {
		return nil, err
	}

	logLock.Lock()
	defer logLock.Unlock()

	if logfile == nil {
		if logfile, err = os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644); err != nil {
			return nil, fmt.Errorf("Error opening log file %s: %s",
				path,
				err.Error())
		}
	}

	var writer = io.MultiWriter(os.Stdout, logfile)

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: minimum,
		Writer:   writer,
	}

	var logger = log.New(filter, name, log.Ldate|log.Ltime|log.Lshortfile)
	return logger, nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

func closeLogFile() {
	logLock.Lock()
	defer logLock.Unlock()

	if logfile != nil {
		logfile.Close() // nolint: errcheck
		logfile = nil
	}
} // func closeLogFile()
