// /home/krylon/go/src/github.com/blicero/minimaws/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-07-02 21:48:33 krylon>

// Package common provides constants and variables used throughout the
// application, plus the logging setup.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/minimaws/common/path"
	"github.com/blicero/minimaws/logdomain"
	"github.com/hashicorp/logutils"
	"github.com/spf13/viper"
)

// Debug indicates whether to emit additional log messages and perform
// additional sanity checks.
const Debug = true

// AppName is the name of the application, Version is the version number,
// TimestampFormat is the format for timestamps used throughout the
// application.
const (
	AppName         = "minimaws"
	Version         = "0.3.1"
	TimestampFormat = "2006-01-02 15:04:05"
	Port            = 8080
)

// LogLevels are the valid log levels, in ascending order of severity.
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

// PackageLevels defines minimum log levels per package.
var PackageLevels = func() map[logdomain.ID]logutils.LogLevel {
	var m = make(map[logdomain.ID]logutils.LogLevel, len(logdomain.AllDomains()))

	for _, dom := range logdomain.AllDomains() {
		m[dom] = "TRACE"
	}

	return m
}()

var baseDir = filepath.Join(os.Getenv("HOME"), ".minimaws.d")

func init() {
	viper.SetEnvPrefix(AppName)
	viper.AutomaticEnv()
	viper.SetDefault("database", "minimaws.sqlite3")
	viper.SetDefault("host", "")
	viper.SetDefault("port", Port)
	viper.SetDefault("loglevel", "TRACE")
} // func init()

// BaseDir returns the directory for application-specific files.
func BaseDir() string {
	return baseDir
} // func BaseDir() string

// SetBaseDir sets the directory for application-specific files and makes
// sure it exists.
func SetBaseDir(folder string) error {
	baseDir = folder
	return InitApp()
} // func SetBaseDir(folder string) error

// Path returns the filesystem path of the given application file.
func Path(id path.ID) string {
	switch id {
	case path.Base:
		return baseDir
	case path.Log:
		return filepath.Join(baseDir, AppName+".log")
	case path.Database:
		var dbpath = viper.GetString("database")
		if filepath.IsAbs(dbpath) {
			return dbpath
		}
		return filepath.Join(baseDir, dbpath)
	case path.IdentCache:
		return filepath.Join(baseDir, "identcache.db")
	default:
		panic(fmt.Errorf("Invalid path ID %d", id))
	}
} // func Path(id path.ID) string

// InitApp creates the application directory, if it does not exist already.
func InitApp() error {
	var (
		err    error
		exists bool
	)

	if exists, err = krylib.Fexists(baseDir); err != nil {
		return err
	} else if exists {
		return nil
	} else if err = os.MkdirAll(baseDir, 0755); err != nil {
		return fmt.Errorf("Error creating BaseDir %s: %s",
			baseDir,
			err.Error())
	}

	return nil
} // func InitApp() error

// GetLogger tries to create a Logger for the given log domain.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err     error
		logfile *os.File
		lvl     logutils.LogLevel
		ok      bool
	)

	if err = InitApp(); err != nil {
		return nil, err
	}

	if lvl, ok = PackageLevels[dom]; !ok {
		lvl = "TRACE"
	}

	var logName = fmt.Sprintf("%s.%s ",
		AppName,
		dom)

	if logfile, err = os.OpenFile(Path(path.Log), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644); err != nil {
		return nil, fmt.Errorf("Error opening log file %s: %s",
			Path(path.Log),
			err.Error())
	}

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: lvl,
		Writer:   io.MultiWriter(os.Stderr, logfile),
	}

	return log.New(filter, logName, log.Ldate|log.Ltime|log.Lshortfile), nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// BuildStamp is the time when the program was compiled. Filled in by the
// build script; the zero value means a developer build.
var BuildStamp = time.Unix(0, 0)
