// /home/krylon/go/src/github.com/blicero/minimaws/ingest/ingest.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-15 18:20:46 krylon>

// Package ingest parses the emulator's machine catalog and software list
// files into the database. The catalog is streamed either from a file or
// from the emulator's -listxml output; software lists load first, so that
// machines can attach to them by name.
package ingest

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/blicero/minimaws/common"
	"github.com/blicero/minimaws/database"
	"github.com/blicero/minimaws/logdomain"
)

// batchSize is the number of machines or software items per transaction.
const batchSize = 1024

// Loader drives one load pass.
type Loader struct {
	db      *database.Database
	log     *log.Logger
	pending int
}

// New creates a Loader writing to the given database.
func New(db *database.Database) (*Loader, error) {
	var (
		err error
		l   = &Loader{db: db}
	)

	if l.log, err = common.GetLogger(logdomain.Ingest); err != nil {
		return nil, err
	}

	return l, nil
} // func New(db *database.Database) (*Loader, error)

// entityDone is called after each complete machine or software item.
// Committing at entity boundaries bounds the transaction log without ever
// splitting an entity across transactions.
func (l *Loader) entityDone() error {
	var err error

	l.pending++
	if l.pending%batchSize != 0 {
		return nil
	}

	if err = l.db.Commit(); err != nil {
		return err
	}

	return l.db.Begin()
} // func (l *Loader) entityDone() error

// Load rebuilds the database from scratch. Exactly one of exe and file must
// be given: exe names the emulator binary to run with -listxml, file a
// previously captured catalog. Each software path is scanned for *.xml
// files, which load before the catalog.
//
// On failure the database is left partially populated and should be
// discarded.
func (l *Loader) Load(exe, file string, softwarePaths []string) error {
	var err error

	if (exe == "") == (file == "") {
		return fmt.Errorf("exactly one of executable and file must be given")
	}

	if err = l.db.PrepareForLoad(); err != nil {
		return err
	}

	for _, dir := range softwarePaths {
		if err = l.loadSoftwareDir(dir); err != nil {
			return err
		}
	}

	if file != "" {
		err = l.loadCatalogFile(file)
	} else {
		err = l.loadCatalogExe(exe)
	}

	if err != nil {
		return err
	}

	l.log.Printf("[INFO] Loaded %d entities, finalising\n",
		l.pending)

	return l.db.FinaliseLoad()
} // func (l *Loader) Load(exe, file string, softwarePaths []string) error

func (l *Loader) loadSoftwareDir(dir string) error {
	var (
		err     error
		entries []os.DirEntry
	)

	if entries, err = os.ReadDir(dir); err != nil {
		l.log.Printf("[ERROR] Cannot read software path %s: %s\n",
			dir,
			err.Error())
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}

		var full = filepath.Join(dir, entry.Name())

		if err = l.loadSoftwareList(full); err != nil {
			return err
		}
	}

	return nil
} // func (l *Loader) loadSoftwareDir(dir string) error

func (l *Loader) loadSoftwareList(path string) error {
	var (
		err error
		fh  *os.File
	)

	if common.Debug {
		l.log.Printf("[DEBUG] Load software list %s\n",
			path)
	}

	if fh, err = os.Open(path); err != nil {
		l.log.Printf("[ERROR] Cannot open %s: %s\n",
			path,
			err.Error())
		return err
	}

	defer fh.Close() // nolint: errcheck

	return l.parse(fh, path, "softwarelist", &softwareListHandler{ld: l})
} // func (l *Loader) loadSoftwareList(path string) error

func (l *Loader) loadCatalogFile(path string) error {
	var (
		err error
		fh  *os.File
	)

	if fh, err = os.Open(path); err != nil {
		l.log.Printf("[ERROR] Cannot open %s: %s\n",
			path,
			err.Error())
		return err
	}

	defer fh.Close() // nolint: errcheck

	return l.parse(fh, path, "mame", &listXMLHandler{ld: l})
} // func (l *Loader) loadCatalogFile(path string) error

func (l *Loader) loadCatalogExe(exe string) error {
	var (
		err  error
		cmd  = exec.Command(exe, "-listxml")
		pipe io.ReadCloser
	)

	cmd.Stderr = os.Stderr

	if pipe, err = cmd.StdoutPipe(); err != nil {
		l.log.Printf("[ERROR] Cannot create pipe from %s: %s\n",
			exe,
			err.Error())
		return err
	} else if err = cmd.Start(); err != nil {
		l.log.Printf("[ERROR] Cannot run %s: %s\n",
			exe,
			err.Error())
		return err
	}

	var src = exe + " -listxml"

	if err = l.parse(pipe, src, "mame", &listXMLHandler{ld: l}); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return err
	} else if err = cmd.Wait(); err != nil {
		l.log.Printf("[ERROR] %s failed: %s\n",
			src,
			err.Error())
		return err
	}

	return nil
} // func (l *Loader) loadCatalogExe(exe string) error
