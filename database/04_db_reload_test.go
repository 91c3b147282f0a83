// /home/krylon/go/src/github.com/blicero/minimaws/database/04_db_reload_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-12 21:09:34 krylon>

package database

import (
	"testing"
)

// Loading into a populated database replaces its entire content.
func TestDBReload(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var err error

	if err = db.PrepareForLoad(); err != nil {
		t.Fatalf("PrepareForLoad failed on populated database: %s",
			err.Error())
	}

	if err = db.SourcefileAdd("solo.cpp"); err != nil {
		t.Fatalf("Cannot add source file: %s", err.Error())
	} else if _, err = db.MachineAdd("solo", "Solo System", "solo.cpp", false, true); err != nil {
		t.Fatalf("Cannot add machine: %s", err.Error())
	}

	if err = db.FinaliseLoad(); err != nil {
		t.Fatalf("FinaliseLoad failed: %s", err.Error())
	}

	var cnt int64

	if cnt, err = db.SystemCount(""); err != nil {
		t.Fatalf("SystemCount failed: %s", err.Error())
	} else if cnt != 1 {
		t.Errorf("After reload, SystemCount returned %d, expected 1",
			cnt)
	}

	if cnt, err = db.SoftwareListCount(""); err != nil {
		t.Fatalf("SoftwareListCount failed: %s", err.Error())
	} else if cnt != 0 {
		t.Errorf("After reload, SoftwareListCount returned %d, expected 0",
			cnt)
	}
} // func TestDBReload(t *testing.T)

func TestDBClose(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var err error

	if err = db.Close(); err != nil {
		t.Errorf("Failed to close database: %s",
			err.Error())
	}

	db = nil
} // func TestDBClose(t *testing.T)
