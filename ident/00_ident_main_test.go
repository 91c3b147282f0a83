// /home/krylon/go/src/github.com/blicero/minimaws/ident/00_ident_main_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-16 18:40:12 krylon>

package ident

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/blicero/minimaws/common"
)

var testDir string

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/minimaws_ident_test_20060102_150405")
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	}

	testDir = baseDir + "/files"

	if err = os.Mkdir(testDir, 0755); err != nil {
		fmt.Printf("Cannot create test directory: %s\n", err.Error())
		os.Exit(1)
	}

	if result = m.Run(); result == 0 {
		fmt.Printf("Removing BaseDir %s\n",
			baseDir)
		_ = os.RemoveAll(baseDir)
	} else {
		fmt.Printf(">>> TEST DIRECTORY: %s\n", baseDir)
	}

	os.Exit(result)
} // func TestMain(m *testing.M)
