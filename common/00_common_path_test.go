// /home/krylon/go/src/github.com/blicero/minimaws/common/00_common_path_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-09-02 09:14:27 krylon>

package common

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/minimaws/common/path"
	"github.com/spf13/viper"
)

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/minimaws_common_test_20060102_150405")
	)

	if err = SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
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

// The database path comes from the configuration: bare names live in the
// base directory, absolute paths are taken as given.
func TestPathDatabase(t *testing.T) {
	defer viper.Set("database", AppName+".sqlite3")

	type testCase struct {
		database string
		expected string
	}

	var cases = []testCase{
		{
			database: AppName + ".sqlite3",
			expected: filepath.Join(BaseDir(), AppName+".sqlite3"),
		},
		{
			database: "catalog.db",
			expected: filepath.Join(BaseDir(), "catalog.db"),
		},
		{
			database: "/srv/emu/catalog.sqlite3",
			expected: "/srv/emu/catalog.sqlite3",
		},
	}

	for _, c := range cases {
		viper.Set("database", c.database)

		if p := Path(path.Database); p != c.expected {
			t.Errorf("Path(Database) with database=%q returned %q, expected %q",
				c.database,
				p,
				c.expected)
		}
	}
} // func TestPathDatabase(t *testing.T)

func TestPathLog(t *testing.T) {
	var expected = filepath.Join(BaseDir(), AppName+".log")

	if p := Path(path.Log); p != expected {
		t.Errorf("Path(Log) returned %q, expected %q",
			p,
			expected)
	}
} // func TestPathLog(t *testing.T)
