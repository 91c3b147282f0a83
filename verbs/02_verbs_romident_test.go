// /home/krylon/go/src/github.com/blicero/minimaws/verbs/02_verbs_romident_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 17. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-17 17:48:19 krylon>

package verbs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blicero/minimaws/common"
)

func TestRomIdent(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err     error
		scanDir = filepath.Join(common.BaseDir(), "scan")
	)

	if err = os.MkdirAll(scanDir, 0755); err != nil {
		t.Fatalf("Cannot create scan directory: %s", err.Error())
	} else if err = os.WriteFile(filepath.Join(scanDir, "fox.bin"), []byte(foxContent), 0644); err != nil {
		t.Fatalf("Cannot write fox.bin: %s", err.Error())
	} else if err = os.WriteFile(filepath.Join(scanDir, "junk.bin"), []byte("junk data\n"), 0644); err != nil {
		t.Fatalf("Cannot write junk.bin: %s", err.Error())
	}

	var r, out, errOut = newTestRunner(t)

	var expected = filepath.Join(scanDir, "fox.bin") + "\n" +
		"    machine alpha (Alpha One): alpha.rom\n" +
		"    software alpha_cart/game1 (Game One) cart: game1.bin BAD\n" +
		"Unmatched:\n" +
		"    " + filepath.Join(scanDir, "junk.bin") +
		"  CRC(f4e4e76a) SHA1(9e4353683333d032782cd4b9e17612c7a2e7804d)\n"

	if err = r.RomIdent(scanDir); err != nil {
		t.Fatalf("RomIdent failed: %s", err.Error())
	} else if out.String() != expected {
		t.Errorf("Unexpected output:\n%q\nExpected:\n%q",
			out.String(),
			expected)
	} else if errOut.Len() != 0 {
		t.Errorf("Unexpected error output: %q", errOut.String())
	}
} // func TestRomIdent(t *testing.T)
