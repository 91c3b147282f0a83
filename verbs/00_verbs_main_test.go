// /home/krylon/go/src/github.com/blicero/minimaws/verbs/00_verbs_main_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 17. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-17 17:05:31 krylon>

package verbs

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/blicero/minimaws/common"
	"github.com/blicero/minimaws/common/path"
	"github.com/blicero/minimaws/database"
)

// Digests of the fox sentence, so the scan test can match a real file.
const (
	foxContent        = "The quick brown fox jumps over the lazy dog"
	foxCrc     uint32 = 0x414fa339
	foxSha1           = "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"
)

var db *database.Database

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/minimaws_verbs_test_20060102_150405")
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	} else if err = loadFixture(); err != nil {
		fmt.Printf("Cannot load test fixture: %s\n",
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

// loadFixture populates the database with a small catalog: two systems and a
// clone across two source files, plus a software list whose lone cartridge
// shares a rom image with the parent system.
func loadFixture() error {
	var (
		err                  error
		alpha, alphab, beta  int64
		list, game, cartPart int64
	)

	if db, err = database.Open(common.Path(path.Database)); err != nil {
		return err
	} else if err = db.PrepareForLoad(); err != nil {
		return err
	}

	if list, err = db.SoftwareListAdd("alpha_cart", "Alpha One cartridges"); err != nil {
		return err
	} else if game, err = db.SoftwareAdd(list, "game1", "Game One", "1986", "Krylon Data", 0); err != nil {
		return err
	} else if cartPart, err = db.SoftwarePartAdd(game, "cart", "alpha_cart"); err != nil {
		return err
	}

	for _, src := range []string{"drivers/alpha.cpp", "beta.cpp"} {
		if err = db.SourcefileAdd(src); err != nil {
			return err
		}
	}

	if alpha, err = db.MachineAdd("alpha", "Alpha One", "drivers/alpha.cpp", false, true); err != nil {
		return err
	} else if err = db.SystemAdd(alpha, "1985", "Krylon Data"); err != nil {
		return err
	}

	if alphab, err = db.MachineAdd("alphab", "Alpha One (rev B)", "drivers/alpha.cpp", false, true); err != nil {
		return err
	} else if err = db.SystemAdd(alphab, "1986", "Krylon Data"); err != nil {
		return err
	} else if err = db.CloneofAdd(alphab, "alpha"); err != nil {
		return err
	} else if err = db.RomofAdd(alphab, "alpha"); err != nil {
		return err
	}

	if beta, err = db.MachineAdd("beta", "Beta Station", "beta.cpp", false, true); err != nil {
		return err
	} else if err = db.SystemAdd(beta, "1990", "Krylon Data"); err != nil {
		return err
	}

	if err = db.RomAdd(foxCrc, foxSha1); err != nil {
		return err
	} else if err = db.RomDumpAdd(alpha, "alpha.rom", foxCrc, foxSha1, false); err != nil {
		return err
	} else if err = db.SoftwareRomDumpAdd(cartPart, "game1.bin", foxCrc, foxSha1, true); err != nil {
		return err
	}

	return db.FinaliseLoad()
} // func loadFixture() error
