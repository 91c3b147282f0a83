// /home/krylon/go/src/github.com/blicero/minimaws/web/00_web_main_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-24 18:21:46 krylon>

package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/blicero/minimaws/common"
	"github.com/blicero/minimaws/common/path"
	"github.com/blicero/minimaws/database"
)

// Digests are fabricated; only their identity matters to the tests.
const (
	romCrc   uint32 = 0x31337157
	romSha1         = "0123456789abcdef0123456789abcdef01234567"
	diskSha1        = "89abcdef0123456789abcdef0123456789abcdef"
)

var srv *Server

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/minimaws_web_test_20060102_150405")
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
	} else if srv, err = Create("127.0.0.1:0"); err != nil {
		fmt.Printf("Cannot create server: %s\n",
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

// loadFixture builds a catalog exercising the whole read surface: a system
// with BIOS sets, RAM options, feature flags, a slot graph two cards deep,
// shadowed slots and softwarelist tags, a clone, and rom and disk dumps
// shared with a software list.
func loadFixture() error {
	var (
		err  error
		db   *database.Database
		ids  = make(map[string]int64)
		part int64
	)

	if db, err = database.Open(common.Path(path.Database)); err != nil {
		return err
	} else if err = db.PrepareForLoad(); err != nil {
		return err
	}

	defer db.Close() // nolint: errcheck

	var list, game int64

	if list, err = db.SoftwareListAdd("alpha_cart", "Alpha One cartridges"); err != nil {
		return err
	} else if game, err = db.SoftwareAdd(list, "game1", "Game One", "1986", "Krylon Data", 0); err != nil {
		return err
	} else if part, err = db.SoftwarePartAdd(game, "cart", "alpha_cart"); err != nil {
		return err
	} else if err = db.PartFeatureTypeAdd("part_id"); err != nil {
		return err
	} else if err = db.PartFeatureAdd(part, "part_id", "Cartridge"); err != nil {
		return err
	}

	for _, src := range []string{"drivers/alpha.cpp", "shared/cards.cpp"} {
		if err = db.SourcefileAdd(src); err != nil {
			return err
		}
	}

	if ids["alpha"], err = db.MachineAdd("alpha", "Alpha One", "drivers/alpha.cpp", false, true); err != nil {
		return err
	} else if err = db.SystemAdd(ids["alpha"], "1985", "Krylon Data"); err != nil {
		return err
	}

	var biosset int64

	if biosset, err = db.BiosSetAdd(ids["alpha"], "set1", "Standard"); err != nil {
		return err
	} else if err = db.BiosSetDefaultAdd(biosset); err != nil {
		return err
	} else if _, err = db.BiosSetAdd(ids["alpha"], "set2", "Export"); err != nil {
		return err
	}

	if err = db.FeatureTypeAdd("sound"); err != nil {
		return err
	} else if err = db.FeatureAdd(ids["alpha"], "sound", 1, 1); err != nil {
		return err
	} else if err = db.FeatureTypeAdd("graphics"); err != nil {
		return err
	} else if err = db.FeatureAdd(ids["alpha"], "graphics", 0, 2); err != nil {
		return err
	}

	if err = db.RAMOptionAdd(ids["alpha"], "64K", 65536); err != nil {
		return err
	} else if err = db.RAMOptionAdd(ids["alpha"], "128K", 131072); err != nil {
		return err
	} else if err = db.RAMDefaultAdd(ids["alpha"], 65536); err != nil {
		return err
	}

	// The exp slot holds the serial card by default; the card brings a
	// slot of its own, whose fully qualified name on alpha is shadowed.
	var slot, opt int64

	if slot, err = db.SlotAdd(ids["alpha"], "exp"); err != nil {
		return err
	} else if opt, err = db.SlotOptionAdd(slot, "sercard", "serial"); err != nil {
		return err
	} else if err = db.SlotDefaultAdd(slot, opt); err != nil {
		return err
	}

	if slot, err = db.SlotAdd(ids["alpha"], "exp:serial:port"); err != nil {
		return err
	} else if _, err = db.SlotOptionAdd(slot, "nullmod", "plug"); err != nil {
		return err
	}

	if err = db.SoftwareListStatusAdd("original"); err != nil {
		return err
	} else if err = db.MachineSoftwareListAdd(ids["alpha"], "cart", "alpha_cart", "original"); err != nil {
		return err
	} else if err = db.MachineSoftwareListAdd(ids["alpha"], "cart:sub", "alpha_cart", "original"); err != nil {
		return err
	}

	if err = db.RomAdd(romCrc, romSha1); err != nil {
		return err
	} else if err = db.RomDumpAdd(ids["alpha"], "alpha.rom", romCrc, romSha1, false); err != nil {
		return err
	} else if err = db.SoftwareRomDumpAdd(part, "game1.bin", romCrc, romSha1, true); err != nil {
		return err
	} else if err = db.DiskAdd(diskSha1); err != nil {
		return err
	} else if err = db.DiskDumpAdd(ids["alpha"], "alpha_hdd", diskSha1, false); err != nil {
		return err
	}

	if ids["alphab"], err = db.MachineAdd("alphab", "Alpha One (rev B)", "drivers/alpha.cpp", false, true); err != nil {
		return err
	} else if err = db.SystemAdd(ids["alphab"], "1986", "Krylon Data"); err != nil {
		return err
	} else if err = db.CloneofAdd(ids["alphab"], "alpha"); err != nil {
		return err
	} else if err = db.RomofAdd(ids["alphab"], "alpha"); err != nil {
		return err
	}

	// The serial card is a device with a slot of its own, so the slot
	// tree of alpha has to pull it in, and the null modem plug after it.
	if ids["sercard"], err = db.MachineAdd("sercard", "Serial Card", "shared/cards.cpp", true, false); err != nil {
		return err
	}

	if slot, err = db.SlotAdd(ids["sercard"], "port"); err != nil {
		return err
	} else if _, err = db.SlotOptionAdd(slot, "nullmod", "plug"); err != nil {
		return err
	}

	if ids["nullmod"], err = db.MachineAdd("nullmod", "Null Modem Plug", "shared/cards.cpp", true, false); err != nil {
		return err
	}

	for _, dev := range []string{"sercard", "nullmod"} {
		if err = db.DeviceRefAdd(ids["alpha"], dev); err != nil {
			return err
		}
	}

	return db.FinaliseLoad()
} // func loadFixture() error

// request runs a request through the router and returns the recorder.
func request(method, target string) *httptest.ResponseRecorder {
	var (
		req = httptest.NewRequest(method, target, nil)
		rec = httptest.NewRecorder()
	)

	srv.router.ServeHTTP(rec, req)
	return rec
} // func request(method, target string) *httptest.ResponseRecorder

func get(target string) *httptest.ResponseRecorder {
	return request(http.MethodGet, target)
} // func get(target string) *httptest.ResponseRecorder
