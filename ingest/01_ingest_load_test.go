// /home/krylon/go/src/github.com/blicero/minimaws/ingest/01_ingest_load_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-15 19:48:26 krylon>

package ingest

import (
	"strings"
	"testing"

	"github.com/blicero/minimaws/model"
)

func TestLoadArgs(t *testing.T) {
	var (
		err error
		l   *Loader
	)

	if l, err = New(db); err != nil {
		t.Fatalf("Cannot create Loader: %s", err.Error())
	}

	if err = l.Load("", "", nil); err == nil {
		t.Error("Load without a source should fail")
	}

	if err = l.Load("/usr/bin/mame", catalogPath, nil); err == nil {
		t.Error("Load with two sources should fail")
	}
} // func TestLoadArgs(t *testing.T)

func TestLoad(t *testing.T) {
	var (
		err error
		l   *Loader
	)

	if l, err = New(db); err != nil {
		t.Fatalf("Cannot create Loader: %s", err.Error())
	} else if err = l.Load("", catalogPath, []string{softwareDir}); err != nil {
		t.Fatalf("Load failed: %s", err.Error())
	}
} // func TestLoad(t *testing.T)

func TestLoadedMachines(t *testing.T) {
	var (
		err      error
		machines []model.MachineBrief
	)

	if machines, err = db.ListFull(""); err != nil {
		t.Fatalf("ListFull failed: %s", err.Error())
	} else if len(machines) != 2 {
		t.Fatalf("ListFull returned %d machines, expected 2",
			len(machines))
	} else if machines[0].Shortname != "clone" || machines[1].Shortname != "demo" {
		t.Errorf("Unexpected machines: %v", machines)
	} else if machines[1].Description != "Demo" {
		t.Errorf("Unexpected description for demo: %q",
			machines[1].Description)
	}

	var m *model.Machine

	if m, err = db.MachineGetInfo("demo"); err != nil {
		t.Fatalf("MachineGetInfo failed: %s", err.Error())
	} else if m == nil {
		t.Fatal("demo was not loaded")
	} else if m.Year != "1999" || m.Manufacturer != "Acme" {
		t.Errorf("Unexpected metadata for demo: %q / %q",
			m.Year,
			m.Manufacturer)
	}

	var clones []model.Clone

	if clones, err = db.ListClones("*"); err != nil {
		t.Fatalf("ListClones failed: %s", err.Error())
	} else if len(clones) != 1 || clones[0].Shortname != "clone" || clones[0].Parent != "demo" {
		t.Errorf("Unexpected clones: %v", clones)
	}
} // func TestLoadedMachines(t *testing.T)

// The slot element hidden inside an unknown element must not have been
// ingested.
func TestUnknownElementsSkipped(t *testing.T) {
	var (
		err error
		m   *model.Machine
		cnt int64
	)

	if m, err = db.MachineGetInfo("demo"); err != nil || m == nil {
		t.Fatalf("Cannot look up demo: %v", err)
	}

	if cnt, err = db.SlotCount(m.ID); err != nil {
		t.Fatalf("SlotCount failed: %s", err.Error())
	} else if cnt != 1 {
		t.Errorf("demo has %d slots, expected 1 (the bogus slot must be skipped)",
			cnt)
	}
} // func TestUnknownElementsSkipped(t *testing.T)

func TestLoadedDetails(t *testing.T) {
	var (
		err error
		m   *model.Machine
	)

	if m, err = db.MachineGetInfo("demo"); err != nil || m == nil {
		t.Fatalf("Cannot look up demo: %v", err)
	}

	var devices []model.MachineBrief

	if devices, err = db.DevicesReferenced(m.ID); err != nil {
		t.Fatalf("DevicesReferenced failed: %s", err.Error())
	} else if len(devices) != 1 || devices[0].Shortname != "gadget" || !devices[0].Known {
		t.Errorf("Unexpected device references: %v", devices)
	}

	var options []model.SlotOption

	if options, err = db.SlotOptionsGet(m.ID); err != nil {
		t.Fatalf("SlotOptionsGet failed: %s", err.Error())
	} else if len(options) != 1 {
		t.Fatalf("SlotOptionsGet returned %d options, expected 1",
			len(options))
	} else if options[0].Slot != "exp" || options[0].Option != "widget" || options[0].Device != "gadget" {
		t.Errorf("Unexpected slot option: %v", options[0])
	}

	var defaults []model.SlotDefault

	if defaults, err = db.SlotDefaultsGet(m.ID); err != nil {
		t.Fatalf("SlotDefaultsGet failed: %s", err.Error())
	} else if len(defaults) != 1 || defaults[0].Option != "widget" {
		t.Errorf("Unexpected slot defaults: %v", defaults)
	}

	var ram []model.RAMOption

	if ram, err = db.RAMOptionsGet(m.ID); err != nil {
		t.Fatalf("RAMOptionsGet failed: %s", err.Error())
	} else if len(ram) != 1 || ram[0].Size != 16384 || !ram[0].IsDefault {
		t.Errorf("Unexpected RAM options: %v", ram)
	}

	var lists []model.MachineSoftwareList

	if lists, err = db.MachineSoftwareListsGet(m.ID); err != nil {
		t.Fatalf("MachineSoftwareListsGet failed: %s", err.Error())
	} else if len(lists) != 1 {
		t.Fatalf("MachineSoftwareListsGet returned %d lists, expected 1",
			len(lists))
	} else if lists[0].Tag != "cart" || lists[0].Shortname != "demo_cart" || lists[0].Total != 1 {
		t.Errorf("Unexpected software list attachment: %v", lists[0])
	}

	var dumps []model.RomDump

	if dumps, err = db.RomDumpsGet(0xdeadbeef, "0000000000000000000000000000000000000001"); err != nil {
		t.Fatalf("RomDumpsGet failed: %s", err.Error())
	} else if len(dumps) != 1 || dumps[0].Shortname != "demo" || dumps[0].Label != "demo.bin" {
		t.Errorf("Unexpected rom dumps: %v", dumps)
	}
} // func TestLoadedDetails(t *testing.T)

func TestLoadedSoftware(t *testing.T) {
	var (
		err error
		l   *model.SoftwareList
	)

	if l, err = db.SoftwareListGet("demo_cart"); err != nil {
		t.Fatalf("SoftwareListGet failed: %s", err.Error())
	} else if l == nil {
		t.Fatal("demo_cart was not loaded")
	} else if l.Total != 1 || l.Supported != 1 {
		t.Errorf("Unexpected counts for demo_cart: %v", l)
	}

	var s *model.Software

	if s, err = db.SoftwareGet(l.ID, "game1"); err != nil {
		t.Fatalf("SoftwareGet failed: %s", err.Error())
	} else if s == nil {
		t.Fatal("game1 was not loaded")
	} else if s.Year != "1990" || s.Publisher != "Acme" {
		t.Errorf("Unexpected software metadata: %v", s)
	}

	var parts []model.SoftwarePart

	if parts, err = db.SoftwarePartsGet(s.ID); err != nil {
		t.Fatalf("SoftwarePartsGet failed: %s", err.Error())
	} else if len(parts) != 1 || parts[0].PartID != "Cartridge" {
		t.Errorf("Unexpected parts: %v", parts)
	}

	var dumps []model.SoftwareRomDump

	if dumps, err = db.SoftwareRomDumpsGet(0xcafebabe, "0000000000000000000000000000000000000002"); err != nil {
		t.Fatalf("SoftwareRomDumpsGet failed: %s", err.Error())
	} else if len(dumps) != 1 || dumps[0].Software != "game1" {
		t.Errorf("Unexpected software rom dumps: %v", dumps)
	}
} // func TestLoadedSoftware(t *testing.T)

func TestRootTagStrict(t *testing.T) {
	var (
		err error
		l   *Loader
	)

	if l, err = New(db); err != nil {
		t.Fatalf("Cannot create Loader: %s", err.Error())
	}

	var r = strings.NewReader(`<machines><machine name="x" sourcefile="x.cpp"/></machines>`)

	if err = l.parse(r, "bogus.xml", "mame", &listXMLHandler{ld: l}); err == nil {
		t.Error("Parsing a document with the wrong root element should fail")
	}
} // func TestRootTagStrict(t *testing.T)

// A second load over the same inputs replaces the first one completely.
func TestReload(t *testing.T) {
	var (
		err    error
		l      *Loader
		before int64
	)

	if before, err = db.SystemCount(""); err != nil {
		t.Fatalf("SystemCount failed: %s", err.Error())
	}

	if l, err = New(db); err != nil {
		t.Fatalf("Cannot create Loader: %s", err.Error())
	} else if err = l.Load("", catalogPath, []string{softwareDir}); err != nil {
		t.Fatalf("Second load failed: %s", err.Error())
	}

	var after int64

	if after, err = db.SystemCount(""); err != nil {
		t.Fatalf("SystemCount failed: %s", err.Error())
	} else if after != before {
		t.Errorf("Reload changed the system count from %d to %d",
			before,
			after)
	}

	var lists []model.SoftwareList

	if lists, err = db.SoftwareListsGet(""); err != nil {
		t.Fatalf("SoftwareListsGet failed: %s", err.Error())
	} else if len(lists) != 1 {
		t.Errorf("After reload there are %d software lists, expected 1",
			len(lists))
	}
} // func TestReload(t *testing.T)
