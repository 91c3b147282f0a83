// /home/krylon/go/src/github.com/blicero/minimaws/database/02_db_load_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-12 19:11:30 krylon>

package database

import (
	"testing"
)

// Digests are fabricated; only their identity matters to the tests.
const (
	romCrc   uint32 = 0xdeadbeef
	romSha1         = "0123456789abcdef0123456789abcdef01234567"
	cassCrc  uint32 = 0xcafebabe
	cassSha1        = "76543210fedcba9876543210fedcba9876543210"
	diskSha1        = "89abcdef0123456789abcdef0123456789abcdef"
)

// The software side loads before the machine catalog, so that attaching
// lists to machines by short name can resolve.
func TestDBLoadSoftware(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err               error
		swParent, swClone int64
	)

	if listID, err = db.SoftwareListAdd("pf_cass", "Pac Fiction cassettes"); err != nil {
		t.Fatalf("Cannot add software list: %s", err.Error())
	} else if swParent, err = db.SoftwareAdd(listID, "wizball", "Wizball", "1987", "Ocean", 0); err != nil {
		t.Fatalf("Cannot add software: %s", err.Error())
	} else if swClone, err = db.SoftwareAdd(listID, "wizballa", "Wizball (alt)", "1987", "Ocean", 1); err != nil {
		t.Fatalf("Cannot add software: %s", err.Error())
	} else if err = db.SoftwareCloneofAdd(swClone, listID, "wizball"); err != nil {
		t.Fatalf("Cannot add software cloneof: %s", err.Error())
	}

	if err = db.SoftwareInfoTypeAdd("developer"); err != nil {
		t.Fatalf("Cannot intern info type: %s", err.Error())
	} else if err = db.SoftwareInfoAdd(swParent, "developer", "Sensible Software"); err != nil {
		t.Fatalf("Cannot add software info: %s", err.Error())
	} else if err = db.SharedFeatTypeAdd("compatibility"); err != nil {
		t.Fatalf("Cannot intern shared feature type: %s", err.Error())
	} else if err = db.SharedFeatAdd(swParent, "compatibility", "PAL"); err != nil {
		t.Fatalf("Cannot add shared feature: %s", err.Error())
	}

	var part int64

	if part, err = db.SoftwarePartAdd(swParent, "cass1", "pf_cass"); err != nil {
		t.Fatalf("Cannot add software part: %s", err.Error())
	} else if err = db.PartFeatureTypeAdd("part_id"); err != nil {
		t.Fatalf("Cannot intern part feature type: %s", err.Error())
	} else if err = db.PartFeatureAdd(part, "part_id", "Side A"); err != nil {
		t.Fatalf("Cannot add part feature: %s", err.Error())
	}

	partIDs["cass1"] = part

	if err = db.RomAdd(cassCrc, cassSha1); err != nil {
		t.Fatalf("Cannot add rom: %s", err.Error())
	} else if err = db.SoftwareRomDumpAdd(part, "wizball.tap", cassCrc, cassSha1, false); err != nil {
		t.Fatalf("Cannot add software rom dump: %s", err.Error())
	} else if err = db.DiskAdd(diskSha1); err != nil {
		t.Fatalf("Cannot add disk: %s", err.Error())
	} else if err = db.SoftwareDiskDumpAdd(part, "wizball_hdd", diskSha1, true); err != nil {
		t.Fatalf("Cannot add software disk dump: %s", err.Error())
	}
} // func TestDBLoadSoftware(t *testing.T)

func TestDBLoadMachines(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var err error

	for _, src := range []string{"pacfic.cpp", "devices.cpp"} {
		if err = db.SourcefileAdd(src); err != nil {
			t.Fatalf("Cannot add source file %s: %s",
				src,
				err.Error())
		}
	}

	var pacfic int64

	if pacfic, err = db.MachineAdd("pacfic", "Pac Fiction", "pacfic.cpp", false, true); err != nil {
		t.Fatalf("Cannot add machine: %s", err.Error())
	} else if err = db.SystemAdd(pacfic, "1988", "Krylon Amusements"); err != nil {
		t.Fatalf("Cannot add system metadata: %s", err.Error())
	}

	machineIDs["pacfic"] = pacfic

	var biosset int64

	if biosset, err = db.BiosSetAdd(pacfic, "set1", "Standard"); err != nil {
		t.Fatalf("Cannot add BIOS set: %s", err.Error())
	} else if err = db.BiosSetDefaultAdd(biosset); err != nil {
		t.Fatalf("Cannot mark BIOS set default: %s", err.Error())
	}

	var dip int64

	if dip, err = db.DipSwitchAdd(pacfic, false, "Lives", "dsw1", 3); err != nil {
		t.Fatalf("Cannot add DIP switch: %s", err.Error())
	} else if err = db.DipLocationAdd(dip, 0, "SW1", 1, false); err != nil {
		t.Fatalf("Cannot add DIP location: %s", err.Error())
	} else if err = db.DipValueAdd(dip, "3", 0, true); err != nil {
		t.Fatalf("Cannot add DIP value: %s", err.Error())
	}

	if err = db.FeatureTypeAdd("sound"); err != nil {
		t.Fatalf("Cannot intern feature type: %s", err.Error())
	} else if err = db.FeatureAdd(pacfic, "sound", 1, 1); err != nil {
		t.Fatalf("Cannot add feature: %s", err.Error())
	}

	if err = db.RAMOptionAdd(pacfic, "64K", 65536); err != nil {
		t.Fatalf("Cannot add RAM option: %s", err.Error())
	} else if err = db.RAMDefaultAdd(pacfic, 65536); err != nil {
		t.Fatalf("Cannot add RAM default: %s", err.Error())
	}

	var slot, opt int64

	if slot, err = db.SlotAdd(pacfic, "exp"); err != nil {
		t.Fatalf("Cannot add slot: %s", err.Error())
	} else if opt, err = db.SlotOptionAdd(slot, "ser2", "rs232"); err != nil {
		t.Fatalf("Cannot add slot option: %s", err.Error())
	} else if _, err = db.SlotOptionAdd(slot, "phantom", "ghost"); err != nil {
		t.Fatalf("Cannot add slot option: %s", err.Error())
	} else if err = db.SlotDefaultAdd(slot, opt); err != nil {
		t.Fatalf("Cannot add slot default: %s", err.Error())
	}

	slotIDs["exp"] = slot

	for _, dev := range []string{"ser2", "phantom"} {
		if err = db.DeviceRefAdd(pacfic, dev); err != nil {
			t.Fatalf("Cannot add device reference %s: %s",
				dev,
				err.Error())
		}
	}

	if err = db.SoftwareListStatusAdd("original"); err != nil {
		t.Fatalf("Cannot intern software list status: %s", err.Error())
	} else if err = db.MachineSoftwareListAdd(pacfic, "cass", "pf_cass", "original"); err != nil {
		t.Fatalf("Cannot attach software list: %s", err.Error())
	}

	if err = db.RomAdd(romCrc, romSha1); err != nil {
		t.Fatalf("Cannot add rom: %s", err.Error())
	} else if err = db.RomDumpAdd(pacfic, "pacfic.1a", romCrc, romSha1, false); err != nil {
		t.Fatalf("Cannot add rom dump: %s", err.Error())
	} else if err = db.DiskDumpAdd(pacfic, "pacfic_hdd", diskSha1, false); err != nil {
		t.Fatalf("Cannot add disk dump: %s", err.Error())
	}

	var pacficj int64

	if pacficj, err = db.MachineAdd("pacficj", "Pac Fiction (Japan)", "pacfic.cpp", false, true); err != nil {
		t.Fatalf("Cannot add machine: %s", err.Error())
	} else if err = db.CloneofAdd(pacficj, "pacfic"); err != nil {
		t.Fatalf("Cannot add cloneof: %s", err.Error())
	} else if err = db.RomofAdd(pacficj, "pacfic"); err != nil {
		t.Fatalf("Cannot add romof: %s", err.Error())
	}

	machineIDs["pacficj"] = pacficj

	var ser2 int64

	if ser2, err = db.MachineAdd("ser2", "RS232 Expansion", "devices.cpp", true, false); err != nil {
		t.Fatalf("Cannot add machine: %s", err.Error())
	}

	machineIDs["ser2"] = ser2
} // func TestDBLoadMachines(t *testing.T)

func TestDBFinaliseLoad(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var err error

	if err = db.FinaliseLoad(); err != nil {
		t.Fatalf("FinaliseLoad failed: %s",
			err.Error())
	}
} // func TestDBFinaliseLoad(t *testing.T)
