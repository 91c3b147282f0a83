// /home/krylon/go/src/github.com/blicero/minimaws/ingest/machine.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-14 19:55:31 krylon>

package ingest

import (
	"fmt"
	"strconv"

	"github.com/blicero/minimaws/model"
)

// listXMLHandler consumes the machine catalog, i.e. the output of the
// emulator's -listxml mode.
type listXMLHandler struct {
	baseHandler
	ld *Loader
}

func (h *listXMLHandler) startElement(name string, attrs attributes) (elementHandler, error) {
	if name == "machine" {
		return newMachineHandler(h.ld, attrs)
	}

	return nil, nil
} // func (h *listXMLHandler) startElement(name string, attrs attributes) (elementHandler, error)

func (h *listXMLHandler) childDone(name string, _ elementHandler) error {
	if name == "machine" {
		return h.ld.entityDone()
	}

	return nil
} // func (h *listXMLHandler) childDone(name string, child elementHandler) error

// machineHandler assembles one machine element. The machine row itself is not
// inserted until the description has been seen, because every dependent row
// needs its id.
type machineHandler struct {
	baseHandler
	ld         *Loader
	shortname  string
	sourcefile string
	isdevice   bool
	runnable   bool
	cloneof    string
	romof      string
	year       string
	id         int64
}

func newMachineHandler(ld *Loader, attrs attributes) (elementHandler, error) {
	var h = &machineHandler{
		ld:         ld,
		shortname:  attrs["name"],
		sourcefile: attrs["sourcefile"],
		isdevice:   attrs.get("isdevice", "no") == "yes",
		runnable:   attrs.get("runnable", "yes") == "yes",
		cloneof:    attrs["cloneof"],
		romof:      attrs["romof"],
	}

	if h.shortname == "" {
		return nil, fmt.Errorf("machine element without a name attribute")
	} else if h.sourcefile == "" {
		return nil, fmt.Errorf("machine %s has no sourcefile attribute",
			h.shortname)
	}

	return h, nil
} // func newMachineHandler(ld *Loader, attrs attributes) (elementHandler, error)

func (h *machineHandler) startElement(name string, attrs attributes) (elementHandler, error) {
	switch name {
	case "description", "year", "manufacturer":
		return new(textAccumulator), nil
	case "biosset", "rom", "disk", "device_ref", "feature", "softwarelist",
		"dipswitch", "configuration", "slot", "ramoption":
		if h.id == 0 {
			return nil, fmt.Errorf("machine %s: %s element before description",
				h.shortname,
				name)
		}
	default:
		return nil, nil
	}

	switch name {
	case "biosset":
		return nil, h.biosset(attrs)
	case "rom":
		return nil, h.rom(attrs)
	case "disk":
		return nil, h.disk(attrs)
	case "device_ref":
		return nil, h.ld.db.DeviceRefAdd(h.id, attrs["name"])
	case "feature":
		return nil, h.feature(attrs)
	case "softwarelist":
		return nil, h.softwarelist(attrs)
	case "dipswitch", "configuration":
		return newDipSwitchHandler(h.ld, h.id, name == "configuration", attrs)
	case "slot":
		return newSlotHandler(h.ld, h.id, attrs)
	case "ramoption":
		return newRAMOptionHandler(attrs), nil
	}

	return nil, nil
} // func (h *machineHandler) startElement(name string, attrs attributes) (elementHandler, error)

func (h *machineHandler) childDone(name string, child elementHandler) error {
	var err error

	switch name {
	case "description":
		if h.id != 0 {
			return nil
		}

		var desc = child.(*textAccumulator).text()

		if err = h.ld.db.SourcefileAdd(h.sourcefile); err != nil {
			return err
		} else if h.id, err = h.ld.db.MachineAdd(h.shortname, desc, h.sourcefile, h.isdevice, h.runnable); err != nil {
			return err
		}

		if h.cloneof != "" {
			if err = h.ld.db.CloneofAdd(h.id, h.cloneof); err != nil {
				return err
			}
		}

		if h.romof != "" {
			if err = h.ld.db.RomofAdd(h.id, h.romof); err != nil {
				return err
			}
		}
	case "year":
		h.year = child.(*textAccumulator).text()
	case "manufacturer":
		return h.ld.db.SystemAdd(h.id, h.year, child.(*textAccumulator).text())
	case "ramoption":
		var r = child.(*ramOptionHandler)
		return r.insert(h.ld, h.id)
	}

	return nil
} // func (h *machineHandler) childDone(name string, child elementHandler) error

func (h *machineHandler) biosset(attrs attributes) error {
	var (
		err error
		id  int64
	)

	if id, err = h.ld.db.BiosSetAdd(h.id, attrs["name"], attrs["description"]); err != nil {
		return err
	} else if attrs.get("default", "no") == "yes" {
		return h.ld.db.BiosSetDefaultAdd(id)
	}

	return nil
} // func (h *machineHandler) biosset(attrs attributes) error

func (h *machineHandler) rom(attrs attributes) error {
	var (
		err       error
		crc       uint64
		sha1, bad = dumpStatus(attrs)
	)

	// Undumped roms carry no digests; there is nothing to record.
	if attrs["crc"] == "" || sha1 == "" {
		return nil
	} else if crc, err = strconv.ParseUint(attrs["crc"], 16, 32); err != nil {
		return fmt.Errorf("machine %s: rom %s has invalid crc %q",
			h.shortname,
			attrs["name"],
			attrs["crc"])
	}

	if err = h.ld.db.RomAdd(uint32(crc), sha1); err != nil {
		return err
	}

	return h.ld.db.RomDumpAdd(h.id, attrs["name"], uint32(crc), sha1, bad)
} // func (h *machineHandler) rom(attrs attributes) error

func (h *machineHandler) disk(attrs attributes) error {
	var (
		err       error
		sha1, bad = dumpStatus(attrs)
	)

	if sha1 == "" {
		return nil
	} else if err = h.ld.db.DiskAdd(sha1); err != nil {
		return err
	}

	return h.ld.db.DiskDumpAdd(h.id, attrs["name"], sha1, bad)
} // func (h *machineHandler) disk(attrs attributes) error

func (h *machineHandler) feature(attrs attributes) error {
	var (
		err     error
		ftype   = attrs["type"]
		status  = featureLevel(attrs["status"])
		overall = status
	)

	if v, ok := attrs["overall"]; ok {
		overall = featureLevel(v)
	}

	if err = h.ld.db.FeatureTypeAdd(ftype); err != nil {
		return err
	}

	return h.ld.db.FeatureAdd(h.id, ftype, status, overall)
} // func (h *machineHandler) feature(attrs attributes) error

func (h *machineHandler) softwarelist(attrs attributes) error {
	var (
		err    error
		status = attrs.get("status", "original")
	)

	if err = h.ld.db.SoftwareListStatusAdd(status); err != nil {
		return err
	}

	return h.ld.db.MachineSoftwareListAdd(h.id,
		attrs.get("tag", attrs["name"]),
		attrs["name"],
		status)
} // func (h *machineHandler) softwarelist(attrs attributes) error

// dumpStatus extracts the sha1 digest and the bad-dump flag shared by rom
// and disk elements.
func dumpStatus(attrs attributes) (string, bool) {
	return attrs["sha1"], attrs.get("status", "good") == "baddump"
} // func dumpStatus(attrs attributes) (string, bool)

func featureLevel(status string) int {
	switch status {
	case "unemulated":
		return model.StatusUnemulated
	case "imperfect":
		return model.StatusImperfect
	default:
		return model.StatusPerfect
	}
} // func featureLevel(status string) int

// dipSwitchHandler consumes one dipswitch or configuration element,
// including its locations and values. Locations are numbered in document
// order.
type dipSwitchHandler struct {
	baseHandler
	ld       *Loader
	id       int64
	isconfig bool
	bit      int
}

func newDipSwitchHandler(ld *Loader, machine int64, isconfig bool, attrs attributes) (elementHandler, error) {
	var (
		err  error
		mask int64
		h    = &dipSwitchHandler{
			ld:       ld,
			isconfig: isconfig,
		}
	)

	if mask, err = strconv.ParseInt(attrs.get("mask", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("dipswitch %s has invalid mask %q",
			attrs["name"],
			attrs["mask"])
	} else if h.id, err = ld.db.DipSwitchAdd(machine, isconfig, attrs["name"], attrs["tag"], mask); err != nil {
		return nil, err
	}

	return h, nil
} // func newDipSwitchHandler(ld *Loader, machine int64, isconfig bool, attrs attributes) (elementHandler, error)

func (h *dipSwitchHandler) startElement(name string, attrs attributes) (elementHandler, error) {
	var err error

	switch name {
	case "diplocation", "conflocation":
		var num int64

		if num, err = strconv.ParseInt(attrs.get("number", "0"), 10, 64); err != nil {
			return nil, fmt.Errorf("diplocation %s has invalid number %q",
				attrs["name"],
				attrs["number"])
		}

		err = h.ld.db.DipLocationAdd(h.id, h.bit, attrs["name"], num,
			attrs.get("inverted", "no") == "yes")
		h.bit++
		return nil, err
	case "dipvalue", "confsetting":
		var value int64

		if value, err = strconv.ParseInt(attrs.get("value", "0"), 10, 64); err != nil {
			return nil, fmt.Errorf("dipvalue %s has invalid value %q",
				attrs["name"],
				attrs["value"])
		}

		return nil, h.ld.db.DipValueAdd(h.id, attrs["name"], value,
			attrs.get("default", "no") == "yes")
	}

	return nil, nil
} // func (h *dipSwitchHandler) startElement(name string, attrs attributes) (elementHandler, error)

// slotHandler consumes one slot element. Options reference their card device
// by short name; resolution happens at finalise.
type slotHandler struct {
	baseHandler
	ld *Loader
	id int64
}

func newSlotHandler(ld *Loader, machine int64, attrs attributes) (elementHandler, error) {
	var (
		err error
		h   = &slotHandler{ld: ld}
	)

	if h.id, err = ld.db.SlotAdd(machine, attrs["name"]); err != nil {
		return nil, err
	}

	return h, nil
} // func newSlotHandler(ld *Loader, machine int64, attrs attributes) (elementHandler, error)

func (h *slotHandler) startElement(name string, attrs attributes) (elementHandler, error) {
	if name != "slotoption" {
		return nil, nil
	}

	var (
		err error
		opt int64
	)

	if opt, err = h.ld.db.SlotOptionAdd(h.id, attrs["devname"], attrs["name"]); err != nil {
		return nil, err
	} else if attrs.get("default", "no") == "yes" {
		return nil, h.ld.db.SlotDefaultAdd(h.id, opt)
	}

	return nil, nil
} // func (h *slotHandler) startElement(name string, attrs attributes) (elementHandler, error)

// ramOptionHandler collects a ramoption element, whose size is character
// data rather than an attribute.
type ramOptionHandler struct {
	textAccumulator
	name      string
	isdefault bool
}

func newRAMOptionHandler(attrs attributes) *ramOptionHandler {
	return &ramOptionHandler{
		name:      attrs["name"],
		isdefault: attrs.get("default", "no") == "1" || attrs.get("default", "no") == "yes",
	}
} // func newRAMOptionHandler(attrs attributes) *ramOptionHandler

func (r *ramOptionHandler) insert(ld *Loader, machine int64) error {
	var (
		err  error
		size int64
	)

	if size, err = strconv.ParseInt(r.text(), 10, 64); err != nil {
		return fmt.Errorf("ramoption %s has invalid size %q",
			r.name,
			r.text())
	} else if err = ld.db.RAMOptionAdd(machine, r.name, size); err != nil {
		return err
	} else if r.isdefault {
		return ld.db.RAMDefaultAdd(machine, size)
	}

	return nil
} // func (r *ramOptionHandler) insert(ld *Loader, machine int64) error
