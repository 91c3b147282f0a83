// /home/krylon/go/src/github.com/blicero/minimaws/ingest/software.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-14 20:31:58 krylon>

package ingest

import (
	"fmt"
	"strconv"

	"github.com/blicero/minimaws/model"
)

// softwareListHandler consumes one software list file.
type softwareListHandler struct {
	baseHandler
	ld *Loader
	id int64
}

func (h *softwareListHandler) startElement(name string, attrs attributes) (elementHandler, error) {
	var err error

	if h.id == 0 {
		// Root element.
		if attrs["name"] == "" {
			return nil, fmt.Errorf("softwarelist element without a name attribute")
		} else if h.id, err = h.ld.db.SoftwareListAdd(attrs["name"], attrs["description"]); err != nil {
			return nil, err
		}

		return nil, nil
	}

	if name == "software" {
		return newSoftwareHandler(h.ld, h.id, attrs)
	}

	return nil, nil
} // func (h *softwareListHandler) startElement(name string, attrs attributes) (elementHandler, error)

func (h *softwareListHandler) childDone(name string, _ elementHandler) error {
	if name == "software" {
		return h.ld.entityDone()
	}

	return nil
} // func (h *softwareListHandler) childDone(name string, child elementHandler) error

// softwareHandler assembles one software item. The row is inserted once
// description, year, and publisher have all been seen.
type softwareHandler struct {
	baseHandler
	ld          *Loader
	list        int64
	shortname   string
	cloneof     string
	supported   int
	description string
	year        string
	id          int64
}

func newSoftwareHandler(ld *Loader, list int64, attrs attributes) (elementHandler, error) {
	var h = &softwareHandler{
		ld:        ld,
		list:      list,
		shortname: attrs["name"],
		cloneof:   attrs["cloneof"],
	}

	if h.shortname == "" {
		return nil, fmt.Errorf("software element without a name attribute")
	}

	switch attrs.get("supported", "yes") {
	case "partial":
		h.supported = model.SupportPartial
	case "no":
		h.supported = model.SupportNo
	default:
		h.supported = model.SupportYes
	}

	return h, nil
} // func newSoftwareHandler(ld *Loader, list int64, attrs attributes) (elementHandler, error)

func (h *softwareHandler) startElement(name string, attrs attributes) (elementHandler, error) {
	switch name {
	case "description", "year", "publisher":
		return new(textAccumulator), nil
	case "info", "sharedfeat", "part":
		if h.id == 0 {
			return nil, fmt.Errorf("software %s: %s element before publisher",
				h.shortname,
				name)
		}
	default:
		return nil, nil
	}

	switch name {
	case "info":
		return nil, h.info(attrs)
	case "sharedfeat":
		return nil, h.sharedfeat(attrs)
	default:
		return newPartHandler(h.ld, h.id, attrs)
	}
} // func (h *softwareHandler) startElement(name string, attrs attributes) (elementHandler, error)

func (h *softwareHandler) childDone(name string, child elementHandler) error {
	var err error

	switch name {
	case "description":
		h.description = child.(*textAccumulator).text()
	case "year":
		h.year = child.(*textAccumulator).text()
	case "publisher":
		if h.id != 0 {
			return nil
		}

		if h.id, err = h.ld.db.SoftwareAdd(h.list, h.shortname, h.description,
			h.year, child.(*textAccumulator).text(), h.supported); err != nil {
			return err
		}

		if h.cloneof != "" {
			return h.ld.db.SoftwareCloneofAdd(h.id, h.list, h.cloneof)
		}
	}

	return nil
} // func (h *softwareHandler) childDone(name string, child elementHandler) error

func (h *softwareHandler) info(attrs attributes) error {
	var err error

	if err = h.ld.db.SoftwareInfoTypeAdd(attrs["name"]); err != nil {
		return err
	}

	return h.ld.db.SoftwareInfoAdd(h.id, attrs["name"], attrs["value"])
} // func (h *softwareHandler) info(attrs attributes) error

func (h *softwareHandler) sharedfeat(attrs attributes) error {
	var err error

	if err = h.ld.db.SharedFeatTypeAdd(attrs["name"]); err != nil {
		return err
	}

	return h.ld.db.SharedFeatAdd(h.id, attrs["name"], attrs["value"])
} // func (h *softwareHandler) sharedfeat(attrs attributes) error

// partHandler consumes one media part, including its dump areas.
type partHandler struct {
	baseHandler
	ld *Loader
	id int64
}

func newPartHandler(ld *Loader, software int64, attrs attributes) (elementHandler, error) {
	var (
		err error
		h   = &partHandler{ld: ld}
	)

	if h.id, err = ld.db.SoftwarePartAdd(software, attrs["name"], attrs["interface"]); err != nil {
		return nil, err
	}

	return h, nil
} // func newPartHandler(ld *Loader, software int64, attrs attributes) (elementHandler, error)

func (h *partHandler) startElement(name string, attrs attributes) (elementHandler, error) {
	switch name {
	case "feature":
		var err error

		if err = h.ld.db.PartFeatureTypeAdd(attrs["name"]); err != nil {
			return nil, err
		}

		return nil, h.ld.db.PartFeatureAdd(h.id, attrs["name"], attrs["value"])
	case "dataarea":
		return &areaHandler{ld: h.ld, part: h.id}, nil
	case "diskarea":
		return &areaHandler{ld: h.ld, part: h.id, disk: true}, nil
	}

	return nil, nil
} // func (h *partHandler) startElement(name string, attrs attributes) (elementHandler, error)

// areaHandler consumes the rom or disk rows of one dump area.
type areaHandler struct {
	baseHandler
	ld   *Loader
	part int64
	disk bool
}

func (h *areaHandler) startElement(name string, attrs attributes) (elementHandler, error) {
	var (
		err       error
		sha1, bad = dumpStatus(attrs)
	)

	switch {
	case h.disk && name == "disk":
		if sha1 == "" {
			return nil, nil
		} else if err = h.ld.db.DiskAdd(sha1); err != nil {
			return nil, err
		}

		return nil, h.ld.db.SoftwareDiskDumpAdd(h.part, attrs["name"], sha1, bad)
	case !h.disk && name == "rom":
		var crc uint64

		if attrs["crc"] == "" || sha1 == "" {
			return nil, nil
		} else if crc, err = strconv.ParseUint(attrs["crc"], 16, 32); err != nil {
			return nil, fmt.Errorf("rom %s has invalid crc %q",
				attrs["name"],
				attrs["crc"])
		}

		if err = h.ld.db.RomAdd(uint32(crc), sha1); err != nil {
			return nil, err
		}

		return nil, h.ld.db.SoftwareRomDumpAdd(h.part, attrs["name"], uint32(crc), sha1, bad)
	}

	return nil, nil
} // func (h *areaHandler) startElement(name string, attrs attributes) (elementHandler, error)
