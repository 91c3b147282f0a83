// /home/krylon/go/src/github.com/blicero/minimaws/model/model.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-07-12 17:21:09 krylon>

// Package model provides the data types used across the application.
package model

import "fmt"

// Emulation status values for feature flags, and support levels for
// software items.
const (
	StatusPerfect    = 0
	StatusImperfect  = 1
	StatusUnemulated = 2

	SupportYes     = 0
	SupportPartial = 1
	SupportNo      = 2
)

// Machine is a hardware definition from the machine catalog.
type Machine struct {
	ID           int64
	Shortname    string
	Description  string
	Sourcefile   string
	IsDevice     bool
	Runnable     bool
	Year         string
	Manufacturer string
	Cloneof      string
	Romof        string
}

func (m *Machine) String() string {
	return fmt.Sprintf("{ ID: %d, Shortname: %q, Description: %q, Sourcefile: %q }",
		m.ID,
		m.Shortname,
		m.Description,
		m.Sourcefile)
} // func (m *Machine) String() string

// MachineBrief is the abbreviated form used in listings and cross-reference
// tables. Known is false when the machine is referenced by name only and no
// row for it exists.
type MachineBrief struct {
	Shortname   string
	Description string
	Sourcefile  string
	Known       bool
}

// Clone is one row of the listclones output.
type Clone struct {
	Shortname string
	Parent    string
}

// Brother is one row of the listbrothers output. Parent is empty for
// machines that are not clones.
type Brother struct {
	Sourcefile string
	Shortname  string
	Parent     string
}

// Sourcefile is an emulator source file and the number of machines defined
// in it.
type Sourcefile struct {
	ID       int64
	Filename string
	Machines int
}

// BiosSet is a named BIOS option of a machine.
type BiosSet struct {
	Name        string
	Description string
	IsDefault   bool
}

// FeatureFlag is an emulation-quality annotation on a machine.
type FeatureFlag struct {
	Feature string
	Status  int
	Overall int
}

// RAMOption is a named RAM size of a machine.
type RAMOption struct {
	Name      string
	Size      int64
	IsDefault bool
}

// SlotOption is one selectable card in a machine slot. Device is the short
// name of the card machine; Description is empty when no machine of that
// name was loaded.
type SlotOption struct {
	Slot        string
	Option      string
	Device      string
	Description string
}

// SlotDefault names the default option of a slot.
type SlotDefault struct {
	Slot   string
	Option string
}

// CompatSlot describes a slot of some machine that accepts a given device.
type CompatSlot struct {
	Shortname   string
	Description string
	Slot        string
	Option      string
	Sourcefile  string
}

// SoftwareList is a named collection of software items, with support-level
// counts aggregated over its members.
type SoftwareList struct {
	ID                 int64
	Shortname          string
	Description        string
	Total              int
	Supported          int
	PartiallySupported int
	Unsupported        int
}

// MachineSoftwareList is a software list attached to a machine via a tagged
// slot.
type MachineSoftwareList struct {
	Tag    string
	Status string
	SoftwareList
}

// Software is a software title in a list.
type Software struct {
	ID          int64
	Shortname   string
	Description string
	Year        string
	Publisher   string
	Supported   int
	Cloneof     string
	Parts       int
}

// SupportedString renders the support level for display.
func (s Software) SupportedString() string {
	switch s.Supported {
	case SupportYes:
		return "Yes"
	case SupportPartial:
		return "Partial"
	default:
		return "No"
	}
} // func (s Software) SupportedString() string

// SoftwareInfo is a free-form key/value annotation on a software item.
type SoftwareInfo struct {
	Name  string
	Value string
}

// SoftwarePart is a concrete media part of a software item. PartID is the
// display identifier promoted from the part_id feature, if present.
type SoftwarePart struct {
	ID        int64
	Shortname string
	Interface string
	PartID    string
}

// PartDump is one rom or disk image belonging to a software part.
type PartDump struct {
	Name string
	CRC  uint32
	SHA1 string
	Bad  bool
	Disk bool
}

// RomDump attaches a rom or disk image to a machine under a label.
type RomDump struct {
	Shortname   string
	Description string
	Label       string
	Bad         bool
}

// SoftwareRomDump attaches a rom or disk image to a software part.
type SoftwareRomDump struct {
	List            string
	ListDescription string
	Software        string
	SoftwareDesc    string
	Part            string
	PartID          string
	Label           string
	Bad             bool
}
