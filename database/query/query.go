// /home/krylon/go/src/github.com/blicero/minimaws/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-07-19 14:44:52 krylon>

// Package query provides symbolic constants to identify database queries.
package query

//go:generate stringer -type=ID

// ID represents a database query
type ID uint8

const (
	SourcefileAdd ID = iota
	MachineAdd
	SystemAdd
	CloneofAdd
	RomofAdd
	BiosSetAdd
	BiosSetDefaultAdd
	DeviceRefAdd
	DipSwitchAdd
	DipLocationAdd
	DipValueAdd
	FeatureTypeAdd
	FeatureAdd
	SlotAdd
	SlotOptionAdd
	SlotDefaultAdd
	RAMOptionAdd
	RAMDefaultAdd
	SoftwareListStatusAdd
	MachineSoftwareListAdd
	RomAdd
	RomDumpAdd
	DiskAdd
	DiskDumpAdd
	SoftwareListAdd
	SoftwareAdd
	SoftwareCloneofAdd
	SoftwareInfoTypeAdd
	SoftwareInfoAdd
	SharedFeatTypeAdd
	SharedFeatAdd
	SoftwarePartAdd
	PartFeatureTypeAdd
	PartFeatureAdd
	SoftwareRomDumpAdd
	SoftwareDiskDumpAdd
	FinaliseDeviceRefs
	FinaliseSlotOptions
	FinaliseSlotDefaults
	FinaliseSoftwareCloneofs
	SystemCount
	SystemCountAll
	ListFull
	ListFullAll
	ListSource
	ListSourceAll
	ListClones
	ListClonesAll
	ListBrothers
	ListBrothersAll
	MachineGetID
	MachineGetInfo
	MachineGetClones
	DevicesReferenced
	DeviceReferences
	CompatSlots
	BiosSetsGet
	FeatureFlagsGet
	RAMOptionsGet
	SlotCount
	SlotDefaultsGet
	SlotOptionsGet
	MachineSoftwareListsGet
	SourcefileGetID
	SourcefilesGet
	SourcefilesGetAll
	SourcefileCount
	SourcefileCountAll
	SourcefileMachines
	SoftwareListGet
	SoftwareListsGet
	SoftwareListsGetAll
	SoftwareListCount
	SoftwareListCountAll
	SoftwareListMembers
	SoftwareGet
	SoftwareInfoGet
	SharedFeatGet
	SoftwarePartsGet
	PartFeaturesGet
	PartRomDumpsGet
	PartDiskDumpsGet
	RomDumpsGet
	DiskDumpsGet
	SoftwareRomDumpsGet
	SoftwareDiskDumpsGet
)

// AllQueries returns a slice of all queries.
func AllQueries() []ID {
	var all = make([]ID, 0, int(SoftwareDiskDumpsGet)+1)

	for q := SourcefileAdd; q <= SoftwareDiskDumpsGet; q++ {
		all = append(all, q)
	}

	return all
} // func AllQueries() []ID
