// /home/krylon/go/src/github.com/blicero/minimaws/database/qdb.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-07-26 18:54:03 krylon>

package database

import "github.com/blicero/minimaws/database/query"

// Pattern-taking queries use GLOB, never LIKE; the *All variants are the
// unfiltered forms emitted when no pattern was given.

var dbQueries = map[query.ID]string{
	// Ingestion
	query.SourcefileAdd: "INSERT OR IGNORE INTO sourcefile (filename) VALUES (?)",
	query.MachineAdd: `
INSERT INTO machine (shortname, description, sourcefile, isdevice, runnable)
SELECT ?, ?, id, ?, ?
FROM sourcefile
WHERE filename = ?
RETURNING id
`,
	query.SystemAdd:  "INSERT INTO system (id, year, manufacturer) VALUES (?, ?, ?)",
	query.CloneofAdd: "INSERT INTO cloneof (id, parent) VALUES (?, ?)",
	query.RomofAdd:   "INSERT INTO romof (id, parent) VALUES (?, ?)",
	query.BiosSetAdd: `
INSERT INTO biosset (machine, name, description)
VALUES (?, ?, ?)
RETURNING id
`,
	query.BiosSetDefaultAdd: "INSERT INTO biossetdefault (id) VALUES (?)",
	query.DeviceRefAdd:      "INSERT OR IGNORE INTO temp_devicereference (machine, device) VALUES (?, ?)",
	query.DipSwitchAdd: `
INSERT INTO dipswitch (machine, isconfig, name, tag, mask)
VALUES (?, ?, ?, ?, ?)
RETURNING id
`,
	query.DipLocationAdd: "INSERT INTO diplocation (dipswitch, bit, name, num, inverted) VALUES (?, ?, ?, ?, ?)",
	query.DipValueAdd:    "INSERT INTO dipvalue (dipswitch, name, value, isdefault) VALUES (?, ?, ?, ?)",
	query.FeatureTypeAdd: "INSERT OR IGNORE INTO featuretype (name) VALUES (?)",
	query.FeatureAdd: `
INSERT INTO feature (machine, featuretype, status, overall)
SELECT ?, id, ?, ?
FROM featuretype
WHERE name = ?
`,
	query.SlotAdd: "INSERT INTO slot (machine, name) VALUES (?, ?) RETURNING id",
	query.SlotOptionAdd: `
INSERT INTO temp_slotoption (slot, device, name)
VALUES (?, ?, ?)
RETURNING id
`,
	query.SlotDefaultAdd:        "INSERT INTO temp_slotdefault (id, slotoption) VALUES (?, ?)",
	query.RAMOptionAdd:          "INSERT INTO ramoption (machine, name, size) VALUES (?, ?, ?)",
	query.RAMDefaultAdd:         "INSERT INTO ramdefault (id, size) VALUES (?, ?)",
	query.SoftwareListStatusAdd: "INSERT OR IGNORE INTO machinesoftwareliststatustype (value) VALUES (?)",
	query.MachineSoftwareListAdd: `
INSERT INTO machinesoftwarelist (machine, softwarelist, tag, status)
SELECT ?, softwarelist.id, ?, machinesoftwareliststatustype.id
FROM softwarelist JOIN machinesoftwareliststatustype
WHERE softwarelist.shortname = ?
  AND machinesoftwareliststatustype.value = ?
`,
	query.RomAdd: "INSERT OR IGNORE INTO rom (crc, sha1) VALUES (?, ?)",
	query.RomDumpAdd: `
INSERT INTO romdump (machine, rom, name, bad)
SELECT ?, id, ?, ?
FROM rom
WHERE crc = ? AND sha1 = ?
`,
	query.DiskAdd: "INSERT OR IGNORE INTO disk (sha1) VALUES (?)",
	query.DiskDumpAdd: `
INSERT INTO diskdump (machine, disk, name, bad)
SELECT ?, id, ?, ?
FROM disk
WHERE sha1 = ?
`,
	query.SoftwareListAdd: `
INSERT INTO softwarelist (shortname, description)
VALUES (?, ?)
RETURNING id
`,
	query.SoftwareAdd: `
INSERT INTO software (softwarelist, shortname, description, year, publisher, supported)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id
`,
	query.SoftwareCloneofAdd:  "INSERT INTO temp_softwarecloneof (id, softwarelist, parent) VALUES (?, ?, ?)",
	query.SoftwareInfoTypeAdd: "INSERT OR IGNORE INTO softwareinfotype (name) VALUES (?)",
	query.SoftwareInfoAdd: `
INSERT INTO softwareinfo (software, infotype, value)
SELECT ?, id, ?
FROM softwareinfotype
WHERE name = ?
`,
	query.SharedFeatTypeAdd: "INSERT OR IGNORE INTO softwaresharedfeattype (name) VALUES (?)",
	query.SharedFeatAdd: `
INSERT INTO softwaresharedfeat (software, sharedfeattype, value)
SELECT ?, id, ?
FROM softwaresharedfeattype
WHERE name = ?
`,
	query.SoftwarePartAdd: `
INSERT INTO softwarepart (software, shortname, interface)
VALUES (?, ?, ?)
RETURNING id
`,
	query.PartFeatureTypeAdd: "INSERT OR IGNORE INTO softwarepartfeaturetype (name) VALUES (?)",
	query.PartFeatureAdd: `
INSERT INTO softwarepartfeature (part, featuretype, value)
SELECT ?, id, ?
FROM softwarepartfeaturetype
WHERE name = ?
`,
	query.SoftwareRomDumpAdd: `
INSERT INTO softwareromdump (part, rom, name, bad)
SELECT ?, id, ?, ?
FROM rom
WHERE crc = ? AND sha1 = ?
`,
	query.SoftwareDiskDumpAdd: `
INSERT INTO softwarediskdump (part, disk, name, bad)
SELECT ?, id, ?, ?
FROM disk
WHERE sha1 = ?
`,

	// Finalise: materialize integer foreign keys from the staged by-name
	// references.
	query.FinaliseDeviceRefs: `
INSERT INTO devicereference (id, machine, device, name)
SELECT temp_devicereference.id, temp_devicereference.machine, machine.id, temp_devicereference.device
FROM temp_devicereference
LEFT JOIN machine ON temp_devicereference.device = machine.shortname
`,
	query.FinaliseSlotOptions: `
INSERT INTO slotoption (id, slot, device, devname, name)
SELECT temp_slotoption.id, temp_slotoption.slot, machine.id, temp_slotoption.device, temp_slotoption.name
FROM temp_slotoption
LEFT JOIN machine ON temp_slotoption.device = machine.shortname
`,
	query.FinaliseSlotDefaults: "INSERT INTO slotdefault (id, slotoption) SELECT id, slotoption FROM temp_slotdefault",
	query.FinaliseSoftwareCloneofs: `
INSERT INTO softwarecloneof (id, parent)
SELECT temp_softwarecloneof.id, software.id
FROM temp_softwarecloneof
LEFT JOIN software
    ON temp_softwarecloneof.parent = software.shortname
   AND temp_softwarecloneof.softwarelist = software.softwarelist
`,

	// Queries
	query.SystemCount:    "SELECT COUNT(*) FROM machine WHERE isdevice = 0 AND shortname GLOB ?",
	query.SystemCountAll: "SELECT COUNT(*) FROM machine WHERE isdevice = 0",
	query.ListFull: `
SELECT shortname, description
FROM machine
WHERE isdevice = 0 AND shortname GLOB ?
ORDER BY shortname ASC
`,
	query.ListFullAll: `
SELECT shortname, description
FROM machine
WHERE isdevice = 0
ORDER BY shortname ASC
`,
	query.ListSource: `
SELECT machine.shortname, sourcefile.filename
FROM machine JOIN sourcefile ON machine.sourcefile = sourcefile.id
WHERE machine.isdevice = 0 AND machine.shortname GLOB ?
ORDER BY machine.shortname ASC
`,
	query.ListSourceAll: `
SELECT machine.shortname, sourcefile.filename
FROM machine JOIN sourcefile ON machine.sourcefile = sourcefile.id
WHERE machine.isdevice = 0
ORDER BY machine.shortname ASC
`,
	query.ListClones: `
SELECT machine.shortname, cloneof.parent
FROM machine JOIN cloneof ON machine.id = cloneof.id
WHERE machine.shortname GLOB ? OR cloneof.parent GLOB ?
ORDER BY machine.shortname ASC
`,
	query.ListClonesAll: `
SELECT machine.shortname, cloneof.parent
FROM machine JOIN cloneof ON machine.id = cloneof.id
ORDER BY machine.shortname ASC
`,
	query.ListBrothers: `
SELECT sourcefile.filename, machine.shortname, cloneof.parent
FROM machine
JOIN sourcefile ON machine.sourcefile = sourcefile.id
LEFT JOIN cloneof ON machine.id = cloneof.id
WHERE machine.isdevice = 0
  AND sourcefile.id IN (SELECT sourcefile FROM machine WHERE shortname GLOB ?)
ORDER BY machine.shortname ASC
`,
	query.ListBrothersAll: `
SELECT sourcefile.filename, machine.shortname, cloneof.parent
FROM machine
JOIN sourcefile ON machine.sourcefile = sourcefile.id
LEFT JOIN cloneof ON machine.id = cloneof.id
WHERE machine.isdevice = 0
ORDER BY machine.shortname ASC
`,
	query.MachineGetID: "SELECT id FROM machine WHERE shortname = ?",
	query.MachineGetInfo: `
SELECT
    machine.id,
    machine.description,
    machine.isdevice,
    machine.runnable,
    sourcefile.filename,
    system.year,
    system.manufacturer,
    cloneof.parent,
    romof.parent
FROM machine
JOIN sourcefile ON machine.sourcefile = sourcefile.id
LEFT JOIN system ON machine.id = system.id
LEFT JOIN cloneof ON machine.id = cloneof.id
LEFT JOIN romof ON machine.id = romof.id
WHERE machine.shortname = ?
`,
	query.MachineGetClones: `
SELECT machine.shortname, machine.description, sourcefile.filename
FROM machine
JOIN cloneof ON machine.id = cloneof.id
JOIN sourcefile ON machine.sourcefile = sourcefile.id
WHERE cloneof.parent = ?
ORDER BY machine.shortname ASC
`,
	query.DevicesReferenced: `
SELECT devicereference.name, machine.description, sourcefile.filename, machine.id IS NOT NULL
FROM devicereference
LEFT JOIN machine ON devicereference.device = machine.id
LEFT JOIN sourcefile ON machine.sourcefile = sourcefile.id
WHERE devicereference.machine = ?
ORDER BY devicereference.name ASC
`,
	query.DeviceReferences: `
SELECT machine.shortname, machine.description, sourcefile.filename
FROM machine JOIN sourcefile ON machine.sourcefile = sourcefile.id
WHERE machine.id IN (SELECT machine FROM devicereference WHERE device = ?)
ORDER BY machine.shortname ASC
`,
	query.CompatSlots: `
SELECT machine.shortname, machine.description, slot.name, slotoption.name, sourcefile.filename
FROM slotoption
JOIN slot ON slotoption.slot = slot.id
JOIN machine ON slot.machine = machine.id
JOIN sourcefile ON machine.sourcefile = sourcefile.id
WHERE slotoption.device = ?
ORDER BY machine.shortname ASC, slot.name ASC
`,
	query.BiosSetsGet: `
SELECT biosset.name, biosset.description, biossetdefault.id IS NOT NULL
FROM biosset
LEFT JOIN biossetdefault ON biosset.id = biossetdefault.id
WHERE biosset.machine = ?
ORDER BY biosset.id ASC
`,
	query.FeatureFlagsGet: `
SELECT featuretype.name, feature.status, feature.overall
FROM feature JOIN featuretype ON feature.featuretype = featuretype.id
WHERE feature.machine = ?
ORDER BY featuretype.name ASC
`,
	query.RAMOptionsGet: `
SELECT ramoption.name, ramoption.size,
       ramdefault.id IS NOT NULL AND ramdefault.size = ramoption.size
FROM ramoption
LEFT JOIN ramdefault ON ramoption.machine = ramdefault.id
WHERE ramoption.machine = ?
ORDER BY ramoption.size ASC
`,
	query.SlotCount: "SELECT COUNT(*) FROM slot WHERE machine = ?",
	query.SlotDefaultsGet: `
SELECT slot.name, slotoption.name
FROM slotdefault
JOIN slot ON slotdefault.id = slot.id
JOIN slotoption ON slotdefault.slotoption = slotoption.id
WHERE slot.machine = ?
`,
	query.SlotOptionsGet: `
SELECT slot.name, slotoption.name, slotoption.devname, machine.description
FROM slot
JOIN slotoption ON slot.id = slotoption.slot
LEFT JOIN machine ON slotoption.device = machine.id
WHERE slot.machine = ?
ORDER BY slot.name ASC, slotoption.name ASC
`,
	query.MachineSoftwareListsGet: `
SELECT
    machinesoftwarelist.tag,
    machinesoftwareliststatustype.value,
    softwarelist.shortname,
    softwarelist.description,
    COUNT(software.id),
    COUNT(CASE software.supported WHEN 0 THEN 1 ELSE NULL END),
    COUNT(CASE software.supported WHEN 1 THEN 1 ELSE NULL END),
    COUNT(CASE software.supported WHEN 2 THEN 1 ELSE NULL END)
FROM machinesoftwarelist
JOIN softwarelist ON machinesoftwarelist.softwarelist = softwarelist.id
JOIN machinesoftwareliststatustype ON machinesoftwarelist.status = machinesoftwareliststatustype.id
LEFT JOIN software ON softwarelist.id = software.softwarelist
WHERE machinesoftwarelist.machine = ?
GROUP BY machinesoftwarelist.id
ORDER BY machinesoftwarelist.tag ASC
`,
	query.SourcefileGetID: "SELECT id FROM sourcefile WHERE filename = ?",
	query.SourcefilesGet: `
SELECT sourcefile.filename, COUNT(machine.id)
FROM sourcefile LEFT JOIN machine ON sourcefile.id = machine.sourcefile
WHERE sourcefile.filename GLOB ?
GROUP BY sourcefile.id
ORDER BY sourcefile.filename ASC
`,
	query.SourcefilesGetAll: `
SELECT sourcefile.filename, COUNT(machine.id)
FROM sourcefile LEFT JOIN machine ON sourcefile.id = machine.sourcefile
GROUP BY sourcefile.id
ORDER BY sourcefile.filename ASC
`,
	query.SourcefileCount:    "SELECT COUNT(*) FROM sourcefile WHERE filename GLOB ?",
	query.SourcefileCountAll: "SELECT COUNT(*) FROM sourcefile",
	query.SourcefileMachines: `
SELECT
    machine.shortname,
    machine.description,
    machine.runnable,
    system.year,
    system.manufacturer,
    cloneof.parent
FROM machine
LEFT JOIN system ON machine.id = system.id
LEFT JOIN cloneof ON machine.id = cloneof.id
WHERE machine.sourcefile = ?
ORDER BY machine.shortname ASC
`,
	query.SoftwareListGet: `
SELECT
    softwarelist.id,
    softwarelist.shortname,
    softwarelist.description,
    COUNT(software.id),
    COUNT(CASE software.supported WHEN 0 THEN 1 ELSE NULL END),
    COUNT(CASE software.supported WHEN 1 THEN 1 ELSE NULL END),
    COUNT(CASE software.supported WHEN 2 THEN 1 ELSE NULL END)
FROM softwarelist
LEFT JOIN software ON softwarelist.id = software.softwarelist
WHERE softwarelist.shortname = ?
GROUP BY softwarelist.id
`,
	query.SoftwareListsGet: `
SELECT
    softwarelist.id,
    softwarelist.shortname,
    softwarelist.description,
    COUNT(software.id),
    COUNT(CASE software.supported WHEN 0 THEN 1 ELSE NULL END),
    COUNT(CASE software.supported WHEN 1 THEN 1 ELSE NULL END),
    COUNT(CASE software.supported WHEN 2 THEN 1 ELSE NULL END)
FROM softwarelist
LEFT JOIN software ON softwarelist.id = software.softwarelist
WHERE softwarelist.shortname GLOB ?
GROUP BY softwarelist.id
ORDER BY softwarelist.shortname ASC
`,
	query.SoftwareListsGetAll: `
SELECT
    softwarelist.id,
    softwarelist.shortname,
    softwarelist.description,
    COUNT(software.id),
    COUNT(CASE software.supported WHEN 0 THEN 1 ELSE NULL END),
    COUNT(CASE software.supported WHEN 1 THEN 1 ELSE NULL END),
    COUNT(CASE software.supported WHEN 2 THEN 1 ELSE NULL END)
FROM softwarelist
LEFT JOIN software ON softwarelist.id = software.softwarelist
GROUP BY softwarelist.id
ORDER BY softwarelist.shortname ASC
`,
	query.SoftwareListCount:    "SELECT COUNT(*) FROM softwarelist WHERE shortname GLOB ?",
	query.SoftwareListCountAll: "SELECT COUNT(*) FROM softwarelist",
	query.SoftwareListMembers: `
SELECT
    software.shortname,
    software.description,
    software.year,
    software.publisher,
    software.supported,
    parent.shortname,
    COUNT(softwarepart.id)
FROM software
LEFT JOIN softwarecloneof ON software.id = softwarecloneof.id
LEFT JOIN software AS parent ON softwarecloneof.parent = parent.id
LEFT JOIN softwarepart ON software.id = softwarepart.software
WHERE software.softwarelist = ?
GROUP BY software.id
ORDER BY software.shortname ASC
`,
	query.SoftwareGet: `
SELECT
    software.id,
    software.description,
    software.year,
    software.publisher,
    software.supported,
    parent.shortname
FROM software
LEFT JOIN softwarecloneof ON software.id = softwarecloneof.id
LEFT JOIN software AS parent ON softwarecloneof.parent = parent.id
WHERE software.softwarelist = ? AND software.shortname = ?
`,
	query.SoftwareInfoGet: `
SELECT softwareinfotype.name, softwareinfo.value
FROM softwareinfo
JOIN softwareinfotype ON softwareinfo.infotype = softwareinfotype.id
WHERE softwareinfo.software = ?
ORDER BY softwareinfotype.name ASC, softwareinfo.value ASC
`,
	query.SharedFeatGet: `
SELECT softwaresharedfeattype.name, softwaresharedfeat.value
FROM softwaresharedfeat
JOIN softwaresharedfeattype ON softwaresharedfeat.sharedfeattype = softwaresharedfeattype.id
WHERE softwaresharedfeat.software = ?
ORDER BY softwaresharedfeattype.name ASC
`,
	query.SoftwarePartsGet: `
SELECT softwarepart.id, softwarepart.shortname, softwarepart.interface, softwarepartfeature.value
FROM softwarepart
LEFT JOIN softwarepartfeature
    ON softwarepart.id = softwarepartfeature.part
   AND softwarepartfeature.featuretype =
       (SELECT id FROM softwarepartfeaturetype WHERE name = 'part_id')
WHERE softwarepart.software = ?
ORDER BY softwarepart.shortname ASC
`,
	query.PartFeaturesGet: `
SELECT softwarepartfeaturetype.name, softwarepartfeature.value
FROM softwarepartfeature
JOIN softwarepartfeaturetype ON softwarepartfeature.featuretype = softwarepartfeaturetype.id
WHERE softwarepartfeature.part = ?
ORDER BY softwarepartfeaturetype.name ASC
`,
	query.PartRomDumpsGet: `
SELECT softwareromdump.name, rom.crc, rom.sha1, softwareromdump.bad
FROM softwareromdump JOIN rom ON softwareromdump.rom = rom.id
WHERE softwareromdump.part = ?
ORDER BY softwareromdump.name ASC
`,
	query.PartDiskDumpsGet: `
SELECT softwarediskdump.name, disk.sha1, softwarediskdump.bad
FROM softwarediskdump JOIN disk ON softwarediskdump.disk = disk.id
WHERE softwarediskdump.part = ?
ORDER BY softwarediskdump.name ASC
`,
	query.RomDumpsGet: `
SELECT machine.shortname, machine.description, romdump.name, romdump.bad
FROM romdump JOIN machine ON romdump.machine = machine.id
WHERE romdump.rom = (SELECT id FROM rom WHERE crc = ? AND sha1 = ?)
ORDER BY machine.shortname ASC, romdump.name ASC
`,
	query.DiskDumpsGet: `
SELECT machine.shortname, machine.description, diskdump.name, diskdump.bad
FROM diskdump JOIN machine ON diskdump.machine = machine.id
WHERE diskdump.disk = (SELECT id FROM disk WHERE sha1 = ?)
ORDER BY machine.shortname ASC, diskdump.name ASC
`,
	query.SoftwareRomDumpsGet: `
SELECT
    softwarelist.shortname,
    softwarelist.description,
    software.shortname,
    software.description,
    softwarepart.shortname,
    softwarepartfeature.value,
    softwareromdump.name,
    softwareromdump.bad
FROM softwareromdump
JOIN softwarepart ON softwareromdump.part = softwarepart.id
JOIN software ON softwarepart.software = software.id
JOIN softwarelist ON software.softwarelist = softwarelist.id
LEFT JOIN softwarepartfeature
    ON softwarepart.id = softwarepartfeature.part
   AND softwarepartfeature.featuretype =
       (SELECT id FROM softwarepartfeaturetype WHERE name = 'part_id')
WHERE softwareromdump.rom = (SELECT id FROM rom WHERE crc = ? AND sha1 = ?)
ORDER BY softwarelist.shortname ASC, software.shortname ASC, softwarepart.shortname ASC
`,
	query.SoftwareDiskDumpsGet: `
SELECT
    softwarelist.shortname,
    softwarelist.description,
    software.shortname,
    software.description,
    softwarepart.shortname,
    softwarepartfeature.value,
    softwarediskdump.name,
    softwarediskdump.bad
FROM softwarediskdump
JOIN softwarepart ON softwarediskdump.part = softwarepart.id
JOIN software ON softwarepart.software = software.id
JOIN softwarelist ON software.softwarelist = softwarelist.id
LEFT JOIN softwarepartfeature
    ON softwarepart.id = softwarepartfeature.part
   AND softwarepartfeature.featuretype =
       (SELECT id FROM softwarepartfeaturetype WHERE name = 'part_id')
WHERE softwarediskdump.disk = (SELECT id FROM disk WHERE sha1 = ?)
ORDER BY softwarelist.shortname ASC, software.shortname ASC, softwarepart.shortname ASC
`,
}
