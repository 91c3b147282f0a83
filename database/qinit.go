// /home/krylon/go/src/github.com/blicero/minimaws/database/qinit.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-07-19 15:31:28 krylon>

package database

// The schema is kept as data so that prepareForLoad can tear down and
// rebuild arbitrary prior databases by walking sqlite_master, without
// embedding table knowledge in code.
//
// Rows referencing other machines or software items by short name cannot be
// resolved while the referent may not have been loaded yet; those references
// are staged in the temp_* tables and joined into their permanent form by
// FinaliseLoad.

var initQueries = []string{
	`
CREATE TABLE sourcefile (
    id          INTEGER PRIMARY KEY,
    filename    TEXT NOT NULL,
    UNIQUE (filename ASC)
)
`,
	`
CREATE TABLE machine (
    id          INTEGER PRIMARY KEY,
    shortname   TEXT NOT NULL,
    description TEXT NOT NULL,
    sourcefile  INTEGER NOT NULL,
    isdevice    INTEGER NOT NULL,
    runnable    INTEGER NOT NULL,
    FOREIGN KEY (sourcefile) REFERENCES sourcefile (id),
    UNIQUE (shortname ASC)
)
`,
	`
CREATE TABLE system (
    id           INTEGER PRIMARY KEY,
    year         TEXT NOT NULL,
    manufacturer TEXT NOT NULL,
    FOREIGN KEY (id) REFERENCES machine (id)
)
`,
	`
CREATE TABLE cloneof (
    id      INTEGER PRIMARY KEY,
    parent  TEXT NOT NULL,
    FOREIGN KEY (id) REFERENCES machine (id)
)
`,
	`
CREATE TABLE romof (
    id      INTEGER PRIMARY KEY,
    parent  TEXT NOT NULL,
    FOREIGN KEY (id) REFERENCES machine (id)
)
`,
	`
CREATE TABLE biosset (
    id          INTEGER PRIMARY KEY,
    machine     INTEGER NOT NULL,
    name        TEXT NOT NULL,
    description TEXT NOT NULL,
    FOREIGN KEY (machine) REFERENCES machine (id),
    UNIQUE (machine ASC, name ASC)
)
`,
	`
CREATE TABLE biossetdefault (
    id  INTEGER PRIMARY KEY,
    FOREIGN KEY (id) REFERENCES biosset (id)
)
`,
	`
CREATE TABLE devicereference (
    id      INTEGER PRIMARY KEY,
    machine INTEGER NOT NULL,
    device  INTEGER,
    name    TEXT NOT NULL,
    FOREIGN KEY (machine) REFERENCES machine (id),
    FOREIGN KEY (device) REFERENCES machine (id)
)
`,
	`
CREATE TABLE dipswitch (
    id          INTEGER PRIMARY KEY,
    machine     INTEGER NOT NULL,
    isconfig    INTEGER NOT NULL,
    name        TEXT NOT NULL,
    tag         TEXT NOT NULL,
    mask        INTEGER NOT NULL,
    FOREIGN KEY (machine) REFERENCES machine (id)
)
`,
	`
CREATE TABLE diplocation (
    id          INTEGER PRIMARY KEY,
    dipswitch   INTEGER NOT NULL,
    bit         INTEGER NOT NULL,
    name        TEXT NOT NULL,
    num         INTEGER NOT NULL,
    inverted    INTEGER NOT NULL,
    FOREIGN KEY (dipswitch) REFERENCES dipswitch (id)
)
`,
	`
CREATE TABLE dipvalue (
    id          INTEGER PRIMARY KEY,
    dipswitch   INTEGER NOT NULL,
    name        TEXT NOT NULL,
    value       INTEGER NOT NULL,
    isdefault   INTEGER NOT NULL,
    FOREIGN KEY (dipswitch) REFERENCES dipswitch (id)
)
`,
	`
CREATE TABLE featuretype (
    id      INTEGER PRIMARY KEY,
    name    TEXT NOT NULL,
    UNIQUE (name ASC)
)
`,
	`
CREATE TABLE feature (
    id          INTEGER PRIMARY KEY,
    machine     INTEGER NOT NULL,
    featuretype INTEGER NOT NULL,
    status      INTEGER NOT NULL,
    overall     INTEGER NOT NULL,
    FOREIGN KEY (machine) REFERENCES machine (id),
    FOREIGN KEY (featuretype) REFERENCES featuretype (id),
    UNIQUE (machine ASC, featuretype ASC)
)
`,
	`
CREATE TABLE slot (
    id      INTEGER PRIMARY KEY,
    machine INTEGER NOT NULL,
    name    TEXT NOT NULL,
    FOREIGN KEY (machine) REFERENCES machine (id),
    UNIQUE (machine ASC, name ASC)
)
`,
	`
CREATE TABLE slotoption (
    id      INTEGER PRIMARY KEY,
    slot    INTEGER NOT NULL,
    device  INTEGER,
    devname TEXT NOT NULL,
    name    TEXT NOT NULL,
    FOREIGN KEY (slot) REFERENCES slot (id),
    FOREIGN KEY (device) REFERENCES machine (id),
    UNIQUE (slot ASC, name ASC)
)
`,
	`
CREATE TABLE slotdefault (
    id          INTEGER PRIMARY KEY,
    slotoption  INTEGER NOT NULL,
    FOREIGN KEY (id) REFERENCES slot (id),
    FOREIGN KEY (slotoption) REFERENCES slotoption (id)
)
`,
	`
CREATE TABLE ramoption (
    id      INTEGER PRIMARY KEY,
    machine INTEGER NOT NULL,
    name    TEXT NOT NULL,
    size    INTEGER NOT NULL,
    FOREIGN KEY (machine) REFERENCES machine (id),
    UNIQUE (machine ASC, name ASC)
)
`,
	`
CREATE TABLE ramdefault (
    id      INTEGER PRIMARY KEY,
    size    INTEGER NOT NULL,
    FOREIGN KEY (id) REFERENCES machine (id)
)
`,
	`
CREATE TABLE machinesoftwareliststatustype (
    id      INTEGER PRIMARY KEY,
    value   TEXT NOT NULL,
    UNIQUE (value ASC)
)
`,
	`
CREATE TABLE machinesoftwarelist (
    id           INTEGER PRIMARY KEY,
    machine      INTEGER NOT NULL,
    softwarelist INTEGER NOT NULL,
    tag          TEXT NOT NULL,
    status       INTEGER NOT NULL,
    FOREIGN KEY (machine) REFERENCES machine (id),
    FOREIGN KEY (softwarelist) REFERENCES softwarelist (id),
    FOREIGN KEY (status) REFERENCES machinesoftwareliststatustype (id),
    UNIQUE (machine ASC, tag ASC)
)
`,
	`
CREATE TABLE rom (
    id      INTEGER PRIMARY KEY,
    crc     INTEGER NOT NULL,
    sha1    TEXT NOT NULL,
    UNIQUE (crc ASC, sha1 ASC)
)
`,
	`
CREATE TABLE romdump (
    id      INTEGER PRIMARY KEY,
    machine INTEGER NOT NULL,
    rom     INTEGER NOT NULL,
    name    TEXT NOT NULL,
    bad     INTEGER NOT NULL,
    FOREIGN KEY (machine) REFERENCES machine (id),
    FOREIGN KEY (rom) REFERENCES rom (id),
    UNIQUE (machine ASC, rom ASC, name ASC)
)
`,
	`
CREATE TABLE disk (
    id      INTEGER PRIMARY KEY,
    sha1    TEXT NOT NULL,
    UNIQUE (sha1 ASC)
)
`,
	`
CREATE TABLE diskdump (
    id      INTEGER PRIMARY KEY,
    machine INTEGER NOT NULL,
    disk    INTEGER NOT NULL,
    name    TEXT NOT NULL,
    bad     INTEGER NOT NULL,
    FOREIGN KEY (machine) REFERENCES machine (id),
    FOREIGN KEY (disk) REFERENCES disk (id),
    UNIQUE (machine ASC, disk ASC, name ASC)
)
`,
	`
CREATE TABLE softwarelist (
    id          INTEGER PRIMARY KEY,
    shortname   TEXT NOT NULL,
    description TEXT NOT NULL,
    UNIQUE (shortname ASC)
)
`,
	`
CREATE TABLE software (
    id              INTEGER PRIMARY KEY,
    softwarelist    INTEGER NOT NULL,
    shortname       TEXT NOT NULL,
    description     TEXT NOT NULL,
    year            TEXT NOT NULL,
    publisher       TEXT NOT NULL,
    supported       INTEGER NOT NULL,
    FOREIGN KEY (softwarelist) REFERENCES softwarelist (id),
    UNIQUE (softwarelist ASC, shortname ASC)
)
`,
	`
CREATE TABLE softwarecloneof (
    id      INTEGER PRIMARY KEY,
    parent  INTEGER,
    FOREIGN KEY (id) REFERENCES software (id),
    FOREIGN KEY (parent) REFERENCES software (id)
)
`,
	`
CREATE TABLE softwareinfotype (
    id      INTEGER PRIMARY KEY,
    name    TEXT NOT NULL,
    UNIQUE (name ASC)
)
`,
	`
CREATE TABLE softwareinfo (
    id          INTEGER PRIMARY KEY,
    software    INTEGER NOT NULL,
    infotype    INTEGER NOT NULL,
    value       TEXT NOT NULL,
    FOREIGN KEY (software) REFERENCES software (id),
    FOREIGN KEY (infotype) REFERENCES softwareinfotype (id)
)
`,
	`
CREATE TABLE softwaresharedfeattype (
    id      INTEGER PRIMARY KEY,
    name    TEXT NOT NULL,
    UNIQUE (name ASC)
)
`,
	`
CREATE TABLE softwaresharedfeat (
    id              INTEGER PRIMARY KEY,
    software        INTEGER NOT NULL,
    sharedfeattype  INTEGER NOT NULL,
    value           TEXT NOT NULL,
    FOREIGN KEY (software) REFERENCES software (id),
    FOREIGN KEY (sharedfeattype) REFERENCES softwaresharedfeattype (id),
    UNIQUE (software ASC, sharedfeattype ASC)
)
`,
	`
CREATE TABLE softwarepart (
    id          INTEGER PRIMARY KEY,
    software    INTEGER NOT NULL,
    shortname   TEXT NOT NULL,
    interface   TEXT NOT NULL,
    FOREIGN KEY (software) REFERENCES software (id),
    UNIQUE (software ASC, shortname ASC)
)
`,
	`
CREATE TABLE softwarepartfeaturetype (
    id      INTEGER PRIMARY KEY,
    name    TEXT NOT NULL,
    UNIQUE (name ASC)
)
`,
	`
CREATE TABLE softwarepartfeature (
    id          INTEGER PRIMARY KEY,
    part        INTEGER NOT NULL,
    featuretype INTEGER NOT NULL,
    value       TEXT NOT NULL,
    FOREIGN KEY (part) REFERENCES softwarepart (id),
    FOREIGN KEY (featuretype) REFERENCES softwarepartfeaturetype (id),
    UNIQUE (part ASC, featuretype ASC)
)
`,
	`
CREATE TABLE softwareromdump (
    id      INTEGER PRIMARY KEY,
    part    INTEGER NOT NULL,
    rom     INTEGER NOT NULL,
    name    TEXT NOT NULL,
    bad     INTEGER NOT NULL,
    FOREIGN KEY (part) REFERENCES softwarepart (id),
    FOREIGN KEY (rom) REFERENCES rom (id),
    UNIQUE (part ASC, rom ASC, name ASC)
)
`,
	`
CREATE TABLE softwarediskdump (
    id      INTEGER PRIMARY KEY,
    part    INTEGER NOT NULL,
    disk    INTEGER NOT NULL,
    name    TEXT NOT NULL,
    bad     INTEGER NOT NULL,
    FOREIGN KEY (part) REFERENCES softwarepart (id),
    FOREIGN KEY (disk) REFERENCES disk (id),
    UNIQUE (part ASC, disk ASC, name ASC)
)
`,
}

// Secondary indexes are dropped before a load and recreated after finalise
// to speed up the bulk insert.
var indexQueries = []string{
	"CREATE INDEX machine_isdevice_shortname ON machine (isdevice ASC, shortname ASC)",
	"CREATE INDEX machine_isdevice_description ON machine (isdevice ASC, description ASC)",
	"CREATE INDEX machine_runnable_shortname ON machine (runnable ASC, shortname ASC)",
	"CREATE INDEX machine_runnable_description ON machine (runnable ASC, description ASC)",
	"CREATE INDEX machine_sourcefile ON machine (sourcefile ASC)",
	"CREATE INDEX system_year ON system (year ASC)",
	"CREATE INDEX system_manufacturer ON system (manufacturer ASC)",
	"CREATE INDEX cloneof_parent ON cloneof (parent ASC)",
	"CREATE INDEX romof_parent ON romof (parent ASC)",
	"CREATE INDEX biosset_machine ON biosset (machine ASC)",
	"CREATE INDEX devicereference_machine ON devicereference (machine ASC)",
	"CREATE INDEX devicereference_device ON devicereference (device ASC)",
	"CREATE INDEX dipswitch_machine_isconfig ON dipswitch (machine ASC, isconfig ASC)",
	"CREATE INDEX slot_machine ON slot (machine ASC)",
	"CREATE INDEX slotoption_device ON slotoption (device ASC)",
	"CREATE INDEX ramoption_machine ON ramoption (machine ASC)",
	"CREATE INDEX machinesoftwarelist_machine ON machinesoftwarelist (machine ASC)",
	"CREATE INDEX machinesoftwarelist_softwarelist ON machinesoftwarelist (softwarelist ASC)",
	"CREATE INDEX romdump_machine ON romdump (machine ASC)",
	"CREATE INDEX romdump_rom ON romdump (rom ASC)",
	"CREATE INDEX diskdump_machine ON diskdump (machine ASC)",
	"CREATE INDEX diskdump_disk ON diskdump (disk ASC)",
	"CREATE INDEX software_softwarelist ON software (softwarelist ASC)",
	"CREATE INDEX softwarecloneof_parent ON softwarecloneof (parent ASC)",
	"CREATE INDEX softwareinfo_software ON softwareinfo (software ASC)",
	"CREATE INDEX softwaresharedfeat_software ON softwaresharedfeat (software ASC)",
	"CREATE INDEX softwarepart_software ON softwarepart (software ASC)",
	"CREATE INDEX softwarepartfeature_part ON softwarepartfeature (part ASC)",
	"CREATE INDEX softwareromdump_part ON softwareromdump (part ASC)",
	"CREATE INDEX softwareromdump_rom ON softwareromdump (rom ASC)",
	"CREATE INDEX softwarediskdump_part ON softwarediskdump (part ASC)",
	"CREATE INDEX softwarediskdump_disk ON softwarediskdump (disk ASC)",
}

var dropIndexQueries = []string{
	"DROP INDEX IF EXISTS machine_isdevice_shortname",
	"DROP INDEX IF EXISTS machine_isdevice_description",
	"DROP INDEX IF EXISTS machine_runnable_shortname",
	"DROP INDEX IF EXISTS machine_runnable_description",
	"DROP INDEX IF EXISTS machine_sourcefile",
	"DROP INDEX IF EXISTS system_year",
	"DROP INDEX IF EXISTS system_manufacturer",
	"DROP INDEX IF EXISTS cloneof_parent",
	"DROP INDEX IF EXISTS romof_parent",
	"DROP INDEX IF EXISTS biosset_machine",
	"DROP INDEX IF EXISTS devicereference_machine",
	"DROP INDEX IF EXISTS devicereference_device",
	"DROP INDEX IF EXISTS dipswitch_machine_isconfig",
	"DROP INDEX IF EXISTS slot_machine",
	"DROP INDEX IF EXISTS slotoption_device",
	"DROP INDEX IF EXISTS ramoption_machine",
	"DROP INDEX IF EXISTS machinesoftwarelist_machine",
	"DROP INDEX IF EXISTS machinesoftwarelist_softwarelist",
	"DROP INDEX IF EXISTS romdump_machine",
	"DROP INDEX IF EXISTS romdump_rom",
	"DROP INDEX IF EXISTS diskdump_machine",
	"DROP INDEX IF EXISTS diskdump_disk",
	"DROP INDEX IF EXISTS software_softwarelist",
	"DROP INDEX IF EXISTS softwarecloneof_parent",
	"DROP INDEX IF EXISTS softwareinfo_software",
	"DROP INDEX IF EXISTS softwaresharedfeat_software",
	"DROP INDEX IF EXISTS softwarepart_software",
	"DROP INDEX IF EXISTS softwarepartfeature_part",
	"DROP INDEX IF EXISTS softwareromdump_part",
	"DROP INDEX IF EXISTS softwareromdump_rom",
	"DROP INDEX IF EXISTS softwarediskdump_part",
	"DROP INDEX IF EXISTS softwarediskdump_disk",
}

// The staging tables hold by-name references until FinaliseLoad resolves
// them. They must not survive past finalise.
var tempTableQueries = []string{
	"CREATE TEMPORARY TABLE temp_devicereference (id INTEGER PRIMARY KEY, machine INTEGER NOT NULL, device TEXT NOT NULL, UNIQUE (machine, device))",
	"CREATE TEMPORARY TABLE temp_slotoption (id INTEGER PRIMARY KEY, slot INTEGER NOT NULL, device TEXT NOT NULL, name TEXT NOT NULL)",
	"CREATE TEMPORARY TABLE temp_slotdefault (id INTEGER PRIMARY KEY, slotoption INTEGER NOT NULL)",
	"CREATE TEMPORARY TABLE temp_softwarecloneof (id INTEGER PRIMARY KEY, softwarelist INTEGER NOT NULL, parent TEXT NOT NULL)",
}

var dropTempTableQueries = []string{
	"DROP TABLE IF EXISTS temp_devicereference",
	"DROP TABLE IF EXISTS temp_slotoption",
	"DROP TABLE IF EXISTS temp_slotdefault",
	"DROP TABLE IF EXISTS temp_softwarecloneof",
}
