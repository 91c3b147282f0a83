// /home/krylon/go/src/github.com/blicero/minimaws/database/dbquery.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-11 21:18:46 krylon>

package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/blicero/minimaws/database/query"
	"github.com/blicero/minimaws/model"
)

// stmtQueryRows prepares and executes a read query, retrying on transient
// errors. The caller owns the returned rows.
func (db *Database) stmtQueryRows(qid query.ID, args ...any) (*sql.Rows, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if rows, err = stmt.Query(args...); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot execute query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	return rows, nil
} // func (db *Database) stmtQueryRows(qid query.ID, args ...any) (*sql.Rows, error)

// stmtQueryCount runs a query expected to return a single integer.
func (db *Database) stmtQueryCount(qid query.ID, args ...any) (int64, error) {
	var (
		err  error
		rows *sql.Rows
		cnt  int64
	)

	if rows, err = db.stmtQueryRows(qid, args...); err != nil {
		return 0, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if !rows.Next() {
		return 0, fmt.Errorf("Query %s did not return a value", qid)
	} else if err = rows.Scan(&cnt); err != nil {
		db.log.Printf("[ERROR] Cannot scan count from query %s: %s\n",
			qid,
			err.Error())
		return 0, err
	}

	return cnt, nil
} // func (db *Database) stmtQueryCount(qid query.ID, args ...any) (int64, error)

// SystemCount returns the number of runnable systems matching the pattern.
// An empty pattern counts all systems.
func (db *Database) SystemCount(pattern string) (int64, error) {
	if pattern == "" {
		return db.stmtQueryCount(query.SystemCountAll)
	}

	return db.stmtQueryCount(query.SystemCount, pattern)
} // func (db *Database) SystemCount(pattern string) (int64, error)

// ListFull returns short name and description of all systems matching the
// pattern, ordered by short name. An empty pattern matches everything.
func (db *Database) ListFull(pattern string) ([]model.MachineBrief, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if pattern == "" {
		rows, err = db.stmtQueryRows(query.ListFullAll)
	} else {
		rows, err = db.stmtQueryRows(query.ListFull, pattern)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var machines = make([]model.MachineBrief, 0, 64)

	for rows.Next() {
		var m = model.MachineBrief{Known: true}

		if err = rows.Scan(&m.Shortname, &m.Description); err != nil {
			db.log.Printf("[ERROR] Error scanning row for machine: %s\n",
				err.Error())
			return nil, err
		}

		machines = append(machines, m)
	}

	return machines, nil
} // func (db *Database) ListFull(pattern string) ([]model.MachineBrief, error)

// ListSource returns short name and defining source file of all systems
// matching the pattern.
func (db *Database) ListSource(pattern string) ([]model.MachineBrief, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if pattern == "" {
		rows, err = db.stmtQueryRows(query.ListSourceAll)
	} else {
		rows, err = db.stmtQueryRows(query.ListSource, pattern)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var machines = make([]model.MachineBrief, 0, 64)

	for rows.Next() {
		var m = model.MachineBrief{Known: true}

		if err = rows.Scan(&m.Shortname, &m.Sourcefile); err != nil {
			db.log.Printf("[ERROR] Error scanning row for machine: %s\n",
				err.Error())
			return nil, err
		}

		machines = append(machines, m)
	}

	return machines, nil
} // func (db *Database) ListSource(pattern string) ([]model.MachineBrief, error)

// ListClones returns all clones whose short name or parent matches the
// pattern. An empty pattern matches all clones.
func (db *Database) ListClones(pattern string) ([]model.Clone, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if pattern == "" {
		rows, err = db.stmtQueryRows(query.ListClonesAll)
	} else {
		rows, err = db.stmtQueryRows(query.ListClones, pattern, pattern)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var clones = make([]model.Clone, 0, 64)

	for rows.Next() {
		var c model.Clone

		if err = rows.Scan(&c.Shortname, &c.Parent); err != nil {
			db.log.Printf("[ERROR] Error scanning row for clone: %s\n",
				err.Error())
			return nil, err
		}

		clones = append(clones, c)
	}

	return clones, nil
} // func (db *Database) ListClones(pattern string) ([]model.Clone, error)

// ListBrothers returns all systems defined in the same source files as the
// systems matching the pattern.
func (db *Database) ListBrothers(pattern string) ([]model.Brother, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if pattern == "" {
		rows, err = db.stmtQueryRows(query.ListBrothersAll)
	} else {
		rows, err = db.stmtQueryRows(query.ListBrothers, pattern)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var brothers = make([]model.Brother, 0, 64)

	for rows.Next() {
		var (
			b      model.Brother
			parent sql.NullString
		)

		if err = rows.Scan(&b.Sourcefile, &b.Shortname, &parent); err != nil {
			db.log.Printf("[ERROR] Error scanning row for brother: %s\n",
				err.Error())
			return nil, err
		}

		if parent.Valid {
			b.Parent = parent.String
		}

		brothers = append(brothers, b)
	}

	return brothers, nil
} // func (db *Database) ListBrothers(pattern string) ([]model.Brother, error)

// ListAffected returns all runnable systems that are defined in, or
// reference a device defined in, any source file matching one of the given
// patterns. Patterns match against the tail of the path, so "pacman.cpp"
// finds "src/mame/pacman/pacman.cpp".
func (db *Database) ListAffected(patterns ...string) ([]model.MachineBrief, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("ListAffected needs at least one pattern")
	}

	var (
		err   error
		rows  *sql.Rows
		conds = make([]string, 0, len(patterns))
		args  = make([]any, 0, len(patterns)*2)
	)

	// The source file condition depends on the number and shape of the
	// patterns, so this query is assembled ad hoc instead of living in
	// the prepared statement table.
	for _, pat := range patterns {
		if IsGlob(pat) {
			conds = append(conds, "sourcefile.filename GLOB ?")
			args = append(args, pat)
		} else {
			conds = append(conds, "(sourcefile.filename = ? OR sourcefile.filename GLOB '*/' || ?)")
			args = append(args, pat, pat)
		}
	}

	var qstr = fmt.Sprintf(`
SELECT machine.shortname, machine.description
FROM machine
WHERE machine.runnable = 1
  AND (machine.sourcefile IN (SELECT sourcefile.id FROM sourcefile WHERE %[1]s)
       OR machine.id IN (
           SELECT devicereference.machine
           FROM devicereference
           JOIN machine AS device ON devicereference.device = device.id
           JOIN sourcefile ON device.sourcefile = sourcefile.id
           WHERE %[1]s))
ORDER BY machine.shortname ASC
`,
		strings.Join(conds, " OR "))

	var allArgs = make([]any, 0, len(args)*2)
	allArgs = append(allArgs, args...)
	allArgs = append(allArgs, args...)

EXEC_QUERY:
	if rows, err = db.db.Query(qstr, allArgs...); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot execute listaffected query: %s\n",
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var machines = make([]model.MachineBrief, 0, 64)

	for rows.Next() {
		var m = model.MachineBrief{Known: true}

		if err = rows.Scan(&m.Shortname, &m.Description); err != nil {
			db.log.Printf("[ERROR] Error scanning row for machine: %s\n",
				err.Error())
			return nil, err
		}

		machines = append(machines, m)
	}

	return machines, nil
} // func (db *Database) ListAffected(patterns ...string) ([]model.MachineBrief, error)

// MachineGetID looks up a machine's surrogate key by short name. Returns 0
// if no such machine exists.
func (db *Database) MachineGetID(shortname string) (int64, error) {
	var (
		err  error
		rows *sql.Rows
		id   int64
	)

	if rows, err = db.stmtQueryRows(query.MachineGetID, shortname); err != nil {
		return 0, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if !rows.Next() {
		return 0, nil
	} else if err = rows.Scan(&id); err != nil {
		db.log.Printf("[ERROR] Error scanning ID for machine %s: %s\n",
			shortname,
			err.Error())
		return 0, err
	}

	return id, nil
} // func (db *Database) MachineGetID(shortname string) (int64, error)

// MachineGetInfo loads the full metadata of one machine by short name.
// Returns nil if no such machine exists.
func (db *Database) MachineGetInfo(shortname string) (*model.Machine, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.MachineGetInfo, shortname); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if !rows.Next() {
		return nil, nil
	}

	var (
		m                                = &model.Machine{Shortname: shortname}
		year, manufacturer, clone, romof sql.NullString
	)

	if err = rows.Scan(&m.ID, &m.Description, &m.IsDevice, &m.Runnable,
		&m.Sourcefile, &year, &manufacturer, &clone, &romof); err != nil {
		db.log.Printf("[ERROR] Error scanning row for machine %s: %s\n",
			shortname,
			err.Error())
		return nil, err
	}

	m.Year = year.String
	m.Manufacturer = manufacturer.String
	m.Cloneof = clone.String
	m.Romof = romof.String

	return m, nil
} // func (db *Database) MachineGetInfo(shortname string) (*model.Machine, error)

// MachineGetClones returns all machines that are clones of the machine with
// the given short name.
func (db *Database) MachineGetClones(shortname string) ([]model.MachineBrief, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.MachineGetClones, shortname); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var clones = make([]model.MachineBrief, 0, 8)

	for rows.Next() {
		var m = model.MachineBrief{Known: true}

		if err = rows.Scan(&m.Shortname, &m.Description, &m.Sourcefile); err != nil {
			db.log.Printf("[ERROR] Error scanning row for clone: %s\n",
				err.Error())
			return nil, err
		}

		clones = append(clones, m)
	}

	return clones, nil
} // func (db *Database) MachineGetClones(shortname string) ([]model.MachineBrief, error)

// DevicesReferenced returns the devices a machine references. Devices that
// were referenced but never defined come back with Known set to false.
func (db *Database) DevicesReferenced(machine int64) ([]model.MachineBrief, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.DevicesReferenced, machine); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var devices = make([]model.MachineBrief, 0, 16)

	for rows.Next() {
		var (
			m         model.MachineBrief
			desc, src sql.NullString
		)

		if err = rows.Scan(&m.Shortname, &desc, &src, &m.Known); err != nil {
			db.log.Printf("[ERROR] Error scanning row for device reference: %s\n",
				err.Error())
			return nil, err
		}

		m.Description = desc.String
		m.Sourcefile = src.String
		devices = append(devices, m)
	}

	return devices, nil
} // func (db *Database) DevicesReferenced(machine int64) ([]model.MachineBrief, error)

// DeviceReferences returns the machines that reference the given device.
func (db *Database) DeviceReferences(device int64) ([]model.MachineBrief, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.DeviceReferences, device); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var machines = make([]model.MachineBrief, 0, 16)

	for rows.Next() {
		var m = model.MachineBrief{Known: true}

		if err = rows.Scan(&m.Shortname, &m.Description, &m.Sourcefile); err != nil {
			db.log.Printf("[ERROR] Error scanning row for machine: %s\n",
				err.Error())
			return nil, err
		}

		machines = append(machines, m)
	}

	return machines, nil
} // func (db *Database) DeviceReferences(device int64) ([]model.MachineBrief, error)

// CompatSlots returns the slots, across all machines, that accept the given
// device as an option.
func (db *Database) CompatSlots(device int64) ([]model.CompatSlot, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.CompatSlots, device); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var slots = make([]model.CompatSlot, 0, 8)

	for rows.Next() {
		var s model.CompatSlot

		if err = rows.Scan(&s.Shortname, &s.Description, &s.Slot, &s.Option, &s.Sourcefile); err != nil {
			db.log.Printf("[ERROR] Error scanning row for compatible slot: %s\n",
				err.Error())
			return nil, err
		}

		slots = append(slots, s)
	}

	return slots, nil
} // func (db *Database) CompatSlots(device int64) ([]model.CompatSlot, error)

// BiosSetsGet returns the BIOS options of a machine.
func (db *Database) BiosSetsGet(machine int64) ([]model.BiosSet, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.BiosSetsGet, machine); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var sets = make([]model.BiosSet, 0, 4)

	for rows.Next() {
		var b model.BiosSet

		if err = rows.Scan(&b.Name, &b.Description, &b.IsDefault); err != nil {
			db.log.Printf("[ERROR] Error scanning row for BIOS set: %s\n",
				err.Error())
			return nil, err
		}

		sets = append(sets, b)
	}

	return sets, nil
} // func (db *Database) BiosSetsGet(machine int64) ([]model.BiosSet, error)

// FeatureFlagsGet returns the emulation-quality annotations of a machine.
func (db *Database) FeatureFlagsGet(machine int64) ([]model.FeatureFlag, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.FeatureFlagsGet, machine); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var flags = make([]model.FeatureFlag, 0, 4)

	for rows.Next() {
		var f model.FeatureFlag

		if err = rows.Scan(&f.Feature, &f.Status, &f.Overall); err != nil {
			db.log.Printf("[ERROR] Error scanning row for feature flag: %s\n",
				err.Error())
			return nil, err
		}

		flags = append(flags, f)
	}

	return flags, nil
} // func (db *Database) FeatureFlagsGet(machine int64) ([]model.FeatureFlag, error)

// RAMOptionsGet returns the selectable RAM sizes of a machine, ordered by
// size.
func (db *Database) RAMOptionsGet(machine int64) ([]model.RAMOption, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.RAMOptionsGet, machine); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var options = make([]model.RAMOption, 0, 4)

	for rows.Next() {
		var r model.RAMOption

		if err = rows.Scan(&r.Name, &r.Size, &r.IsDefault); err != nil {
			db.log.Printf("[ERROR] Error scanning row for RAM option: %s\n",
				err.Error())
			return nil, err
		}

		options = append(options, r)
	}

	return options, nil
} // func (db *Database) RAMOptionsGet(machine int64) ([]model.RAMOption, error)

// SlotCount returns the number of slots a machine has.
func (db *Database) SlotCount(machine int64) (int64, error) {
	return db.stmtQueryCount(query.SlotCount, machine)
} // func (db *Database) SlotCount(machine int64) (int64, error)

// SlotDefaultsGet returns the default option per slot of a machine.
func (db *Database) SlotDefaultsGet(machine int64) ([]model.SlotDefault, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.SlotDefaultsGet, machine); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var defaults = make([]model.SlotDefault, 0, 8)

	for rows.Next() {
		var d model.SlotDefault

		if err = rows.Scan(&d.Slot, &d.Option); err != nil {
			db.log.Printf("[ERROR] Error scanning row for slot default: %s\n",
				err.Error())
			return nil, err
		}

		defaults = append(defaults, d)
	}

	return defaults, nil
} // func (db *Database) SlotDefaultsGet(machine int64) ([]model.SlotDefault, error)

// SlotOptionsGet returns all options of all slots of a machine, ordered by
// slot and option name.
func (db *Database) SlotOptionsGet(machine int64) ([]model.SlotOption, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.SlotOptionsGet, machine); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var options = make([]model.SlotOption, 0, 16)

	for rows.Next() {
		var (
			o    model.SlotOption
			desc sql.NullString
		)

		if err = rows.Scan(&o.Slot, &o.Option, &o.Device, &desc); err != nil {
			db.log.Printf("[ERROR] Error scanning row for slot option: %s\n",
				err.Error())
			return nil, err
		}

		o.Description = desc.String
		options = append(options, o)
	}

	return options, nil
} // func (db *Database) SlotOptionsGet(machine int64) ([]model.SlotOption, error)

// MachineSoftwareListsGet returns the software lists attached to a machine,
// including per-list support-level counts.
func (db *Database) MachineSoftwareListsGet(machine int64) ([]model.MachineSoftwareList, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.MachineSoftwareListsGet, machine); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var lists = make([]model.MachineSoftwareList, 0, 4)

	for rows.Next() {
		var l model.MachineSoftwareList

		if err = rows.Scan(&l.Tag, &l.Status, &l.Shortname, &l.Description,
			&l.Total, &l.Supported, &l.PartiallySupported, &l.Unsupported); err != nil {
			db.log.Printf("[ERROR] Error scanning row for machine software list: %s\n",
				err.Error())
			return nil, err
		}

		lists = append(lists, l)
	}

	return lists, nil
} // func (db *Database) MachineSoftwareListsGet(machine int64) ([]model.MachineSoftwareList, error)

// SourcefileGetID looks up a source file by exact path. Returns 0 if it
// does not exist.
func (db *Database) SourcefileGetID(filename string) (int64, error) {
	var (
		err  error
		rows *sql.Rows
		id   int64
	)

	if rows, err = db.stmtQueryRows(query.SourcefileGetID, filename); err != nil {
		return 0, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if !rows.Next() {
		return 0, nil
	} else if err = rows.Scan(&id); err != nil {
		db.log.Printf("[ERROR] Error scanning ID for source file %s: %s\n",
			filename,
			err.Error())
		return 0, err
	}

	return id, nil
} // func (db *Database) SourcefileGetID(filename string) (int64, error)

// SourcefilesGet returns the source files matching the pattern, with the
// number of machines each defines. An empty pattern matches everything.
func (db *Database) SourcefilesGet(pattern string) ([]model.Sourcefile, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if pattern == "" {
		rows, err = db.stmtQueryRows(query.SourcefilesGetAll)
	} else {
		rows, err = db.stmtQueryRows(query.SourcefilesGet, pattern)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var files = make([]model.Sourcefile, 0, 32)

	for rows.Next() {
		var f model.Sourcefile

		if err = rows.Scan(&f.Filename, &f.Machines); err != nil {
			db.log.Printf("[ERROR] Error scanning row for source file: %s\n",
				err.Error())
			return nil, err
		}

		files = append(files, f)
	}

	return files, nil
} // func (db *Database) SourcefilesGet(pattern string) ([]model.Sourcefile, error)

// SourcefileCount returns the number of source files matching the pattern.
func (db *Database) SourcefileCount(pattern string) (int64, error) {
	if pattern == "" {
		return db.stmtQueryCount(query.SourcefileCountAll)
	}

	return db.stmtQueryCount(query.SourcefileCount, pattern)
} // func (db *Database) SourcefileCount(pattern string) (int64, error)

// SourcefileMachines returns the machines defined in a source file, with
// enough metadata for the listing page.
func (db *Database) SourcefileMachines(id int64) ([]model.Machine, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.SourcefileMachines, id); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var machines = make([]model.Machine, 0, 16)

	for rows.Next() {
		var (
			m                         model.Machine
			year, manufacturer, clone sql.NullString
		)

		if err = rows.Scan(&m.Shortname, &m.Description, &m.Runnable,
			&year, &manufacturer, &clone); err != nil {
			db.log.Printf("[ERROR] Error scanning row for machine: %s\n",
				err.Error())
			return nil, err
		}

		m.Year = year.String
		m.Manufacturer = manufacturer.String
		m.Cloneof = clone.String
		machines = append(machines, m)
	}

	return machines, nil
} // func (db *Database) SourcefileMachines(id int64) ([]model.Machine, error)

// SoftwareListGet looks up one software list by short name. Returns nil if
// no such list exists.
func (db *Database) SoftwareListGet(shortname string) (*model.SoftwareList, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.SoftwareListGet, shortname); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if !rows.Next() {
		return nil, nil
	}

	var l = new(model.SoftwareList)

	if err = rows.Scan(&l.ID, &l.Shortname, &l.Description,
		&l.Total, &l.Supported, &l.PartiallySupported, &l.Unsupported); err != nil {
		db.log.Printf("[ERROR] Error scanning row for software list %s: %s\n",
			shortname,
			err.Error())
		return nil, err
	}

	return l, nil
} // func (db *Database) SoftwareListGet(shortname string) (*model.SoftwareList, error)

// SoftwareListsGet returns the software lists matching the pattern, with
// support-level counts. An empty pattern matches everything.
func (db *Database) SoftwareListsGet(pattern string) ([]model.SoftwareList, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if pattern == "" {
		rows, err = db.stmtQueryRows(query.SoftwareListsGetAll)
	} else {
		rows, err = db.stmtQueryRows(query.SoftwareListsGet, pattern)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var lists = make([]model.SoftwareList, 0, 16)

	for rows.Next() {
		var l model.SoftwareList

		if err = rows.Scan(&l.ID, &l.Shortname, &l.Description,
			&l.Total, &l.Supported, &l.PartiallySupported, &l.Unsupported); err != nil {
			db.log.Printf("[ERROR] Error scanning row for software list: %s\n",
				err.Error())
			return nil, err
		}

		lists = append(lists, l)
	}

	return lists, nil
} // func (db *Database) SoftwareListsGet(pattern string) ([]model.SoftwareList, error)

// SoftwareListCount returns the number of software lists matching the
// pattern.
func (db *Database) SoftwareListCount(pattern string) (int64, error) {
	if pattern == "" {
		return db.stmtQueryCount(query.SoftwareListCountAll)
	}

	return db.stmtQueryCount(query.SoftwareListCount, pattern)
} // func (db *Database) SoftwareListCount(pattern string) (int64, error)

// SoftwareListMembers returns the software items of a list, ordered by
// short name, with their part counts.
func (db *Database) SoftwareListMembers(list int64) ([]model.Software, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.SoftwareListMembers, list); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var members = make([]model.Software, 0, 32)

	for rows.Next() {
		var (
			s      model.Software
			parent sql.NullString
		)

		if err = rows.Scan(&s.Shortname, &s.Description, &s.Year, &s.Publisher,
			&s.Supported, &parent, &s.Parts); err != nil {
			db.log.Printf("[ERROR] Error scanning row for software: %s\n",
				err.Error())
			return nil, err
		}

		s.Cloneof = parent.String
		members = append(members, s)
	}

	return members, nil
} // func (db *Database) SoftwareListMembers(list int64) ([]model.Software, error)

// SoftwareGet looks up one software item by list and short name. Returns
// nil if no such item exists.
func (db *Database) SoftwareGet(list int64, shortname string) (*model.Software, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.SoftwareGet, list, shortname); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if !rows.Next() {
		return nil, nil
	}

	var (
		s      = &model.Software{Shortname: shortname}
		parent sql.NullString
	)

	if err = rows.Scan(&s.ID, &s.Description, &s.Year, &s.Publisher,
		&s.Supported, &parent); err != nil {
		db.log.Printf("[ERROR] Error scanning row for software %s: %s\n",
			shortname,
			err.Error())
		return nil, err
	}

	s.Cloneof = parent.String

	return s, nil
} // func (db *Database) SoftwareGet(list int64, shortname string) (*model.Software, error)

// SoftwareInfoGet returns the key/value annotations of a software item.
func (db *Database) SoftwareInfoGet(software int64) ([]model.SoftwareInfo, error) {
	return db.infoPairs(query.SoftwareInfoGet, software)
} // func (db *Database) SoftwareInfoGet(software int64) ([]model.SoftwareInfo, error)

// SharedFeatGet returns the shared features of a software item.
func (db *Database) SharedFeatGet(software int64) ([]model.SoftwareInfo, error) {
	return db.infoPairs(query.SharedFeatGet, software)
} // func (db *Database) SharedFeatGet(software int64) ([]model.SoftwareInfo, error)

// PartFeaturesGet returns the features of a software part.
func (db *Database) PartFeaturesGet(part int64) ([]model.SoftwareInfo, error) {
	return db.infoPairs(query.PartFeaturesGet, part)
} // func (db *Database) PartFeaturesGet(part int64) ([]model.SoftwareInfo, error)

func (db *Database) infoPairs(qid query.ID, id int64) ([]model.SoftwareInfo, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(qid, id); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var pairs = make([]model.SoftwareInfo, 0, 8)

	for rows.Next() {
		var p model.SoftwareInfo

		if err = rows.Scan(&p.Name, &p.Value); err != nil {
			db.log.Printf("[ERROR] Error scanning row for query %s: %s\n",
				qid,
				err.Error())
			return nil, err
		}

		pairs = append(pairs, p)
	}

	return pairs, nil
} // func (db *Database) infoPairs(qid query.ID, id int64) ([]model.SoftwareInfo, error)

// SoftwarePartsGet returns the media parts of a software item, with the
// part_id display name attached where one exists.
func (db *Database) SoftwarePartsGet(software int64) ([]model.SoftwarePart, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.SoftwarePartsGet, software); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var parts = make([]model.SoftwarePart, 0, 4)

	for rows.Next() {
		var (
			p      model.SoftwarePart
			partid sql.NullString
		)

		if err = rows.Scan(&p.ID, &p.Shortname, &p.Interface, &partid); err != nil {
			db.log.Printf("[ERROR] Error scanning row for software part: %s\n",
				err.Error())
			return nil, err
		}

		p.PartID = partid.String
		parts = append(parts, p)
	}

	return parts, nil
} // func (db *Database) SoftwarePartsGet(software int64) ([]model.SoftwarePart, error)

// PartRomDumpsGet returns the rom images of a software part.
func (db *Database) PartRomDumpsGet(part int64) ([]model.PartDump, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.PartRomDumpsGet, part); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var dumps = make([]model.PartDump, 0, 8)

	for rows.Next() {
		var (
			d   model.PartDump
			crc int64
		)

		if err = rows.Scan(&d.Name, &crc, &d.SHA1, &d.Bad); err != nil {
			db.log.Printf("[ERROR] Error scanning row for rom dump: %s\n",
				err.Error())
			return nil, err
		}

		d.CRC = uint32(crc) // nolint: gosec
		dumps = append(dumps, d)
	}

	return dumps, nil
} // func (db *Database) PartRomDumpsGet(part int64) ([]model.PartDump, error)

// PartDiskDumpsGet returns the disk images of a software part.
func (db *Database) PartDiskDumpsGet(part int64) ([]model.PartDump, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(query.PartDiskDumpsGet, part); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var dumps = make([]model.PartDump, 0, 4)

	for rows.Next() {
		var d = model.PartDump{Disk: true}

		if err = rows.Scan(&d.Name, &d.SHA1, &d.Bad); err != nil {
			db.log.Printf("[ERROR] Error scanning row for disk dump: %s\n",
				err.Error())
			return nil, err
		}

		dumps = append(dumps, d)
	}

	return dumps, nil
} // func (db *Database) PartDiskDumpsGet(part int64) ([]model.PartDump, error)

// RomDumpsGet returns the machines carrying a rom with the given digests,
// and the labels they use for it.
func (db *Database) RomDumpsGet(crc uint32, sha1 string) ([]model.RomDump, error) {
	return db.machineDumps(query.RomDumpsGet, int64(crc), sha1)
} // func (db *Database) RomDumpsGet(crc uint32, sha1 string) ([]model.RomDump, error)

// DiskDumpsGet returns the machines carrying a disk with the given sha1.
func (db *Database) DiskDumpsGet(sha1 string) ([]model.RomDump, error) {
	return db.machineDumps(query.DiskDumpsGet, sha1)
} // func (db *Database) DiskDumpsGet(sha1 string) ([]model.RomDump, error)

func (db *Database) machineDumps(qid query.ID, args ...any) ([]model.RomDump, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(qid, args...); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var dumps = make([]model.RomDump, 0, 4)

	for rows.Next() {
		var d model.RomDump

		if err = rows.Scan(&d.Shortname, &d.Description, &d.Label, &d.Bad); err != nil {
			db.log.Printf("[ERROR] Error scanning row for query %s: %s\n",
				qid,
				err.Error())
			return nil, err
		}

		dumps = append(dumps, d)
	}

	return dumps, nil
} // func (db *Database) machineDumps(qid query.ID, args ...any) ([]model.RomDump, error)

// SoftwareRomDumpsGet returns the software parts carrying a rom with the
// given digests.
func (db *Database) SoftwareRomDumpsGet(crc uint32, sha1 string) ([]model.SoftwareRomDump, error) {
	return db.softwareDumps(query.SoftwareRomDumpsGet, int64(crc), sha1)
} // func (db *Database) SoftwareRomDumpsGet(crc uint32, sha1 string) ([]model.SoftwareRomDump, error)

// SoftwareDiskDumpsGet returns the software parts carrying a disk with the
// given sha1.
func (db *Database) SoftwareDiskDumpsGet(sha1 string) ([]model.SoftwareRomDump, error) {
	return db.softwareDumps(query.SoftwareDiskDumpsGet, sha1)
} // func (db *Database) SoftwareDiskDumpsGet(sha1 string) ([]model.SoftwareRomDump, error)

func (db *Database) softwareDumps(qid query.ID, args ...any) ([]model.SoftwareRomDump, error) {
	var (
		err  error
		rows *sql.Rows
	)

	if rows, err = db.stmtQueryRows(qid, args...); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var dumps = make([]model.SoftwareRomDump, 0, 4)

	for rows.Next() {
		var (
			d      model.SoftwareRomDump
			partid sql.NullString
		)

		if err = rows.Scan(&d.List, &d.ListDescription, &d.Software, &d.SoftwareDesc,
			&d.Part, &partid, &d.Label, &d.Bad); err != nil {
			db.log.Printf("[ERROR] Error scanning row for query %s: %s\n",
				qid,
				err.Error())
			return nil, err
		}

		d.PartID = partid.String
		dumps = append(dumps, d)
	}

	return dumps, nil
} // func (db *Database) softwareDumps(qid query.ID, args ...any) ([]model.SoftwareRomDump, error)
