// /home/krylon/go/src/github.com/blicero/minimaws/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-09 17:40:22 krylon>

// Package database provides persistence.
//
// A Database opened with Open is writable and is used by the load pipeline;
// one opened with OpenRead is read-only and shared by the query verbs and
// the web interface. All mutable state is created during a load; afterwards
// the database is only ever read.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/minimaws/common"
	"github.com/blicero/minimaws/database/query"
	"github.com/blicero/minimaws/logdomain"
	_ "github.com/mattn/go-sqlite3" // Import the database driver
)

var (
	openLock sync.Mutex
	idCnt    int64
)

// ErrTxInProgress indicates that an attempt to initiate a transaction failed
// because there is already one in progress.
var ErrTxInProgress = errors.New("A Transaction is already in progress")

// ErrNoTxInProgress indicates that an attempt was made to finish a
// transaction when none was active.
var ErrNoTxInProgress = errors.New("There is no transaction in progress")

// ErrReadOnly indicates that a mutating operation was attempted on a
// read-only database connection.
var ErrReadOnly = errors.New("Database was opened read-only")

// ErrObjectNotFound indicates that an Object was not found in the database.
var ErrObjectNotFound = errors.New("object was not found in database")

// If a query returns an error and the error text is matched by this regex, we
// consider the error as transient and try again after a short delay.
var retryPat = regexp.MustCompile("(?i)database is (?:locked|busy)")

// worthARetry returns true if an error returned from the database
// is matched by the retryPat regex.
func worthARetry(e error) bool {
	return retryPat.MatchString(e.Error())
} // func worthARetry(e error) bool

// retryDelay is the amount of time we wait before we repeat a database
// operation that failed due to a transient error.
const retryDelay = 25 * time.Millisecond

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// globChars are the metacharacters of SQLite's GLOB operator.
const globChars = "?*["

// IsGlob returns true if any of the given patterns contains GLOB
// metacharacters.
func IsGlob(patterns ...string) bool {
	for _, pat := range patterns {
		if strings.ContainsAny(pat, globChars) {
			return true
		}
	}

	return false
} // func IsGlob(patterns ...string) bool

// Database wraps a database connection and associated state.
type Database struct {
	id       int64
	db       *sql.DB
	tx       *sql.Tx
	log      *log.Logger
	path     string
	readOnly bool
	queries  map[query.ID]*sql.Stmt
}

// Open opens a writable Database. If the database specified by the path does
// not exist, yet, it is created and initialized.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:    path,
			queries: make(map[query.ID]*sql.Stmt),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	} else if common.Debug {
		db.log.Printf("[DEBUG] Open database %s\n", path)
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_fk=true",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if %s already exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	// Temporary tables and PRAGMAs are per-connection, so the writable
	// side must not stray from its one connection.
	db.db.SetMaxOpenConns(1)

	if !dbExists {
		if err = db.initialize(); err != nil {
			db.db.Close() // nolint: errcheck
			return nil, err
		}
		db.log.Printf("[INFO] Database at %s has been initialized\n",
			path)
	}

	return db, nil
} // func Open(path string) (*Database, error)

// OpenRead opens the database read-only. The returned Database can be shared
// across goroutines; SQLite permits concurrent read cursors on one
// connection.
func OpenRead(path string) (*Database, error) {
	var (
		err error
		db  = &Database{
			path:     path,
			readOnly: true,
			queries:  make(map[query.ID]*sql.Stmt),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	}

	var connstring = fmt.Sprintf("file:%s?mode=ro&_fk=true",
		path)

	if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s read-only: %s\n",
			path,
			err.Error())
		return nil, err
	}

	return db, nil
} // func OpenRead(path string) (*Database, error)

func (db *Database) initialize() error {
	var (
		err error
		tx  *sql.Tx
	)

	if common.Debug {
		db.log.Printf("[DEBUG] Initialize fresh database at %s\n",
			db.path)
	}

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range append(append([]string{}, initQueries...), indexQueries...) {
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query: %s\n%s\n",
				err.Error(),
				q)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database.
// If there is a pending transaction, it is rolled back.
func (db *Database) Close() error {
	var err error

	if db.tx != nil {
		if err = db.tx.Rollback(); err != nil {
			db.log.Printf("[CRITICAL] Cannot roll back pending transaction: %s\n",
				err.Error())
			return err
		}
		db.tx = nil
	}

	for key, stmt := range db.queries {
		if err = stmt.Close(); err != nil {
			db.log.Printf("[CRITICAL] Cannot close statement handle %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(db.queries, key)
	}

	if err = db.db.Close(); err != nil {
		db.log.Printf("[CRITICAL] Cannot close database: %s\n",
			err.Error())
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt  *sql.Stmt
		found bool
		err   error
	)

	if stmt, found = db.queries[id]; found {
		return stmt, nil
	} else if _, found = dbQueries[id]; !found {
		return nil, fmt.Errorf("Unknown Query %d",
			id)
	}

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(dbQueries[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot parse query %s: %s\n%s\n",
			id,
			err.Error(),
			dbQueries[id])
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

// Begin begins an explicit database transaction.
// Only one transaction can be in progress at once, attempting to start one,
// while another transaction is already in progress will yield ErrTxInProgress.
func (db *Database) Begin() error {
	var err error

	if common.Debug {
		db.log.Printf("[DEBUG] Database#%d Begin Transaction\n",
			db.id)
	}

	if db.tx != nil {
		return ErrTxInProgress
	}

BEGIN_TX:
	for db.tx == nil {
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				continue BEGIN_TX
			} else {
				db.log.Printf("[ERROR] Failed to start transaction: %s\n",
					err.Error())
				return err
			}
		}
	}

	return nil
} // func (db *Database) Begin() error

// Rollback terminates a pending transaction, undoing any changes to the
// database made during that transaction.
func (db *Database) Rollback() error {
	var err error

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Rollback(); err != nil {
		return fmt.Errorf("Cannot roll back database transaction: %s",
			err.Error())
	}

	db.tx = nil

	return nil
} // func (db *Database) Rollback() error

// Commit ends the active transaction, making any changes made during that
// transaction permanent and visible to other connections.
func (db *Database) Commit() error {
	var err error

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Commit(); err != nil {
		return fmt.Errorf("Cannot commit transaction: %s",
			err.Error())
	}

	db.tx = nil

	return nil
} // func (db *Database) Commit() error

// PrepareForLoad throws away whatever content the database file may hold —
// every view, index, and table found in sqlite_master goes — and recreates
// the schema plus the temporary staging tables. Journaling and foreign-key
// enforcement are disabled for the duration of the load; secondary indexes
// are not created until FinaliseLoad.
//
// On success, a transaction is active; the ingestion code commits it in
// batches.
func (db *Database) PrepareForLoad() error {
	var err error

	if db.readOnly {
		return ErrReadOnly
	} else if db.tx != nil {
		return ErrTxInProgress
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = OFF",
		"PRAGMA synchronous = OFF",
		"PRAGMA foreign_keys = OFF",
	} {
		if _, err = db.db.Exec(pragma); err != nil {
			db.log.Printf("[ERROR] Cannot execute %s: %s\n",
				pragma,
				err.Error())
			return err
		}
	}

	if err = db.dropAll(); err != nil {
		return err
	}

	for _, group := range [][]string{dropTempTableQueries, initQueries, tempTableQueries} {
		for _, q := range group {
			if _, err = db.db.Exec(q); err != nil {
				db.log.Printf("[ERROR] Cannot execute schema query: %s\n%s\n",
					err.Error(),
					q)
				return err
			}
		}
	}

	// Prepare all statements up front. Once the load transaction holds
	// the connection, preparing on the pool would block.
	for qid := range dbQueries {
		if _, err = db.getQuery(qid); err != nil {
			return err
		}
	}

	return db.Begin()
} // func (db *Database) PrepareForLoad() error

// dropAll walks sqlite_master and drops every view, every non-autoindex
// index, and every table, in that order. This way we get a clean slate no
// matter what the file contained before, without embedding table knowledge
// here.
func (db *Database) dropAll() error {
	type object struct {
		kind string
		name string
	}

	var (
		err  error
		rows *sql.Rows
		objs []object
	)

	const masterQuery = `
SELECT type, name
FROM sqlite_master
WHERE type IN ('view', 'index', 'table')
  AND name NOT LIKE 'sqlite_%'
ORDER BY CASE type WHEN 'view' THEN 0 WHEN 'index' THEN 1 ELSE 2 END
`

	if rows, err = db.db.Query(masterQuery); err != nil {
		db.log.Printf("[ERROR] Cannot read sqlite_master: %s\n",
			err.Error())
		return err
	}

	for rows.Next() {
		var o object
		if err = rows.Scan(&o.kind, &o.name); err != nil {
			rows.Close() // nolint: errcheck
			return err
		}
		objs = append(objs, o)
	}

	rows.Close() // nolint: errcheck

	for _, o := range objs {
		var drop string
		switch o.kind {
		case "view":
			drop = fmt.Sprintf(`DROP VIEW IF EXISTS %q`, o.name)
		case "index":
			drop = fmt.Sprintf(`DROP INDEX IF EXISTS %q`, o.name)
		default:
			drop = fmt.Sprintf(`DROP TABLE IF EXISTS %q`, o.name)
		}

		if _, err = db.db.Exec(drop); err != nil {
			db.log.Printf("[ERROR] Cannot drop %s %s: %s\n",
				o.kind,
				o.name,
				err.Error())
			return err
		}
	}

	return nil
} // func (db *Database) dropAll() error

// FinaliseLoad resolves the staged by-name references into integer foreign
// keys, drops the staging tables, and rebuilds the secondary indexes. Any
// transaction still pending from the load is committed first.
func (db *Database) FinaliseLoad() error {
	var err error

	if db.readOnly {
		return ErrReadOnly
	}

	if db.tx != nil {
		if err = db.Commit(); err != nil {
			return err
		}
	}

	var finaliseQueries = []query.ID{
		query.FinaliseDeviceRefs,
		query.FinaliseSlotOptions,
		query.FinaliseSlotDefaults,
		query.FinaliseSoftwareCloneofs,
	}

	for _, qid := range finaliseQueries {
		if _, err = db.db.Exec(dbQueries[qid]); err != nil {
			db.log.Printf("[ERROR] Cannot execute %s: %s\n",
				qid,
				err.Error())
			return err
		}
	}

	for _, group := range [][]string{dropTempTableQueries, dropIndexQueries, indexQueries} {
		for _, q := range group {
			if _, err = db.db.Exec(q); err != nil {
				db.log.Printf("[ERROR] Cannot execute schema query: %s\n%s\n",
					err.Error(),
					q)
				return err
			}
		}
	}

	if _, err = db.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.log.Printf("[ERROR] Cannot re-enable foreign keys: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) FinaliseLoad() error

// stmtExec executes a query that does not return an ID.
func (db *Database) stmtExec(qid query.ID, args ...any) error {
	var (
		err  error
		stmt *sql.Stmt
	)

	if db.readOnly {
		return ErrReadOnly
	} else if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(args...); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot execute query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	return nil
} // func (db *Database) stmtExec(qid query.ID, args ...any) error

// stmtInsertID executes an INSERT ... RETURNING id query and returns the new
// surrogate key.
func (db *Database) stmtInsertID(qid query.ID, args ...any) (int64, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
		id   int64
	)

	if db.readOnly {
		return 0, ErrReadOnly
	} else if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return 0, err
	}

	if db.tx != nil {
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
		return 0, err
	}

	defer rows.Close() // nolint: errcheck

	if !rows.Next() {
		db.log.Printf("[ERROR] Query %s did not return a value\n",
			qid)
		return 0, fmt.Errorf("Query %s did not return a value", qid)
	} else if err = rows.Scan(&id); err != nil {
		db.log.Printf("[ERROR] Cannot scan ID from query %s: %s\n",
			qid,
			err.Error())
		return 0, err
	}

	return id, nil
} // func (db *Database) stmtInsertID(qid query.ID, args ...any) (int64, error)

// SourcefileAdd records an emulator source file, ignoring duplicates.
func (db *Database) SourcefileAdd(filename string) error {
	return db.stmtExec(query.SourcefileAdd, filename)
} // func (db *Database) SourcefileAdd(filename string) error

// MachineAdd inserts a machine and returns its surrogate key. The source
// file must have been added before.
func (db *Database) MachineAdd(shortname, description, sourcefile string, isdevice, runnable bool) (int64, error) {
	return db.stmtInsertID(query.MachineAdd, shortname, description, isdevice, runnable, sourcefile)
} // func (db *Database) MachineAdd(...) (int64, error)

// SystemAdd attaches manufacturing metadata to a machine.
func (db *Database) SystemAdd(machine int64, year, manufacturer string) error {
	return db.stmtExec(query.SystemAdd, machine, year, manufacturer)
} // func (db *Database) SystemAdd(machine int64, year, manufacturer string) error

// CloneofAdd records a machine's parent by short name. The referent need
// not exist.
func (db *Database) CloneofAdd(machine int64, parent string) error {
	return db.stmtExec(query.CloneofAdd, machine, parent)
} // func (db *Database) CloneofAdd(machine int64, parent string) error

// RomofAdd records a machine's ROM parent by short name.
func (db *Database) RomofAdd(machine int64, parent string) error {
	return db.stmtExec(query.RomofAdd, machine, parent)
} // func (db *Database) RomofAdd(machine int64, parent string) error

// BiosSetAdd inserts a BIOS option for a machine.
func (db *Database) BiosSetAdd(machine int64, name, description string) (int64, error) {
	return db.stmtInsertID(query.BiosSetAdd, machine, name, description)
} // func (db *Database) BiosSetAdd(machine int64, name, description string) (int64, error)

// BiosSetDefaultAdd marks a BIOS set as its machine's default.
func (db *Database) BiosSetDefaultAdd(biosset int64) error {
	return db.stmtExec(query.BiosSetDefaultAdd, biosset)
} // func (db *Database) BiosSetDefaultAdd(biosset int64) error

// DeviceRefAdd stages a device reference by short name; resolved at
// finalise.
func (db *Database) DeviceRefAdd(machine int64, device string) error {
	return db.stmtExec(query.DeviceRefAdd, machine, device)
} // func (db *Database) DeviceRefAdd(machine int64, device string) error

// DipSwitchAdd inserts a DIP switch or configuration switch.
func (db *Database) DipSwitchAdd(machine int64, isconfig bool, name, tag string, mask int64) (int64, error) {
	return db.stmtInsertID(query.DipSwitchAdd, machine, isconfig, name, tag, mask)
} // func (db *Database) DipSwitchAdd(...) (int64, error)

// DipLocationAdd inserts a per-bit location annotation for a DIP switch.
func (db *Database) DipLocationAdd(dipswitch int64, bit int, name string, num int64, inverted bool) error {
	return db.stmtExec(query.DipLocationAdd, dipswitch, bit, name, num, inverted)
} // func (db *Database) DipLocationAdd(...) error

// DipValueAdd inserts an enumerated value of a DIP switch.
func (db *Database) DipValueAdd(dipswitch int64, name string, value int64, isdefault bool) error {
	return db.stmtExec(query.DipValueAdd, dipswitch, name, value, isdefault)
} // func (db *Database) DipValueAdd(...) error

// FeatureTypeAdd interns a feature type name.
func (db *Database) FeatureTypeAdd(name string) error {
	return db.stmtExec(query.FeatureTypeAdd, name)
} // func (db *Database) FeatureTypeAdd(name string) error

// FeatureAdd inserts an emulation-quality annotation. The feature type must
// have been interned before.
func (db *Database) FeatureAdd(machine int64, featuretype string, status, overall int) error {
	return db.stmtExec(query.FeatureAdd, machine, status, overall, featuretype)
} // func (db *Database) FeatureAdd(...) error

// SlotAdd inserts an expansion slot.
func (db *Database) SlotAdd(machine int64, name string) (int64, error) {
	return db.stmtInsertID(query.SlotAdd, machine, name)
} // func (db *Database) SlotAdd(machine int64, name string) (int64, error)

// SlotOptionAdd stages a slot option; the device is referenced by short
// name and resolved at finalise.
func (db *Database) SlotOptionAdd(slot int64, device, name string) (int64, error) {
	return db.stmtInsertID(query.SlotOptionAdd, slot, device, name)
} // func (db *Database) SlotOptionAdd(slot int64, device, name string) (int64, error)

// SlotDefaultAdd stages the default option of a slot.
func (db *Database) SlotDefaultAdd(slot, slotoption int64) error {
	return db.stmtExec(query.SlotDefaultAdd, slot, slotoption)
} // func (db *Database) SlotDefaultAdd(slot, slotoption int64) error

// RAMOptionAdd inserts a named RAM size.
func (db *Database) RAMOptionAdd(machine int64, name string, size int64) error {
	return db.stmtExec(query.RAMOptionAdd, machine, name, size)
} // func (db *Database) RAMOptionAdd(machine int64, name string, size int64) error

// RAMDefaultAdd marks a machine's default RAM size.
func (db *Database) RAMDefaultAdd(machine, size int64) error {
	return db.stmtExec(query.RAMDefaultAdd, machine, size)
} // func (db *Database) RAMDefaultAdd(machine, size int64) error

// SoftwareListStatusAdd interns a software-list attachment status.
func (db *Database) SoftwareListStatusAdd(value string) error {
	return db.stmtExec(query.SoftwareListStatusAdd, value)
} // func (db *Database) SoftwareListStatusAdd(value string) error

// MachineSoftwareListAdd attaches a software list to a machine. If no list
// with the given short name was loaded, the attachment is silently dropped,
// matching the emulator's tolerance for unshipped lists.
func (db *Database) MachineSoftwareListAdd(machine int64, tag, list, status string) error {
	return db.stmtExec(query.MachineSoftwareListAdd, machine, tag, list, status)
} // func (db *Database) MachineSoftwareListAdd(machine int64, tag, list, status string) error

// RomAdd records a rom dump, keyed by (crc, sha1); duplicates are ignored.
func (db *Database) RomAdd(crc uint32, sha1 string) error {
	return db.stmtExec(query.RomAdd, int64(crc), sha1)
} // func (db *Database) RomAdd(crc uint32, sha1 string) error

// RomDumpAdd attaches a rom to a machine under the given label.
func (db *Database) RomDumpAdd(machine int64, name string, crc uint32, sha1 string, bad bool) error {
	return db.stmtExec(query.RomDumpAdd, machine, name, bad, int64(crc), sha1)
} // func (db *Database) RomDumpAdd(...) error

// DiskAdd records a disk dump, keyed by sha1; duplicates are ignored.
func (db *Database) DiskAdd(sha1 string) error {
	return db.stmtExec(query.DiskAdd, sha1)
} // func (db *Database) DiskAdd(sha1 string) error

// DiskDumpAdd attaches a disk to a machine under the given label.
func (db *Database) DiskDumpAdd(machine int64, name, sha1 string, bad bool) error {
	return db.stmtExec(query.DiskDumpAdd, machine, name, bad, sha1)
} // func (db *Database) DiskDumpAdd(machine int64, name, sha1 string, bad bool) error

// SoftwareListAdd inserts a software list and returns its surrogate key.
func (db *Database) SoftwareListAdd(shortname, description string) (int64, error) {
	return db.stmtInsertID(query.SoftwareListAdd, shortname, description)
} // func (db *Database) SoftwareListAdd(shortname, description string) (int64, error)

// SoftwareAdd inserts a software title.
func (db *Database) SoftwareAdd(list int64, shortname, description, year, publisher string, supported int) (int64, error) {
	return db.stmtInsertID(query.SoftwareAdd, list, shortname, description, year, publisher, supported)
} // func (db *Database) SoftwareAdd(...) (int64, error)

// SoftwareCloneofAdd stages a software item's parent by short name within
// the same list; resolved at finalise.
func (db *Database) SoftwareCloneofAdd(software, list int64, parent string) error {
	return db.stmtExec(query.SoftwareCloneofAdd, software, list, parent)
} // func (db *Database) SoftwareCloneofAdd(software, list int64, parent string) error

// SoftwareInfoTypeAdd interns an info key.
func (db *Database) SoftwareInfoTypeAdd(name string) error {
	return db.stmtExec(query.SoftwareInfoTypeAdd, name)
} // func (db *Database) SoftwareInfoTypeAdd(name string) error

// SoftwareInfoAdd attaches a key/value annotation to a software item.
func (db *Database) SoftwareInfoAdd(software int64, name, value string) error {
	return db.stmtExec(query.SoftwareInfoAdd, software, value, name)
} // func (db *Database) SoftwareInfoAdd(software int64, name, value string) error

// SharedFeatTypeAdd interns a shared-feature key.
func (db *Database) SharedFeatTypeAdd(name string) error {
	return db.stmtExec(query.SharedFeatTypeAdd, name)
} // func (db *Database) SharedFeatTypeAdd(name string) error

// SharedFeatAdd attaches a shared feature to a software item.
func (db *Database) SharedFeatAdd(software int64, name, value string) error {
	return db.stmtExec(query.SharedFeatAdd, software, value, name)
} // func (db *Database) SharedFeatAdd(software int64, name, value string) error

// SoftwarePartAdd inserts a media part of a software item.
func (db *Database) SoftwarePartAdd(software int64, shortname, iface string) (int64, error) {
	return db.stmtInsertID(query.SoftwarePartAdd, software, shortname, iface)
} // func (db *Database) SoftwarePartAdd(software int64, shortname, iface string) (int64, error)

// PartFeatureTypeAdd interns a part-feature key.
func (db *Database) PartFeatureTypeAdd(name string) error {
	return db.stmtExec(query.PartFeatureTypeAdd, name)
} // func (db *Database) PartFeatureTypeAdd(name string) error

// PartFeatureAdd attaches a key/value annotation to a software part.
func (db *Database) PartFeatureAdd(part int64, name, value string) error {
	return db.stmtExec(query.PartFeatureAdd, part, value, name)
} // func (db *Database) PartFeatureAdd(part int64, name, value string) error

// SoftwareRomDumpAdd attaches a rom to a software part.
func (db *Database) SoftwareRomDumpAdd(part int64, name string, crc uint32, sha1 string, bad bool) error {
	return db.stmtExec(query.SoftwareRomDumpAdd, part, name, bad, int64(crc), sha1)
} // func (db *Database) SoftwareRomDumpAdd(...) error

// SoftwareDiskDumpAdd attaches a disk to a software part.
func (db *Database) SoftwareDiskDumpAdd(part int64, name, sha1 string, bad bool) error {
	return db.stmtExec(query.SoftwareDiskDumpAdd, part, name, bad, sha1)
} // func (db *Database) SoftwareDiskDumpAdd(part int64, name, sha1 string, bad bool) error
